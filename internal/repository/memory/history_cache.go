package memory

import (
	"time"

	"github.com/patrickmn/go-cache"

	"medtriage-be/pkg/triage"
)

// HistoryCache keeps the recent conversation of each patient in process
// memory so the triage endpoint avoids a database read per message. Entries
// expire after an hour of inactivity; a miss is rebuilt from the
// interactions table.
type HistoryCache struct {
	cache      *cache.Cache
	maxHistory int
}

func NewHistoryCache(maxHistory int) *HistoryCache {
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &HistoryCache{
		cache:      c,
		maxHistory: maxHistory,
	}
}

func (h *HistoryCache) Get(patientID string) ([]triage.Exchange, bool) {
	if x, found := h.cache.Get(patientID); found {
		return x.([]triage.Exchange), true
	}
	return nil, false
}

func (h *HistoryCache) Set(patientID string, history []triage.Exchange) {
	if len(history) > h.maxHistory {
		history = history[len(history)-h.maxHistory:]
	}
	h.cache.Set(patientID, history, cache.DefaultExpiration)
}

// Append adds one completed exchange, trimming to the configured window.
func (h *HistoryCache) Append(patientID string, exchange triage.Exchange) {
	history, _ := h.Get(patientID)
	history = append(history, exchange)
	h.Set(patientID, history)
}

func (h *HistoryCache) Delete(patientID string) {
	h.cache.Delete(patientID)
}
