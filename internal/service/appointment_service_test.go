package service

import (
	"testing"
	"time"

	"medtriage-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestSlotAvailable(t *testing.T) {
	// 2026-03-02 is a Monday.
	monday10 := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	doctor := &entity.Doctor{
		FullName:  "Dr. Sarah Johnson",
		Specialty: "General Medicine",
		Availability: map[string][]string{
			"monday":  {"09:00", "10:00", "11:00"},
			"tuesday": {"14:00"},
		},
	}

	t.Run("matching weekday and hour", func(t *testing.T) {
		assert.True(t, slotAvailable(doctor, monday10))
	})

	t.Run("hour not offered", func(t *testing.T) {
		assert.False(t, slotAvailable(doctor, monday10.Add(2*time.Hour+30*time.Minute)))
	})

	t.Run("weekday not offered", func(t *testing.T) {
		sunday := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
		assert.False(t, slotAvailable(doctor, sunday))
	})

	t.Run("no published schedule accepts any slot", func(t *testing.T) {
		open := &entity.Doctor{FullName: "Dr. On Call"}
		assert.True(t, slotAvailable(open, monday10))
	})
}
