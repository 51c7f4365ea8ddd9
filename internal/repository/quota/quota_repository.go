package quota

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limiter is the usage-accounting surface consumed by the triage service.
type Limiter interface {
	Consume(ctx context.Context, patientID string) (bool, error)
	Remaining(ctx context.Context, patientID string) (int, error)
}

// Repository tracks per-patient daily triage usage in Redis. Counters are
// keyed by date and expire after 48 hours.
type Repository struct {
	client *redis.Client
	limit  int
}

var _ Limiter = &Repository{}

func NewRepository(redisURL string, limit int) (*Repository, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	return &Repository{
		client: redis.NewClient(opts),
		limit:  limit,
	}, nil
}

func (r *Repository) key(patientID string, day time.Time) string {
	return fmt.Sprintf("triage:quota:%s:%s", patientID, day.Format("2006-01-02"))
}

// Consume increments today's counter and reports whether the patient is
// still within the daily limit.
func (r *Repository) Consume(ctx context.Context, patientID string) (bool, error) {
	if r == nil {
		// No quota backend configured, allow everything.
		return true, nil
	}
	key := r.key(patientID, time.Now().UTC())

	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		r.client.Expire(ctx, key, 48*time.Hour)
	}

	return count <= int64(r.limit), nil
}

func (r *Repository) Remaining(ctx context.Context, patientID string) (int, error) {
	if r == nil {
		return 0, nil
	}
	key := r.key(patientID, time.Now().UTC())

	count, err := r.client.Get(ctx, key).Int()
	if err != nil && err != redis.Nil {
		return 0, err
	}

	remaining := r.limit - count
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

func (r *Repository) Close() error {
	if r == nil {
		return nil
	}
	return r.client.Close()
}
