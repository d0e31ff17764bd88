package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const replayTTL = time.Hour

// ReplayGuard provides idempotency for reservation creation backed by Redis.
// Key format: reservation:idem:<idempotency_key> → reservation id
type ReplayGuard struct {
	client *redis.Client
}

// NewReplayGuard creates a ReplayGuard wrapping the given Redis client.
func NewReplayGuard(client *redis.Client) *ReplayGuard {
	return &ReplayGuard{client: client}
}

// Seen returns the reservation id previously recorded under key, or "" when
// the key is new.
func (g *ReplayGuard) Seen(ctx context.Context, key string) (string, error) {
	id, err := g.client.Get(ctx, g.key(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("replay check: %w", err)
	}
	return id, nil
}

// Record stores the reservation created under key (expires after replayTTL).
func (g *ReplayGuard) Record(ctx context.Context, key, reservationID string) error {
	return g.client.Set(ctx, g.key(key), reservationID, replayTTL).Err()
}

func (g *ReplayGuard) key(key string) string {
	return "reservation:idem:" + key
}
