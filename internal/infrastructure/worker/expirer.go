package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/cinepass/cinema-platform/internal/api/metrics"
	"github.com/cinepass/cinema-platform/internal/core/ports"
)

const (
	defaultTTL      = 30 * time.Minute
	defaultInterval = 5 * time.Minute
	sweepTimeout    = 30 * time.Second
)

// Expirer periodically transitions stale open reservations to expired. A
// reservation left open past its TTL was never confirmed and should not keep
// counting against availability.
type Expirer struct {
	repo     ports.ReservationRepository
	ttl      time.Duration
	interval time.Duration
	log      zerolog.Logger
}

// NewExpirer creates an Expirer. Non-positive ttl or interval fall back to
// the defaults.
func NewExpirer(repo ports.ReservationRepository, ttl, interval time.Duration, log zerolog.Logger) *Expirer {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Expirer{repo: repo, ttl: ttl, interval: interval, log: log}
}

// Start launches the sweep loop. It stops when ctx is cancelled.
func (e *Expirer) Start(ctx context.Context) {
	go e.run(ctx)
}

func (e *Expirer) run(ctx context.Context) {
	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			e.sweep(ctx)
		}
	}
}

func (e *Expirer) sweep(ctx context.Context) {
	sweepCtx, cancel := context.WithTimeout(ctx, sweepTimeout)
	defer cancel()

	cutoff := time.Now().UTC().Add(-e.ttl)
	n, err := e.repo.ExpireOpenBefore(sweepCtx, cutoff)
	if err != nil {
		e.log.Error().Err(err).Msg("reservation expiry sweep failed")
		return
	}
	if n > 0 {
		metrics.ReservationsExpiredTotal.Add(float64(n))
		e.log.Info().Int64("expired", n).Msg("stale reservations expired")
	}
}
