package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/cinepass/cinema-platform/internal/core/domain"
)

type stubSweepRepo struct {
	reservations []*domain.Reservation
	err          error
	gotCutoff    time.Time
}

func (s *stubSweepRepo) Create(_ context.Context, r *domain.Reservation) (*domain.Reservation, error) {
	return r, nil
}

func (s *stubSweepRepo) FindByID(_ context.Context, id string) (*domain.Reservation, error) {
	return nil, domain.ErrReservationNotFound
}

func (s *stubSweepRepo) ListByMovie(_ context.Context, movieUID string) ([]domain.Reservation, error) {
	return nil, nil
}

func (s *stubSweepRepo) Update(_ context.Context, r *domain.Reservation) (*domain.Reservation, error) {
	return r, nil
}

func (s *stubSweepRepo) ExpireOpenBefore(_ context.Context, cutoff time.Time) (int64, error) {
	s.gotCutoff = cutoff
	if s.err != nil {
		return 0, s.err
	}
	var n int64
	for _, r := range s.reservations {
		if r.Status == domain.ReservationOpen && r.CreatedAt.Before(cutoff) {
			r.Status = domain.ReservationExpired
			n++
		}
	}
	return n, nil
}

func TestExpirer_SweepExpiresOnlyStaleOpen(t *testing.T) {
	now := time.Now().UTC()
	repo := &stubSweepRepo{reservations: []*domain.Reservation{
		{ID: "stale-open", Status: domain.ReservationOpen, CreatedAt: now.Add(-time.Hour)},
		{ID: "fresh-open", Status: domain.ReservationOpen, CreatedAt: now.Add(-time.Minute)},
		{ID: "confirmed", Status: domain.ReservationConfirmed, CreatedAt: now.Add(-time.Hour)},
	}}

	e := NewExpirer(repo, 30*time.Minute, time.Minute, zerolog.Nop())
	e.sweep(context.Background())

	if repo.reservations[0].Status != domain.ReservationExpired {
		t.Fatalf("stale open reservation should be expired, got %s", repo.reservations[0].Status)
	}
	if repo.reservations[1].Status != domain.ReservationOpen {
		t.Fatalf("fresh open reservation should be untouched, got %s", repo.reservations[1].Status)
	}
	if repo.reservations[2].Status != domain.ReservationConfirmed {
		t.Fatalf("confirmed reservation should be untouched, got %s", repo.reservations[2].Status)
	}

	wantCutoff := now.Add(-30 * time.Minute)
	if diff := repo.gotCutoff.Sub(wantCutoff); diff < -time.Second || diff > time.Second {
		t.Fatalf("unexpected cutoff: %v", repo.gotCutoff)
	}
}

func TestExpirer_SweepSurvivesRepoError(t *testing.T) {
	repo := &stubSweepRepo{err: errors.New("mongo down")}
	e := NewExpirer(repo, 30*time.Minute, time.Minute, zerolog.Nop())

	// Must not panic; the next tick will retry.
	e.sweep(context.Background())
}

func TestExpirer_Defaults(t *testing.T) {
	e := NewExpirer(&stubSweepRepo{}, 0, 0, zerolog.Nop())
	if e.ttl != defaultTTL || e.interval != defaultInterval {
		t.Fatalf("expected defaults, got ttl=%v interval=%v", e.ttl, e.interval)
	}
}

func TestExpirer_StopsOnContextCancel(t *testing.T) {
	repo := &stubSweepRepo{}
	e := NewExpirer(repo, time.Minute, 10*time.Millisecond, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	e.Start(ctx)
	time.Sleep(30 * time.Millisecond)
	cancel()
	// Give the goroutine a moment to exit; nothing to assert beyond not
	// deadlocking or panicking after cancellation.
	time.Sleep(20 * time.Millisecond)
}
