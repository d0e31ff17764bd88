package ports

import (
	"context"
	"time"

	"github.com/cinepass/cinema-platform/internal/core/domain"
)

// ReservationRepository defines persistence for reservations. The store is the
// sole arbiter of write ordering; last write wins on concurrent updates.
type ReservationRepository interface {
	Create(ctx context.Context, r *domain.Reservation) (*domain.Reservation, error)
	FindByID(ctx context.Context, id string) (*domain.Reservation, error)
	ListByMovie(ctx context.Context, movieUID string) ([]domain.Reservation, error)
	Update(ctx context.Context, r *domain.Reservation) (*domain.Reservation, error)
	// ExpireOpenBefore transitions every open reservation created before the
	// cutoff to expired and reports how many were affected.
	ExpireOpenBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
