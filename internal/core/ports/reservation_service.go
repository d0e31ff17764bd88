package ports

import (
	"context"

	"github.com/cinepass/cinema-platform/internal/core/domain"
)

// CreateReservationInput carries all data needed to create a reservation.
// MovieID is the remote catalog id; Seats defaults to 1 when zero. If an
// idempotency key is provided and already seen, the previously created
// reservation is returned without side effects.
type CreateReservationInput struct {
	MovieID        string
	Seats          int
	IdempotencyKey string
}

// ReservationService defines the booking use cases.
type ReservationService interface {
	Create(ctx context.Context, input CreateReservationInput) (*domain.Reservation, error)
	Confirm(ctx context.Context, id string) (*domain.Reservation, error)
	Get(ctx context.Context, id string) (*domain.Reservation, error)
	ListByMovie(ctx context.Context, movieUID string) ([]domain.Reservation, error)
}
