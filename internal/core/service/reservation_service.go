package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cinepass/cinema-platform/internal/api/metrics"
	"github.com/cinepass/cinema-platform/internal/core/domain"
	"github.com/cinepass/cinema-platform/internal/core/ports"
)

// ReplayGuard abstracts the idempotency store (Redis). Seen returns the
// reservation id previously recorded under key, or "" when the key is new.
type ReplayGuard interface {
	Seen(ctx context.Context, key string) (string, error)
	Record(ctx context.Context, key, reservationID string) error
}

type reservationService struct {
	repo    ports.ReservationRepository
	catalog ports.MovieCatalog
	guard   ReplayGuard
	log     zerolog.Logger
}

// NewReservationService returns a ReservationService implementation. guard
// may be nil, in which case idempotency keys are ignored.
func NewReservationService(
	repo ports.ReservationRepository,
	catalog ports.MovieCatalog,
	guard ReplayGuard,
	log zerolog.Logger,
) ports.ReservationService {
	return &reservationService{
		repo:    repo,
		catalog: catalog,
		guard:   guard,
		log:     log,
	}
}

// Create runs the cross-service booking workflow: fetch the movie from the
// remote catalog, check the bookable flag, then persist a new open
// reservation. The remote read and the local write are not wrapped in a
// distributed transaction; a later catalog-side change cannot retroactively
// invalidate an already-created reservation.
func (s *reservationService) Create(ctx context.Context, input ports.CreateReservationInput) (*domain.Reservation, error) {
	// 1. Idempotency check: a replayed key returns the original reservation.
	if input.IdempotencyKey != "" && s.guard != nil {
		id, err := s.guard.Seen(ctx, input.IdempotencyKey)
		if err != nil {
			s.log.Warn().Err(err).Str("key", input.IdempotencyKey).Msg("replay check failed, processing anyway")
		} else if id != "" {
			existing, err := s.repo.FindByID(ctx, id)
			if err == nil {
				s.log.Info().Str("key", input.IdempotencyKey).Str("reservation_id", id).Msg("idempotent replay")
				return existing, nil
			}
		}
	}

	// 2. Remote catalog lookup. Both business rejections happen before any
	// local write, so a failed precondition leaves zero new rows.
	movie, err := s.catalog.FetchMovie(ctx, input.MovieID)
	if err != nil {
		if errors.Is(err, domain.ErrMovieNotFound) {
			metrics.ReservationsRejectedTotal.WithLabelValues("movie_not_found").Inc()
			return nil, err
		}
		if errors.Is(err, domain.ErrCatalogUnavailable) {
			metrics.ReservationsRejectedTotal.WithLabelValues("catalog_unavailable").Inc()
			return nil, err
		}
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	// 3. Business precondition.
	if !movie.HasReservationsAvailable {
		metrics.ReservationsRejectedTotal.WithLabelValues("not_bookable").Inc()
		return nil, domain.ErrMovieNotBookable
	}

	// 4. Persist the reservation in open status with a fresh grouping ref.
	seats := input.Seats
	if seats <= 0 {
		seats = 1
	}
	now := time.Now().UTC()
	reservation := &domain.Reservation{
		Rank:           0,
		Status:         domain.ReservationOpen,
		Seats:          seats,
		MovieUID:       input.MovieID,
		SeanceUID:      uuid.NewString(),
		IdempotencyKey: input.IdempotencyKey,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := s.repo.Create(ctx, reservation)
	if err != nil {
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	if input.IdempotencyKey != "" && s.guard != nil {
		if err := s.guard.Record(ctx, input.IdempotencyKey, created.ID); err != nil {
			s.log.Warn().Err(err).Str("key", input.IdempotencyKey).Msg("failed to record replay key")
		}
	}

	metrics.ReservationsCreatedTotal.Inc()
	s.log.Info().
		Str("reservation_id", created.ID).
		Str("movie_id", input.MovieID).
		Int("seats", seats).
		Msg("reservation created")

	return created, nil
}

// Confirm transitions a reservation to confirmed. Only open reservations may
// be confirmed; confirming twice is rejected.
func (s *reservationService) Confirm(ctx context.Context, id string) (*domain.Reservation, error) {
	reservation, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !reservation.Status.CanTransitionTo(domain.ReservationConfirmed) {
		return nil, fmt.Errorf("confirm reservation: %w (from %s)", domain.ErrInvalidTransition, reservation.Status)
	}

	reservation.Status = domain.ReservationConfirmed
	reservation.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, reservation)
	if err != nil {
		return nil, fmt.Errorf("confirm reservation: %w", err)
	}

	metrics.ReservationsConfirmedTotal.Inc()
	s.log.Info().Str("reservation_id", id).Msg("reservation confirmed")
	return updated, nil
}

func (s *reservationService) Get(ctx context.Context, id string) (*domain.Reservation, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *reservationService) ListByMovie(ctx context.Context, movieUID string) ([]domain.Reservation, error) {
	return s.repo.ListByMovie(ctx, movieUID)
}
