package ports

import (
	"context"

	"github.com/cinepass/cinema-platform/internal/core/domain"
)

// The cinema, room, and seance repositories back the plain persistence
// endpoints of the reservation service. They carry no business rules beyond
// storage.

type CinemaRepository interface {
	Create(ctx context.Context, cinema *domain.Cinema) (*domain.Cinema, error)
	FindByUID(ctx context.Context, uid string) (*domain.Cinema, error)
	List(ctx context.Context) ([]domain.Cinema, error)
	Update(ctx context.Context, cinema *domain.Cinema) (*domain.Cinema, error)
	Delete(ctx context.Context, uid string) error
}

type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) (*domain.Room, error)
	FindByUID(ctx context.Context, uid string) (*domain.Room, error)
	ListByCinema(ctx context.Context, cinemaUID string) ([]domain.Room, error)
	Update(ctx context.Context, room *domain.Room) (*domain.Room, error)
	Delete(ctx context.Context, uid string) error
}

type SeanceRepository interface {
	Create(ctx context.Context, seance *domain.Seance) (*domain.Seance, error)
	FindByUID(ctx context.Context, uid string) (*domain.Seance, error)
	ListByMovie(ctx context.Context, movieUID string) ([]domain.Seance, error)
	Delete(ctx context.Context, uid string) error
}
