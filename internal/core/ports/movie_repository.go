package ports

import (
	"context"

	"github.com/cinepass/cinema-platform/internal/core/domain"
)

// MovieRepository defines the persistence interface for the movie catalog.
type MovieRepository interface {
	Create(ctx context.Context, movie *domain.Movie) (*domain.Movie, error)
	FindByID(ctx context.Context, id string) (*domain.Movie, error)
	List(ctx context.Context) ([]domain.Movie, error)
	Update(ctx context.Context, movie *domain.Movie) (*domain.Movie, error)
	Delete(ctx context.Context, id string) error
}
