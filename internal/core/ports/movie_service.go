package ports

import (
	"context"

	"github.com/cinepass/cinema-platform/internal/core/domain"
)

// MovieService defines use-case operations for the movie catalog.
type MovieService interface {
	Create(ctx context.Context, movie *domain.Movie) (*domain.Movie, error)
	Get(ctx context.Context, id string) (*domain.Movie, error)
	List(ctx context.Context) ([]domain.Movie, error)
	Update(ctx context.Context, movie *domain.Movie) (*domain.Movie, error)
	Delete(ctx context.Context, id string) error
}

// MovieCatalog is the read-only remote view of the catalog consumed by the
// reservation workflow. FetchMovie returns domain.ErrMovieNotFound when the
// id does not resolve and domain.ErrCatalogUnavailable on transport failure.
type MovieCatalog interface {
	FetchMovie(ctx context.Context, id string) (*domain.Movie, error)
}
