package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/cinepass/cinema-platform/internal/core/domain"
	"github.com/cinepass/cinema-platform/internal/core/ports"
)

// MovieService implements the catalog use cases. These are plain persistence
// wrappers; the only rule enforced here is the catalog field invariants.
type MovieService struct {
	repo ports.MovieRepository
	log  zerolog.Logger
}

func NewMovieService(repo ports.MovieRepository, log zerolog.Logger) *MovieService {
	return &MovieService{repo: repo, log: log}
}

func (s *MovieService) Create(ctx context.Context, movie *domain.Movie) (*domain.Movie, error) {
	if !domain.ValidMovie(movie) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now().UTC()
	movie.CreatedAt = now
	movie.UpdatedAt = now

	created, err := s.repo.Create(ctx, movie)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("id", created.ID).Str("name", created.Name).Msg("movie created")
	return created, nil
}

func (s *MovieService) Get(ctx context.Context, id string) (*domain.Movie, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *MovieService) List(ctx context.Context) ([]domain.Movie, error) {
	return s.repo.List(ctx)
}

func (s *MovieService) Update(ctx context.Context, movie *domain.Movie) (*domain.Movie, error) {
	if !domain.ValidMovie(movie) {
		return nil, domain.ErrInvalidInput
	}
	movie.UpdatedAt = time.Now().UTC()
	return s.repo.Update(ctx, movie)
}

func (s *MovieService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
