package ports

import (
	"context"

	"github.com/cinepass/cinema-platform/internal/core/domain"
)

// UserRepository defines the persistence interface for principals. The secret
// hash never leaves the store except inside the returned User, and users are
// never physically deleted.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
	FindByUID(ctx context.Context, uid string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
}
