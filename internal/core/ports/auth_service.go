package ports

import (
	"context"

	"github.com/cinepass/cinema-platform/internal/core/domain"
)

// AccountAccessInput carries the caller identity used to enforce the
// self-or-admin scope on account reads and updates. TargetUID is already
// resolved: "me" has been replaced with the caller's uid by the handler.
type AccountAccessInput struct {
	TargetUID  string
	CallerUID  string
	CallerRole string
}

// UpdateAccountInput carries an account update. Empty fields are left
// unchanged. When an administrator updates another account, the role is
// forced to ROLE_ADMIN regardless of the payload.
type UpdateAccountInput struct {
	AccountAccessInput
	Login    string
	Password string
	Role     string
	Status   string
}

// AuthService defines the identity use cases: registration, credential
// issuance, refresh, and gated account access. Token validation lives on the
// narrower TokenValidator capability so dependent services can take just that.
type AuthService interface {
	TokenValidator

	Register(ctx context.Context, login, password, role, status string) (*domain.User, error)
	IssueTokens(ctx context.Context, login, password string) (*domain.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error)
	GetAccount(ctx context.Context, input AccountAccessInput) (*domain.User, error)
	UpdateAccount(ctx context.Context, input UpdateAccountInput) (*domain.User, error)
}
