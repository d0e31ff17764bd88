package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/cinepass/cinema-platform/internal/api/metrics"
	"github.com/cinepass/cinema-platform/internal/core/domain"
	"github.com/cinepass/cinema-platform/internal/core/ports"
)

// AuthService implements registration, credential issuance, validation,
// refresh, and gated account access for the identity service.
type AuthService struct {
	repo  ports.UserRepository
	codec *TokenCodec
	log   zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, codec *TokenCodec, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, codec: codec, log: log}
}

// Register creates a new principal with a bcrypt-hashed secret.
func (s *AuthService) Register(ctx context.Context, login, password, role, status string) (*domain.User, error) {
	if login == "" || password == "" {
		return nil, domain.ErrInvalidInput
	}
	if role == "" {
		role = domain.RoleUser
	}
	if status == "" {
		status = domain.StatusOpen
	}
	if !domain.ValidRole(role) || !domain.ValidStatus(status) {
		return nil, domain.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Login:        login,
		PasswordHash: string(hash),
		Role:         role,
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("login", created.Login).Str("role", created.Role).Msg("account created")
	return created, nil
}

// IssueTokens verifies the presented login/password pair and mints a fresh
// access+refresh token pair. An unknown login and a wrong password produce
// the same error so the response never reveals whether an account exists.
func (s *AuthService) IssueTokens(ctx context.Context, login, password string) (*domain.TokenPair, error) {
	if login == "" || password == "" {
		return nil, domain.ErrLoginFailed
	}

	user, err := s.repo.FindByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrLoginFailed
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrLoginFailed
	}

	pair, err := s.mintPair(user.UID, user.Role)
	if err != nil {
		return nil, err
	}

	metrics.TokensIssuedTotal.WithLabelValues("login").Inc()
	s.log.Info().Str("uid", user.UID).Str("role", user.Role).Msg("tokens issued")
	return pair, nil
}

// Validate checks an access token and returns its claims snapshot. Every
// failure reason collapses to domain.ErrTokenNotFound at this boundary; the
// precise reason is kept for logs and metrics only.
func (s *AuthService) Validate(ctx context.Context, accessToken string) (*domain.TokenClaims, error) {
	claims, err := s.codec.Verify(accessToken, AccessClass)
	if err != nil {
		reason := validationReason(err)
		metrics.TokenValidationsTotal.WithLabelValues(reason).Inc()
		s.log.Debug().Str("reason", reason).Msg("access token rejected")
		return nil, domain.ErrTokenNotFound
	}

	metrics.TokenValidationsTotal.WithLabelValues("valid").Inc()
	return claims, nil
}

// Refresh exchanges a valid refresh token for a brand-new access+refresh
// pair. The new tokens are minted from the claims embedded in the refresh
// token without re-checking the principal store: the claims snapshot stays
// authoritative until the refresh token itself expires.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	claims, err := s.codec.Verify(refreshToken, RefreshClass)
	if err != nil {
		metrics.TokenValidationsTotal.WithLabelValues("refresh_" + validationReason(err)).Inc()
		s.log.Debug().Str("reason", validationReason(err)).Msg("refresh token rejected")
		return nil, domain.ErrRefreshInvalid
	}

	pair, err := s.mintPair(claims.UserUID, claims.Role)
	if err != nil {
		return nil, err
	}

	metrics.TokensIssuedTotal.WithLabelValues("refresh").Inc()
	return pair, nil
}

// GetAccount returns the target account after the self-or-admin scope check.
func (s *AuthService) GetAccount(ctx context.Context, input ports.AccountAccessInput) (*domain.User, error) {
	if !domain.CanAccessAccount(input.CallerUID, input.CallerRole, input.TargetUID) {
		return nil, domain.ErrForbidden
	}
	return s.repo.FindByUID(ctx, input.TargetUID)
}

// UpdateAccount applies an account update after the self-or-admin scope
// check. An administrator updating another account forces the target's role
// to ROLE_ADMIN and ignores the rest of the payload; a self-update applies
// the provided fields, leaving empty ones unchanged.
func (s *AuthService) UpdateAccount(ctx context.Context, input ports.UpdateAccountInput) (*domain.User, error) {
	if !domain.CanAccessAccount(input.CallerUID, input.CallerRole, input.TargetUID) {
		return nil, domain.ErrForbidden
	}

	user, err := s.repo.FindByUID(ctx, input.TargetUID)
	if err != nil {
		return nil, err
	}

	if input.CallerRole == domain.RoleAdmin && input.TargetUID != input.CallerUID {
		user.Role = domain.RoleAdmin
	} else {
		if input.Login != "" {
			user.Login = input.Login
		}
		if input.Password != "" {
			hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
			if err != nil {
				return nil, fmt.Errorf("hash password: %w", err)
			}
			user.PasswordHash = string(hash)
		}
		if input.Role != "" {
			if !domain.ValidRole(input.Role) {
				return nil, domain.ErrInvalidInput
			}
			user.Role = input.Role
		}
		if input.Status != "" {
			if !domain.ValidStatus(input.Status) {
				return nil, domain.ErrInvalidInput
			}
			user.Status = input.Status
		}
	}

	user.UpdatedAt = time.Now().UTC()
	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("uid", updated.UID).Msg("account updated")
	return updated, nil
}

// mintPair produces both tokens together; on any failure neither is returned.
func (s *AuthService) mintPair(userUID, role string) (*domain.TokenPair, error) {
	accessToken, accessClaims, err := s.codec.Sign(userUID, role, AccessClass, AccessTokenTTL)
	if err != nil {
		return nil, err
	}
	refreshToken, refreshClaims, err := s.codec.Sign(userUID, role, RefreshClass, RefreshTokenTTL)
	if err != nil {
		return nil, err
	}
	return &domain.TokenPair{
		AccessToken:      accessToken,
		AccessExpiresAt:  accessClaims.ExpiresAt,
		RefreshToken:     refreshToken,
		RefreshExpiresAt: refreshClaims.ExpiresAt,
	}, nil
}

// validationReason maps a codec error to the metric/log label for it.
func validationReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrTokenExpired):
		return "expired"
	case errors.Is(err, domain.ErrTokenSignatureInvalid):
		return "bad_signature"
	default:
		return "malformed"
	}
}
