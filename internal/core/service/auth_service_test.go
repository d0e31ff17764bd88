package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/cinepass/cinema-platform/internal/core/domain"
	"github.com/cinepass/cinema-platform/internal/core/ports"
)

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Login == user.Login {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	copy := cloneUser(user)
	copy.UID = fmt.Sprintf("uid-%d", r.nextID)
	r.users[copy.UID] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByLogin(_ context.Context, login string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Login == login {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByUID(_ context.Context, uid string) (*domain.User, error) {
	if u, ok := r.users[uid]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := r.users[user.UID]; !ok {
		return nil, domain.ErrUserNotFound
	}
	r.users[user.UID] = cloneUser(user)
	return cloneUser(user), nil
}

func newTestAuthService(t *testing.T) (*AuthService, *stubUserRepo, *TokenCodec) {
	t.Helper()
	repo := newStubUserRepo()
	codec := newTestCodec(t)
	return NewAuthService(repo, codec, zerolog.Nop()), repo, codec
}

func TestAuthService_Register_HashesPassword(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	user, err := svc.Register(context.Background(), "alice", "s3cret", "", "")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.PasswordHash == "s3cret" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Role != domain.RoleUser || user.Status != domain.StatusOpen {
		t.Fatalf("unexpected defaults: role=%s status=%s", user.Role, user.Status)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	if _, err := svc.Register(context.Background(), "", "pass", "", ""); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty login, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "bob", "pass", "ROLE_ROOT", ""); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for bad role, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	if _, err := svc.Register(context.Background(), "bob", "pass", "", ""); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), "bob", "other", "", ""); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_IssueThenValidate(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	user, err := svc.Register(context.Background(), "carol", "s3cret", domain.RoleAdmin, "")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	pair, err := svc.IssueTokens(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("IssueTokens returned error: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("expected both tokens, got %+v", pair)
	}
	if !pair.RefreshExpiresAt.After(pair.AccessExpiresAt) {
		t.Fatalf("refresh token should outlive access token")
	}

	claims, err := svc.Validate(context.Background(), pair.AccessToken)
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if claims.UserUID != user.UID || claims.Role != domain.RoleAdmin {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

// Unknown login and wrong password must be indistinguishable to the caller.
func TestAuthService_IssueTokens_UniformFailure(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	if _, err := svc.Register(context.Background(), "dave", "right", "", ""); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, unknownErr := svc.IssueTokens(context.Background(), "nobody", "right")
	_, wrongErr := svc.IssueTokens(context.Background(), "dave", "wrong")

	if !errors.Is(unknownErr, domain.ErrLoginFailed) {
		t.Fatalf("unknown login: expected ErrLoginFailed, got %v", unknownErr)
	}
	if !errors.Is(wrongErr, domain.ErrLoginFailed) {
		t.Fatalf("wrong password: expected ErrLoginFailed, got %v", wrongErr)
	}
}

func TestAuthService_Validate_CollapsesFailures(t *testing.T) {
	svc, _, codec := newTestAuthService(t)

	// Malformed, wrong class, and expired all collapse to ErrTokenNotFound.
	if _, err := svc.Validate(context.Background(), "garbage"); !errors.Is(err, domain.ErrTokenNotFound) {
		t.Fatalf("malformed: expected ErrTokenNotFound, got %v", err)
	}

	refresh, _, err := codec.Sign("uid-1", domain.RoleUser, RefreshClass, RefreshTokenTTL)
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}
	if _, err := svc.Validate(context.Background(), refresh); !errors.Is(err, domain.ErrTokenNotFound) {
		t.Fatalf("refresh-as-access: expected ErrTokenNotFound, got %v", err)
	}
}

func TestAuthService_Refresh_MintsFreshPair(t *testing.T) {
	now := time.Now().UTC()
	repo := newStubUserRepo()
	codec := newTestCodec(t).WithClock(func() time.Time { return now })
	svc := NewAuthService(repo, codec, zerolog.Nop())

	if _, err := svc.Register(context.Background(), "erin", "pass", "", ""); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	pair, err := svc.IssueTokens(context.Background(), "erin", "pass")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	// Past access expiry but inside the refresh window: the old access token
	// is rejected while the refresh flow yields a usable new pair.
	codec.WithClock(func() time.Time { return now.Add(AccessTokenTTL + time.Minute) })

	if _, err := svc.Validate(context.Background(), pair.AccessToken); !errors.Is(err, domain.ErrTokenNotFound) {
		t.Fatalf("expected stale access token to be rejected, got %v", err)
	}

	fresh, err := svc.Refresh(context.Background(), pair.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh returned error: %v", err)
	}
	if _, err := svc.Validate(context.Background(), fresh.AccessToken); err != nil {
		t.Fatalf("fresh access token should validate: %v", err)
	}
	if !fresh.AccessExpiresAt.After(pair.AccessExpiresAt) {
		t.Fatalf("fresh pair should expire later than the original")
	}
}

func TestAuthService_Refresh_RejectsAccessToken(t *testing.T) {
	svc, _, codec := newTestAuthService(t)

	access, _, err := codec.Sign("uid-1", domain.RoleUser, AccessClass, AccessTokenTTL)
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}
	if _, err := svc.Refresh(context.Background(), access); !errors.Is(err, domain.ErrRefreshInvalid) {
		t.Fatalf("expected ErrRefreshInvalid, got %v", err)
	}
	if _, err := svc.Refresh(context.Background(), "garbage"); !errors.Is(err, domain.ErrRefreshInvalid) {
		t.Fatalf("expected ErrRefreshInvalid, got %v", err)
	}
}

func TestAuthService_GetAccount_Scope(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	alice, _ := svc.Register(context.Background(), "alice", "pass", "", "")
	bob, _ := svc.Register(context.Background(), "bob", "pass", "", "")
	admin, _ := svc.Register(context.Background(), "root", "pass", domain.RoleAdmin, "")

	// Self access allowed.
	got, err := svc.GetAccount(context.Background(), ports.AccountAccessInput{
		TargetUID: alice.UID, CallerUID: alice.UID, CallerRole: domain.RoleUser,
	})
	if err != nil || got.Login != "alice" {
		t.Fatalf("self access failed: %v %+v", err, got)
	}

	// Cross-account access by a plain user is forbidden.
	if _, err := svc.GetAccount(context.Background(), ports.AccountAccessInput{
		TargetUID: bob.UID, CallerUID: alice.UID, CallerRole: domain.RoleUser,
	}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	// Admin may read anyone.
	if _, err := svc.GetAccount(context.Background(), ports.AccountAccessInput{
		TargetUID: bob.UID, CallerUID: admin.UID, CallerRole: domain.RoleAdmin,
	}); err != nil {
		t.Fatalf("admin access failed: %v", err)
	}
}

func TestAuthService_UpdateAccount_SelfAppliesFields(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	alice, _ := svc.Register(context.Background(), "alice", "pass", "", "")

	updated, err := svc.UpdateAccount(context.Background(), ports.UpdateAccountInput{
		AccountAccessInput: ports.AccountAccessInput{
			TargetUID: alice.UID, CallerUID: alice.UID, CallerRole: domain.RoleUser,
		},
		Login:  "alice2",
		Status: domain.StatusClosed,
	})
	if err != nil {
		t.Fatalf("UpdateAccount returned error: %v", err)
	}
	if updated.Login != "alice2" || updated.Status != domain.StatusClosed {
		t.Fatalf("unexpected update result: %+v", updated)
	}
	if updated.Role != domain.RoleUser {
		t.Fatalf("role should be unchanged, got %s", updated.Role)
	}
}

func TestAuthService_UpdateAccount_AdminPromotesTarget(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	bob, _ := svc.Register(context.Background(), "bob", "pass", "", "")
	admin, _ := svc.Register(context.Background(), "root", "pass", domain.RoleAdmin, "")

	updated, err := svc.UpdateAccount(context.Background(), ports.UpdateAccountInput{
		AccountAccessInput: ports.AccountAccessInput{
			TargetUID: bob.UID, CallerUID: admin.UID, CallerRole: domain.RoleAdmin,
		},
		Login: "ignored",
	})
	if err != nil {
		t.Fatalf("UpdateAccount returned error: %v", err)
	}
	if updated.Role != domain.RoleAdmin {
		t.Fatalf("expected target promoted to admin, got %s", updated.Role)
	}
	if updated.Login != "bob" {
		t.Fatalf("payload fields should be ignored on admin promotion, got login %s", updated.Login)
	}
}
