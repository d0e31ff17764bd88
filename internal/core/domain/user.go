package domain

import "time"

const (
	RoleAdmin = "ROLE_ADMIN"
	RoleUser  = "ROLE_USER"
)

const (
	StatusOpen   = "open"
	StatusClosed = "closed"
)

// User models a registered principal in the identity service.
type User struct {
	UID          string    `json:"uid"`
	Login        string    `json:"login"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ValidRole reports whether role is one of the known roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}

// ValidStatus reports whether status is one of the known account statuses.
func ValidStatus(status string) bool {
	return status == StatusOpen || status == StatusClosed
}

// CanAccessAccount is the scoped self-or-admin gate: a caller may read or
// update an account when it is their own or when they hold the admin role.
func CanAccessAccount(callerUID, callerRole, targetUID string) bool {
	return callerRole == RoleAdmin || callerUID == targetUID
}
