package ports

import (
	"context"

	"github.com/agrohelp/agrohelp-api/internal/core/domain"
)

// TokenClaims is the identity a verified token asserts. The role claim is
// advisory: authorization always reads the freshly loaded user record.
type TokenClaims struct {
	UserID   string
	Username string
	Role     domain.Role
}

// TokenService issues and verifies stateless signed session tokens.
type TokenService interface {
	Issue(user *domain.User) (string, error)
	// Verify fails with domain.ErrUnauthorized on any missing/malformed/
	// expired/mis-signed token.
	Verify(raw string) (*TokenClaims, error)
}

// RegisterInput carries a self-service registration. Role may request
// "user" or "expert"; anything else falls back to "user". Admin is never
// self-assignable.
type RegisterInput struct {
	Name     string
	Username string
	Email    string
	Password string
	Role     string
}

// AuthService defines authentication and self-service account operations.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (string, *domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	UpdateProfile(ctx context.Context, actor *domain.User, patch domain.ProfilePatch) (*domain.User, error)
	// ChangePassword rotates the secret and returns a fresh token.
	ChangePassword(ctx context.Context, actorID, newPassword string) (string, *domain.User, error)
}
