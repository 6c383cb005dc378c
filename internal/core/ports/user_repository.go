package ports

import (
	"context"

	"github.com/agrohelp/agrohelp-api/internal/core/domain"
)

// UserRepository defines persistence operations for user records.
//
// Create must surface the store's uniqueness constraint as ErrUsernameTaken
// or ErrEmailTaken. The service-level existence pre-check is a fast path for
// a friendly message, not the correctness guard.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// FindByUsernameOrEmail returns the first user matching either value.
	// An empty email is not matched.
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*domain.User, error)
	// FindManyByIDs returns the users for the given ids; missing ids are skipped.
	FindManyByIDs(ctx context.Context, ids []string) ([]*domain.User, error)
	List(ctx context.Context, limit int64) ([]*domain.User, error)
	// SearchExperts returns expert users, optionally filtered by a
	// case-insensitive partial match on name/username/specialty/region.
	SearchExperts(ctx context.Context, search string, limit int64) ([]*domain.User, error)
	UpdateProfile(ctx context.Context, id string, patch domain.ProfilePatch) (*domain.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	UpdateRole(ctx context.Context, id string, role domain.Role) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	CountByRole(ctx context.Context, role domain.Role) (int64, error)
}
