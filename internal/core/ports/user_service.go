package ports

import (
	"context"

	"github.com/agrohelp/agrohelp-api/internal/core/domain"
)

// StatsResult is the admin dashboard summary.
type StatsResult struct {
	Users   int64
	Stories int64
	Admins  int64
}

// UserService covers the public expert directory and admin user management.
// Role gating for the admin operations happens at the route level; deleting
// a user cascades to their stories best-effort.
type UserService interface {
	SearchExperts(ctx context.Context, search string) ([]*domain.User, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
	UpdateRole(ctx context.Context, userID string, role domain.Role) error
	DeleteUser(ctx context.Context, userID string) error
	Stats(ctx context.Context) (*StatsResult, error)
}
