package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/agrohelp/agrohelp-api/internal/core/domain"
	"github.com/agrohelp/agrohelp-api/internal/core/ports"
)

const (
	expertListLimit = 200
	userListLimit   = 500
)

// UserService implements the public expert directory and the admin user
// management operations.
type UserService struct {
	users   ports.UserRepository
	stories ports.StoryRepository
	logger  zerolog.Logger
}

func NewUserService(users ports.UserRepository, stories ports.StoryRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, stories: stories, logger: logger}
}

// SearchExperts lists expert users, optionally filtered by a partial match on
// name/username/specialty/region.
func (s *UserService) SearchExperts(ctx context.Context, search string) ([]*domain.User, error) {
	return s.users.SearchExperts(ctx, search, expertListLimit)
}

// ListUsers returns the most recent users for the admin view.
func (s *UserService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx, userListLimit)
}

// UpdateRole patches a user's role. Only user/admin are assignable here;
// expert is a registration-time choice.
func (s *UserService) UpdateRole(ctx context.Context, userID string, role domain.Role) error {
	if role != domain.RoleUser && role != domain.RoleAdmin {
		return domain.ValidationError("invalid role")
	}
	return s.users.UpdateRole(ctx, userID, role)
}

// DeleteUser removes a user and cascades to their stories. The cascade is
// best-effort: a failure leaves orphaned stories but the user is gone.
func (s *UserService) DeleteUser(ctx context.Context, userID string) error {
	if err := s.users.Delete(ctx, userID); err != nil {
		return err
	}
	if err := s.stories.DeleteByOwner(ctx, userID); err != nil {
		s.logger.Warn().Err(err).Str("user_id", userID).Msg("story cascade failed")
	}
	return nil
}

// Stats returns the admin dashboard counters.
func (s *UserService) Stats(ctx context.Context) (*ports.StatsResult, error) {
	users, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	stories, err := s.stories.Count(ctx)
	if err != nil {
		return nil, err
	}
	admins, err := s.users.CountByRole(ctx, domain.RoleAdmin)
	if err != nil {
		return nil, err
	}
	return &ports.StatsResult{Users: users, Stories: stories, Admins: admins}, nil
}
