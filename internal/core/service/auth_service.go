package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/agrohelp/agrohelp-api/internal/core/domain"
	"github.com/agrohelp/agrohelp-api/internal/core/ports"
)

const minPasswordLen = 6

// AuthService implements registration, login and self-service account
// operations.
type AuthService struct {
	users  ports.UserRepository
	tokens ports.TokenService
	logger zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens ports.TokenService, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, logger: logger}
}

// Register creates a new account and returns a session token with the
// sanitized user. The requested role is honoured for user/expert only;
// admin is never self-assignable.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (string, *domain.User, error) {
	name := strings.TrimSpace(in.Name)
	username := strings.TrimSpace(in.Username)
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if name == "" || username == "" || in.Password == "" {
		return "", nil, domain.ValidationError("name, username and password are required")
	}

	role := domain.RoleUser
	if r, ok := domain.ParseRole(strings.ToLower(in.Role)); ok && r != domain.RoleAdmin {
		role = r
	}

	// Friendly-message fast path; the unique indexes are the real guard.
	if existing, err := s.users.FindByUsernameOrEmail(ctx, username, email); err == nil && existing != nil {
		if existing.Username == username {
			return "", nil, domain.ErrUsernameTaken
		}
		return "", nil, domain.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         name,
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Issue(created)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("username", created.Username).Str("role", string(created.Role)).Msg("user registered")
	return token, created, nil
}

// Login verifies credentials and returns a session token. Unknown username
// and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// UpdateProfile applies a partial update to the actor's own non-role fields.
// A username change re-checks uniqueness for a friendly error.
func (s *AuthService) UpdateProfile(ctx context.Context, actor *domain.User, patch domain.ProfilePatch) (*domain.User, error) {
	if patch.Name != nil {
		trimmed := strings.TrimSpace(*patch.Name)
		patch.Name = &trimmed
	}
	if patch.Username != nil {
		trimmed := strings.TrimSpace(*patch.Username)
		patch.Username = &trimmed

		if trimmed == "" {
			return nil, domain.ValidationError("username cannot be empty")
		}
		if trimmed != actor.Username {
			if _, err := s.users.FindByUsername(ctx, trimmed); err == nil {
				return nil, domain.ErrUsernameTaken
			}
		}
	}
	if patch.Specialty != nil {
		trimmed := strings.TrimSpace(*patch.Specialty)
		patch.Specialty = &trimmed
	}
	if patch.Region != nil {
		trimmed := strings.TrimSpace(*patch.Region)
		patch.Region = &trimmed
	}

	return s.users.UpdateProfile(ctx, actor.ID, patch)
}

// ChangePassword rotates the secret hash and returns a fresh token so the
// client stays signed in.
func (s *AuthService) ChangePassword(ctx context.Context, actorID, newPassword string) (string, *domain.User, error) {
	if len(newPassword) < minPasswordLen {
		return "", nil, domain.ValidationError("newPassword (min 6 chars) is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	if err := s.users.UpdatePassword(ctx, actorID, string(hash)); err != nil {
		return "", nil, err
	}

	fresh, err := s.users.FindByID(ctx, actorID)
	if err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Issue(fresh)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("user_id", actorID).Msg("password changed")
	return token, fresh, nil
}
