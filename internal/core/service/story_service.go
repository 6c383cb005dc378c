package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/agrohelp/agrohelp-api/internal/core/domain"
	"github.com/agrohelp/agrohelp-api/internal/core/ports"
)

// StoryService implements story use cases. The user path enforces ownership
// through the repository's owner filter; the admin path is a separate
// elevated surface that skips it.
type StoryService struct {
	stories ports.StoryRepository
	users   ports.UserRepository
	logger  zerolog.Logger
}

func NewStoryService(stories ports.StoryRepository, users ports.UserRepository, logger zerolog.Logger) *StoryService {
	return &StoryService{stories: stories, users: users, logger: logger}
}

func (s *StoryService) PublicList(ctx context.Context) ([]*domain.Story, error) {
	return s.stories.ListAll(ctx, 0)
}

func (s *StoryService) MyStories(ctx context.Context, ownerID string) ([]*domain.Story, error) {
	return s.stories.ListByOwner(ctx, ownerID, 0)
}

// Create adds a story owned by the actor. Owner fields are server-set; any
// client-sent owner data is ignored.
func (s *StoryService) Create(ctx context.Context, actor *domain.User, title, body string) (*domain.Story, error) {
	title, body, err := validateStoryText(title, body)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.stories.Create(ctx, &domain.Story{
		Title:         title,
		Body:          body,
		OwnerID:       actor.ID,
		OwnerName:     displayName(actor, "Anonymous"),
		OwnerPhotoURL: actor.PhotoURL,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("story_id", created.ID).Str("owner_id", actor.ID).Msg("story created")
	return created, nil
}

// Update edits an owned story. A story owned by someone else surfaces as not
// found because ownership is part of the update query.
func (s *StoryService) Update(ctx context.Context, actor *domain.User, id, title, body string) (*domain.Story, error) {
	title, body, err := validateStoryText(title, body)
	if err != nil {
		return nil, err
	}

	return s.stories.Update(ctx, id, actor.ID, ports.StoryPatch{Title: &title, Body: &body})
}

func (s *StoryService) AdminList(ctx context.Context) ([]*domain.Story, error) {
	return s.stories.ListAll(ctx, 0)
}

// AdminCreate adds a story on the elevated path. When a photo URL is given it
// is also written to the acting admin's profile; the two writes are
// independent and a crash between them leaves each individually valid.
func (s *StoryService) AdminCreate(ctx context.Context, actor *domain.User, in ports.AdminStoryInput) (*domain.Story, error) {
	title, body, err := validateStoryText(in.Title, in.Body)
	if err != nil {
		return nil, err
	}

	photo := strings.TrimSpace(in.PhotoURL)
	if photo != "" {
		s.updateActorPhoto(ctx, actor, photo)
	}

	ownerPhoto := photo
	if ownerPhoto == "" {
		ownerPhoto = actor.PhotoURL
	}

	now := time.Now().UTC()
	return s.stories.Create(ctx, &domain.Story{
		Title:         title,
		Body:          body,
		OwnerName:     displayName(actor, "Admin"),
		OwnerPhotoURL: ownerPhoto,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
}

// AdminUpdate edits any story without an ownership filter.
func (s *StoryService) AdminUpdate(ctx context.Context, actor *domain.User, id string, in ports.AdminStoryInput) (*domain.Story, error) {
	title, body, err := validateStoryText(in.Title, in.Body)
	if err != nil {
		return nil, err
	}

	patch := ports.StoryPatch{Title: &title, Body: &body}
	if photo := strings.TrimSpace(in.PhotoURL); photo != "" {
		s.updateActorPhoto(ctx, actor, photo)
		patch.OwnerPhotoURL = &photo
	}

	return s.stories.Update(ctx, id, "", patch)
}

func (s *StoryService) Delete(ctx context.Context, id string) error {
	return s.stories.Delete(ctx, id)
}

func (s *StoryService) updateActorPhoto(ctx context.Context, actor *domain.User, photo string) {
	if _, err := s.users.UpdateProfile(ctx, actor.ID, domain.ProfilePatch{PhotoURL: &photo}); err != nil {
		s.logger.Warn().Err(err).Str("user_id", actor.ID).Msg("profile photo update failed")
	}
}

func validateStoryText(title, body string) (string, string, error) {
	title = strings.TrimSpace(title)
	body = strings.TrimSpace(body)

	if title == "" || body == "" {
		return "", "", domain.ValidationError("title and body are required")
	}
	if len(title) > domain.StoryTitleMax {
		return "", "", domain.ValidationError(fmt.Sprintf("title is too long (max %d chars)", domain.StoryTitleMax))
	}
	if len(body) > domain.StoryBodyMax {
		return "", "", domain.ValidationError(fmt.Sprintf("body is too long (max %d chars)", domain.StoryBodyMax))
	}
	return title, body, nil
}
