package ports

import (
	"context"

	"github.com/agrohelp/agrohelp-api/internal/core/domain"
)

// StoryPatch carries a partial story update.
type StoryPatch struct {
	Title         *string
	Body          *string
	OwnerPhotoURL *string
}

// StoryRepository defines persistence operations for stories.
type StoryRepository interface {
	ListAll(ctx context.Context, limit int64) ([]*domain.Story, error)
	ListByOwner(ctx context.Context, ownerID string, limit int64) ([]*domain.Story, error)
	Create(ctx context.Context, s *domain.Story) (*domain.Story, error)
	// Update applies patch to the story. When ownerID is non-empty the query
	// is additionally filtered by owner_id, so ownership is enforced at the
	// store and a foreign story surfaces as not found.
	Update(ctx context.Context, id, ownerID string, patch StoryPatch) (*domain.Story, error)
	Delete(ctx context.Context, id string) error
	// DeleteByOwner removes all stories of a user (admin cascade).
	DeleteByOwner(ctx context.Context, ownerID string) error
	Count(ctx context.Context) (int64, error)
}

// AdminStoryInput carries the admin story create/update payload. PhotoURL,
// when set, is also written back to the acting admin's profile photo. The
// two writes are independent, with no atomicity between them.
type AdminStoryInput struct {
	Title    string
	Body     string
	PhotoURL string
}

// StoryService defines story use cases. The user path enforces ownership;
// the admin path is a separate elevated surface that does not.
type StoryService interface {
	PublicList(ctx context.Context) ([]*domain.Story, error)
	MyStories(ctx context.Context, ownerID string) ([]*domain.Story, error)
	Create(ctx context.Context, actor *domain.User, title, body string) (*domain.Story, error)
	Update(ctx context.Context, actor *domain.User, id, title, body string) (*domain.Story, error)
	AdminList(ctx context.Context) ([]*domain.Story, error)
	AdminCreate(ctx context.Context, actor *domain.User, in AdminStoryInput) (*domain.Story, error)
	AdminUpdate(ctx context.Context, actor *domain.User, id string, in AdminStoryInput) (*domain.Story, error)
	Delete(ctx context.Context, id string) error
}
