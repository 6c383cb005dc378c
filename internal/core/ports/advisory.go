package ports

import (
	"context"

	"github.com/agrohelp/agrohelp-api/internal/core/domain"
)

// AdvisoryRepository defines persistence operations for advisories.
type AdvisoryRepository interface {
	List(ctx context.Context) ([]*domain.Advisory, error)
	Create(ctx context.Context, a *domain.Advisory) (*domain.Advisory, error)
	Update(ctx context.Context, id string, patch domain.AdvisoryPatch) (*domain.Advisory, error)
	Delete(ctx context.Context, id string) error
}

// CreateAdvisoryInput carries a new advisory. Location and RecommendedCrop
// are required after trimming.
type CreateAdvisoryInput struct {
	Location        string
	RecommendedCrop string
	Weather         string
	SoilHealth      string
	Resources       string
}

// AdvisoryService defines advisory use cases. Writes are admin-gated at the
// route level.
type AdvisoryService interface {
	List(ctx context.Context) ([]*domain.Advisory, error)
	Create(ctx context.Context, in CreateAdvisoryInput) (*domain.Advisory, error)
	Update(ctx context.Context, id string, patch domain.AdvisoryPatch) (*domain.Advisory, error)
	Delete(ctx context.Context, id string) error
}
