package ports

import (
	"context"

	"github.com/agrohelp/agrohelp-api/internal/core/domain"
)

// FarmInputFilter narrows the public farm-input listing.
type FarmInputFilter struct {
	Category string // exact match, lowercased
	Region   string // exact match
	Product  string // case-insensitive partial match
}

// FarmInputRepository defines persistence operations for farm inputs.
type FarmInputRepository interface {
	List(ctx context.Context, filter FarmInputFilter, limit int64) ([]*domain.FarmInput, error)
	Create(ctx context.Context, in *domain.FarmInput) (*domain.FarmInput, error)
	Update(ctx context.Context, id string, patch domain.FarmInputPatch) (*domain.FarmInput, error)
	Delete(ctx context.Context, id string) error
}

// CreateFarmInput carries a new farm-input record.
type CreateFarmInput struct {
	Product  string
	Category string
	Unit     string
	Price    float64
	Region   string
	Source   string
	Notes    string
}

// FarmInputService defines farm-input use cases.
type FarmInputService interface {
	List(ctx context.Context, filter FarmInputFilter) ([]*domain.FarmInput, error)
	Create(ctx context.Context, in CreateFarmInput) (*domain.FarmInput, error)
	Update(ctx context.Context, id string, patch domain.FarmInputPatch) (*domain.FarmInput, error)
	Delete(ctx context.Context, id string) error
}
