package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/rs/zerolog"

	"github.com/agrohelp/agrohelp-api/internal/core/domain"
	"github.com/agrohelp/agrohelp-api/internal/core/ports"
)

const farmInputListLimit = 500

// FarmInputService implements farm-input CRUD with the category whitelist.
type FarmInputService struct {
	repo   ports.FarmInputRepository
	logger zerolog.Logger
}

func NewFarmInputService(repo ports.FarmInputRepository, logger zerolog.Logger) *FarmInputService {
	return &FarmInputService{repo: repo, logger: logger}
}

func (s *FarmInputService) List(ctx context.Context, filter ports.FarmInputFilter) ([]*domain.FarmInput, error) {
	filter.Category = strings.ToLower(strings.TrimSpace(filter.Category))
	filter.Product = strings.TrimSpace(filter.Product)
	return s.repo.List(ctx, filter, farmInputListLimit)
}

func (s *FarmInputService) Create(ctx context.Context, in ports.CreateFarmInput) (*domain.FarmInput, error) {
	product := strings.TrimSpace(in.Product)
	category := strings.ToLower(strings.TrimSpace(in.Category))
	if product == "" || category == "" {
		return nil, domain.ValidationError("product, category and price are required")
	}
	if !domain.ValidInputCategory(category) {
		return nil, domain.ValidationError(categoryHint())
	}
	if math.IsNaN(in.Price) || math.IsInf(in.Price, 0) {
		return nil, domain.ValidationError("price must be a finite number")
	}

	unit := strings.TrimSpace(in.Unit)
	if unit == "" {
		unit = "unit"
	}

	created, err := s.repo.Create(ctx, &domain.FarmInput{
		Product:  product,
		Category: category,
		Unit:     unit,
		Price:    in.Price,
		Region:   strings.TrimSpace(in.Region),
		Source:   strings.TrimSpace(in.Source),
		Notes:    strings.TrimSpace(in.Notes),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("input_id", created.ID).Str("category", category).Msg("farm input created")
	return created, nil
}

func (s *FarmInputService) Update(ctx context.Context, id string, patch domain.FarmInputPatch) (*domain.FarmInput, error) {
	if patch.Product != nil {
		trimmed := strings.TrimSpace(*patch.Product)
		if trimmed == "" {
			return nil, domain.ValidationError("product cannot be empty")
		}
		patch.Product = &trimmed
	}
	if patch.Category != nil {
		category := strings.ToLower(strings.TrimSpace(*patch.Category))
		if !domain.ValidInputCategory(category) {
			return nil, domain.ValidationError(categoryHint())
		}
		patch.Category = &category
	}
	if patch.Price != nil && (math.IsNaN(*patch.Price) || math.IsInf(*patch.Price, 0)) {
		return nil, domain.ValidationError("price must be a finite number")
	}
	if patch.Unit != nil {
		trimmed := strings.TrimSpace(*patch.Unit)
		patch.Unit = &trimmed
	}

	return s.repo.Update(ctx, id, patch)
}

func (s *FarmInputService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func categoryHint() string {
	return fmt.Sprintf("category invalid. Use: %s", strings.Join(domain.InputCategories, ", "))
}
