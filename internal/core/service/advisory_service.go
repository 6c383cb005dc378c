package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/agrohelp/agrohelp-api/internal/core/domain"
	"github.com/agrohelp/agrohelp-api/internal/core/ports"
)

// AdvisoryService implements advisory CRUD. Reads are public; writes are
// admin-gated at the route level.
type AdvisoryService struct {
	repo   ports.AdvisoryRepository
	logger zerolog.Logger
}

func NewAdvisoryService(repo ports.AdvisoryRepository, logger zerolog.Logger) *AdvisoryService {
	return &AdvisoryService{repo: repo, logger: logger}
}

func (s *AdvisoryService) List(ctx context.Context) ([]*domain.Advisory, error) {
	return s.repo.List(ctx)
}

func (s *AdvisoryService) Create(ctx context.Context, in ports.CreateAdvisoryInput) (*domain.Advisory, error) {
	location := strings.TrimSpace(in.Location)
	crop := strings.TrimSpace(in.RecommendedCrop)
	if location == "" || crop == "" {
		return nil, domain.ValidationError("location and recommended crop are required")
	}

	created, err := s.repo.Create(ctx, &domain.Advisory{
		Location:        location,
		RecommendedCrop: crop,
		Weather:         strings.TrimSpace(in.Weather),
		SoilHealth:      strings.TrimSpace(in.SoilHealth),
		Resources:       strings.TrimSpace(in.Resources),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("advisory_id", created.ID).Str("location", location).Msg("advisory created")
	return created, nil
}

func (s *AdvisoryService) Update(ctx context.Context, id string, patch domain.AdvisoryPatch) (*domain.Advisory, error) {
	trimPtr(patch.Location)
	trimPtr(patch.RecommendedCrop)
	trimPtr(patch.Weather)
	trimPtr(patch.SoilHealth)
	trimPtr(patch.Resources)

	if patch.Location != nil && *patch.Location == "" {
		return nil, domain.ValidationError("location cannot be empty")
	}
	if patch.RecommendedCrop != nil && *patch.RecommendedCrop == "" {
		return nil, domain.ValidationError("recommended crop cannot be empty")
	}

	return s.repo.Update(ctx, id, patch)
}

func (s *AdvisoryService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// trimPtr trims the pointee in place; nil stays nil.
func trimPtr(p *string) {
	if p != nil {
		*p = strings.TrimSpace(*p)
	}
}
