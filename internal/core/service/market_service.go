package service

import (
	"context"
	"math"
	"strings"

	"github.com/rs/zerolog"

	"github.com/agrohelp/agrohelp-api/internal/core/domain"
	"github.com/agrohelp/agrohelp-api/internal/core/ports"
)

// MarketService implements market-price CRUD.
type MarketService struct {
	repo   ports.MarketRepository
	logger zerolog.Logger
}

func NewMarketService(repo ports.MarketRepository, logger zerolog.Logger) *MarketService {
	return &MarketService{repo: repo, logger: logger}
}

func (s *MarketService) List(ctx context.Context) ([]*domain.Market, error) {
	return s.repo.List(ctx)
}

func (s *MarketService) Create(ctx context.Context, in ports.MarketInput) (*domain.Market, error) {
	if err := validateMarketInput(&in); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.Market{
		Product:     in.Product,
		Price:       in.Price,
		Trend:       in.Trend,
		TrendChange: in.TrendChange,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("market_id", created.ID).Str("product", in.Product).Msg("market entry created")
	return created, nil
}

func (s *MarketService) Update(ctx context.Context, id string, in ports.MarketInput) (*domain.Market, error) {
	if err := validateMarketInput(&in); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, in)
}

func (s *MarketService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func validateMarketInput(in *ports.MarketInput) error {
	in.Product = strings.TrimSpace(in.Product)
	if in.Product == "" {
		return domain.ValidationError("product and price are required")
	}
	if math.IsNaN(in.Price) || math.IsInf(in.Price, 0) {
		return domain.ValidationError("price must be a finite number")
	}
	return nil
}
