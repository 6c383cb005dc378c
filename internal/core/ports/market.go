package ports

import (
	"context"

	"github.com/agrohelp/agrohelp-api/internal/core/domain"
)

// MarketRepository defines persistence operations for market prices.
type MarketRepository interface {
	List(ctx context.Context) ([]*domain.Market, error)
	Create(ctx context.Context, m *domain.Market) (*domain.Market, error)
	// Update replaces the mutable fields wholesale, not as a partial patch.
	Update(ctx context.Context, id string, in MarketInput) (*domain.Market, error)
	Delete(ctx context.Context, id string) error
}

// MarketInput carries a market entry. Product is required and Price must be
// a finite number.
type MarketInput struct {
	Product     string
	Price       float64
	Trend       string
	TrendChange string
}

// MarketService defines market-price use cases.
type MarketService interface {
	List(ctx context.Context) ([]*domain.Market, error)
	Create(ctx context.Context, in MarketInput) (*domain.Market, error)
	Update(ctx context.Context, id string, in MarketInput) (*domain.Market, error)
	Delete(ctx context.Context, id string) error
}
