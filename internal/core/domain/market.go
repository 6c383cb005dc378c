package domain

import (
	"errors"
	"time"
)

var ErrMarketNotFound = errors.New("market entry not found")

// Market is a commodity price record. Admin-only mutation, public read.
type Market struct {
	ID          string    `json:"id"`
	Product     string    `json:"product"`
	Price       float64   `json:"price"`
	Trend       string    `json:"trend,omitempty"`
	TrendChange string    `json:"trend_change,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
