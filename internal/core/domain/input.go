package domain

import (
	"errors"
	"time"
)

var ErrInputNotFound = errors.New("input not found")

// InputCategories is the closed set of accepted farm-input categories.
var InputCategories = []string{"seed", "fertilizer", "pesticide", "equipment", "irrigation", "other"}

// ValidInputCategory reports whether category (already lowercased) is accepted.
func ValidInputCategory(category string) bool {
	for _, c := range InputCategories {
		if c == category {
			return true
		}
	}
	return false
}

// FarmInput is a farm-input price record (seeds, fertilizer, ...). Admin-only
// mutation, public read with category/region/product filters.
type FarmInput struct {
	ID        string    `json:"id"`
	Product   string    `json:"product"`
	Category  string    `json:"category"`
	Unit      string    `json:"unit"`
	Price     float64   `json:"price"`
	Region    string    `json:"region,omitempty"`
	Source    string    `json:"source,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FarmInputPatch carries a partial farm-input update.
type FarmInputPatch struct {
	Product  *string
	Category *string
	Unit     *string
	Price    *float64
	Region   *string
	Source   *string
	Notes    *string
}
