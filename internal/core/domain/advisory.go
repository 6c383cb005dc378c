package domain

import (
	"errors"
	"time"
)

var ErrAdvisoryNotFound = errors.New("advisory not found")

// Advisory is a crop recommendation record. Admin-only mutation, public read.
type Advisory struct {
	ID              string    `json:"id"`
	Location        string    `json:"location"`
	RecommendedCrop string    `json:"recommended_crop"`
	Weather         string    `json:"weather,omitempty"`
	SoilHealth      string    `json:"soil_health,omitempty"`
	Resources       string    `json:"resources,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// AdvisoryPatch carries a partial advisory update.
type AdvisoryPatch struct {
	Location        *string
	RecommendedCrop *string
	Weather         *string
	SoilHealth      *string
	Resources       *string
}
