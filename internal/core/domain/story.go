package domain

import (
	"errors"
	"time"
)

const (
	// StoryTitleMax and StoryBodyMax bound user-submitted story text.
	StoryTitleMax = 200
	StoryBodyMax  = 20_000
)

var ErrStoryNotFound = errors.New("story not found")

// Story is user-authored content. Owner fields are always server-set from the
// acting user; clients never supply them.
type Story struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Body          string    `json:"body"`
	OwnerID       string    `json:"owner_id,omitempty"`
	OwnerName     string    `json:"owner_name"`
	OwnerPhotoURL string    `json:"owner_photo_url,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
