package ports

import (
	"context"
	"time"
)

// GenerateInput is a single content-generation call to the AI provider.
// Image fields are empty for plain chat.
type GenerateInput struct {
	Model       string
	System      string
	Prompt      string
	ImageBase64 string
	ImageMIME   string
}

// AIProvider abstracts the external generative-AI backend. Implementations
// must classify quota/rate failures as domain.ErrAIQuota and everything else
// as domain.ErrUpstream so the service can decide on fallback.
type AIProvider interface {
	Generate(ctx context.Context, in GenerateInput) (string, error)
}

// ChatInput is the chat proxy request.
type ChatInput struct {
	Prompt string
	System string
	Model  string
}

// VisionInput is the vision proxy request.
type VisionInput struct {
	Prompt      string
	ImageBase64 string
	MIMEType    string
	Model       string
}

// AIResult is the proxy response. Fallback is true when the primary model
// hit its quota and the flash variant served the request instead.
type AIResult struct {
	Text     string
	Model    string
	Fallback bool
}

// AIService proxies chat and vision requests to the provider.
type AIService interface {
	Chat(ctx context.Context, in ChatInput) (*AIResult, error)
	Vision(ctx context.Context, in VisionInput) (*AIResult, error)
}

// Prediction is a single detection returned by the vision provider.
type Prediction struct {
	Class      string
	Confidence float64
	X          float64
	Y          float64
	Width      float64
	Height     float64
}

// InsectDetector abstracts the hosted detection model.
type InsectDetector interface {
	Detect(ctx context.Context, imageURL string) ([]Prediction, error)
}

// DetectionResult is the insect-detection response.
type DetectionResult struct {
	Detected    bool
	Predictions []Prediction
	FileURL     string
}

// DetectionService runs insect detection on a hosted image URL.
type DetectionService interface {
	Detect(ctx context.Context, fileURL string) (*DetectionResult, error)
}

// RateLimiter is the per-key request limiter guarding the AI proxy routes.
// When the limit is hit it returns allowed=false plus how long the caller
// should wait.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (allowed bool, retryAfter time.Duration, err error)
}
