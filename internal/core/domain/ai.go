package domain

import "errors"

// Gemini model whitelist. Chat defaults to flash for quota headroom; vision
// defaults to pro.
const (
	ModelGeminiPro   = "gemini-1.5-pro"
	ModelGeminiFlash = "gemini-1.5-flash"
)

// AllowedModel reports whether the client-requested model may be proxied.
func AllowedModel(model string) bool {
	return model == ModelGeminiPro || model == ModelGeminiFlash
}

var (
	// ErrAIQuota marks a quota/rate failure reported by the AI provider.
	ErrAIQuota = errors.New("ai quota exceeded")
	// ErrUpstream marks any other third-party provider failure.
	ErrUpstream = errors.New("upstream provider failed")
	// ErrRateLimited marks a request rejected by our own per-IP limiter.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// RateLimitError carries the retry-after hint surfaced on 429 responses.
// errors.Is(err, ErrRateLimited) matches it.
type RateLimitError struct {
	RetryAfterSeconds int
}

func (e *RateLimitError) Error() string {
	return "rate limit exceeded, retry later"
}

func (e *RateLimitError) Is(target error) bool {
	return target == ErrRateLimited
}
