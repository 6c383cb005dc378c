package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/agrohelp/agrohelp-api/internal/core/domain"
	"github.com/agrohelp/agrohelp-api/internal/core/ports"
)

const (
	promptMaxChars = 4000

	defaultSystemPrompt = "You are an agriculture assistant for Bangladeshi farmers. Be concise and practical."

	// quotaRetryAfterSeconds is the hint surfaced when the provider reports
	// quota exhaustion without a usable retry delay.
	quotaRetryAfterSeconds = 60
)

// AIService proxies chat and vision requests to the generative-AI provider.
// The only retry behaviour is a single fallback from the pro model to flash
// when the provider reports a quota error on a chat request.
type AIService struct {
	provider ports.AIProvider
	logger   zerolog.Logger
}

func NewAIService(provider ports.AIProvider, logger zerolog.Logger) *AIService {
	return &AIService{provider: provider, logger: logger}
}

// Chat proxies a text prompt. The prompt is capped at 4000 chars; the model
// defaults to flash for quota headroom.
func (s *AIService) Chat(ctx context.Context, in ports.ChatInput) (*ports.AIResult, error) {
	prompt := trimPrompt(in.Prompt)
	if prompt == "" {
		return nil, domain.ValidationError("prompt is required")
	}

	model := domain.ModelGeminiFlash
	if domain.AllowedModel(in.Model) {
		model = in.Model
	}

	system := in.System
	if system == "" {
		system = defaultSystemPrompt
	}

	text, err := s.provider.Generate(ctx, ports.GenerateInput{Model: model, System: system, Prompt: prompt})
	if err == nil {
		return &ports.AIResult{Text: text, Model: model}, nil
	}

	if errors.Is(err, domain.ErrAIQuota) && model == domain.ModelGeminiPro {
		s.logger.Info().Str("model", model).Msg("quota hit, falling back to flash")

		text, err = s.provider.Generate(ctx, ports.GenerateInput{Model: domain.ModelGeminiFlash, System: system, Prompt: prompt})
		if err == nil {
			return &ports.AIResult{Text: text, Model: domain.ModelGeminiFlash, Fallback: true}, nil
		}
	}

	if errors.Is(err, domain.ErrAIQuota) {
		return nil, &domain.RateLimitError{RetryAfterSeconds: quotaRetryAfterSeconds}
	}
	return nil, err
}

// Vision proxies a prompt with an inline image. No fallback: the vision
// default is pro and a quota failure surfaces directly.
func (s *AIService) Vision(ctx context.Context, in ports.VisionInput) (*ports.AIResult, error) {
	prompt := strings.TrimSpace(in.Prompt)
	if prompt == "" || in.ImageBase64 == "" {
		return nil, domain.ValidationError("prompt and imageBase64 are required")
	}

	model := domain.ModelGeminiPro
	if domain.AllowedModel(in.Model) {
		model = in.Model
	}

	mime := in.MIMEType
	if mime == "" {
		mime = "image/png"
	}

	text, err := s.provider.Generate(ctx, ports.GenerateInput{
		Model:       model,
		Prompt:      prompt,
		ImageBase64: in.ImageBase64,
		ImageMIME:   mime,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAIQuota) {
			return nil, &domain.RateLimitError{RetryAfterSeconds: quotaRetryAfterSeconds}
		}
		return nil, err
	}

	return &ports.AIResult{Text: text, Model: model}, nil
}

func trimPrompt(p string) string {
	p = strings.TrimSpace(p)
	if len(p) > promptMaxChars {
		p = p[:promptMaxChars]
	}
	return p
}
