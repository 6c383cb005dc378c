package ai

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/genai"

	"github.com/agrohelp/agrohelp-api/internal/core/domain"
	"github.com/agrohelp/agrohelp-api/internal/core/ports"
)

// GeminiProvider talks to the Gemini API through the official client. Quota
// rejections are surfaced as domain.ErrAIQuota so the caller can fall back to
// a cheaper model; anything else maps to domain.ErrUpstream.
type GeminiProvider struct {
	client *genai.Client
}

func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiProvider{client: client}, nil
}

func (p *GeminiProvider) Generate(ctx context.Context, in ports.GenerateInput) (string, error) {
	parts := []*genai.Part{genai.NewPartFromText(in.Prompt)}
	if in.ImageBase64 != "" {
		data, err := base64.StdEncoding.DecodeString(in.ImageBase64)
		if err != nil {
			return "", domain.ValidationError("image must be base64 encoded")
		}
		parts = append(parts, genai.NewPartFromBytes(data, in.ImageMIME))
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	var cfg *genai.GenerateContentConfig
	if in.System != "" {
		cfg = &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(in.System, genai.RoleUser),
		}
	}

	result, err := p.client.Models.GenerateContent(ctx, in.Model, contents, cfg)
	if err != nil {
		return "", classify(err)
	}

	text := result.Text()
	if text == "" {
		return "", fmt.Errorf("%w: empty completion", domain.ErrUpstream)
	}
	return text, nil
}

// classify distinguishes quota exhaustion from other upstream failures.
func classify(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusTooManyRequests {
		return fmt.Errorf("%w: %s", domain.ErrAIQuota, apiErr.Message)
	}
	return fmt.Errorf("%w: %v", domain.ErrUpstream, err)
}
