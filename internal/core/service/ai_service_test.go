package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/agrohelp/agrohelp-api/internal/core/domain"
	"github.com/agrohelp/agrohelp-api/internal/core/ports"
)

func TestAIService_Chat_DefaultsToFlash(t *testing.T) {
	provider := &stubProvider{generate: func(_ context.Context, in ports.GenerateInput) (string, error) {
		return "answer", nil
	}}
	svc := NewAIService(provider, testLogger())

	result, err := svc.Chat(context.Background(), ports.ChatInput{Prompt: "What is NPK?"})
	if err != nil {
		t.Fatalf("Chat returned error: %v", err)
	}
	if result.Model != domain.ModelGeminiFlash {
		t.Fatalf("expected flash default, got %s", result.Model)
	}
	if provider.calls[0].System == "" {
		t.Fatalf("expected default system prompt to be applied")
	}
}

func TestAIService_Chat_TrimsPrompt(t *testing.T) {
	provider := &stubProvider{generate: func(_ context.Context, in ports.GenerateInput) (string, error) {
		return "ok", nil
	}}
	svc := NewAIService(provider, testLogger())

	if _, err := svc.Chat(context.Background(), ports.ChatInput{Prompt: strings.Repeat("a", 5000)}); err != nil {
		t.Fatalf("Chat returned error: %v", err)
	}
	if got := len(provider.calls[0].Prompt); got != 4000 {
		t.Fatalf("expected prompt capped at 4000 chars, got %d", got)
	}
}

func TestAIService_Chat_ProQuotaFallsBackToFlash(t *testing.T) {
	provider := &stubProvider{generate: func(_ context.Context, in ports.GenerateInput) (string, error) {
		if in.Model == domain.ModelGeminiPro {
			return "", domain.ErrAIQuota
		}
		return "fallback answer", nil
	}}
	svc := NewAIService(provider, testLogger())

	result, err := svc.Chat(context.Background(), ports.ChatInput{Prompt: "hi", Model: domain.ModelGeminiPro})
	if err != nil {
		t.Fatalf("Chat returned error: %v", err)
	}
	if !result.Fallback || result.Model != domain.ModelGeminiFlash {
		t.Fatalf("expected flash fallback, got %+v", result)
	}
	if len(provider.calls) != 2 {
		t.Fatalf("expected 2 provider calls, got %d", len(provider.calls))
	}
}

func TestAIService_Chat_FlashQuotaIsRateLimited(t *testing.T) {
	provider := &stubProvider{generate: func(_ context.Context, in ports.GenerateInput) (string, error) {
		return "", domain.ErrAIQuota
	}}
	svc := NewAIService(provider, testLogger())

	_, err := svc.Chat(context.Background(), ports.ChatInput{Prompt: "hi"})
	if !errors.Is(err, domain.ErrRateLimited) {
		t.Fatalf("expected rate-limit error, got %v", err)
	}

	var rle *domain.RateLimitError
	if !errors.As(err, &rle) || rle.RetryAfterSeconds != 60 {
		t.Fatalf("expected retry-after hint of 60s, got %v", err)
	}
	if len(provider.calls) != 1 {
		t.Fatalf("flash must not retry, got %d calls", len(provider.calls))
	}
}

func TestAIService_Chat_UnknownModelIgnored(t *testing.T) {
	provider := &stubProvider{generate: func(_ context.Context, in ports.GenerateInput) (string, error) {
		return "ok", nil
	}}
	svc := NewAIService(provider, testLogger())

	result, err := svc.Chat(context.Background(), ports.ChatInput{Prompt: "hi", Model: "gpt-4"})
	if err != nil {
		t.Fatalf("Chat returned error: %v", err)
	}
	if result.Model != domain.ModelGeminiFlash {
		t.Fatalf("unexpected model: %s", result.Model)
	}
}

func TestAIService_Vision_DefaultsToProNoFallback(t *testing.T) {
	provider := &stubProvider{generate: func(_ context.Context, in ports.GenerateInput) (string, error) {
		return "", domain.ErrAIQuota
	}}
	svc := NewAIService(provider, testLogger())

	_, err := svc.Vision(context.Background(), ports.VisionInput{Prompt: "what is this?", ImageBase64: "aGk="})
	if !errors.Is(err, domain.ErrRateLimited) {
		t.Fatalf("expected rate-limit error, got %v", err)
	}
	if len(provider.calls) != 1 {
		t.Fatalf("vision must not fall back, got %d calls", len(provider.calls))
	}
	if provider.calls[0].Model != domain.ModelGeminiPro {
		t.Fatalf("expected pro default, got %s", provider.calls[0].Model)
	}
	if provider.calls[0].ImageMIME != "image/png" {
		t.Fatalf("expected png mime default, got %s", provider.calls[0].ImageMIME)
	}
}

func TestAIService_Vision_RequiresImage(t *testing.T) {
	provider := &stubProvider{generate: func(_ context.Context, in ports.GenerateInput) (string, error) {
		return "ok", nil
	}}
	svc := NewAIService(provider, testLogger())

	if _, err := svc.Vision(context.Background(), ports.VisionInput{Prompt: "no image"}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
