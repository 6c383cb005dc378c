package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agrohelp/agrohelp-api/internal/api/metrics"
	"github.com/agrohelp/agrohelp-api/internal/core/domain"
	"github.com/agrohelp/agrohelp-api/internal/core/ports"
)

type AIHandler struct {
	aiService ports.AIService
}

func NewAIHandler(aiService ports.AIService) *AIHandler {
	return &AIHandler{aiService: aiService}
}

type chatRequest struct {
	Prompt string `json:"prompt" validate:"required"`
	System string `json:"system"`
	Model  string `json:"model"`
}

type visionRequest struct {
	Prompt      string `json:"prompt" validate:"required"`
	ImageBase64 string `json:"image_base64" validate:"required"`
	MIMEType    string `json:"mime_type"`
	Model       string `json:"model"`
}

type aiResponse struct {
	Text     string `json:"text"`
	Model    string `json:"model"`
	Fallback bool   `json:"fallback,omitempty"`
}

// Chat proxies a text prompt to the generative model.
//
// @Summary      AI chat
// @Tags         ai
// @Accept       json
// @Produce      json
// @Param        body  body      chatRequest  true  "Prompt"
// @Success      200   {object}  aiResponse
// @Failure      400   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /ai/gemini/chat [post]
func (h *AIHandler) Chat(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.aiService.Chat(c.Request().Context(), ports.ChatInput{
		Prompt: req.Prompt,
		System: req.System,
		Model:  req.Model,
	})
	if err != nil {
		metrics.AIRequestsTotal.WithLabelValues("chat", aiOutcome(err)).Inc()
		return err
	}

	metrics.AIRequestsTotal.WithLabelValues("chat", "ok").Inc()
	if result.Fallback {
		metrics.AIFallbacksTotal.Inc()
	}
	return c.JSON(http.StatusOK, aiResponse{
		Text:     result.Text,
		Model:    result.Model,
		Fallback: result.Fallback,
	})
}

// Vision proxies a prompt plus an inline image to the generative model.
//
// @Summary      AI vision
// @Tags         ai
// @Accept       json
// @Produce      json
// @Param        body  body      visionRequest  true  "Prompt and image"
// @Success      200   {object}  aiResponse
// @Failure      400   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /ai/gemini/vision [post]
func (h *AIHandler) Vision(c echo.Context) error {
	var req visionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.aiService.Vision(c.Request().Context(), ports.VisionInput{
		Prompt:      req.Prompt,
		ImageBase64: req.ImageBase64,
		MIMEType:    req.MIMEType,
		Model:       req.Model,
	})
	if err != nil {
		metrics.AIRequestsTotal.WithLabelValues("vision", aiOutcome(err)).Inc()
		return err
	}

	metrics.AIRequestsTotal.WithLabelValues("vision", "ok").Inc()
	return c.JSON(http.StatusOK, aiResponse{
		Text:  result.Text,
		Model: result.Model,
	})
}

func aiOutcome(err error) string {
	if errors.Is(err, domain.ErrRateLimited) || errors.Is(err, domain.ErrAIQuota) {
		return "quota"
	}
	return "error"
}
