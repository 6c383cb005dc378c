package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agrohelp/agrohelp-api/internal/api/metrics"
	"github.com/agrohelp/agrohelp-api/internal/core/ports"
)

type InsectHandler struct {
	detectionService ports.DetectionService
}

func NewInsectHandler(detectionService ports.DetectionService) *InsectHandler {
	return &InsectHandler{detectionService: detectionService}
}

type detectRequest struct {
	FileURL string `json:"file_url" validate:"required,url"`
}

type detectResponse struct {
	Detected    bool               `json:"detected"`
	Predictions []ports.Prediction `json:"predictions"`
	FileURL     string             `json:"file_url"`
}

// Detect runs insect detection against a hosted image URL.
//
// @Summary      Detect insects
// @Tags         insects
// @Accept       json
// @Produce      json
// @Param        body  body      detectRequest  true  "Image location"
// @Success      200   {object}  detectResponse
// @Failure      400   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /insects/detect [post]
func (h *InsectHandler) Detect(c echo.Context) error {
	var req detectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.detectionService.Detect(c.Request().Context(), req.FileURL)
	if err != nil {
		metrics.DetectionsTotal.WithLabelValues("error").Inc()
		return err
	}

	outcome := "clean"
	if result.Detected {
		outcome = "detected"
	}
	metrics.DetectionsTotal.WithLabelValues(outcome).Inc()

	return c.JSON(http.StatusOK, detectResponse{
		Detected:    result.Detected,
		Predictions: result.Predictions,
		FileURL:     result.FileURL,
	})
}
