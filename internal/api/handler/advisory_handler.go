package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agrohelp/agrohelp-api/internal/core/domain"
	"github.com/agrohelp/agrohelp-api/internal/core/ports"
)

type AdvisoryHandler struct {
	advisoryService ports.AdvisoryService
}

func NewAdvisoryHandler(advisoryService ports.AdvisoryService) *AdvisoryHandler {
	return &AdvisoryHandler{advisoryService: advisoryService}
}

type createAdvisoryRequest struct {
	Location        string `json:"location" validate:"required"`
	RecommendedCrop string `json:"recommended_crop" validate:"required"`
	Weather         string `json:"weather"`
	SoilHealth      string `json:"soil_health"`
	Resources       string `json:"resources"`
}

type updateAdvisoryRequest struct {
	Location        *string `json:"location"`
	RecommendedCrop *string `json:"recommended_crop"`
	Weather         *string `json:"weather"`
	SoilHealth      *string `json:"soil_health"`
	Resources       *string `json:"resources"`
}

// List returns all crop advisories.
//
// @Summary      List advisories
// @Tags         advisories
// @Produce      json
// @Success      200  {array}  domain.Advisory
// @Router       /advisories [get]
func (h *AdvisoryHandler) List(c echo.Context) error {
	advisories, err := h.advisoryService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, advisories)
}

// Create adds a crop advisory.
//
// @Summary      Create advisory
// @Tags         advisories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAdvisoryRequest  true  "Advisory"
// @Success      201   {object}  domain.Advisory
// @Failure      400   {object}  map[string]string
// @Router       /advisories [post]
func (h *AdvisoryHandler) Create(c echo.Context) error {
	var req createAdvisoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	advisory, err := h.advisoryService.Create(c.Request().Context(), ports.CreateAdvisoryInput{
		Location:        req.Location,
		RecommendedCrop: req.RecommendedCrop,
		Weather:         req.Weather,
		SoilHealth:      req.SoilHealth,
		Resources:       req.Resources,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, advisory)
}

// Update patches an advisory.
//
// @Summary      Update advisory
// @Tags         advisories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Advisory ID"
// @Param        body  body      updateAdvisoryRequest  true  "Fields to change"
// @Success      200   {object}  domain.Advisory
// @Failure      404   {object}  map[string]string
// @Router       /advisories/{id} [put]
func (h *AdvisoryHandler) Update(c echo.Context) error {
	var req updateAdvisoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	advisory, err := h.advisoryService.Update(c.Request().Context(), c.Param("id"), domain.AdvisoryPatch{
		Location:        req.Location,
		RecommendedCrop: req.RecommendedCrop,
		Weather:         req.Weather,
		SoilHealth:      req.SoilHealth,
		Resources:       req.Resources,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, advisory)
}

// Delete removes an advisory.
//
// @Summary      Delete advisory
// @Tags         advisories
// @Security     BearerAuth
// @Param        id  path  string  true  "Advisory ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /advisories/{id} [delete]
func (h *AdvisoryHandler) Delete(c echo.Context) error {
	if err := h.advisoryService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
