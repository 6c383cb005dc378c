package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agrohelp/agrohelp-api/internal/core/domain"
	"github.com/agrohelp/agrohelp-api/internal/core/ports"
)

type FarmInputHandler struct {
	inputService ports.FarmInputService
}

func NewFarmInputHandler(inputService ports.FarmInputService) *FarmInputHandler {
	return &FarmInputHandler{inputService: inputService}
}

type createFarmInputRequest struct {
	Product  string  `json:"product" validate:"required"`
	Category string  `json:"category" validate:"required"`
	Unit     string  `json:"unit"`
	Price    float64 `json:"price"`
	Region   string  `json:"region"`
	Source   string  `json:"source"`
	Notes    string  `json:"notes"`
}

type updateFarmInputRequest struct {
	Product  *string  `json:"product"`
	Category *string  `json:"category"`
	Unit     *string  `json:"unit"`
	Price    *float64 `json:"price"`
	Region   *string  `json:"region"`
	Source   *string  `json:"source"`
	Notes    *string  `json:"notes"`
}

// List returns farm-input prices, optionally filtered by category, region and
// a partial product match (query param q).
//
// @Summary      List farm inputs
// @Tags         inputs
// @Produce      json
// @Param        category  query     string  false  "Category filter"
// @Param        region    query     string  false  "Region filter"
// @Param        q         query     string  false  "Product search"
// @Success      200       {array}   domain.FarmInput
// @Router       /inputs [get]
func (h *FarmInputHandler) List(c echo.Context) error {
	inputs, err := h.inputService.List(c.Request().Context(), ports.FarmInputFilter{
		Category: c.QueryParam("category"),
		Region:   c.QueryParam("region"),
		Product:  c.QueryParam("q"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, inputs)
}

// Create adds a farm-input price record.
//
// @Summary      Create farm input
// @Tags         inputs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createFarmInputRequest  true  "Farm input"
// @Success      201   {object}  domain.FarmInput
// @Failure      400   {object}  map[string]string
// @Router       /inputs [post]
func (h *FarmInputHandler) Create(c echo.Context) error {
	var req createFarmInputRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input, err := h.inputService.Create(c.Request().Context(), ports.CreateFarmInput{
		Product:  req.Product,
		Category: req.Category,
		Unit:     req.Unit,
		Price:    req.Price,
		Region:   req.Region,
		Source:   req.Source,
		Notes:    req.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, input)
}

// Update patches a farm-input record.
//
// @Summary      Update farm input
// @Tags         inputs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                  true  "Input ID"
// @Param        body  body      updateFarmInputRequest  true  "Fields to change"
// @Success      200   {object}  domain.FarmInput
// @Failure      404   {object}  map[string]string
// @Router       /inputs/{id} [put]
func (h *FarmInputHandler) Update(c echo.Context) error {
	var req updateFarmInputRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	input, err := h.inputService.Update(c.Request().Context(), c.Param("id"), domain.FarmInputPatch{
		Product:  req.Product,
		Category: req.Category,
		Unit:     req.Unit,
		Price:    req.Price,
		Region:   req.Region,
		Source:   req.Source,
		Notes:    req.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, input)
}

// Delete removes a farm-input record.
//
// @Summary      Delete farm input
// @Tags         inputs
// @Security     BearerAuth
// @Param        id  path  string  true  "Input ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /inputs/{id} [delete]
func (h *FarmInputHandler) Delete(c echo.Context) error {
	if err := h.inputService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
