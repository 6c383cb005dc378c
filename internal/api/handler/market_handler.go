package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agrohelp/agrohelp-api/internal/core/ports"
)

type MarketHandler struct {
	marketService ports.MarketService
}

func NewMarketHandler(marketService ports.MarketService) *MarketHandler {
	return &MarketHandler{marketService: marketService}
}

type marketRequest struct {
	Product     string  `json:"product" validate:"required"`
	Price       float64 `json:"price"`
	Trend       string  `json:"trend"`
	TrendChange string  `json:"trend_change"`
}

func (r marketRequest) toInput() ports.MarketInput {
	return ports.MarketInput{
		Product:     r.Product,
		Price:       r.Price,
		Trend:       r.Trend,
		TrendChange: r.TrendChange,
	}
}

// List returns all market price entries.
//
// @Summary      List market prices
// @Tags         markets
// @Produce      json
// @Success      200  {array}  domain.Market
// @Router       /markets [get]
func (h *MarketHandler) List(c echo.Context) error {
	markets, err := h.marketService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, markets)
}

// Create adds a market price entry.
//
// @Summary      Create market price
// @Tags         markets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      marketRequest  true  "Market entry"
// @Success      201   {object}  domain.Market
// @Failure      400   {object}  map[string]string
// @Router       /markets [post]
func (h *MarketHandler) Create(c echo.Context) error {
	var req marketRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	market, err := h.marketService.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, market)
}

// Update replaces a market price entry.
//
// @Summary      Update market price
// @Tags         markets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Market ID"
// @Param        body  body      marketRequest  true  "Market entry"
// @Success      200   {object}  domain.Market
// @Failure      404   {object}  map[string]string
// @Router       /markets/{id} [put]
func (h *MarketHandler) Update(c echo.Context) error {
	var req marketRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	market, err := h.marketService.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, market)
}

// Delete removes a market price entry.
//
// @Summary      Delete market price
// @Tags         markets
// @Security     BearerAuth
// @Param        id  path  string  true  "Market ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /markets/{id} [delete]
func (h *MarketHandler) Delete(c echo.Context) error {
	if err := h.marketService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
