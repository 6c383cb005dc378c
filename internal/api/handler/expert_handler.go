package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agrohelp/agrohelp-api/internal/core/ports"
)

type ExpertHandler struct {
	userService ports.UserService
}

func NewExpertHandler(userService ports.UserService) *ExpertHandler {
	return &ExpertHandler{userService: userService}
}

// List returns the public expert directory, optionally filtered by a search
// term matched against name, username, specialty and region.
//
// @Summary      List experts
// @Tags         experts
// @Produce      json
// @Param        search  query     string  false  "Search term"
// @Success      200     {array}   domain.User
// @Router       /experts [get]
func (h *ExpertHandler) List(c echo.Context) error {
	experts, err := h.userService.SearchExperts(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, experts)
}
