package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agrohelp/agrohelp-api/internal/api/middleware"
	"github.com/agrohelp/agrohelp-api/internal/core/domain"
)

// currentUser extracts the user record loaded by the Auth middleware. A
// missing record means the middleware did not run for this route, which is a
// wiring bug, but the safe answer is still 401.
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(middleware.CurrentUserKey).(*domain.User)
	if !ok || user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return user, nil
}
