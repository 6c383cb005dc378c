package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agrohelp/agrohelp-api/internal/core/domain"
	"github.com/agrohelp/agrohelp-api/internal/core/ports"
)

// AdminHandler groups the admin-only user and story management surface.
// Role gating happens at the route level; the handlers assume an admin actor.
type AdminHandler struct {
	userService  ports.UserService
	storyService ports.StoryService
}

func NewAdminHandler(userService ports.UserService, storyService ports.StoryService) *AdminHandler {
	return &AdminHandler{userService: userService, storyService: storyService}
}

type updateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=user admin"`
}

type adminStoryRequest struct {
	Title    string `json:"title" validate:"required,max=200"`
	Body     string `json:"body" validate:"required,max=20000"`
	PhotoURL string `json:"photo_url"`
}

type statsResponse struct {
	Users   int64 `json:"users"`
	Stories int64 `json:"stories"`
	Admins  int64 `json:"admins"`
}

// ListUsers returns all accounts, newest first.
//
// @Summary      List users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.User
// @Router       /admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.userService.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// UpdateUserRole promotes or demotes an account. Only "user" and "admin" are
// assignable here; expert accounts come from registration.
//
// @Summary      Change user role
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string             true  "User ID"
// @Param        body  body  updateRoleRequest  true  "New role"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/users/{id} [patch]
func (h *AdminHandler) UpdateUserRole(c echo.Context) error {
	var req updateRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	role, _ := domain.ParseRole(req.Role)
	if err := h.userService.UpdateRole(c.Request().Context(), c.Param("id"), role); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteUser removes an account and, best-effort, its stories.
//
// @Summary      Delete user
// @Tags         admin
// @Security     BearerAuth
// @Param        id  path  string  true  "User ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	if err := h.userService.DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Stats returns the admin dashboard counters.
//
// @Summary      Platform stats
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  statsResponse
// @Router       /admin/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.userService.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statsResponse{
		Users:   stats.Users,
		Stories: stats.Stories,
		Admins:  stats.Admins,
	})
}

// ListStories returns every story regardless of owner.
//
// @Summary      List all stories
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Story
// @Router       /admin/stories [get]
func (h *AdminHandler) ListStories(c echo.Context) error {
	stories, err := h.storyService.AdminList(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stories)
}

// CreateStory publishes a story as the acting admin. A supplied photo URL is
// also written back to the admin's profile photo.
//
// @Summary      Create story (admin)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      adminStoryRequest  true  "Story"
// @Success      201   {object}  domain.Story
// @Failure      400   {object}  map[string]string
// @Router       /admin/stories [post]
func (h *AdminHandler) CreateStory(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req adminStoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	story, err := h.storyService.AdminCreate(c.Request().Context(), user, ports.AdminStoryInput{
		Title:    req.Title,
		Body:     req.Body,
		PhotoURL: req.PhotoURL,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, story)
}

// UpdateStory rewrites any story, regardless of owner.
//
// @Summary      Update story (admin)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Story ID"
// @Param        body  body      adminStoryRequest  true  "Story"
// @Success      200   {object}  domain.Story
// @Failure      404   {object}  map[string]string
// @Router       /admin/stories/{id} [patch]
func (h *AdminHandler) UpdateStory(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req adminStoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	story, err := h.storyService.AdminUpdate(c.Request().Context(), user, c.Param("id"), ports.AdminStoryInput{
		Title:    req.Title,
		Body:     req.Body,
		PhotoURL: req.PhotoURL,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, story)
}

// DeleteStory removes any story.
//
// @Summary      Delete story (admin)
// @Tags         admin
// @Security     BearerAuth
// @Param        id  path  string  true  "Story ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /admin/stories/{id} [delete]
func (h *AdminHandler) DeleteStory(c echo.Context) error {
	if err := h.storyService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
