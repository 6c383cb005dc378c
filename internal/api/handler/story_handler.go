package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agrohelp/agrohelp-api/internal/core/ports"
)

type StoryHandler struct {
	storyService ports.StoryService
}

func NewStoryHandler(storyService ports.StoryService) *StoryHandler {
	return &StoryHandler{storyService: storyService}
}

type storyRequest struct {
	Title string `json:"title" validate:"required,max=200"`
	Body  string `json:"body" validate:"required,max=20000"`
}

// PublicList returns all stories, newest first.
//
// @Summary      Public stories
// @Tags         stories
// @Produce      json
// @Success      200  {array}  domain.Story
// @Router       /stories/public [get]
func (h *StoryHandler) PublicList(c echo.Context) error {
	stories, err := h.storyService.PublicList(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stories)
}

// MyStories returns the caller's own stories, newest first.
//
// @Summary      My stories
// @Tags         stories
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Story
// @Router       /stories/me [get]
func (h *StoryHandler) MyStories(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	stories, err := h.storyService.MyStories(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stories)
}

// Create publishes a story owned by the caller.
//
// @Summary      Create story
// @Tags         stories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      storyRequest  true  "Story"
// @Success      201   {object}  domain.Story
// @Failure      400   {object}  map[string]string
// @Router       /stories [post]
func (h *StoryHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req storyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	story, err := h.storyService.Create(c.Request().Context(), user, req.Title, req.Body)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, story)
}

// Update rewrites one of the caller's stories. A story owned by someone else
// is indistinguishable from a missing one and returns 404.
//
// @Summary      Update own story
// @Tags         stories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string        true  "Story ID"
// @Param        body  body      storyRequest  true  "Story"
// @Success      200   {object}  domain.Story
// @Failure      404   {object}  map[string]string
// @Router       /stories/{id} [patch]
func (h *StoryHandler) Update(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req storyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	story, err := h.storyService.Update(c.Request().Context(), user, c.Param("id"), req.Title, req.Body)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, story)
}
