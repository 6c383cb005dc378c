package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agrohelp/agrohelp-api/internal/api/metrics"
	"github.com/agrohelp/agrohelp-api/internal/core/ports"
)

type QuestionHandler struct {
	questionService ports.QuestionService
}

func NewQuestionHandler(questionService ports.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

type askRequest struct {
	ExpertID string `json:"expert_id" validate:"required"`
	Message  string `json:"message" validate:"required"`
}

type replyRequest struct {
	Answer string `json:"answer" validate:"required"`
}

// Ask submits a question to an expert.
//
// @Summary      Ask an expert
// @Tags         questions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      askRequest  true  "Question"
// @Success      201   {object}  ports.QuestionWithNames
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /questions [post]
func (h *QuestionHandler) Ask(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req askRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	question, err := h.questionService.Ask(c.Request().Context(), user, req.ExpertID, req.Message)
	if err != nil {
		return err
	}

	metrics.QuestionsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, question)
}

// MyQuestions lists the caller's submitted questions, newest first.
//
// @Summary      My questions
// @Tags         questions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  ports.QuestionWithNames
// @Router       /questions/me [get]
func (h *QuestionHandler) MyQuestions(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	questions, err := h.questionService.MyQuestions(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, questions)
}

// Inbox lists questions addressed to the calling expert, newest first.
//
// @Summary      Expert inbox
// @Tags         questions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  ports.QuestionWithNames
// @Failure      403  {object}  map[string]string
// @Router       /expert/questions [get]
func (h *QuestionHandler) Inbox(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	questions, err := h.questionService.ExpertInbox(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, questions)
}

// Reply writes (or overwrites) the answer to a question.
//
// @Summary      Reply to a question
// @Tags         questions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string        true  "Question ID"
// @Param        body  body      replyRequest  true  "Answer"
// @Success      200   {object}  domain.Question
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /questions/{id}/reply [patch]
func (h *QuestionHandler) Reply(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req replyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	question, err := h.questionService.Reply(c.Request().Context(), user, c.Param("id"), req.Answer)
	if err != nil {
		return err
	}

	metrics.QuestionsAnsweredTotal.Inc()
	return c.JSON(http.StatusOK, question)
}
