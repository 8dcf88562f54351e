package question

import (
	"errors"
	"net/http"
	"strconv"

	"interview-service/internal/models"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	questionService QuestionService
}

func NewQuestionHandler(questionService QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

// CreateQuestion godoc
// @Summary Create a question
// @Description Create a question with its full answer set. Enumerated types need at least one answer, custom questions none.
// @Tags questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateQuestionRequest true "Question data"
// @Success 200 {object} models.QuestionResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /questions [post]
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req models.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid question object",
			Details: err.Error(),
		})
		return
	}

	question, err := h.questionService.Create(c.Request.Context(), &req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, question)
}

// UpdateQuestion godoc
// @Summary Update a question
// @Description Partially update text/type and replace the full answer set. An omitted answers key clears the set.
// @Tags questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question Id"
// @Param request body models.UpdateQuestionRequest true "Fields to update"
// @Success 200 {object} models.QuestionResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /questions/{id} [put]
func (h *QuestionHandler) UpdateQuestion(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req models.UpdateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid question object",
			Details: err.Error(),
		})
		return
	}

	question, err := h.questionService.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, question)
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Description Delete a question and its answers. Fails while user answers reference the question.
// @Tags questions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question Id"
// @Success 200 {object} nil
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /questions/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.questionService.Delete(c.Request.Context(), id); err != nil {
		h.renderError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

func (h *QuestionHandler) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrQuestionNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Code:    http.StatusNotFound,
			Message: "question not found",
		})
	case errors.Is(err, ErrInvalidType),
		errors.Is(err, ErrAnswersRequired),
		errors.Is(err, ErrAnswersNotAllowed),
		errors.Is(err, ErrTopicNotFound),
		errors.Is(err, ErrQuestionReferenced):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid question object",
			Details: err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "internal error",
		})
	}
}

func (h *QuestionHandler) parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Code:    http.StatusNotFound,
			Message: "not found",
		})
		return 0, false
	}
	return uint(id), true
}

func (h *QuestionHandler) RegisterRoutes(r *gin.RouterGroup) {
	questions := r.Group("/questions")
	{
		questions.POST("", h.CreateQuestion)
		questions.PUT("/:id", h.UpdateQuestion)
		questions.DELETE("/:id", h.DeleteQuestion)
	}
}
