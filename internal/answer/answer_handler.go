package answer

import (
	"errors"
	"net/http"
	"strconv"

	"interview-service/internal/models"

	"github.com/gin-gonic/gin"
)

type AnswerHandler struct {
	answerService AnswerService
}

func NewAnswerHandler(answerService AnswerService) *AnswerHandler {
	return &AnswerHandler{answerService: answerService}
}

// UpdateAnswer godoc
// @Summary Update an answer
// @Description Update the text of an answer
// @Tags answers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Answer Id"
// @Param request body models.UpdateAnswerRequest true "Answer data"
// @Success 200 {object} models.AnswerResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /answers/{id} [put]
func (h *AnswerHandler) UpdateAnswer(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req models.UpdateAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid answer object",
			Details: err.Error(),
		})
		return
	}

	answer, err := h.answerService.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, answer)
}

// DeleteAnswer godoc
// @Summary Delete an answer
// @Description Delete an answer. Fails while user answers reference it.
// @Tags answers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Answer Id"
// @Success 200 {object} nil
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /answers/{id} [delete]
func (h *AnswerHandler) DeleteAnswer(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.answerService.Delete(c.Request.Context(), id); err != nil {
		h.renderError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

func (h *AnswerHandler) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrAnswerNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Code:    http.StatusNotFound,
			Message: "answer not found",
		})
	case errors.Is(err, ErrAnswerReferenced):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid answer object",
			Details: err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "internal error",
		})
	}
}

func (h *AnswerHandler) parseID(c *gin.Context) (uint, bool) {
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

func (h *AnswerHandler) RegisterRoutes(r *gin.RouterGroup) {
	answers := r.Group("/answers")
	{
		answers.PUT("/:id", h.UpdateAnswer)
		answers.DELETE("/:id", h.DeleteAnswer)
	}
}
