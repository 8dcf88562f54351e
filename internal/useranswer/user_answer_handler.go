package useranswer

import (
	"errors"
	"net/http"

	"interview-service/internal/models"

	"github.com/gin-gonic/gin"
)

type UserAnswerHandler struct {
	userAnswerService UserAnswerService
}

func NewUserAnswerHandler(userAnswerService UserAnswerService) *UserAnswerHandler {
	return &UserAnswerHandler{userAnswerService: userAnswerService}
}

// SubmitUserAnswer godoc
// @Summary Submit a user's answer
// @Description Record which answer a user picked for a question. A repeated submission for the same user and question overwrites the previous pick.
// @Tags users-answers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.SubmitUserAnswerRequest true "Selection data"
// @Success 200 {object} models.UserAnswerResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /users-answers [post]
func (h *UserAnswerHandler) SubmitUserAnswer(c *gin.Context) {
	var req models.SubmitUserAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid user answer object",
			Details: err.Error(),
		})
		return
	}

	userAnswer, err := h.userAnswerService.Submit(c.Request.Context(), &req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, userAnswer)
}

func (h *UserAnswerHandler) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrQuestionNotFound), errors.Is(err, ErrAnswerNotFound):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid user answer object",
			Details: err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "internal error",
		})
	}
}

func (h *UserAnswerHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/users-answers", h.SubmitUserAnswer)
}
