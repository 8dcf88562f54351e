package topic

import (
	"errors"
	"net/http"
	"strconv"

	"interview-service/internal/models"

	"github.com/gin-gonic/gin"
)

type TopicHandler struct {
	topicService TopicService
}

func NewTopicHandler(topicService TopicService) *TopicHandler {
	return &TopicHandler{topicService: topicService}
}

// ListTopics godoc
// @Summary List all topics
// @Description Get all topics with their nested questions and answers
// @Tags topics
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.TopicResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /topics [get]
func (h *TopicHandler) ListTopics(c *gin.Context) {
	topics, err := h.topicService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "failed to list topics",
		})
		return
	}

	c.JSON(http.StatusOK, topics)
}

// GetTopic godoc
// @Summary Get one topic
// @Description Get a topic by id with its nested questions and answers
// @Tags topics
// @Produce json
// @Security BearerAuth
// @Param id path int true "Topic Id"
// @Success 200 {object} models.TopicResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /topics/{id} [get]
func (h *TopicHandler) GetTopic(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	topic, err := h.topicService.Get(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, topic)
}

// CreateTopic godoc
// @Summary Create a topic
// @Description Create a new topic; start_date may only be set here
// @Tags topics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateTopicRequest true "Topic data"
// @Success 200 {object} models.TopicResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /topics [post]
func (h *TopicHandler) CreateTopic(c *gin.Context) {
	var req models.CreateTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid topic object",
			Details: err.Error(),
		})
		return
	}

	topic, err := h.topicService.Create(c.Request.Context(), &req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, topic)
}

// UpdateTopic godoc
// @Summary Update a topic
// @Description Partially update title, finish_date or description. Requests carrying start_date are rejected.
// @Tags topics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Topic Id"
// @Param request body models.UpdateTopicRequest true "Fields to update"
// @Success 200 {object} models.TopicResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /topics/{id} [put]
func (h *TopicHandler) UpdateTopic(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req models.UpdateTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid topic object",
			Details: err.Error(),
		})
		return
	}

	topic, err := h.topicService.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, topic)
}

// DeleteTopic godoc
// @Summary Delete a topic
// @Description Delete a topic together with its questions, answers and user answers
// @Tags topics
// @Produce json
// @Security BearerAuth
// @Param id path int true "Topic Id"
// @Success 200 {object} nil
// @Failure 404 {object} models.ErrorResponse
// @Router /topics/{id} [delete]
func (h *TopicHandler) DeleteTopic(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.topicService.Delete(c.Request.Context(), id); err != nil {
		h.renderError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

// ListUserTopics godoc
// @Summary Classify topics for a user
// @Description List topics that are active or passed for the given user
// @Tags topics
// @Produce json
// @Security BearerAuth
// @Param type query string true "Classification" Enums(active, passed)
// @Param user_id query int true "User Id"
// @Success 200 {array} models.TopicResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /users-topics [get]
func (h *TopicHandler) ListUserTopics(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Query("user_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid filter parameters",
			Details: "user_id must be an integer",
		})
		return
	}

	topics, err := h.topicService.ListUserTopics(c.Request.Context(), uint(userID), c.Query("type"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, topics)
}

func (h *TopicHandler) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrTopicNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Code:    http.StatusNotFound,
			Message: "topic not found",
		})
	case errors.Is(err, ErrStartDateImmutable),
		errors.Is(err, ErrInvalidDate),
		errors.Is(err, ErrInvalidTopicMode):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid topic object",
			Details: err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "internal error",
		})
	}
}

func (h *TopicHandler) RegisterRoutes(r *gin.RouterGroup) {
	topics := r.Group("/topics")
	{
		topics.GET("", h.ListTopics)
		topics.POST("", h.CreateTopic)
		topics.GET("/:id", h.GetTopic)
		topics.PUT("/:id", h.UpdateTopic)
		topics.DELETE("/:id", h.DeleteTopic)
	}
	r.GET("/users-topics", h.ListUserTopics)
}

// parseID reads the :id path parameter, rendering a 404 when it is not a
// number (a non-numeric id can never name an existing row).
func parseID(c *gin.Context) (uint, bool) {
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
