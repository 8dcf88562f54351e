package topic

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"interview-service/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(service TopicService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	NewTopicHandler(service).RegisterRoutes(engine.Group("/api/v1"))
	return engine
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(method, path, strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(recorder, request)
	return recorder
}

func TestCreateTopicEndpoint(t *testing.T) {
	router := newTestRouter(newTestService(newMockTopicRepository()))

	recorder := doRequest(router, http.MethodPost, "/api/v1/topics",
		`{"title":"T1","start_date":"2020-08-10","finish_date":"2020-08-15","description":"d"}`)

	require.Equal(t, http.StatusOK, recorder.Code)
	var topic models.TopicResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &topic))
	assert.Equal(t, "T1", topic.Title)
	assert.NotNil(t, topic.Questions)
}

func TestCreateTopicEndpointRejectsMissingFields(t *testing.T) {
	router := newTestRouter(newTestService(newMockTopicRepository()))

	recorder := doRequest(router, http.MethodPost, "/api/v1/topics", `{"title":"T1"}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestUpdateTopicEndpointRejectsStartDate(t *testing.T) {
	service := newTestService(newMockTopicRepository())
	router := newTestRouter(service)
	seedTopic(t, service, "T1")

	// The start_date key is rejected whatever its value, null included.
	for _, body := range []string{
		`{"start_date":"2021-01-01"}`,
		`{"start_date":null,"title":"renamed"}`,
	} {
		recorder := doRequest(router, http.MethodPut, "/api/v1/topics/1", body)
		assert.Equal(t, http.StatusBadRequest, recorder.Code, body)
	}

	recorder := doRequest(router, http.MethodGet, "/api/v1/topics/1", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	var topic models.TopicResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &topic))
	assert.Equal(t, "T1", topic.Title)
}

func TestUpdateTopicEndpointPartial(t *testing.T) {
	service := newTestService(newMockTopicRepository())
	router := newTestRouter(service)
	seedTopic(t, service, "T1")

	recorder := doRequest(router, http.MethodPut, "/api/v1/topics/1", `{"title":"renamed"}`)

	require.Equal(t, http.StatusOK, recorder.Code)
	var topic models.TopicResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &topic))
	assert.Equal(t, "renamed", topic.Title)
	assert.Equal(t, "2020-08-10", topic.StartDate)
}

func TestGetTopicEndpointNotFound(t *testing.T) {
	router := newTestRouter(newTestService(newMockTopicRepository()))

	assert.Equal(t, http.StatusNotFound, doRequest(router, http.MethodGet, "/api/v1/topics/42", "").Code)
	assert.Equal(t, http.StatusNotFound, doRequest(router, http.MethodGet, "/api/v1/topics/abc", "").Code)
}

func TestDeleteTopicEndpoint(t *testing.T) {
	service := newTestService(newMockTopicRepository())
	router := newTestRouter(service)
	seedTopic(t, service, "T1")

	assert.Equal(t, http.StatusOK, doRequest(router, http.MethodDelete, "/api/v1/topics/1", "").Code)
	assert.Equal(t, http.StatusNotFound, doRequest(router, http.MethodGet, "/api/v1/topics/1", "").Code)
}

func TestListUserTopicsEndpointValidation(t *testing.T) {
	router := newTestRouter(newTestService(newMockTopicRepository()))

	assert.Equal(t, http.StatusBadRequest,
		doRequest(router, http.MethodGet, "/api/v1/users-topics?type=active", "").Code)
	assert.Equal(t, http.StatusBadRequest,
		doRequest(router, http.MethodGet, "/api/v1/users-topics?type=finished&user_id=1", "").Code)

	recorder := doRequest(router, http.MethodGet, "/api/v1/users-topics?type=passed&user_id=1", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `[]`, recorder.Body.String())
}
