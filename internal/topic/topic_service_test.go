package topic

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"interview-service/internal/audit"
	"interview-service/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// mockTopicRepository is an in-memory TopicRepository for service tests
type mockTopicRepository struct {
	topics      map[uint]*models.Topic
	questions   []models.Question
	answers     []models.Answer
	userAnswers []models.UserAnswer

	classified     []uint
	activeDateSeen string
	deleted        []uint
	nextID         uint
}

func newMockTopicRepository() *mockTopicRepository {
	return &mockTopicRepository{
		topics: make(map[uint]*models.Topic),
		nextID: 1,
	}
}

func (m *mockTopicRepository) FindAll(context.Context) ([]models.Topic, error) {
	topics := make([]models.Topic, 0, len(m.topics))
	for id := uint(1); id < m.nextID; id++ {
		if topic, ok := m.topics[id]; ok {
			topics = append(topics, *topic)
		}
	}
	return topics, nil
}

func (m *mockTopicRepository) FindByID(_ context.Context, id uint) (*models.Topic, error) {
	topic, ok := m.topics[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *topic
	return &copied, nil
}

func (m *mockTopicRepository) FindByIDs(_ context.Context, ids []uint) ([]models.Topic, error) {
	var topics []models.Topic
	for _, id := range ids {
		if topic, ok := m.topics[id]; ok {
			topics = append(topics, *topic)
		}
	}
	return topics, nil
}

func (m *mockTopicRepository) FindActiveByIDs(_ context.Context, ids []uint, date string) ([]models.Topic, error) {
	m.activeDateSeen = date
	var topics []models.Topic
	for _, id := range ids {
		topic, ok := m.topics[id]
		if !ok {
			continue
		}
		if topic.StartDate <= date && topic.FinishDate >= date {
			topics = append(topics, *topic)
		}
	}
	return topics, nil
}

func (m *mockTopicRepository) Create(_ context.Context, topic *models.Topic) error {
	topic.ID = m.nextID
	m.nextID++
	stored := *topic
	m.topics[topic.ID] = &stored
	return nil
}

func (m *mockTopicRepository) Update(_ context.Context, topic *models.Topic) error {
	stored := *topic
	m.topics[topic.ID] = &stored
	return nil
}

func (m *mockTopicRepository) DeleteCascade(_ context.Context, id uint) error {
	delete(m.topics, id)
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockTopicRepository) FindQuestionsByTopicIDs(_ context.Context, topicIDs []uint) ([]models.Question, error) {
	wanted := make(map[uint]bool, len(topicIDs))
	for _, id := range topicIDs {
		wanted[id] = true
	}
	var questions []models.Question
	for _, question := range m.questions {
		if wanted[question.TopicID] {
			questions = append(questions, question)
		}
	}
	return questions, nil
}

func (m *mockTopicRepository) FindAnswersByQuestionIDs(_ context.Context, questionIDs []uint) ([]models.Answer, error) {
	wanted := make(map[uint]bool, len(questionIDs))
	for _, id := range questionIDs {
		wanted[id] = true
	}
	var answers []models.Answer
	for _, answer := range m.answers {
		if wanted[answer.QuestionID] {
			answers = append(answers, answer)
		}
	}
	return answers, nil
}

func (m *mockTopicRepository) FindUserAnswers(_ context.Context, userID uint) ([]models.UserAnswer, error) {
	var userAnswers []models.UserAnswer
	for _, userAnswer := range m.userAnswers {
		if userAnswer.UserID == userID {
			userAnswers = append(userAnswers, userAnswer)
		}
	}
	return userAnswers, nil
}

func (m *mockTopicRepository) ClassifyTopicIDs(context.Context, uint, bool) ([]uint, error) {
	return m.classified, nil
}

func newTestService(repo TopicRepository) TopicService {
	return NewTopicService(repo, audit.NewNopPublisher())
}

func seedTopic(t *testing.T, service TopicService, title string) *models.TopicResponse {
	t.Helper()
	topic, err := service.Create(context.Background(), &models.CreateTopicRequest{
		Title:       title,
		StartDate:   "2020-08-10",
		FinishDate:  "2020-08-15",
		Description: "d",
	})
	require.NoError(t, err)
	return topic
}

func TestCreateTopic(t *testing.T) {
	service := newTestService(newMockTopicRepository())

	topic := seedTopic(t, service, "T1")

	assert.NotZero(t, topic.ID)
	assert.Equal(t, "2020-08-10", topic.StartDate)
	assert.Empty(t, topic.Questions)
}

func TestCreateTopicRejectsBadDates(t *testing.T) {
	service := newTestService(newMockTopicRepository())

	_, err := service.Create(context.Background(), &models.CreateTopicRequest{
		Title:      "T1",
		StartDate:  "10.08.2020",
		FinishDate: "2020-08-15",
	})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestUpdateTopicRejectsStartDateKey(t *testing.T) {
	repo := newMockTopicRepository()
	service := newTestService(repo)
	topic := seedTopic(t, service, "T1")

	for name, payload := range map[string]string{
		"with value": `{"start_date":"2019-01-01","description":"sneaky"}`,
		"with null":  `{"start_date":null,"description":"sneaky"}`,
	} {
		t.Run(name, func(t *testing.T) {
			var req models.UpdateTopicRequest
			require.NoError(t, json.Unmarshal([]byte(payload), &req))

			_, err := service.Update(context.Background(), topic.ID, &req)
			assert.ErrorIs(t, err, ErrStartDateImmutable)

			// no other field of the same request may be applied
			stored := repo.topics[topic.ID]
			assert.Equal(t, "d", stored.Description)
			assert.Equal(t, "2020-08-10", stored.StartDate)
		})
	}
}

func TestUpdateTopicPartialFields(t *testing.T) {
	repo := newMockTopicRepository()
	service := newTestService(repo)
	topic := seedTopic(t, service, "T1")

	description := "Updated field."
	updated, err := service.Update(context.Background(), topic.ID, &models.UpdateTopicRequest{
		Description: &description,
	})

	require.NoError(t, err)
	assert.Equal(t, "Updated field.", updated.Description)
	assert.Equal(t, "T1", updated.Title)
	assert.Equal(t, "2020-08-10", repo.topics[topic.ID].StartDate)
}

func TestGetTopicNotFound(t *testing.T) {
	service := newTestService(newMockTopicRepository())

	_, err := service.Get(context.Background(), 99)
	assert.ErrorIs(t, err, ErrTopicNotFound)
}

func TestListTopicsNestsQuestionsAndAnswers(t *testing.T) {
	repo := newMockTopicRepository()
	service := newTestService(repo)
	first := seedTopic(t, service, "T1")
	second := seedTopic(t, service, "T2")

	repo.questions = []models.Question{
		{ID: 1, Text: "Q1", Type: models.QuestionTypeOne, TopicID: first.ID},
		{ID: 2, Text: "Q2", Type: models.QuestionTypeCustom, TopicID: first.ID},
	}
	repo.answers = []models.Answer{
		{ID: 1, Text: "A", QuestionID: 1},
		{ID: 2, Text: "B", QuestionID: 1},
	}

	topics, err := service.List(context.Background())
	require.NoError(t, err)
	require.Len(t, topics, 2)

	require.Len(t, topics[0].Questions, 2)
	assert.Len(t, topics[0].Questions[0].Answers, 2)
	assert.Empty(t, topics[0].Questions[1].Answers)
	assert.Nil(t, topics[0].Questions[0].AnswerID)

	// a topic without questions serializes an empty list, not null
	assert.Equal(t, second.ID, topics[1].ID)
	assert.NotNil(t, topics[1].Questions)
	assert.Empty(t, topics[1].Questions)
}

func TestDeleteTopicCascades(t *testing.T) {
	repo := newMockTopicRepository()
	service := newTestService(repo)
	topic := seedTopic(t, service, "T1")

	require.NoError(t, service.Delete(context.Background(), topic.ID))
	assert.Equal(t, []uint{topic.ID}, repo.deleted)

	assert.ErrorIs(t, service.Delete(context.Background(), topic.ID), ErrTopicNotFound)
}

func TestListUserTopicsRejectsUnknownMode(t *testing.T) {
	service := newTestService(newMockTopicRepository())

	_, err := service.ListUserTopics(context.Background(), 1, "finished")
	assert.ErrorIs(t, err, ErrInvalidTopicMode)
}

func TestListUserTopicsEmptyClassification(t *testing.T) {
	repo := newMockTopicRepository()
	service := newTestService(repo)

	topics, err := service.ListUserTopics(context.Background(), 1, UserTopicModePassed)
	require.NoError(t, err)
	assert.NotNil(t, topics)
	assert.Empty(t, topics)
}

func TestListUserTopicsActiveFiltersByDateWindow(t *testing.T) {
	repo := newMockTopicRepository()
	service := newTestService(repo)

	today := time.Now().Format("2006-01-02")
	current, err := service.Create(context.Background(), &models.CreateTopicRequest{
		Title:      "current",
		StartDate:  today,
		FinishDate: today,
	})
	require.NoError(t, err)
	expired := seedTopic(t, service, "expired") // window fixed in 2020

	repo.classified = []uint{current.ID, expired.ID}
	repo.questions = []models.Question{
		{ID: 1, Text: "Q1", Type: models.QuestionTypeOne, TopicID: current.ID},
	}

	topics, err := service.ListUserTopics(context.Background(), 7, UserTopicModeActive)
	require.NoError(t, err)
	assert.Equal(t, today, repo.activeDateSeen)
	require.Len(t, topics, 1)
	assert.Equal(t, current.ID, topics[0].ID)
}

func TestListUserTopicsPassedAnnotatesAnswers(t *testing.T) {
	repo := newMockTopicRepository()
	service := newTestService(repo)
	topic := seedTopic(t, service, "T1") // window in 2020: passed ignores dates

	repo.classified = []uint{topic.ID}
	repo.questions = []models.Question{
		{ID: 1, Text: "Q1", Type: models.QuestionTypeOne, TopicID: topic.ID},
		{ID: 2, Text: "Q2", Type: models.QuestionTypeOne, TopicID: topic.ID},
	}
	repo.answers = []models.Answer{
		{ID: 10, Text: "A", QuestionID: 1},
		{ID: 11, Text: "B", QuestionID: 2},
	}
	repo.userAnswers = []models.UserAnswer{
		{ID: 1, UserID: 7, QuestionID: 1, AnswerID: 10},
		{ID: 2, UserID: 7, QuestionID: 2, AnswerID: 11},
		{ID: 3, UserID: 8, QuestionID: 1, AnswerID: 10},
	}

	topics, err := service.ListUserTopics(context.Background(), 7, UserTopicModePassed)
	require.NoError(t, err)
	require.Len(t, topics, 1)
	require.Len(t, topics[0].Questions, 2)

	first := topics[0].Questions[0]
	require.NotNil(t, first.AnswerID)
	assert.Equal(t, uint(10), *first.AnswerID)

	second := topics[0].Questions[1]
	require.NotNil(t, second.AnswerID)
	assert.Equal(t, uint(11), *second.AnswerID)
}
