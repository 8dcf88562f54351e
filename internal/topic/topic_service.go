package topic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"interview-service/internal/audit"
	"interview-service/internal/models"

	"gorm.io/gorm"
)

var (
	ErrTopicNotFound      = errors.New("topic not found")
	ErrStartDateImmutable = errors.New("field 'start_date' can't be modified")
	ErrInvalidDate        = errors.New("date must be formatted as YYYY-MM-DD")
	ErrInvalidTopicMode   = errors.New("type must be 'active' or 'passed'")
)

// Classification modes for ListUserTopics.
const (
	UserTopicModeActive = "active"
	UserTopicModePassed = "passed"
)

const dateLayout = "2006-01-02"

type TopicService interface {
	List(ctx context.Context) ([]models.TopicResponse, error)
	Get(ctx context.Context, id uint) (*models.TopicResponse, error)
	Create(ctx context.Context, req *models.CreateTopicRequest) (*models.TopicResponse, error)
	Update(ctx context.Context, id uint, req *models.UpdateTopicRequest) (*models.TopicResponse, error)
	Delete(ctx context.Context, id uint) error
	ListUserTopics(ctx context.Context, userID uint, mode string) ([]models.TopicResponse, error)
}

type topicService struct {
	repo  TopicRepository
	audit audit.Publisher
}

func NewTopicService(repo TopicRepository, auditPublisher audit.Publisher) TopicService {
	return &topicService{repo: repo, audit: auditPublisher}
}

func (s *topicService) List(ctx context.Context) ([]models.TopicResponse, error) {
	topics, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list topics: %w", err)
	}
	return s.buildNested(ctx, topics, nil)
}

func (s *topicService) Get(ctx context.Context, id uint) (*models.TopicResponse, error) {
	topic, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTopicNotFound
		}
		return nil, fmt.Errorf("failed to get topic: %w", err)
	}

	responses, err := s.buildNested(ctx, []models.Topic{*topic}, nil)
	if err != nil {
		return nil, err
	}
	return &responses[0], nil
}

func (s *topicService) Create(ctx context.Context, req *models.CreateTopicRequest) (*models.TopicResponse, error) {
	for _, date := range []string{req.StartDate, req.FinishDate} {
		if _, err := time.Parse(dateLayout, date); err != nil {
			return nil, ErrInvalidDate
		}
	}

	topic := &models.Topic{
		Title:       req.Title,
		StartDate:   req.StartDate,
		FinishDate:  req.FinishDate,
		Description: req.Description,
	}

	if err := s.repo.Create(ctx, topic); err != nil {
		return nil, fmt.Errorf("failed to create topic: %w", err)
	}
	s.publish(ctx, "created", topic.ID)

	return &models.TopicResponse{
		ID:          topic.ID,
		Title:       topic.Title,
		StartDate:   topic.StartDate,
		FinishDate:  topic.FinishDate,
		Description: topic.Description,
		Questions:   []models.QuestionResponse{},
	}, nil
}

// Update applies the supplied subset of title/finish_date/description. A
// request whose body carries a start_date key is rejected outright, whatever
// the value, and none of its other fields are applied.
func (s *topicService) Update(ctx context.Context, id uint, req *models.UpdateTopicRequest) (*models.TopicResponse, error) {
	if req.StartDate != nil {
		return nil, ErrStartDateImmutable
	}

	topic, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTopicNotFound
		}
		return nil, fmt.Errorf("failed to get topic: %w", err)
	}

	if req.Title != nil {
		topic.Title = *req.Title
	}
	if req.FinishDate != nil {
		if _, err := time.Parse(dateLayout, *req.FinishDate); err != nil {
			return nil, ErrInvalidDate
		}
		topic.FinishDate = *req.FinishDate
	}
	if req.Description != nil {
		topic.Description = *req.Description
	}

	if err := s.repo.Update(ctx, topic); err != nil {
		return nil, fmt.Errorf("failed to update topic: %w", err)
	}
	s.publish(ctx, "updated", topic.ID)

	responses, err := s.buildNested(ctx, []models.Topic{*topic}, nil)
	if err != nil {
		return nil, err
	}
	return &responses[0], nil
}

func (s *topicService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTopicNotFound
		}
		return fmt.Errorf("failed to get topic: %w", err)
	}

	if err := s.repo.DeleteCascade(ctx, id); err != nil {
		return fmt.Errorf("failed to delete topic: %w", err)
	}
	s.publish(ctx, "deleted", id)
	return nil
}

// ListUserTopics classifies topics for one user. Active topics have at least
// one question unanswered by the user and a date window containing today;
// passed topics have every question answered, date window ignored. Answered
// questions carry the picked answer_id in the response.
func (s *topicService) ListUserTopics(ctx context.Context, userID uint, mode string) ([]models.TopicResponse, error) {
	if mode != UserTopicModeActive && mode != UserTopicModePassed {
		return nil, ErrInvalidTopicMode
	}
	passed := mode == UserTopicModePassed

	topicIDs, err := s.repo.ClassifyTopicIDs(ctx, userID, passed)
	if err != nil {
		return nil, fmt.Errorf("failed to classify topics: %w", err)
	}
	if len(topicIDs) == 0 {
		return []models.TopicResponse{}, nil
	}

	var topics []models.Topic
	if passed {
		topics, err = s.repo.FindByIDs(ctx, topicIDs)
	} else {
		topics, err = s.repo.FindActiveByIDs(ctx, topicIDs, time.Now().Format(dateLayout))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load topics: %w", err)
	}

	userAnswers, err := s.repo.FindUserAnswers(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user answers: %w", err)
	}
	answerByQuestion := make(map[uint]uint, len(userAnswers))
	for _, userAnswer := range userAnswers {
		answerByQuestion[userAnswer.QuestionID] = userAnswer.AnswerID
	}

	return s.buildNested(ctx, topics, answerByQuestion)
}

// buildNested assembles topic responses from one bulk query per related
// table, merged with maps keyed by parent id. answerByQuestion, when not
// nil, annotates answered questions with the user's answer_id.
func (s *topicService) buildNested(ctx context.Context, topics []models.Topic, answerByQuestion map[uint]uint) ([]models.TopicResponse, error) {
	topicIDs := make([]uint, len(topics))
	for i, topic := range topics {
		topicIDs[i] = topic.ID
	}

	questions, err := s.repo.FindQuestionsByTopicIDs(ctx, topicIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load questions: %w", err)
	}

	questionIDs := make([]uint, len(questions))
	for i, question := range questions {
		questionIDs[i] = question.ID
	}

	answers, err := s.repo.FindAnswersByQuestionIDs(ctx, questionIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load answers: %w", err)
	}

	answersByQuestion := make(map[uint][]models.AnswerResponse, len(questions))
	for _, answer := range answers {
		answersByQuestion[answer.QuestionID] = append(answersByQuestion[answer.QuestionID], models.AnswerResponse{
			ID:   answer.ID,
			Text: answer.Text,
		})
	}

	questionsByTopic := make(map[uint][]models.QuestionResponse, len(topics))
	for _, question := range questions {
		nestedAnswers := answersByQuestion[question.ID]
		if nestedAnswers == nil {
			nestedAnswers = []models.AnswerResponse{}
		}

		response := models.QuestionResponse{
			ID:      question.ID,
			Text:    question.Text,
			Type:    question.Type,
			TopicID: question.TopicID,
			Answers: nestedAnswers,
		}
		if answerID, ok := answerByQuestion[question.ID]; ok {
			answerID := answerID
			response.AnswerID = &answerID
		}

		questionsByTopic[question.TopicID] = append(questionsByTopic[question.TopicID], response)
	}

	responses := make([]models.TopicResponse, len(topics))
	for i, topic := range topics {
		nestedQuestions := questionsByTopic[topic.ID]
		if nestedQuestions == nil {
			nestedQuestions = []models.QuestionResponse{}
		}
		responses[i] = models.TopicResponse{
			ID:          topic.ID,
			Title:       topic.Title,
			StartDate:   topic.StartDate,
			FinishDate:  topic.FinishDate,
			Description: topic.Description,
			Questions:   nestedQuestions,
		}
	}

	return responses, nil
}

func (s *topicService) publish(ctx context.Context, action string, id uint) {
	if err := s.audit.Publish(ctx, audit.Event{Entity: "topic", Action: action, EntityID: id}); err != nil {
		slog.Warn("Failed to publish audit event", "entity", "topic", "action", action, "error", err)
	}
}
