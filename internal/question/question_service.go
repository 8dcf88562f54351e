package question

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"interview-service/internal/audit"
	"interview-service/internal/models"

	"gorm.io/gorm"
)

var (
	ErrQuestionNotFound   = errors.New("question not found")
	ErrTopicNotFound      = errors.New("topic not found")
	ErrInvalidType        = errors.New("type must be 'custom', 'one' or 'multiple'")
	ErrAnswersRequired    = errors.New("questions of type 'one' or 'multiple' require at least one answer")
	ErrAnswersNotAllowed  = errors.New("questions of type 'custom' can't have answers")
	ErrQuestionReferenced = errors.New("question is referenced by user answers")
)

type QuestionService interface {
	Create(ctx context.Context, req *models.CreateQuestionRequest) (*models.QuestionResponse, error)
	Update(ctx context.Context, id uint, req *models.UpdateQuestionRequest) (*models.QuestionResponse, error)
	Delete(ctx context.Context, id uint) error
}

type questionService struct {
	repo  QuestionRepository
	audit audit.Publisher
}

func NewQuestionService(repo QuestionRepository, auditPublisher audit.Publisher) QuestionService {
	return &questionService{repo: repo, audit: auditPublisher}
}

// validateAnswers enforces the type/answers consistency invariant:
// enumerated types need at least one answer, custom questions none.
func validateAnswers(questionType models.QuestionType, answers []string) error {
	if !questionType.Valid() {
		return ErrInvalidType
	}
	if questionType.Enumerated() && len(answers) == 0 {
		return ErrAnswersRequired
	}
	if !questionType.Enumerated() && len(answers) > 0 {
		return ErrAnswersNotAllowed
	}
	return nil
}

func (s *questionService) Create(ctx context.Context, req *models.CreateQuestionRequest) (*models.QuestionResponse, error) {
	if err := validateAnswers(req.Type, req.Answers); err != nil {
		return nil, err
	}

	exists, err := s.repo.TopicExists(ctx, req.TopicID)
	if err != nil {
		return nil, fmt.Errorf("failed to check topic: %w", err)
	}
	if !exists {
		return nil, ErrTopicNotFound
	}

	question := &models.Question{
		Text:    req.Text,
		Type:    req.Type,
		TopicID: req.TopicID,
	}
	if err := s.repo.CreateWithAnswers(ctx, question, req.Answers); err != nil {
		return nil, fmt.Errorf("failed to create question: %w", err)
	}
	s.publish(ctx, "created", question.ID)

	return buildResponse(question), nil
}

// Update treats the submitted answer list as the question's complete new
// answer set; an omitted answers key means an empty set. Validation runs
// against the effective type before anything is written, and the answer
// replacement plus field changes commit atomically.
func (s *questionService) Update(ctx context.Context, id uint, req *models.UpdateQuestionRequest) (*models.QuestionResponse, error) {
	question, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("failed to get question: %w", err)
	}

	effectiveType := question.Type
	if req.Type != nil {
		effectiveType = *req.Type
	}
	if err := validateAnswers(effectiveType, req.Answers); err != nil {
		return nil, err
	}

	if req.Text != nil {
		question.Text = *req.Text
	}
	question.Type = effectiveType

	if err := s.repo.UpdateReplacingAnswers(ctx, question, req.Answers); err != nil {
		return nil, fmt.Errorf("failed to update question: %w", err)
	}
	s.publish(ctx, "updated", question.ID)

	return buildResponse(question), nil
}

func (s *questionService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrQuestionNotFound
		}
		return fmt.Errorf("failed to get question: %w", err)
	}

	references, err := s.repo.CountUserAnswers(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count user answers: %w", err)
	}
	if references > 0 {
		return ErrQuestionReferenced
	}

	if err := s.repo.DeleteCascade(ctx, id); err != nil {
		return fmt.Errorf("failed to delete question: %w", err)
	}
	s.publish(ctx, "deleted", id)
	return nil
}

func buildResponse(question *models.Question) *models.QuestionResponse {
	answers := make([]models.AnswerResponse, len(question.Answers))
	for i, answer := range question.Answers {
		answers[i] = models.AnswerResponse{ID: answer.ID, Text: answer.Text}
	}

	return &models.QuestionResponse{
		ID:      question.ID,
		Text:    question.Text,
		Type:    question.Type,
		TopicID: question.TopicID,
		Answers: answers,
	}
}

func (s *questionService) publish(ctx context.Context, action string, id uint) {
	if err := s.audit.Publish(ctx, audit.Event{Entity: "question", Action: action, EntityID: id}); err != nil {
		slog.Warn("Failed to publish audit event", "entity", "question", "action", action, "error", err)
	}
}
