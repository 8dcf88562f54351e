package useranswer

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
	ErrQuestionNotFound = errors.New("question not found")
	ErrAnswerNotFound   = errors.New("answer not found")
)

// UserAnswerService records which answer a user picked for a question. The
// upsert is the only write path; user answers have no direct update or
// delete endpoint.
type UserAnswerService interface {
	Submit(ctx context.Context, req *models.SubmitUserAnswerRequest) (*models.UserAnswerResponse, error)
}

type userAnswerService struct {
	repo  UserAnswerRepository
	audit audit.Publisher
}

func NewUserAnswerService(repo UserAnswerRepository, auditPublisher audit.Publisher) UserAnswerService {
	return &userAnswerService{repo: repo, audit: auditPublisher}
}

func (s *userAnswerService) Submit(ctx context.Context, req *models.SubmitUserAnswerRequest) (*models.UserAnswerResponse, error) {
	question, err := s.repo.FindQuestion(ctx, req.QuestionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("failed to get question: %w", err)
	}

	answer, err := s.repo.FindAnswer(ctx, req.AnswerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnswerNotFound
		}
		return nil, fmt.Errorf("failed to get answer: %w", err)
	}

	userAnswer, err := s.repo.Upsert(ctx, req.UserID, req.QuestionID, req.AnswerID)
	if err != nil {
		return nil, fmt.Errorf("failed to submit user answer: %w", err)
	}
	s.publish(ctx, userAnswer.ID)

	questionAnswers, err := s.repo.FindQuestionAnswers(ctx, question.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load answers: %w", err)
	}
	nestedAnswers := make([]models.AnswerResponse, len(questionAnswers))
	for i, questionAnswer := range questionAnswers {
		nestedAnswers[i] = models.AnswerResponse{ID: questionAnswer.ID, Text: questionAnswer.Text}
	}

	return &models.UserAnswerResponse{
		ID:     userAnswer.ID,
		UserID: userAnswer.UserID,
		Question: models.QuestionResponse{
			ID:      question.ID,
			Text:    question.Text,
			Type:    question.Type,
			TopicID: question.TopicID,
			Answers: nestedAnswers,
		},
		Answer: models.AnswerResponse{ID: answer.ID, Text: answer.Text},
	}, nil
}

func (s *userAnswerService) publish(ctx context.Context, id uint) {
	if err := s.audit.Publish(ctx, audit.Event{Entity: "user_answer", Action: "submitted", EntityID: id}); err != nil {
		slog.Warn("Failed to publish audit event", "entity", "user_answer", "error", err)
	}
}
