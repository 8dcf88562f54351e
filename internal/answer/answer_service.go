package answer

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
	ErrAnswerNotFound   = errors.New("answer not found")
	ErrAnswerReferenced = errors.New("answer is referenced by user answers")
)

// AnswerService updates and deletes individual answers. Answers are only
// ever created through question create/update.
type AnswerService interface {
	Update(ctx context.Context, id uint, req *models.UpdateAnswerRequest) (*models.AnswerResponse, error)
	Delete(ctx context.Context, id uint) error
}

type answerService struct {
	repo  AnswerRepository
	audit audit.Publisher
}

func NewAnswerService(repo AnswerRepository, auditPublisher audit.Publisher) AnswerService {
	return &answerService{repo: repo, audit: auditPublisher}
}

func (s *answerService) Update(ctx context.Context, id uint, req *models.UpdateAnswerRequest) (*models.AnswerResponse, error) {
	answer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnswerNotFound
		}
		return nil, fmt.Errorf("failed to get answer: %w", err)
	}

	answer.Text = req.Text
	if err := s.repo.Update(ctx, answer); err != nil {
		return nil, fmt.Errorf("failed to update answer: %w", err)
	}
	s.publish(ctx, "updated", answer.ID)

	return &models.AnswerResponse{ID: answer.ID, Text: answer.Text}, nil
}

func (s *answerService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAnswerNotFound
		}
		return fmt.Errorf("failed to get answer: %w", err)
	}

	references, err := s.repo.CountUserAnswers(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count user answers: %w", err)
	}
	if references > 0 {
		return ErrAnswerReferenced
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete answer: %w", err)
	}
	s.publish(ctx, "deleted", id)
	return nil
}

func (s *answerService) publish(ctx context.Context, action string, id uint) {
	if err := s.audit.Publish(ctx, audit.Event{Entity: "answer", Action: action, EntityID: id}); err != nil {
		slog.Warn("Failed to publish audit event", "entity", "answer", "action", action, "error", err)
	}
}
