package answer

import (
	"context"

	"interview-service/internal/models"

	"gorm.io/gorm"
)

type AnswerRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Answer, error)
	Update(ctx context.Context, answer *models.Answer) error
	Delete(ctx context.Context, id uint) error
	CountUserAnswers(ctx context.Context, answerID uint) (int64, error)
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) FindByID(ctx context.Context, id uint) (*models.Answer, error) {
	var answer models.Answer
	if err := r.db.WithContext(ctx).First(&answer, id).Error; err != nil {
		return nil, err
	}
	return &answer, nil
}

func (r *answerRepository) Update(ctx context.Context, answer *models.Answer) error {
	return r.db.WithContext(ctx).Save(answer).Error
}

func (r *answerRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Answer{}, id).Error
}

func (r *answerRepository) CountUserAnswers(ctx context.Context, answerID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.UserAnswer{}).Where("answer_id = ?", answerID).Count(&count).Error
	return count, err
}
