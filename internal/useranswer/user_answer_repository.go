package useranswer

import (
	"context"
	"errors"

	"interview-service/internal/models"

	"gorm.io/gorm"
)

type UserAnswerRepository interface {
	Upsert(ctx context.Context, userID, questionID, answerID uint) (*models.UserAnswer, error)
	FindQuestion(ctx context.Context, id uint) (*models.Question, error)
	FindQuestionAnswers(ctx context.Context, questionID uint) ([]models.Answer, error)
	FindAnswer(ctx context.Context, id uint) (*models.Answer, error)
}

type userAnswerRepository struct {
	db *gorm.DB
}

func NewUserAnswerRepository(db *gorm.DB) UserAnswerRepository {
	return &userAnswerRepository{db: db}
}

// Upsert keeps at most one row per (user, question): an existing row gets
// its answer_id overwritten in place, otherwise a new row is inserted. The
// lookup and the write share a transaction so two concurrent submissions
// cannot both insert; the composite unique index backstops the invariant.
func (r *userAnswerRepository) Upsert(ctx context.Context, userID, questionID, answerID uint) (*models.UserAnswer, error) {
	var userAnswer models.UserAnswer
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("user_id = ? AND question_id = ?", userID, questionID).First(&userAnswer).Error
		if err == nil {
			userAnswer.AnswerID = answerID
			return tx.Save(&userAnswer).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		userAnswer = models.UserAnswer{
			UserID:     userID,
			QuestionID: questionID,
			AnswerID:   answerID,
		}
		return tx.Create(&userAnswer).Error
	})
	if err != nil {
		return nil, err
	}
	return &userAnswer, nil
}

func (r *userAnswerRepository) FindQuestion(ctx context.Context, id uint) (*models.Question, error) {
	var question models.Question
	if err := r.db.WithContext(ctx).First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *userAnswerRepository) FindQuestionAnswers(ctx context.Context, questionID uint) ([]models.Answer, error) {
	var answers []models.Answer
	err := r.db.WithContext(ctx).Where("question_id = ?", questionID).Order("id").Find(&answers).Error
	return answers, err
}

func (r *userAnswerRepository) FindAnswer(ctx context.Context, id uint) (*models.Answer, error) {
	var answer models.Answer
	if err := r.db.WithContext(ctx).First(&answer, id).Error; err != nil {
		return nil, err
	}
	return &answer, nil
}
