package question

import (
	"context"

	"interview-service/internal/models"

	"gorm.io/gorm"
)

type QuestionRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Question, error)
	TopicExists(ctx context.Context, topicID uint) (bool, error)
	CountUserAnswers(ctx context.Context, questionID uint) (int64, error)
	CreateWithAnswers(ctx context.Context, question *models.Question, answerTexts []string) error
	UpdateReplacingAnswers(ctx context.Context, question *models.Question, answerTexts []string) error
	DeleteCascade(ctx context.Context, id uint) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) FindByID(ctx context.Context, id uint) (*models.Question, error) {
	var question models.Question
	if err := r.db.WithContext(ctx).First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) TopicExists(ctx context.Context, topicID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Topic{}).Where("id = ?", topicID).Count(&count).Error
	return count > 0, err
}

func (r *questionRepository) CountUserAnswers(ctx context.Context, questionID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.UserAnswer{}).Where("question_id = ?", questionID).Count(&count).Error
	return count, err
}

// CreateWithAnswers persists the question and one answer per text in a
// single transaction, so a reader never observes an enumerated question
// without its answers.
func (r *questionRepository) CreateWithAnswers(ctx context.Context, question *models.Question, answerTexts []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(question).Error; err != nil {
			return err
		}
		return createAnswers(tx, question, answerTexts)
	})
}

// UpdateReplacingAnswers saves the question's fields and swaps its full
// answer set for the given texts, all inside one transaction. User answers
// pointing at the replaced answers go with them; a row referencing a removed
// answer id would make the classification count the question as answered.
func (r *questionRepository) UpdateReplacingAnswers(ctx context.Context, question *models.Question, answerTexts []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var answerIDs []uint
		if err := tx.Model(&models.Answer{}).Where("question_id = ?", question.ID).Pluck("id", &answerIDs).Error; err != nil {
			return err
		}
		if len(answerIDs) > 0 {
			if err := tx.Where("answer_id IN ?", answerIDs).Delete(&models.UserAnswer{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("question_id = ?", question.ID).Delete(&models.Answer{}).Error; err != nil {
			return err
		}
		question.Answers = nil
		if err := tx.Save(question).Error; err != nil {
			return err
		}
		return createAnswers(tx, question, answerTexts)
	})
}

func (r *questionRepository) DeleteCascade(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id = ?", id).Delete(&models.Answer{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Question{}, id).Error
	})
}

func createAnswers(tx *gorm.DB, question *models.Question, answerTexts []string) error {
	if len(answerTexts) == 0 {
		return nil
	}

	answers := make([]models.Answer, len(answerTexts))
	for i, text := range answerTexts {
		answers[i] = models.Answer{Text: text, QuestionID: question.ID}
	}
	if err := tx.Create(&answers).Error; err != nil {
		return err
	}
	question.Answers = answers
	return nil
}
