package topic

import (
	"context"

	"interview-service/internal/models"

	"gorm.io/gorm"
)

type TopicRepository interface {
	FindAll(ctx context.Context) ([]models.Topic, error)
	FindByID(ctx context.Context, id uint) (*models.Topic, error)
	FindByIDs(ctx context.Context, ids []uint) ([]models.Topic, error)
	FindActiveByIDs(ctx context.Context, ids []uint, date string) ([]models.Topic, error)
	Create(ctx context.Context, topic *models.Topic) error
	Update(ctx context.Context, topic *models.Topic) error
	DeleteCascade(ctx context.Context, id uint) error

	FindQuestionsByTopicIDs(ctx context.Context, topicIDs []uint) ([]models.Question, error)
	FindAnswersByQuestionIDs(ctx context.Context, questionIDs []uint) ([]models.Answer, error)
	FindUserAnswers(ctx context.Context, userID uint) ([]models.UserAnswer, error)
	ClassifyTopicIDs(ctx context.Context, userID uint, passed bool) ([]uint, error)
}

type topicRepository struct {
	db *gorm.DB
}

func NewTopicRepository(db *gorm.DB) TopicRepository {
	return &topicRepository{db: db}
}

func (r *topicRepository) FindAll(ctx context.Context) ([]models.Topic, error) {
	var topics []models.Topic
	err := r.db.WithContext(ctx).Order("id").Find(&topics).Error
	return topics, err
}

func (r *topicRepository) FindByID(ctx context.Context, id uint) (*models.Topic, error) {
	var topic models.Topic
	if err := r.db.WithContext(ctx).First(&topic, id).Error; err != nil {
		return nil, err
	}
	return &topic, nil
}

func (r *topicRepository) FindByIDs(ctx context.Context, ids []uint) ([]models.Topic, error) {
	var topics []models.Topic
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id").Find(&topics).Error
	return topics, err
}

func (r *topicRepository) FindActiveByIDs(ctx context.Context, ids []uint, date string) ([]models.Topic, error) {
	var topics []models.Topic
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Where("start_date <= ? AND finish_date >= ?", date, date).
		Order("id").
		Find(&topics).Error
	return topics, err
}

func (r *topicRepository) Create(ctx context.Context, topic *models.Topic) error {
	return r.db.WithContext(ctx).Create(topic).Error
}

func (r *topicRepository) Update(ctx context.Context, topic *models.Topic) error {
	return r.db.WithContext(ctx).Save(topic).Error
}

// DeleteCascade removes the topic together with its questions, their answers
// and any user answers referencing those questions, in one transaction.
func (r *topicRepository) DeleteCascade(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var questionIDs []uint
		if err := tx.Model(&models.Question{}).Where("topic_id = ?", id).Pluck("id", &questionIDs).Error; err != nil {
			return err
		}

		if len(questionIDs) > 0 {
			if err := tx.Where("question_id IN ?", questionIDs).Delete(&models.UserAnswer{}).Error; err != nil {
				return err
			}
			if err := tx.Where("question_id IN ?", questionIDs).Delete(&models.Answer{}).Error; err != nil {
				return err
			}
			if err := tx.Where("topic_id = ?", id).Delete(&models.Question{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&models.Topic{}, id).Error
	})
}

func (r *topicRepository) FindQuestionsByTopicIDs(ctx context.Context, topicIDs []uint) ([]models.Question, error) {
	if len(topicIDs) == 0 {
		return nil, nil
	}
	var questions []models.Question
	err := r.db.WithContext(ctx).Where("topic_id IN ?", topicIDs).Order("id").Find(&questions).Error
	return questions, err
}

func (r *topicRepository) FindAnswersByQuestionIDs(ctx context.Context, questionIDs []uint) ([]models.Answer, error) {
	if len(questionIDs) == 0 {
		return nil, nil
	}
	var answers []models.Answer
	err := r.db.WithContext(ctx).Where("question_id IN ?", questionIDs).Order("id").Find(&answers).Error
	return answers, err
}

func (r *topicRepository) FindUserAnswers(ctx context.Context, userID uint) ([]models.UserAnswer, error) {
	var userAnswers []models.UserAnswer
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&userAnswers).Error
	return userAnswers, err
}

// ClassifyTopicIDs groups questions by topic and counts, per topic, how many
// of them the user has answered. passed selects topics with every question
// answered; otherwise topics with at least one unanswered question. Topics
// without questions never enter the grouping.
func (r *topicRepository) ClassifyTopicIDs(ctx context.Context, userID uint, passed bool) ([]uint, error) {
	query := r.db.WithContext(ctx).Model(&models.Question{}).
		Joins("LEFT JOIN user_answers ON user_answers.question_id = questions.id AND user_answers.user_id = ?", userID).
		Group("questions.topic_id")

	if passed {
		query = query.Having("COUNT(questions.id) = COUNT(user_answers.id)")
	} else {
		query = query.Having("COUNT(questions.id) > COUNT(user_answers.id)")
	}

	var topicIDs []uint
	err := query.Pluck("questions.topic_id", &topicIDs).Error
	return topicIDs, err
}
