package topic

import (
	"context"
	"testing"

	"interview-service/internal/database"
	"interview-service/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// a single connection keeps every query on the same in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func createTopic(t *testing.T, db *gorm.DB, title string, questionCount int) (*models.Topic, []models.Question) {
	t.Helper()
	topic := &models.Topic{Title: title, StartDate: "2020-08-10", FinishDate: "2020-08-15"}
	require.NoError(t, db.Create(topic).Error)

	questions := make([]models.Question, questionCount)
	for i := range questions {
		questions[i] = models.Question{Text: "Q", Type: models.QuestionTypeOne, TopicID: topic.ID}
		require.NoError(t, db.Create(&questions[i]).Error)

		answer := models.Answer{Text: "A", QuestionID: questions[i].ID}
		require.NoError(t, db.Create(&answer).Error)
		questions[i].Answers = []models.Answer{answer}
	}
	return topic, questions
}

func answerQuestion(t *testing.T, db *gorm.DB, userID uint, question models.Question) {
	t.Helper()
	require.NoError(t, db.Create(&models.UserAnswer{
		UserID:     userID,
		QuestionID: question.ID,
		AnswerID:   question.Answers[0].ID,
	}).Error)
}

func TestClassifyTopicIDs(t *testing.T) {
	db := newTestDB(t)
	repo := NewTopicRepository(db)
	ctx := context.Background()

	partial, partialQuestions := createTopic(t, db, "partial", 3)
	_, _ = createTopic(t, db, "empty", 0)
	untouched, untouchedQuestions := createTopic(t, db, "untouched", 1)

	answerQuestion(t, db, 7, partialQuestions[0])
	answerQuestion(t, db, 7, partialQuestions[1])
	// another user's answers must not count towards user 7
	answerQuestion(t, db, 8, untouchedQuestions[0])

	active, err := repo.ClassifyTopicIDs(ctx, 7, false)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{partial.ID, untouched.ID}, active)

	passed, err := repo.ClassifyTopicIDs(ctx, 7, true)
	require.NoError(t, err)
	assert.Empty(t, passed)

	// answering the last question moves the topic from active to passed
	answerQuestion(t, db, 7, partialQuestions[2])

	active, err = repo.ClassifyTopicIDs(ctx, 7, false)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{untouched.ID}, active)

	passed, err = repo.ClassifyTopicIDs(ctx, 7, true)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{partial.ID}, passed)
}

func TestClassifyTopicIDsExcludesQuestionlessTopics(t *testing.T) {
	db := newTestDB(t)
	repo := NewTopicRepository(db)
	ctx := context.Background()

	createTopic(t, db, "empty", 0)

	for _, passed := range []bool{false, true} {
		ids, err := repo.ClassifyTopicIDs(ctx, 7, passed)
		require.NoError(t, err)
		assert.Empty(t, ids)
	}
}

func TestDeleteCascadeRemovesDependents(t *testing.T) {
	db := newTestDB(t)
	repo := NewTopicRepository(db)
	ctx := context.Background()

	doomed, doomedQuestions := createTopic(t, db, "doomed", 2)
	kept, keptQuestions := createTopic(t, db, "kept", 1)
	answerQuestion(t, db, 7, doomedQuestions[0])
	answerQuestion(t, db, 7, keptQuestions[0])

	require.NoError(t, repo.DeleteCascade(ctx, doomed.ID))

	var topics, questions, answers, userAnswers int64
	require.NoError(t, db.Model(&models.Topic{}).Count(&topics).Error)
	require.NoError(t, db.Model(&models.Question{}).Count(&questions).Error)
	require.NoError(t, db.Model(&models.Answer{}).Count(&answers).Error)
	require.NoError(t, db.Model(&models.UserAnswer{}).Count(&userAnswers).Error)
	assert.EqualValues(t, 1, topics)
	assert.EqualValues(t, 1, questions)
	assert.EqualValues(t, 1, answers)
	assert.EqualValues(t, 1, userAnswers)

	remaining, err := repo.FindByID(ctx, kept.ID)
	require.NoError(t, err)
	assert.Equal(t, "kept", remaining.Title)
}
