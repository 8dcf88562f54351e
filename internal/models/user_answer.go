package models

/** --------------------ENTITIES-------------------- */

// UserAnswer records that a user selected an answer for a question.
// The composite unique index keeps at most one row per (user, question);
// a repeated submission overwrites AnswerID instead of inserting.
type UserAnswer struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	UserID     uint `gorm:"column:user_id;not null;uniqueIndex:idx_user_question" json:"user_id"`
	QuestionID uint `gorm:"column:question_id;not null;uniqueIndex:idx_user_question" json:"question_id"`
	AnswerID   uint `gorm:"column:answer_id;not null;index" json:"answer_id"`
}

// TableName specifies the table name for UserAnswer
func (UserAnswer) TableName() string {
	return "user_answers"
}

/** -------------------- DTOs -------------------- */

// SubmitUserAnswerRequest defines the input for the user-answer upsert.
type SubmitUserAnswerRequest struct {
	UserID     uint `json:"user_id" binding:"required"`
	QuestionID uint `json:"question_id" binding:"required"`
	AnswerID   uint `json:"answer_id" binding:"required"`
}

// UserAnswerResponse is the upsert result with the question and the picked
// answer expanded.
type UserAnswerResponse struct {
	ID       uint             `json:"id"`
	UserID   uint             `json:"user_id"`
	Question QuestionResponse `json:"question"`
	Answer   AnswerResponse   `json:"answer"`
}
