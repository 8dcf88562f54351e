package models

/** --------------------ENTITIES-------------------- */

type Answer struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Text       string `gorm:"column:text;size:512;not null" json:"text"`
	QuestionID uint   `gorm:"column:question_id;not null;index" json:"question_id"`
}

// TableName specifies the table name for Answer
func (Answer) TableName() string {
	return "answers"
}

/** -------------------- DTOs -------------------- */

// UpdateAnswerRequest defines the input for updating an answer's text.
type UpdateAnswerRequest struct {
	Text string `json:"text" binding:"required"`
}

// AnswerResponse is the flat serialized answer.
type AnswerResponse struct {
	ID   uint   `json:"id"`
	Text string `json:"text"`
}
