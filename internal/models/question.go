package models

// QuestionType is the closed set of question kinds.
type QuestionType string

const (
	QuestionTypeCustom   QuestionType = "custom"   // free-text, no predefined answers
	QuestionTypeOne      QuestionType = "one"      // single choice
	QuestionTypeMultiple QuestionType = "multiple" // multiple choice
)

// Valid reports whether t is one of the recognized question types.
func (t QuestionType) Valid() bool {
	switch t {
	case QuestionTypeCustom, QuestionTypeOne, QuestionTypeMultiple:
		return true
	}
	return false
}

// Enumerated reports whether t requires at least one predefined answer.
func (t QuestionType) Enumerated() bool {
	return t == QuestionTypeOne || t == QuestionTypeMultiple
}

/** --------------------ENTITIES-------------------- */

type Question struct {
	ID      uint         `gorm:"primaryKey" json:"id"`
	Text    string       `gorm:"column:text;size:1024;not null" json:"text"`
	Type    QuestionType `gorm:"column:type;size:8;not null" json:"type"`
	TopicID uint         `gorm:"column:topic_id;not null;index" json:"topic_id"`
	Answers []Answer     `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"answers,omitempty"`
}

// TableName specifies the table name for Question
func (Question) TableName() string {
	return "questions"
}

/** -------------------- DTOs -------------------- */

// CreateQuestionRequest defines the input for creating a question with its
// full answer set.
type CreateQuestionRequest struct {
	Text    string       `json:"text" binding:"required"`
	Type    QuestionType `json:"type" binding:"required"`
	TopicID uint         `json:"topic_id" binding:"required"`
	Answers []string     `json:"answers"`
}

// UpdateQuestionRequest defines the partial input for updating a question.
// An omitted answers key is treated as an empty answer set: the submitted
// list always becomes the question's full answer set when validation passes.
type UpdateQuestionRequest struct {
	Text    *string       `json:"text"`
	Type    *QuestionType `json:"type"`
	Answers []string      `json:"answers"`
}

// QuestionResponse is the serialized question with its nested answers.
// AnswerID is only set by the users-topics classification endpoint and holds
// the answer the requested user picked for this question.
type QuestionResponse struct {
	ID       uint             `json:"id"`
	Text     string           `json:"text"`
	Type     QuestionType     `json:"type"`
	TopicID  uint             `json:"topic_id"`
	AnswerID *uint            `json:"answer_id,omitempty"`
	Answers  []AnswerResponse `json:"answers"`
}
