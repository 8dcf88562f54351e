package models

import "encoding/json"

/** --------------------ENTITIES-------------------- */

// Topic is a time-bounded subject owning a set of questions.
// Dates are stored as ISO-8601 date strings (YYYY-MM-DD), which compare
// correctly both in SQL and in Go.
type Topic struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"column:title;size:256;not null" json:"title"`
	StartDate   string     `gorm:"column:start_date;size:10;not null" json:"start_date"`
	FinishDate  string     `gorm:"column:finish_date;size:10;not null" json:"finish_date"`
	Description string     `gorm:"column:description;size:512" json:"description"`
	Questions   []Question `gorm:"foreignKey:TopicID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
}

// TableName specifies the table name for Topic
func (Topic) TableName() string {
	return "topics"
}

/** -------------------- DTOs -------------------- */

// CreateTopicRequest defines the input for creating a topic
type CreateTopicRequest struct {
	Title       string `json:"title" binding:"required"`
	StartDate   string `json:"start_date" binding:"required"`
	FinishDate  string `json:"finish_date" binding:"required"`
	Description string `json:"description"`
}

// UpdateTopicRequest defines the partial input for updating a topic.
// StartDate is decoded as raw JSON so the service can reject the update
// whenever the key is present, no matter its value.
type UpdateTopicRequest struct {
	Title       *string         `json:"title"`
	StartDate   json.RawMessage `json:"start_date"`
	FinishDate  *string         `json:"finish_date"`
	Description *string         `json:"description"`
}

// TopicResponse is the serialized topic with its nested questions.
type TopicResponse struct {
	ID          uint               `json:"id"`
	Title       string             `json:"title"`
	StartDate   string             `json:"start_date"`
	FinishDate  string             `json:"finish_date"`
	Description string             `json:"description"`
	Questions   []QuestionResponse `json:"questions"`
}
