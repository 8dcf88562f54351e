package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuestionTypeValid(t *testing.T) {
	tests := []struct {
		questionType QuestionType
		valid        bool
		enumerated   bool
	}{
		{QuestionTypeCustom, true, false},
		{QuestionTypeOne, true, true},
		{QuestionTypeMultiple, true, true},
		{QuestionType("text"), false, false},
		{QuestionType(""), false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.questionType), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.questionType.Valid())
			assert.Equal(t, tt.enumerated, tt.questionType.Enumerated())
		})
	}
}
