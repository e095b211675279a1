package model

import (
	"time"
)

// AnswerRecord stores one submitted answer and its derived correctness.
// Written once during submission, never mutated.
type AnswerRecord struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	ResultID   uint      `json:"result_id" gorm:"not null;index"`
	QuestionID uint      `json:"question_id" gorm:"not null;index"`
	Question   Question  `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	Submitted  string    `json:"submitted" gorm:"type:text"`
	IsCorrect  bool      `json:"is_correct" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at"`
}
