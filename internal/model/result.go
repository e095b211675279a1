package model

import (
	"time"

	"gorm.io/gorm"
)

// Result is one quiz attempt by a user against a question set. The row is
// created when the attempt starts (score 0, no TimeEnd) and written exactly
// once more when the submission is finalized.
type Result struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	UserID         uint           `json:"user_id" gorm:"not null;index"`
	User           User           `json:"user,omitempty" gorm:"foreignKey:UserID"`
	QuestionSetID  uint           `json:"question_set_id" gorm:"not null;index"`
	QuestionSet    QuestionSet    `json:"question_set,omitempty" gorm:"foreignKey:QuestionSetID"`
	Score          int            `json:"score" gorm:"not null;default:0"`
	TotalQuestions int            `json:"total_questions" gorm:"not null;default:0"`
	TimeStart      *time.Time     `json:"time_start,omitempty"`
	TimeEnd        *time.Time     `json:"time_end,omitempty"`
	Answers        []AnswerRecord `json:"answers,omitempty" gorm:"foreignKey:ResultID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

// Finalized reports whether the attempt has been submitted.
func (r *Result) Finalized() bool {
	return r.TimeEnd != nil
}
