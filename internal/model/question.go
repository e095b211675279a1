package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const QuestionTypeMultipleChoice = "multiple_choice"

type Question struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	Topic         string         `json:"topic" gorm:"not null;index"`
	Type          string         `json:"type" gorm:"not null;default:'multiple_choice'"`
	Prompt        string         `json:"prompt" gorm:"type:text;not null"`
	Options       datatypes.JSON `json:"options" gorm:"type:jsonb"` // array of answer choices
	CorrectAnswer string         `json:"-" gorm:"not null"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
