package model

import (
	"time"

	"gorm.io/gorm"
)

type QuestionSet struct {
	ID          uint                  `gorm:"primarykey" json:"id"`
	Name        string                `json:"name" gorm:"not null;uniqueIndex"` // "Python Basics Benchmark"
	Description string                `json:"description,omitempty"`
	Questions   []QuestionSetQuestion `json:"questions,omitempty" gorm:"foreignKey:QuestionSetID"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
	DeletedAt   gorm.DeletedAt        `gorm:"index" json:"-"`
}

// QuestionSetQuestion is the ordered join row between a set and its questions.
// Membership is fixed once a quiz against the set has started.
type QuestionSetQuestion struct {
	ID            uint     `gorm:"primarykey" json:"id"`
	QuestionSetID uint     `json:"question_set_id" gorm:"not null;index:idx_set_position,unique"`
	QuestionID    uint     `json:"question_id" gorm:"not null;index"`
	Question      Question `json:"question" gorm:"foreignKey:QuestionID"`
	Position      int      `json:"position" gorm:"not null;index:idx_set_position,unique"`
}
