package model

import (
	"time"
)

// TopicMastery accumulates a user's XP per question topic. The row is created
// on the first correct answer in a topic and only ever incremented after that.
type TopicMastery struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uint      `json:"user_id" gorm:"not null;index:idx_user_topic,unique"`
	Topic     string    `json:"topic" gorm:"not null;index:idx_user_topic,unique"`
	XP        int       `json:"xp" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
