package model

import (
	"time"
)

type Achievement struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Code        string    `json:"code" gorm:"not null;uniqueIndex"` // stable identifier, e.g. "first_steps"
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
}

// UserAchievement records one grant. The (user, achievement) pair is unique;
// granting twice is a no-op.
type UserAchievement struct {
	ID            uint        `gorm:"primarykey" json:"id"`
	UserID        uint        `json:"user_id" gorm:"not null;index:idx_user_achievement,unique"`
	AchievementID uint        `json:"achievement_id" gorm:"not null;index:idx_user_achievement,unique"`
	Achievement   Achievement `json:"achievement,omitempty" gorm:"foreignKey:AchievementID"`
	CreatedAt     time.Time   `json:"created_at"`
}
