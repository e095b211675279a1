package model

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Username  string         `json:"username" gorm:"not null;uniqueIndex"`
	Password  string         `json:"-" gorm:"not null"` // bcrypt hash
	FirstName string         `json:"first_name"`
	LastName  string         `json:"last_name"`
	IsAdmin   bool           `json:"is_admin" gorm:"not null;default:false"`
	XP        int            `json:"xp" gorm:"not null;default:0"`    // always in [0, XPToLevelUp)
	Level     int            `json:"level" gorm:"not null;default:0"` // never decreases
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
