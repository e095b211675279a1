package dto

import "time"

// TopicMasteryDTO is one row of the per-topic mastery report.
type TopicMasteryDTO struct {
	Topic       string  `json:"topic"`
	XP          int     `json:"xp"`
	Percentage  float64 `json:"percentage"` // not capped at 100
	Level       string  `json:"level"`      // Proficient / Intermediate / Beginner
	Color       string  `json:"color"`
	ResourceURL string  `json:"resource_url"`
}

// AttemptHistoryDTO is one display-ready row of attempt history.
type AttemptHistoryDTO struct {
	ID             uint   `json:"id"`
	Username       string `json:"username"`
	SetName        string `json:"set_name"`
	Score          int    `json:"score"`
	TotalQuestions int    `json:"total_questions"`
	Date           string `json:"date"`       // "2006-01-02"
	StartTime      string `json:"start_time"` // time of day, "15:04:05"
	EndTime        string `json:"end_time"`
	Duration       string `json:"duration"`       // "2h 15m 30s" style, or "N/A"
	AttemptNumber  int    `json:"attempt_number"` // 1-based within (user, set)
}

type AchievementDTO struct {
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	AwardedAt   time.Time `json:"awarded_at"`
}
