package dto

import "time"

// QuestionResponseDTO is the user-facing view of a question. The correct
// answer is deliberately absent.
type QuestionResponseDTO struct {
	ID      uint     `json:"id"`
	Topic   string   `json:"topic"`
	Type    string   `json:"type"`
	Prompt  string   `json:"prompt"`
	Options []string `json:"options,omitempty"`
}

// QuestionSetSummaryDTO is used for listing sets available to users.
type QuestionSetSummaryDTO struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	QuestionCount int       `json:"question_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// QuestionSetResponseDTO is the full set a user sees when starting a quiz.
type QuestionSetResponseDTO struct {
	ID          uint                  `json:"id"`
	Name        string                `json:"name"`
	Description string                `json:"description,omitempty"`
	Questions   []QuestionResponseDTO `json:"questions"`
}

// AnswerSubmissionDTO is one submitted answer within an attempt submission.
type AnswerSubmissionDTO struct {
	QuestionID uint   `json:"question_id" binding:"required"`
	Answer     string `json:"answer"`
}

// AttemptSubmitDTO carries all answers for a quiz submission. Questions the
// user skipped may simply be absent; they are scored as incorrect.
type AttemptSubmitDTO struct {
	Answers []AnswerSubmissionDTO `json:"answers" binding:"required,dive"`
}

// AttemptStartedDTO is returned when an attempt is opened.
type AttemptStartedDTO struct {
	AttemptID      uint                  `json:"attempt_id"`
	QuestionSetID  uint                  `json:"question_set_id"`
	SetName        string                `json:"set_name"`
	TotalQuestions int                   `json:"total_questions"`
	TimeStart      time.Time             `json:"time_start"`
	Questions      []QuestionResponseDTO `json:"questions"`
}

// AnswerRecordDTO shows one graded answer after submission.
type AnswerRecordDTO struct {
	QuestionID    uint   `json:"question_id"`
	Prompt        string `json:"prompt"`
	Topic         string `json:"topic"`
	Submitted     string `json:"submitted"`
	CorrectAnswer string `json:"correct_answer"`
	IsCorrect     bool   `json:"is_correct"`
}

// AttemptReviewDTO is the read-back view of a past attempt.
type AttemptReviewDTO struct {
	AttemptID      uint              `json:"attempt_id"`
	QuestionSetID  uint              `json:"question_set_id"`
	SetName        string            `json:"set_name"`
	Score          int               `json:"score"`
	TotalQuestions int               `json:"total_questions"`
	Finalized      bool              `json:"finalized"`
	TimeStart      *time.Time        `json:"time_start,omitempty"`
	TimeEnd        *time.Time        `json:"time_end,omitempty"`
	Duration       string            `json:"duration"`
	Answers        []AnswerRecordDTO `json:"answers"`
}

// AttemptResultDTO is the outcome of a finalized submission.
type AttemptResultDTO struct {
	AttemptID       uint              `json:"attempt_id"`
	QuestionSetID   uint              `json:"question_set_id"`
	SetName         string            `json:"set_name"`
	Score           int               `json:"score"`
	TotalQuestions  int               `json:"total_questions"`
	XPGained        int               `json:"xp_gained"`
	Level           int               `json:"level"`
	XP              int               `json:"xp"`
	LeveledUp       bool              `json:"leveled_up"`
	TimeStart       *time.Time        `json:"time_start,omitempty"`
	TimeEnd         *time.Time        `json:"time_end,omitempty"`
	Answers         []AnswerRecordDTO `json:"answers"`
	NewAchievements []AchievementDTO  `json:"new_achievements,omitempty"`
}
