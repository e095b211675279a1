package dto

// QuestionCreateDTO is used by admins to add a question to the bank.
type QuestionCreateDTO struct {
	Topic         string   `json:"topic" binding:"required"`
	Type          string   `json:"type" binding:"required,oneof=multiple_choice free_text"`
	Prompt        string   `json:"prompt" binding:"required"`
	Options       []string `json:"options" binding:"omitempty,min=2"`
	CorrectAnswer string   `json:"correct_answer" binding:"required"`
}

// QuestionSetCreateDTO composes an ordered set out of existing questions.
// Question IDs are taken in the order given.
type QuestionSetCreateDTO struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description,omitempty"`
	QuestionIDs []uint `json:"question_ids" binding:"required,min=1,dive,gt=0"`
}

// AdminQuestionDTO includes the correct answer; only returned on admin routes.
type AdminQuestionDTO struct {
	ID            uint     `json:"id"`
	Topic         string   `json:"topic"`
	Type          string   `json:"type"`
	Prompt        string   `json:"prompt"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"correct_answer"`
}
