package service

import (
	"encoding/json"
	"fmt"

	"github.com/pypath/pypath/internal/dto"
	"github.com/pypath/pypath/internal/model"
	"github.com/pypath/pypath/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

// AdminService covers the admin-only catalog operations: maintaining the
// question bank and composing question sets out of it.
type AdminService interface {
	CreateQuestion(req dto.QuestionCreateDTO) (*dto.AdminQuestionDTO, error)
	ListQuestions() ([]dto.AdminQuestionDTO, error)
	CreateQuestionSet(req dto.QuestionSetCreateDTO) (*dto.QuestionSetSummaryDTO, error)
}

type adminService struct {
	questionRepo repository.QuestionRepository
	setRepo      repository.QuestionSetRepository
}

func NewAdminService(questionRepo repository.QuestionRepository, setRepo repository.QuestionSetRepository) AdminService {
	return &adminService{questionRepo: questionRepo, setRepo: setRepo}
}

func (s *adminService) CreateQuestion(req dto.QuestionCreateDTO) (*dto.AdminQuestionDTO, error) {
	var options datatypes.JSON
	if len(req.Options) > 0 {
		raw, err := json.Marshal(req.Options)
		if err != nil {
			return nil, fmt.Errorf("error encoding options: %w", err)
		}
		options = raw
	}

	question := model.Question{
		Topic:         req.Topic,
		Type:          req.Type,
		Prompt:        req.Prompt,
		Options:       options,
		CorrectAnswer: req.CorrectAnswer,
	}
	if err := s.questionRepo.Create(&question); err != nil {
		log.Error().Err(err).Str("topic", req.Topic).Msg("Admin CreateQuestion: failed to create question")
		return nil, fmt.Errorf("error creating question: %w", err)
	}

	log.Info().Uint("questionID", question.ID).Str("topic", question.Topic).Msg("Question created")
	resp := adminQuestionDTO(&question)
	return &resp, nil
}

func (s *adminService) ListQuestions() ([]dto.AdminQuestionDTO, error) {
	questions, err := s.questionRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("Admin ListQuestions: repository error")
		return nil, fmt.Errorf("error fetching questions: %w", err)
	}
	dtos := make([]dto.AdminQuestionDTO, 0, len(questions))
	for i := range questions {
		dtos = append(dtos, adminQuestionDTO(&questions[i]))
	}
	return dtos, nil
}

func (s *adminService) CreateQuestionSet(req dto.QuestionSetCreateDTO) (*dto.QuestionSetSummaryDTO, error) {
	questions, err := s.questionRepo.FindByIDs(req.QuestionIDs)
	if err != nil {
		log.Error().Err(err).Msg("Admin CreateQuestionSet: failed to load questions")
		return nil, fmt.Errorf("error loading questions: %w", err)
	}
	if len(questions) != len(req.QuestionIDs) {
		return nil, fmt.Errorf("%w: one or more question IDs do not exist", ErrNotFound)
	}

	set := model.QuestionSet{
		Name:        req.Name,
		Description: req.Description,
	}
	for i, qid := range req.QuestionIDs {
		set.Questions = append(set.Questions, model.QuestionSetQuestion{
			QuestionID: qid,
			Position:   i + 1,
		})
	}
	if err := s.setRepo.Create(&set); err != nil {
		log.Error().Err(err).Str("name", req.Name).Msg("Admin CreateQuestionSet: failed to create set")
		return nil, fmt.Errorf("error creating question set: %w", err)
	}

	log.Info().Uint("setID", set.ID).Str("name", set.Name).Int("questions", len(set.Questions)).Msg("Question set created")
	return &dto.QuestionSetSummaryDTO{
		ID:            set.ID,
		Name:          set.Name,
		Description:   set.Description,
		QuestionCount: len(set.Questions),
		CreatedAt:     set.CreatedAt,
	}, nil
}

func adminQuestionDTO(q *model.Question) dto.AdminQuestionDTO {
	return dto.AdminQuestionDTO{
		ID:            q.ID,
		Topic:         q.Topic,
		Type:          q.Type,
		Prompt:        q.Prompt,
		Options:       decodeOptions(q),
		CorrectAnswer: q.CorrectAnswer,
	}
}
