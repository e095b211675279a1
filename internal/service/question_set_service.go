package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/pypath/pypath/internal/dto"
	"github.com/pypath/pypath/internal/model"
	"github.com/pypath/pypath/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// QuestionSetService is the user-facing view of the quiz catalog.
type QuestionSetService interface {
	GetAllQuestionSets() ([]dto.QuestionSetSummaryDTO, error)
	GetQuestionSetDetails(setID uint) (*dto.QuestionSetResponseDTO, error)
}

type questionSetService struct {
	setRepo repository.QuestionSetRepository
}

func NewQuestionSetService(setRepo repository.QuestionSetRepository) QuestionSetService {
	return &questionSetService{setRepo: setRepo}
}

func (s *questionSetService) GetAllQuestionSets() ([]dto.QuestionSetSummaryDTO, error) {
	setsWithCount, err := s.setRepo.FindAllWithQuestionCount()
	if err != nil {
		log.Error().Err(err).Msg("Failed to get question sets with question count from repository")
		return nil, fmt.Errorf("error fetching question sets: %w", err)
	}

	var dtos []dto.QuestionSetSummaryDTO
	for _, swc := range setsWithCount {
		dtos = append(dtos, dto.QuestionSetSummaryDTO{
			ID:            swc.QuestionSet.ID,
			Name:          swc.QuestionSet.Name,
			Description:   swc.QuestionSet.Description,
			QuestionCount: swc.QuestionCount,
			CreatedAt:     swc.QuestionSet.CreatedAt,
		})
	}
	return dtos, nil
}

func (s *questionSetService) GetQuestionSetDetails(setID uint) (*dto.QuestionSetResponseDTO, error) {
	set, err := s.setRepo.FindByIDWithQuestions(setID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		log.Error().Err(err).Uint("setID", setID).Msg("Failed to get question set details from repository")
		return nil, fmt.Errorf("error fetching question set %d: %w", setID, err)
	}

	resp := dto.QuestionSetResponseDTO{
		ID:          set.ID,
		Name:        set.Name,
		Description: set.Description,
		Questions:   questionDTOsFromSet(set),
	}
	return &resp, nil
}

// questionDTOsFromSet flattens the ordered join rows into user-facing
// question DTOs, dropping the correct answers.
func questionDTOsFromSet(set *model.QuestionSet) []dto.QuestionResponseDTO {
	dtos := make([]dto.QuestionResponseDTO, 0, len(set.Questions))
	for _, sq := range set.Questions {
		dtos = append(dtos, questionDTOFromModel(&sq.Question))
	}
	return dtos
}

func questionDTOFromModel(q *model.Question) dto.QuestionResponseDTO {
	return dto.QuestionResponseDTO{
		ID:      q.ID,
		Topic:   q.Topic,
		Type:    q.Type,
		Prompt:  q.Prompt,
		Options: decodeOptions(q),
	}
}

func decodeOptions(q *model.Question) []string {
	if len(q.Options) == 0 {
		return nil
	}
	var options []string
	if err := json.Unmarshal(q.Options, &options); err != nil {
		log.Warn().Err(err).Uint("questionID", q.ID).Msg("Failed to decode question options")
		return nil
	}
	return options
}
