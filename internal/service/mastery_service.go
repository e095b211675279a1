package service

import (
	"fmt"

	"github.com/pypath/pypath/internal/dto"
	"github.com/pypath/pypath/internal/repository"
	"github.com/rs/zerolog/log"
)

// Mastery level labels and their display color tokens.
const (
	MasteryProficient   = "Proficient"
	MasteryIntermediate = "Intermediate"
	MasteryBeginner     = "Beginner"
)

// topicResources maps a topic to its study material. Topics without an entry
// fall back to a placeholder link.
var topicResources = map[string]string{
	"Variables":       "https://docs.python.org/3/tutorial/introduction.html",
	"Data Types":      "https://docs.python.org/3/library/stdtypes.html",
	"Loops":           "https://docs.python.org/3/tutorial/controlflow.html",
	"Functions":       "https://docs.python.org/3/tutorial/controlflow.html#defining-functions",
	"Data Structures": "https://docs.python.org/3/tutorial/datastructures.html",
	"OOP":             "https://docs.python.org/3/tutorial/classes.html",
}

const placeholderResource = "#"

type MasteryService interface {
	GetUserMastery(userID uint) ([]dto.TopicMasteryDTO, error)
}

type masteryService struct {
	masteryRepo repository.MasteryRepository
}

func NewMasteryService(masteryRepo repository.MasteryRepository) MasteryService {
	return &masteryService{masteryRepo: masteryRepo}
}

func (s *masteryService) GetUserMastery(userID uint) ([]dto.TopicMasteryDTO, error) {
	rows, err := s.masteryRepo.FindAllByUser(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("Failed to fetch topic mastery rows")
		return nil, fmt.Errorf("error fetching mastery: %w", err)
	}

	dtos := make([]dto.TopicMasteryDTO, 0, len(rows))
	for _, row := range rows {
		percentage := MasteryPercentage(row.XP)
		level, color := MasteryLevel(percentage)
		dtos = append(dtos, dto.TopicMasteryDTO{
			Topic:       row.Topic,
			XP:          row.XP,
			Percentage:  percentage,
			Level:       level,
			Color:       color,
			ResourceURL: ResourceLink(row.Topic),
		})
	}
	return dtos, nil
}

// MasteryPercentage converts accumulated topic XP into a percentage of one
// level-equivalent. Topic XP never rolls over into levels, so values above
// 100 are valid and expected as mastery grows.
func MasteryPercentage(xp int) float64 {
	return float64(xp) / float64(XPToLevelUp) * 100
}

// MasteryLevel buckets a percentage into a qualitative label and its display
// color token. Boundaries are inclusive.
func MasteryLevel(percentage float64) (string, string) {
	switch {
	case percentage >= 85:
		return MasteryProficient, "success"
	case percentage >= 60:
		return MasteryIntermediate, "warning"
	default:
		return MasteryBeginner, "danger"
	}
}

// ResourceLink returns the study-resource URL for a topic, or a placeholder
// when none is mapped.
func ResourceLink(topic string) string {
	if url, ok := topicResources[topic]; ok {
		return url
	}
	return placeholderResource
}
