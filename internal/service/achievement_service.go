package service

import (
	"fmt"
	"time"

	"github.com/pypath/pypath/internal/dto"
	"github.com/pypath/pypath/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Achievement codes seeded at startup.
const (
	AchievementFirstSteps   = "first_steps"   // finalized a first quiz attempt
	AchievementPerfectScore = "perfect_score" // every answer correct
	AchievementLevelUp      = "level_up"      // reached level 1
)

type AchievementService interface {
	GetUserAchievements(userID uint) ([]dto.AchievementDTO, error)
	// GrantForSubmission evaluates and grants achievements earned by a
	// finalized submission, inside the submission's transaction. Returns
	// only the newly granted ones.
	GrantForSubmission(tx *gorm.DB, userID uint, score, total, newLevel int) ([]dto.AchievementDTO, error)
}

type achievementService struct {
	achievementRepo repository.AchievementRepository
}

func NewAchievementService(achievementRepo repository.AchievementRepository) AchievementService {
	return &achievementService{achievementRepo: achievementRepo}
}

func (s *achievementService) GetUserAchievements(userID uint) ([]dto.AchievementDTO, error) {
	rows, err := s.achievementRepo.FindAllByUser(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("Failed to fetch user achievements")
		return nil, fmt.Errorf("error fetching achievements: %w", err)
	}
	dtos := make([]dto.AchievementDTO, 0, len(rows))
	for _, row := range rows {
		dtos = append(dtos, dto.AchievementDTO{
			Code:        row.Achievement.Code,
			Name:        row.Achievement.Name,
			Description: row.Achievement.Description,
			AwardedAt:   row.CreatedAt,
		})
	}
	return dtos, nil
}

func (s *achievementService) GrantForSubmission(tx *gorm.DB, userID uint, score, total, newLevel int) ([]dto.AchievementDTO, error) {
	codes := []string{AchievementFirstSteps}
	if total > 0 && score == total {
		codes = append(codes, AchievementPerfectScore)
	}
	if newLevel >= 1 {
		codes = append(codes, AchievementLevelUp)
	}

	var granted []dto.AchievementDTO
	for _, code := range codes {
		achievement, err := s.achievementRepo.FindByCode(code)
		if err != nil {
			return nil, fmt.Errorf("error loading achievement %q: %w", code, err)
		}
		if achievement == nil {
			log.Warn().Str("code", code).Msg("Achievement not seeded, skipping grant")
			continue
		}
		isNew, err := s.achievementRepo.Grant(tx, userID, achievement.ID)
		if err != nil {
			return nil, fmt.Errorf("error granting achievement %q: %w", code, err)
		}
		if isNew {
			granted = append(granted, dto.AchievementDTO{
				Code:        achievement.Code,
				Name:        achievement.Name,
				Description: achievement.Description,
				AwardedAt:   time.Now(),
			})
		}
	}
	return granted, nil
}
