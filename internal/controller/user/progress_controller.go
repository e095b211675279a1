package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pypath/pypath/internal/dto"
	"github.com/pypath/pypath/internal/middleware"
	"github.com/pypath/pypath/internal/service"
	"github.com/rs/zerolog/log"
)

// ProgressController serves the authenticated user's own progress data:
// profile, topic mastery, attempt history and achievements.
type ProgressController struct {
	authService        service.AuthService
	masteryService     service.MasteryService
	historyService     service.HistoryService
	achievementService service.AchievementService
}

func NewProgressController(
	authService service.AuthService,
	masteryService service.MasteryService,
	historyService service.HistoryService,
	achievementService service.AchievementService,
) *ProgressController {
	return &ProgressController{
		authService:        authService,
		masteryService:     masteryService,
		historyService:     historyService,
		achievementService: achievementService,
	}
}

// GetProfile godoc
// @Summary Get the authenticated user's profile
// @Tags Progress
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserProfileDTO
// @Failure 401 {object} dto.ErrorResponse
// @Router /me [get]
func (c *ProgressController) GetProfile(ctx *gin.Context) {
	claims, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Not authenticated"})
		return
	}
	profile, err := c.authService.GetProfile(claims.UserID)
	if err != nil {
		log.Error().Err(err).Uint("userID", claims.UserID).Msg("GetProfile: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve profile"})
		return
	}
	ctx.JSON(http.StatusOK, profile)
}

// GetMastery godoc
// @Summary Get the authenticated user's per-topic mastery
// @Description Percentages are not capped at 100; topic XP keeps accumulating past one level-equivalent.
// @Tags Progress
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.TopicMasteryDTO
// @Failure 401 {object} dto.ErrorResponse
// @Router /me/mastery [get]
func (c *ProgressController) GetMastery(ctx *gin.Context) {
	claims, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Not authenticated"})
		return
	}
	mastery, err := c.masteryService.GetUserMastery(claims.UserID)
	if err != nil {
		log.Error().Err(err).Uint("userID", claims.UserID).Msg("GetMastery: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve mastery"})
		return
	}
	ctx.JSON(http.StatusOK, mastery)
}

// GetHistory godoc
// @Summary Get the authenticated user's attempt history
// @Description Attempts ordered by completion time descending, annotated with durations and per-set attempt numbers.
// @Tags Progress
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.AttemptHistoryDTO
// @Failure 401 {object} dto.ErrorResponse
// @Router /me/attempts [get]
func (c *ProgressController) GetHistory(ctx *gin.Context) {
	claims, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Not authenticated"})
		return
	}
	history, err := c.historyService.GetUserHistory(claims.UserID)
	if err != nil {
		log.Error().Err(err).Uint("userID", claims.UserID).Msg("GetHistory: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve history"})
		return
	}
	ctx.JSON(http.StatusOK, history)
}

// GetAchievements godoc
// @Summary Get the authenticated user's achievements
// @Tags Progress
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.AchievementDTO
// @Failure 401 {object} dto.ErrorResponse
// @Router /me/achievements [get]
func (c *ProgressController) GetAchievements(ctx *gin.Context) {
	claims, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Not authenticated"})
		return
	}
	achievements, err := c.achievementService.GetUserAchievements(claims.UserID)
	if err != nil {
		log.Error().Err(err).Uint("userID", claims.UserID).Msg("GetAchievements: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve achievements"})
		return
	}
	ctx.JSON(http.StatusOK, achievements)
}
