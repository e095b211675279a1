package user

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pypath/pypath/internal/dto"
	"github.com/pypath/pypath/internal/middleware"
	"github.com/pypath/pypath/internal/service"
	"github.com/rs/zerolog/log"
)

type QuizController struct {
	questionSetService    service.QuestionSetService
	quizSubmissionService service.QuizSubmissionService
}

func NewQuizController(qss service.QuestionSetService, subs service.QuizSubmissionService) *QuizController {
	return &QuizController{
		questionSetService:    qss,
		quizSubmissionService: subs,
	}
}

// ListQuestionSets godoc
// @Summary List all available question sets
// @Tags Quizzes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.QuestionSetSummaryDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /question-sets [get]
func (c *QuizController) ListQuestionSets(ctx *gin.Context) {
	sets, err := c.questionSetService.GetAllQuestionSets()
	if err != nil {
		log.Error().Err(err).Msg("ListQuestionSets: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve question sets"})
		return
	}
	ctx.JSON(http.StatusOK, sets)
}

// GetQuestionSet godoc
// @Summary Get a question set with its questions
// @Description Returns the set's questions without correct answers.
// @Tags Quizzes
// @Produce json
// @Security BearerAuth
// @Param set_id path int true "Question set ID"
// @Success 200 {object} dto.QuestionSetResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid set ID"
// @Failure 404 {object} dto.ErrorResponse "Question set not found"
// @Router /question-sets/{set_id} [get]
func (c *QuizController) GetQuestionSet(ctx *gin.Context) {
	setID, ok := parseIDParam(ctx, "set_id")
	if !ok {
		return
	}
	set, err := c.questionSetService.GetQuestionSetDetails(setID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Question set not found"})
			return
		}
		log.Error().Err(err).Uint("setID", setID).Msg("GetQuestionSet: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve question set"})
		return
	}
	ctx.JSON(http.StatusOK, set)
}

// StartAttempt godoc
// @Summary Start a quiz attempt against a question set
// @Description Opens an attempt and returns its questions. The attempt is finalized by a later submit call.
// @Tags Quizzes
// @Produce json
// @Security BearerAuth
// @Param set_id path int true "Question set ID"
// @Success 201 {object} dto.AttemptStartedDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid set ID"
// @Failure 404 {object} dto.ErrorResponse "Question set not found"
// @Router /question-sets/{set_id}/attempts [post]
func (c *QuizController) StartAttempt(ctx *gin.Context) {
	claims, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Not authenticated"})
		return
	}
	setID, ok := parseIDParam(ctx, "set_id")
	if !ok {
		return
	}

	attempt, err := c.quizSubmissionService.StartAttempt(claims.UserID, setID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Question set not found"})
			return
		}
		log.Error().Err(err).Uint("setID", setID).Msg("StartAttempt: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to start attempt"})
		return
	}
	ctx.JSON(http.StatusCreated, attempt)
}

// SubmitAttempt godoc
// @Summary Submit answers for an open attempt
// @Description Grades the submission, awards XP, updates topic mastery and level, and finalizes the attempt. All-or-nothing.
// @Tags Quizzes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param attempt_id path int true "Attempt ID"
// @Param submission body dto.AttemptSubmitDTO true "Submitted answers"
// @Success 200 {object} dto.AttemptResultDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Failure 409 {object} dto.ErrorResponse "Attempt already submitted"
// @Router /attempts/{attempt_id}/submit [post]
func (c *QuizController) SubmitAttempt(ctx *gin.Context) {
	claims, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Not authenticated"})
		return
	}
	attemptID, ok := parseIDParam(ctx, "attempt_id")
	if !ok {
		return
	}

	var req dto.AttemptSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitAttempt: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	result, err := c.quizSubmissionService.SubmitAttempt(claims.UserID, attemptID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Attempt not found"})
		case errors.Is(err, service.ErrAlreadySubmitted):
			ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: "Attempt already submitted"})
		default:
			log.Error().Err(err).Uint("attemptID", attemptID).Msg("SubmitAttempt: service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to submit attempt"})
		}
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// GetAttemptReview godoc
// @Summary Review a past attempt with its graded answers
// @Tags Quizzes
// @Produce json
// @Security BearerAuth
// @Param attempt_id path int true "Attempt ID"
// @Success 200 {object} dto.AttemptReviewDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid attempt ID"
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Router /attempts/{attempt_id} [get]
func (c *QuizController) GetAttemptReview(ctx *gin.Context) {
	claims, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Not authenticated"})
		return
	}
	attemptID, ok := parseIDParam(ctx, "attempt_id")
	if !ok {
		return
	}

	review, err := c.quizSubmissionService.GetAttemptReview(claims.UserID, attemptID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Attempt not found"})
			return
		}
		log.Error().Err(err).Uint("attemptID", attemptID).Msg("GetAttemptReview: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve attempt"})
		return
	}
	ctx.JSON(http.StatusOK, review)
}

func parseIDParam(ctx *gin.Context, name string) (uint, bool) {
	raw := ctx.Param(name)
	val, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " format"})
		return 0, false
	}
	return uint(val), true
}
