package admin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pypath/pypath/internal/dto"
	"github.com/pypath/pypath/internal/service"
	"github.com/rs/zerolog/log"
)

type AdminController struct {
	adminService   service.AdminService
	historyService service.HistoryService
}

func NewAdminController(adminService service.AdminService, historyService service.HistoryService) *AdminController {
	return &AdminController{adminService: adminService, historyService: historyService}
}

// CreateQuestion godoc
// @Summary (Admin) Add a question to the bank
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param question body dto.QuestionCreateDTO true "Question data"
// @Success 201 {object} dto.AdminQuestionDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 403 {object} dto.ErrorResponse "Admin access required"
// @Router /admin/questions [post]
func (c *AdminController) CreateQuestion(ctx *gin.Context) {
	var req dto.QuestionCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateQuestion: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	question, err := c.adminService.CreateQuestion(req)
	if err != nil {
		log.Error().Err(err).Msg("Admin CreateQuestion: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to create question"})
		return
	}
	ctx.JSON(http.StatusCreated, question)
}

// ListQuestions godoc
// @Summary (Admin) List the question bank, including correct answers
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.AdminQuestionDTO
// @Failure 403 {object} dto.ErrorResponse "Admin access required"
// @Router /admin/questions [get]
func (c *AdminController) ListQuestions(ctx *gin.Context) {
	questions, err := c.adminService.ListQuestions()
	if err != nil {
		log.Error().Err(err).Msg("Admin ListQuestions: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve questions"})
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// CreateQuestionSet godoc
// @Summary (Admin) Compose a question set from existing questions
// @Description Question IDs are taken in the order given; membership is fixed once quizzes start.
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param set body dto.QuestionSetCreateDTO true "Set data"
// @Success 201 {object} dto.QuestionSetSummaryDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Referenced question does not exist"
// @Router /admin/question-sets [post]
func (c *AdminController) CreateQuestionSet(ctx *gin.Context) {
	var req dto.QuestionSetCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateQuestionSet: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	set, err := c.adminService.CreateQuestionSet(req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "One or more question IDs do not exist"})
			return
		}
		log.Error().Err(err).Msg("Admin CreateQuestionSet: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to create question set"})
		return
	}
	ctx.JSON(http.StatusCreated, set)
}

// ListResults godoc
// @Summary (Admin) View all students' quiz results
// @Description Attempts by every non-admin user, newest first, with durations and attempt numbers. Optional name search.
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param search query string false "Case-insensitive substring match over username and name"
// @Success 200 {array} dto.AttemptHistoryDTO
// @Failure 403 {object} dto.ErrorResponse "Admin access required"
// @Router /admin/results [get]
func (c *AdminController) ListResults(ctx *gin.Context) {
	search := ctx.Query("search")
	results, err := c.historyService.GetAllResults(search)
	if err != nil {
		log.Error().Err(err).Str("search", search).Msg("Admin ListResults: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve results"})
		return
	}
	ctx.JSON(http.StatusOK, results)
}
