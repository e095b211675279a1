package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/pypath/pypath/config"
	"github.com/pypath/pypath/database"
	_ "github.com/pypath/pypath/docs" // Swagger docs
	adminctrl "github.com/pypath/pypath/internal/controller/admin"
	userctrl "github.com/pypath/pypath/internal/controller/user"
	"github.com/pypath/pypath/internal/logger"
	"github.com/pypath/pypath/internal/middleware"
	"github.com/pypath/pypath/internal/model"
	"github.com/pypath/pypath/internal/repository"
	"github.com/pypath/pypath/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// @title PyPath Learning Tracker API
// @version 1.0
// @description Quiz and learning-tracker API: users take quizzes, earn XP, level up and build per-topic mastery; admins manage the question bank and view aggregate results.
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		// Repositories
		fx.Provide(
			repository.NewUserRepository,
			repository.NewQuestionRepository,
			repository.NewQuestionSetRepository,
			repository.NewResultRepository,
			repository.NewAnswerRepository,
			repository.NewMasteryRepository,
			repository.NewAchievementRepository,
		),

		// Services
		fx.Provide(
			service.NewAuthService,
			service.NewLevelingService,
			service.NewQuestionSetService,
			service.NewAdminService,
			service.NewMasteryService,
			service.NewHistoryService,
			service.NewAchievementService,
			service.NewQuizSubmissionService,
		),

		// Controllers
		fx.Provide(
			userctrl.NewAuthController,
			userctrl.NewQuizController,
			userctrl.NewProgressController,
			adminctrl.NewAdminController,
		),

		fx.Invoke(AutoMigrateDB),
		fx.Invoke(SeedData),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	authService service.AuthService,
	authCtrl *userctrl.AuthController,
	quizCtrl *userctrl.QuizController,
	progressCtrl *userctrl.ProgressController,
	adminCtrl *adminctrl.AdminController,
) {
	api := router.Group("/api/v1")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", authCtrl.Register)
		authGroup.POST("/login", authCtrl.Login)
	}

	userGroup := api.Group("")
	userGroup.Use(middleware.RequireAuth(authService))
	{
		userGroup.GET("/question-sets", quizCtrl.ListQuestionSets)
		userGroup.GET("/question-sets/:set_id", quizCtrl.GetQuestionSet)
		userGroup.POST("/question-sets/:set_id/attempts", quizCtrl.StartAttempt)
		userGroup.POST("/attempts/:attempt_id/submit", quizCtrl.SubmitAttempt)
		userGroup.GET("/attempts/:attempt_id", quizCtrl.GetAttemptReview)

		userGroup.GET("/me", progressCtrl.GetProfile)
		userGroup.GET("/me/mastery", progressCtrl.GetMastery)
		userGroup.GET("/me/attempts", progressCtrl.GetHistory)
		userGroup.GET("/me/achievements", progressCtrl.GetAchievements)
	}

	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.RequireAuth(authService), middleware.RequireAdmin())
	{
		adminGroup.POST("/questions", adminCtrl.CreateQuestion)
		adminGroup.GET("/questions", adminCtrl.ListQuestions)
		adminGroup.POST("/question-sets", adminCtrl.CreateQuestionSet)
		adminGroup.GET("/results", adminCtrl.ListResults)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("PyPath API server starting on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.Question{},
		&model.QuestionSet{},
		&model.QuestionSetQuestion{},
		&model.Result{},
		&model.AnswerRecord{},
		&model.TopicMastery{},
		&model.Achievement{},
		&model.UserAchievement{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}

// SeedData ensures the default admin account and the achievement catalog
// exist. Safe to run on every start.
func SeedData(userRepo repository.UserRepository, achievementRepo repository.AchievementRepository) error {
	admin, err := userRepo.FindByUsername("admin")
	if err != nil {
		return err
	}
	if admin == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		if err := userRepo.Create(&model.User{
			Username: "admin",
			Password: string(hash),
			IsAdmin:  true,
		}); err != nil {
			return err
		}
		log.Info().Msg("Default admin user created")
	}

	achievements := []model.Achievement{
		{Code: service.AchievementFirstSteps, Name: "First Steps", Description: "Complete your first quiz."},
		{Code: service.AchievementPerfectScore, Name: "Perfect Score", Description: "Answer every question in a quiz correctly."},
		{Code: service.AchievementLevelUp, Name: "Level Up", Description: "Reach level 1."},
	}
	for i := range achievements {
		if err := achievementRepo.Create(&achievements[i]); err != nil {
			return err
		}
	}
	return nil
}
