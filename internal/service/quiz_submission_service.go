package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/pypath/pypath/internal/dto"
	"github.com/pypath/pypath/internal/model"
	"github.com/pypath/pypath/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// QuizSubmissionService owns the attempt lifecycle: opening an attempt
// against a question set and scoring the submitted answers.
type QuizSubmissionService interface {
	StartAttempt(userID, setID uint) (*dto.AttemptStartedDTO, error)
	SubmitAttempt(userID, attemptID uint, req dto.AttemptSubmitDTO) (*dto.AttemptResultDTO, error)
	GetAttemptReview(userID, attemptID uint) (*dto.AttemptReviewDTO, error)
}

type quizSubmissionService struct {
	setRepo            repository.QuestionSetRepository
	resultRepo         repository.ResultRepository
	userRepo           repository.UserRepository
	masteryRepo        repository.MasteryRepository
	answerRepo         repository.AnswerRepository
	leveling           LevelingService
	achievementService AchievementService
	db                 *gorm.DB // transactions span several repositories
}

func NewQuizSubmissionService(
	setRepo repository.QuestionSetRepository,
	resultRepo repository.ResultRepository,
	userRepo repository.UserRepository,
	masteryRepo repository.MasteryRepository,
	answerRepo repository.AnswerRepository,
	leveling LevelingService,
	achievementService AchievementService,
	db *gorm.DB,
) QuizSubmissionService {
	return &quizSubmissionService{
		setRepo:            setRepo,
		resultRepo:         resultRepo,
		userRepo:           userRepo,
		masteryRepo:        masteryRepo,
		answerRepo:         answerRepo,
		leveling:           leveling,
		achievementService: achievementService,
		db:                 db,
	}
}

// GradedAnswer is the outcome of checking one submitted answer.
type GradedAnswer struct {
	QuestionID uint
	Submitted  string
	IsCorrect  bool
	Topic      string
}

// EvaluateAnswers grades a submission against the set's questions. A question
// is correct only when it is multiple choice and the submitted answer equals
// the stored one exactly (case-sensitive); questions without a submission are
// incorrect. Returns the per-question grades, the total score and the XP
// earned per topic.
func EvaluateAnswers(questions []model.Question, submitted map[uint]string) ([]GradedAnswer, int, map[string]int) {
	graded := make([]GradedAnswer, 0, len(questions))
	score := 0
	topicXP := make(map[string]int)

	for _, q := range questions {
		answer, answered := submitted[q.ID]
		correct := answered &&
			q.Type == model.QuestionTypeMultipleChoice &&
			answer == q.CorrectAnswer
		if correct {
			score++
			topicXP[q.Topic] += XPPerCorrectAnswer
		}
		graded = append(graded, GradedAnswer{
			QuestionID: q.ID,
			Submitted:  answer,
			IsCorrect:  correct,
			Topic:      q.Topic,
		})
	}
	return graded, score, topicXP
}

func (s *quizSubmissionService) StartAttempt(userID, setID uint) (*dto.AttemptStartedDTO, error) {
	set, err := s.setRepo.FindByIDWithQuestions(setID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		log.Error().Err(err).Uint("setID", setID).Msg("StartAttempt: failed to load question set")
		return nil, fmt.Errorf("error loading question set %d: %w", setID, err)
	}

	now := time.Now()
	result := model.Result{
		UserID:         userID,
		QuestionSetID:  set.ID,
		Score:          0,
		TotalQuestions: len(set.Questions),
		TimeStart:      &now,
	}
	if err := s.resultRepo.Create(&result); err != nil {
		log.Error().Err(err).Uint("setID", setID).Uint("userID", userID).Msg("StartAttempt: failed to create attempt")
		return nil, fmt.Errorf("error creating attempt: %w", err)
	}

	log.Info().Uint("attemptID", result.ID).Uint("setID", set.ID).Uint("userID", userID).Msg("Attempt started")
	return &dto.AttemptStartedDTO{
		AttemptID:      result.ID,
		QuestionSetID:  set.ID,
		SetName:        set.Name,
		TotalQuestions: len(set.Questions),
		TimeStart:      now,
		Questions:      questionDTOsFromSet(set),
	}, nil
}

// SubmitAttempt grades the submission and persists everything it implies:
// answer records, topic XP, the finalized attempt row, the user's XP and
// level, and any achievements. All writes happen in one transaction.
func (s *quizSubmissionService) SubmitAttempt(userID, attemptID uint, req dto.AttemptSubmitDTO) (*dto.AttemptResultDTO, error) {
	result, err := s.resultRepo.FindByIDWithSet(attemptID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		log.Error().Err(err).Uint("attemptID", attemptID).Msg("SubmitAttempt: failed to load attempt")
		return nil, fmt.Errorf("error loading attempt %d: %w", attemptID, err)
	}
	if result.UserID != userID {
		// Another user's attempt is indistinguishable from a missing one.
		return nil, ErrNotFound
	}
	if result.Finalized() {
		return nil, ErrAlreadySubmitted
	}

	set, err := s.setRepo.FindByIDWithQuestions(result.QuestionSetID)
	if err != nil {
		log.Error().Err(err).Uint("setID", result.QuestionSetID).Msg("SubmitAttempt: failed to load question set")
		return nil, fmt.Errorf("error loading question set %d: %w", result.QuestionSetID, err)
	}
	questions := make([]model.Question, 0, len(set.Questions))
	for _, sq := range set.Questions {
		questions = append(questions, sq.Question)
	}

	submitted := make(map[uint]string, len(req.Answers))
	for _, a := range req.Answers {
		submitted[a.QuestionID] = a.Answer
	}

	graded, score, topicXP := EvaluateAnswers(questions, submitted)
	xpGained := score * XPPerCorrectAnswer

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("SubmitAttempt: failed to load user")
		return nil, fmt.Errorf("error loading user %d: %w", userID, err)
	}
	newXP, newLevel := s.leveling.ApplyXP(user.XP, user.Level, xpGained)

	now := time.Now()
	var newAchievements []dto.AchievementDTO
	err = s.db.Transaction(func(tx *gorm.DB) error {
		records := make([]model.AnswerRecord, 0, len(graded))
		for _, g := range graded {
			records = append(records, model.AnswerRecord{
				ResultID:   result.ID,
				QuestionID: g.QuestionID,
				Submitted:  g.Submitted,
				IsCorrect:  g.IsCorrect,
			})
		}
		if len(records) > 0 {
			if err := tx.Create(&records).Error; err != nil {
				return fmt.Errorf("failed to persist answer records: %w", err)
			}
		}

		for topic, delta := range topicXP {
			if err := s.masteryRepo.IncrementXP(tx, userID, topic, delta); err != nil {
				return fmt.Errorf("failed to increment mastery for topic %q: %w", topic, err)
			}
		}

		if err := tx.Model(&model.Result{}).Where("id = ?", result.ID).Updates(map[string]interface{}{
			"score":           score,
			"total_questions": len(questions),
			"time_end":        now,
		}).Error; err != nil {
			return fmt.Errorf("failed to finalize attempt: %w", err)
		}

		if err := tx.Model(&model.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
			"xp":    newXP,
			"level": newLevel,
		}).Error; err != nil {
			return fmt.Errorf("failed to update user progress: %w", err)
		}

		granted, err := s.achievementService.GrantForSubmission(tx, userID, score, len(questions), newLevel)
		if err != nil {
			return err
		}
		newAchievements = granted
		return nil
	})
	if err != nil {
		log.Error().Err(err).Uint("attemptID", attemptID).Msg("SubmitAttempt: transaction failed, nothing persisted")
		return nil, err
	}

	log.Info().
		Uint("attemptID", result.ID).
		Uint("userID", userID).
		Int("score", score).
		Int("total", len(questions)).
		Int("xpGained", xpGained).
		Msg("Attempt submitted")

	answerDTOs := make([]dto.AnswerRecordDTO, 0, len(graded))
	for i, g := range graded {
		answerDTOs = append(answerDTOs, dto.AnswerRecordDTO{
			QuestionID:    g.QuestionID,
			Prompt:        questions[i].Prompt,
			Topic:         g.Topic,
			Submitted:     g.Submitted,
			CorrectAnswer: questions[i].CorrectAnswer,
			IsCorrect:     g.IsCorrect,
		})
	}

	return &dto.AttemptResultDTO{
		AttemptID:       result.ID,
		QuestionSetID:   result.QuestionSetID,
		SetName:         set.Name,
		Score:           score,
		TotalQuestions:  len(questions),
		XPGained:        xpGained,
		Level:           newLevel,
		XP:              newXP,
		LeveledUp:       newLevel > user.Level,
		TimeStart:       result.TimeStart,
		TimeEnd:         &now,
		Answers:         answerDTOs,
		NewAchievements: newAchievements,
	}, nil
}

// GetAttemptReview returns a past attempt with its graded answer records. An
// attempt that has not been submitted yet has no records.
func (s *quizSubmissionService) GetAttemptReview(userID, attemptID uint) (*dto.AttemptReviewDTO, error) {
	result, err := s.resultRepo.FindByIDWithSet(attemptID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		log.Error().Err(err).Uint("attemptID", attemptID).Msg("GetAttemptReview: failed to load attempt")
		return nil, fmt.Errorf("error loading attempt %d: %w", attemptID, err)
	}
	if result.UserID != userID {
		return nil, ErrNotFound
	}

	records, err := s.answerRepo.FindByResultID(result.ID)
	if err != nil {
		log.Error().Err(err).Uint("attemptID", attemptID).Msg("GetAttemptReview: failed to load answer records")
		return nil, fmt.Errorf("error loading answers for attempt %d: %w", attemptID, err)
	}

	answerDTOs := make([]dto.AnswerRecordDTO, 0, len(records))
	for _, rec := range records {
		answerDTOs = append(answerDTOs, dto.AnswerRecordDTO{
			QuestionID:    rec.QuestionID,
			Prompt:        rec.Question.Prompt,
			Topic:         rec.Question.Topic,
			Submitted:     rec.Submitted,
			CorrectAnswer: rec.Question.CorrectAnswer,
			IsCorrect:     rec.IsCorrect,
		})
	}

	return &dto.AttemptReviewDTO{
		AttemptID:      result.ID,
		QuestionSetID:  result.QuestionSetID,
		SetName:        result.QuestionSet.Name,
		Score:          result.Score,
		TotalQuestions: result.TotalQuestions,
		Finalized:      result.Finalized(),
		TimeStart:      result.TimeStart,
		TimeEnd:        result.TimeEnd,
		Duration:       FormatDuration(result.TimeStart, result.TimeEnd),
		Answers:        answerDTOs,
	}, nil
}
