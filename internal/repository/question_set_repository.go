package repository

import (
	"github.com/pypath/pypath/internal/model"
	"gorm.io/gorm"
)

type QuestionSetRepository interface {
	Create(set *model.QuestionSet) error
	FindByID(id uint) (*model.QuestionSet, error)
	FindByIDWithQuestions(id uint) (*model.QuestionSet, error)
	FindAllWithQuestionCount() ([]struct {
		model.QuestionSet
		QuestionCount int
	}, error)
}

type questionSetRepository struct {
	db *gorm.DB
}

func NewQuestionSetRepository(db *gorm.DB) QuestionSetRepository {
	return &questionSetRepository{db: db}
}

func (r *questionSetRepository) Create(set *model.QuestionSet) error {
	// GORM creates the ordered join rows when set.Questions is populated.
	return r.db.Create(set).Error
}

func (r *questionSetRepository) FindByID(id uint) (*model.QuestionSet, error) {
	var set model.QuestionSet
	err := r.db.First(&set, id).Error
	return &set, err
}

func (r *questionSetRepository) FindByIDWithQuestions(id uint) (*model.QuestionSet, error) {
	var set model.QuestionSet
	err := r.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("question_set_questions.position ASC")
	}).Preload("Questions.Question").First(&set, id).Error
	if err != nil {
		return nil, err
	}
	return &set, nil
}

func (r *questionSetRepository) FindAllWithQuestionCount() ([]struct {
	model.QuestionSet
	QuestionCount int
}, error) {
	var results []struct {
		model.QuestionSet
		QuestionCount int
	}
	err := r.db.Model(&model.QuestionSet{}).
		Select("question_sets.*, (SELECT COUNT(*) FROM question_set_questions WHERE question_set_questions.question_set_id = question_sets.id) as question_count").
		Where("question_sets.deleted_at IS NULL").
		Order("question_sets.created_at DESC").
		Scan(&results).Error
	return results, err
}
