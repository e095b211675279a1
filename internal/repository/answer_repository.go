package repository

import (
	"github.com/pypath/pypath/internal/model"
	"gorm.io/gorm"
)

type AnswerRepository interface {
	FindByResultID(resultID uint) ([]model.AnswerRecord, error)
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) FindByResultID(resultID uint) ([]model.AnswerRecord, error) {
	var answers []model.AnswerRecord
	err := r.db.Preload("Question").Where("result_id = ?", resultID).Order("id ASC").Find(&answers).Error
	return answers, err
}
