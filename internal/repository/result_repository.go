package repository

import (
	"github.com/pypath/pypath/internal/model"
	"gorm.io/gorm"
)

type ResultRepository interface {
	Create(result *model.Result) error
	FindByID(id uint) (*model.Result, error)
	FindByIDWithSet(id uint) (*model.Result, error)
	FindAllByUser(userID uint) ([]model.Result, error)
	FindAllStudents(search string) ([]model.Result, error)
}

type resultRepository struct {
	db *gorm.DB
}

func NewResultRepository(db *gorm.DB) ResultRepository {
	return &resultRepository{db: db}
}

func (r *resultRepository) Create(result *model.Result) error {
	return r.db.Create(result).Error
}

func (r *resultRepository) FindByID(id uint) (*model.Result, error) {
	var result model.Result
	err := r.db.First(&result, id).Error
	return &result, err
}

func (r *resultRepository) FindByIDWithSet(id uint) (*model.Result, error) {
	var result model.Result
	err := r.db.Preload("QuestionSet").First(&result, id).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *resultRepository) FindAllByUser(userID uint) ([]model.Result, error) {
	var results []model.Result
	err := r.db.
		Preload("QuestionSet").
		Preload("User").
		Where("user_id = ?", userID).
		Order("time_end DESC NULLS LAST").
		Find(&results).Error
	return results, err
}

// FindAllStudents returns attempts of every non-admin user, newest first.
// search, when non-empty, is a case-insensitive substring filter over the
// username and display name parts.
func (r *resultRepository) FindAllStudents(search string) ([]model.Result, error) {
	var results []model.Result
	query := r.db.
		Preload("QuestionSet").
		Preload("User").
		Joins("JOIN users ON users.id = results.user_id").
		Where("users.is_admin = ?", false)
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where(
			"users.username ILIKE ? OR users.first_name ILIKE ? OR users.last_name ILIKE ?",
			pattern, pattern, pattern,
		)
	}
	err := query.Order("results.time_end DESC NULLS LAST").Find(&results).Error
	return results, err
}
