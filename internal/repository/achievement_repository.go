package repository

import (
	"errors"

	"github.com/pypath/pypath/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AchievementRepository interface {
	Create(a *model.Achievement) error
	FindByCode(code string) (*model.Achievement, error)
	FindAllByUser(userID uint) ([]model.UserAchievement, error)
	Grant(tx *gorm.DB, userID, achievementID uint) (bool, error)
}

type achievementRepository struct {
	db *gorm.DB
}

func NewAchievementRepository(db *gorm.DB) AchievementRepository {
	return &achievementRepository{db: db}
}

func (r *achievementRepository) Create(a *model.Achievement) error {
	// Insert-or-ignore keyed on the unique code, so seeding is re-runnable.
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "code"}},
		DoNothing: true,
	}).Create(a).Error
}

func (r *achievementRepository) FindByCode(code string) (*model.Achievement, error) {
	var a model.Achievement
	if err := r.db.Where("code = ?", code).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *achievementRepository) FindAllByUser(userID uint) ([]model.UserAchievement, error) {
	var rows []model.UserAchievement
	err := r.db.Preload("Achievement").Where("user_id = ?", userID).Order("created_at ASC").Find(&rows).Error
	return rows, err
}

// Grant records the achievement for the user. Granting twice is a no-op; the
// return value reports whether a new row was written.
func (r *achievementRepository) Grant(tx *gorm.DB, userID, achievementID uint) (bool, error) {
	row := model.UserAchievement{UserID: userID, AchievementID: achievementID}
	res := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "achievement_id"}},
		DoNothing: true,
	}).Create(&row)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
