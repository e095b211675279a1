package repository

import (
	"github.com/pypath/pypath/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MasteryRepository interface {
	FindAllByUser(userID uint) ([]model.TopicMastery, error)
	IncrementXP(tx *gorm.DB, userID uint, topic string, delta int) error
}

type masteryRepository struct {
	db *gorm.DB
}

func NewMasteryRepository(db *gorm.DB) MasteryRepository {
	return &masteryRepository{db: db}
}

func (r *masteryRepository) FindAllByUser(userID uint) ([]model.TopicMastery, error) {
	var rows []model.TopicMastery
	err := r.db.Where("user_id = ?", userID).Order("topic ASC").Find(&rows).Error
	return rows, err
}

// IncrementXP adds delta to the (user, topic) XP counter, creating the row if
// it does not exist. The increment happens in SQL so concurrent submissions
// cannot lose an update. tx may be a transaction handle or the root DB.
func (r *masteryRepository) IncrementXP(tx *gorm.DB, userID uint, topic string, delta int) error {
	row := model.TopicMastery{UserID: userID, Topic: topic, XP: delta}
	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "topic"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"xp": gorm.Expr("topic_masteries.xp + ?", delta),
		}),
	}).Create(&row).Error
}
