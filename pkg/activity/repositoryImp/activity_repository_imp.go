package repositoryImp

import (
	"gorm.io/gorm"

	"chili/entities"
	"chili/pkg/activity/repository"
)

type activityRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ActivityRepository { return &activityRepo{db} }

func (r *activityRepo) Log(userID *uint, action string) error {
	return r.db.Create(&entities.ActivityLog{UserID: userID, Action: action}).Error
}

func (r *activityRepo) ListForUser(userID uint) ([]entities.ActivityLog, error) {
	var out []entities.ActivityLog
	err := r.db.Where("user_id = ?", userID).Order("timestamp DESC").Find(&out).Error
	return out, err
}

func (r *activityRepo) ListAll() ([]entities.ActivityLog, error) {
	var out []entities.ActivityLog
	err := r.db.Order("timestamp DESC").Find(&out).Error
	return out, err
}
