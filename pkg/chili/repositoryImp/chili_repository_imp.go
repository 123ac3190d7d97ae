package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"chili/entities"
	"chili/pkg/chili/repository"
)

type chiliRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ChiliRepository { return &chiliRepo{db} }

func (r *chiliRepo) Create(c *entities.Chili) error { return r.db.Create(c).Error }

func (r *chiliRepo) FindByID(id uint) (*entities.Chili, error) {
	var c entities.Chili
	if err := r.db.First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// Save writes every column, so cleared optional fields go back to NULL.
func (r *chiliRepo) Save(c *entities.Chili) error { return r.db.Save(c).Error }

func (r *chiliRepo) Delete(id uint) error {
	res := r.db.Delete(&entities.Chili{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *chiliRepo) ListByUser(userID uint) ([]entities.Chili, error) {
	var out []entities.Chili
	err := r.db.Where("user_id = ?", userID).Order("planting_date DESC, id DESC").Find(&out).Error
	return out, err
}
