package repository

import (
	"github.com/embarkhq/embark/internal/model"
	"gorm.io/gorm"
)

type BadgeRepository interface {
	Create(badge *model.Badge) error
	FindByID(id uint) (*model.Badge, error)
	FindByIDs(ids []uint) ([]model.Badge, error)
	FindAll() ([]model.Badge, error)
	Update(badge *model.Badge) error
	Delete(id uint) error
}

type badgeRepository struct {
	db *gorm.DB
}

func NewBadgeRepository(db *gorm.DB) BadgeRepository {
	return &badgeRepository{db: db}
}

func (r *badgeRepository) Create(badge *model.Badge) error {
	return r.db.Create(badge).Error
}

func (r *badgeRepository) FindByID(id uint) (*model.Badge, error) {
	var badge model.Badge
	if err := r.db.First(&badge, id).Error; err != nil {
		return nil, err
	}
	return &badge, nil
}

func (r *badgeRepository) FindByIDs(ids []uint) ([]model.Badge, error) {
	badges := []model.Badge{}
	if len(ids) == 0 {
		return badges, nil
	}
	err := r.db.Find(&badges, ids).Error
	return badges, err
}

func (r *badgeRepository) FindAll() ([]model.Badge, error) {
	var badges []model.Badge
	err := r.db.Order("created_at ASC").Find(&badges).Error
	return badges, err
}

func (r *badgeRepository) Update(badge *model.Badge) error {
	return r.db.Save(badge).Error
}

func (r *badgeRepository) Delete(id uint) error {
	return r.db.Delete(&model.Badge{}, id).Error
}
