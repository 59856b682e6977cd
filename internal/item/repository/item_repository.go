package repository

import (
	"errors"
	"time"

	"safeguardian-backend/internal/item/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ItemRepository interface {
	Create(item *domain.Item) error
	FindByOwner(ownerUserID string) ([]*domain.Item, error)
	FindByID(id string) (*domain.Item, error)
	Update(item *domain.Item) error
	UpdateStatus(ownerUserID, id string, status domain.ItemStatus) (int64, error)
	Delete(ownerUserID, id string) (int64, error)
}

type itemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{
		db: db,
	}
}

func (r *itemRepository) Create(item *domain.Item) error {
	item.ID = uuid.New().String()
	item.CreatedAt = time.Now()
	item.UpdatedAt = time.Now()
	return r.db.Create(item).Error
}

func (r *itemRepository) FindByOwner(ownerUserID string) ([]*domain.Item, error) {
	var items []*domain.Item
	err := r.db.Where("owner_user_id = ?", ownerUserID).
		Order("created_at DESC").Find(&items).Error
	return items, err
}

func (r *itemRepository) FindByID(id string) (*domain.Item, error) {
	var item domain.Item
	err := r.db.Where("id = ?", id).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) Update(item *domain.Item) error {
	item.UpdatedAt = time.Now()
	return r.db.Save(item).Error
}

func (r *itemRepository) UpdateStatus(ownerUserID, id string, status domain.ItemStatus) (int64, error) {
	res := r.db.Model(&domain.Item{}).
		Where("id = ? AND owner_user_id = ?", id, ownerUserID).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})
	return res.RowsAffected, res.Error
}

func (r *itemRepository) Delete(ownerUserID, id string) (int64, error) {
	res := r.db.Where("id = ? AND owner_user_id = ?", id, ownerUserID).
		Delete(&domain.Item{})
	return res.RowsAffected, res.Error
}
