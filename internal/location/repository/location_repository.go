package repository

import (
	"errors"
	"time"

	"safeguardian-backend/internal/location/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LocationRepository interface {
	Create(loc *domain.Location) error
	History(ownerUserID string, limit int) ([]*domain.Location, error)
	Last(ownerUserID string) (*domain.Location, error)
}

type locationRepository struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &locationRepository{
		db: db,
	}
}

func (r *locationRepository) Create(loc *domain.Location) error {
	loc.ID = uuid.New().String()
	loc.RecordedAt = time.Now()
	return r.db.Create(loc).Error
}

func (r *locationRepository) History(ownerUserID string, limit int) ([]*domain.Location, error) {
	var locs []*domain.Location
	err := r.db.Where("owner_user_id = ?", ownerUserID).
		Order("recorded_at DESC").Limit(limit).Find(&locs).Error
	return locs, err
}

func (r *locationRepository) Last(ownerUserID string) (*domain.Location, error) {
	var loc domain.Location
	err := r.db.Where("owner_user_id = ?", ownerUserID).
		Order("recorded_at DESC").First(&loc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &loc, nil
}
