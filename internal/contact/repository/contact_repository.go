package repository

import (
	"errors"
	"time"

	"safeguardian-backend/internal/contact/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactRepository is the emergency-contact store. FindVerifiedByOwner
// returns contacts in fan-out order.
type ContactRepository interface {
	Create(contact *domain.EmergencyContact) error
	FindByOwner(ownerUserID string) ([]*domain.EmergencyContact, error)
	FindVerifiedByOwner(ownerUserID string) ([]*domain.EmergencyContact, error)
	FindByID(id string) (*domain.EmergencyContact, error)
	Update(contact *domain.EmergencyContact) error
	Delete(ownerUserID, id string) (int64, error)
	MarkVerified(ownerUserID, id string) (int64, error)
}

type contactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{
		db: db,
	}
}

func (r *contactRepository) Create(contact *domain.EmergencyContact) error {
	contact.ID = uuid.New().String()
	contact.CreatedAt = time.Now()
	contact.UpdatedAt = time.Now()
	return r.db.Create(contact).Error
}

func (r *contactRepository) FindByOwner(ownerUserID string) ([]*domain.EmergencyContact, error) {
	var contacts []*domain.EmergencyContact
	err := r.db.Where("owner_user_id = ?", ownerUserID).
		Order("priority ASC, name ASC").Find(&contacts).Error
	return contacts, err
}

func (r *contactRepository) FindVerifiedByOwner(ownerUserID string) ([]*domain.EmergencyContact, error) {
	var contacts []*domain.EmergencyContact
	err := r.db.Where("owner_user_id = ? AND is_verified = ?", ownerUserID, true).
		Order("priority ASC").Find(&contacts).Error
	return contacts, err
}

func (r *contactRepository) FindByID(id string) (*domain.EmergencyContact, error) {
	var contact domain.EmergencyContact
	err := r.db.Where("id = ?", id).First(&contact).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &contact, nil
}

func (r *contactRepository) Update(contact *domain.EmergencyContact) error {
	contact.UpdatedAt = time.Now()
	return r.db.Save(contact).Error
}

// Delete is owner-scoped; the affected-rows count lets the caller collapse
// "missing" and "not owned" into one outcome.
func (r *contactRepository) Delete(ownerUserID, id string) (int64, error) {
	res := r.db.Where("id = ? AND owner_user_id = ?", id, ownerUserID).
		Delete(&domain.EmergencyContact{})
	return res.RowsAffected, res.Error
}

func (r *contactRepository) MarkVerified(ownerUserID, id string) (int64, error) {
	now := time.Now()
	res := r.db.Model(&domain.EmergencyContact{}).
		Where("id = ? AND owner_user_id = ?", id, ownerUserID).
		Updates(map[string]interface{}{
			"is_verified": true,
			"verified_at": now,
			"updated_at":  now,
		})
	return res.RowsAffected, res.Error
}
