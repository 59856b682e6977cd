package repository

import (
	"errors"
	"time"

	"safeguardian-backend/internal/document/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DocumentRepository interface {
	Create(doc *domain.Document) error
	FindByOwner(ownerUserID string) ([]*domain.Document, error)
	FindByID(id string) (*domain.Document, error)
	Update(doc *domain.Document) error
	Delete(ownerUserID, id string) (int64, error)
	ShareWithContacts(documentID string, contactIDs []string) error
	SharesByDocument(documentID string) ([]*domain.DocumentShare, error)
}

type documentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepository{
		db: db,
	}
}

func (r *documentRepository) Create(doc *domain.Document) error {
	doc.ID = uuid.New().String()
	doc.UploadedAt = time.Now()
	doc.UpdatedAt = doc.UploadedAt
	return r.db.Create(doc).Error
}

func (r *documentRepository) FindByOwner(ownerUserID string) ([]*domain.Document, error) {
	var docs []*domain.Document
	err := r.db.Where("owner_user_id = ?", ownerUserID).
		Order("uploaded_at DESC").Find(&docs).Error
	return docs, err
}

func (r *documentRepository) FindByID(id string) (*domain.Document, error) {
	var doc domain.Document
	err := r.db.Where("id = ?", id).First(&doc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doc, nil
}

func (r *documentRepository) Update(doc *domain.Document) error {
	doc.UpdatedAt = time.Now()
	return r.db.Save(doc).Error
}

func (r *documentRepository) Delete(ownerUserID, id string) (int64, error) {
	res := r.db.Where("id = ? AND owner_user_id = ?", id, ownerUserID).
		Delete(&domain.Document{})
	return res.RowsAffected, res.Error
}

// ShareWithContacts creates one share row per contact in a single
// transaction; a partial failure leaves no shares behind.
func (r *documentRepository) ShareWithContacts(documentID string, contactIDs []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, contactID := range contactIDs {
			share := &domain.DocumentShare{
				ID:         uuid.New().String(),
				DocumentID: documentID,
				ContactID:  contactID,
				SharedAt:   time.Now(),
			}
			if err := tx.Create(share).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *documentRepository) SharesByDocument(documentID string) ([]*domain.DocumentShare, error) {
	var shares []*domain.DocumentShare
	err := r.db.Where("document_id = ?", documentID).Find(&shares).Error
	return shares, err
}
