package usecase

import (
	"errors"

	contactrepo "safeguardian-backend/internal/contact/repository"
	"safeguardian-backend/internal/document/domain"
	"safeguardian-backend/internal/document/repository"
)

var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrContactNotFound  = errors.New("contact not found")
	ErrNoShareTargets   = errors.New("no contacts to share with")
)

type DocumentUsecase interface {
	AddDocument(ownerUserID string, req *CreateDocumentRequest) (*domain.Document, error)
	GetDocuments(ownerUserID string) ([]*domain.Document, error)
	GetDownload(ownerUserID, documentID string) (*domain.Document, error)
	UpdateDocument(ownerUserID, documentID string, req *UpdateDocumentRequest) (*domain.Document, error)
	DeleteDocument(ownerUserID, documentID string) error
	ShareDocument(ownerUserID, documentID string, contactIDs []string) error
}

type CreateDocumentRequest struct {
	Title        string `json:"title" binding:"required,min=2,max=200"`
	DocumentType string `json:"document_type"`
	FilePath     string `json:"file_path" binding:"required"`
	FileSize     int64  `json:"file_size"`
}

type UpdateDocumentRequest struct {
	Title        *string `json:"title" binding:"omitempty,min=2,max=200"`
	DocumentType *string `json:"document_type"`
}

type documentUsecase struct {
	documentRepo repository.DocumentRepository
	contactRepo  contactrepo.ContactRepository
}

func NewDocumentUsecase(documentRepo repository.DocumentRepository, contactRepo contactrepo.ContactRepository) DocumentUsecase {
	return &documentUsecase{
		documentRepo: documentRepo,
		contactRepo:  contactRepo,
	}
}

func (u *documentUsecase) AddDocument(ownerUserID string, req *CreateDocumentRequest) (*domain.Document, error) {
	doc := &domain.Document{
		OwnerUserID:  ownerUserID,
		Title:        req.Title,
		DocumentType: req.DocumentType,
		FilePath:     req.FilePath,
		FileSize:     req.FileSize,
	}
	if err := u.documentRepo.Create(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (u *documentUsecase) GetDocuments(ownerUserID string) ([]*domain.Document, error) {
	return u.documentRepo.FindByOwner(ownerUserID)
}

func (u *documentUsecase) GetDownload(ownerUserID, documentID string) (*domain.Document, error) {
	return u.ownedDocument(ownerUserID, documentID)
}

func (u *documentUsecase) UpdateDocument(ownerUserID, documentID string, req *UpdateDocumentRequest) (*domain.Document, error) {
	doc, err := u.ownedDocument(ownerUserID, documentID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		doc.Title = *req.Title
	}
	if req.DocumentType != nil {
		doc.DocumentType = *req.DocumentType
	}

	if err := u.documentRepo.Update(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (u *documentUsecase) DeleteDocument(ownerUserID, documentID string) error {
	affected, err := u.documentRepo.Delete(ownerUserID, documentID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrDocumentNotFound
	}
	return nil
}

// ShareDocument grants the listed contacts access to an owned document. All
// contacts must belong to the owner; the batch insert is all-or-nothing.
func (u *documentUsecase) ShareDocument(ownerUserID, documentID string, contactIDs []string) error {
	if len(contactIDs) == 0 {
		return ErrNoShareTargets
	}

	if _, err := u.ownedDocument(ownerUserID, documentID); err != nil {
		return err
	}

	for _, contactID := range contactIDs {
		contact, err := u.contactRepo.FindByID(contactID)
		if err != nil {
			return err
		}
		if contact == nil || contact.OwnerUserID != ownerUserID {
			return ErrContactNotFound
		}
	}

	return u.documentRepo.ShareWithContacts(documentID, contactIDs)
}

func (u *documentUsecase) ownedDocument(ownerUserID, documentID string) (*domain.Document, error) {
	doc, err := u.documentRepo.FindByID(documentID)
	if err != nil {
		return nil, err
	}
	if doc == nil || doc.OwnerUserID != ownerUserID {
		return nil, ErrDocumentNotFound
	}
	return doc, nil
}
