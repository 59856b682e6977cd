package usecase

import (
	"errors"

	"safeguardian-backend/internal/contact/domain"
	"safeguardian-backend/internal/contact/repository"
)

var (
	ErrContactNotFound = errors.New("contact not found")
	ErrInvalidPriority = errors.New("priority must be between 1 and 7")
)

// ContactUsecase covers the emergency-contact CRUD plus verification.
type ContactUsecase interface {
	AddContact(ownerUserID string, req *CreateContactRequest) (*domain.EmergencyContact, error)
	GetContacts(ownerUserID string) ([]*domain.EmergencyContact, error)
	UpdateContact(ownerUserID, contactID string, req *UpdateContactRequest) (*domain.EmergencyContact, error)
	DeleteContact(ownerUserID, contactID string) error
	VerifyContact(ownerUserID, contactID string) error
}

type CreateContactRequest struct {
	Name         string `json:"name" binding:"required,min=2,max=100"`
	Phone        string `json:"phone" binding:"required"`
	Email        string `json:"email" binding:"omitempty,email"`
	Relationship string `json:"relationship"`
	Priority     int    `json:"priority"`
}

type UpdateContactRequest struct {
	Name         *string `json:"name" binding:"omitempty,min=2,max=100"`
	Phone        *string `json:"phone"`
	Email        *string `json:"email" binding:"omitempty,email"`
	Relationship *string `json:"relationship"`
	Priority     *int    `json:"priority"`
}

type contactUsecase struct {
	contactRepo repository.ContactRepository
}

func NewContactUsecase(contactRepo repository.ContactRepository) ContactUsecase {
	return &contactUsecase{
		contactRepo: contactRepo,
	}
}

func (u *contactUsecase) AddContact(ownerUserID string, req *CreateContactRequest) (*domain.EmergencyContact, error) {
	if req.Priority == 0 {
		req.Priority = 1
	}
	if req.Priority < 1 || req.Priority > 7 {
		return nil, ErrInvalidPriority
	}

	contact := &domain.EmergencyContact{
		OwnerUserID:  ownerUserID,
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		Relationship: req.Relationship,
		Priority:     req.Priority,
		IsVerified:   false,
	}

	if err := u.contactRepo.Create(contact); err != nil {
		return nil, err
	}
	return contact, nil
}

func (u *contactUsecase) GetContacts(ownerUserID string) ([]*domain.EmergencyContact, error) {
	return u.contactRepo.FindByOwner(ownerUserID)
}

func (u *contactUsecase) UpdateContact(ownerUserID, contactID string, req *UpdateContactRequest) (*domain.EmergencyContact, error) {
	contact, err := u.contactRepo.FindByID(contactID)
	if err != nil {
		return nil, err
	}
	// not owned reads the same as missing
	if contact == nil || contact.OwnerUserID != ownerUserID {
		return nil, ErrContactNotFound
	}

	if req.Name != nil {
		contact.Name = *req.Name
	}
	if req.Phone != nil {
		contact.Phone = *req.Phone
	}
	if req.Email != nil {
		contact.Email = *req.Email
	}
	if req.Relationship != nil {
		contact.Relationship = *req.Relationship
	}
	if req.Priority != nil {
		if *req.Priority < 1 || *req.Priority > 7 {
			return nil, ErrInvalidPriority
		}
		contact.Priority = *req.Priority
	}

	if err := u.contactRepo.Update(contact); err != nil {
		return nil, err
	}
	return contact, nil
}

func (u *contactUsecase) DeleteContact(ownerUserID, contactID string) error {
	affected, err := u.contactRepo.Delete(ownerUserID, contactID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrContactNotFound
	}
	return nil
}

func (u *contactUsecase) VerifyContact(ownerUserID, contactID string) error {
	affected, err := u.contactRepo.MarkVerified(ownerUserID, contactID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrContactNotFound
	}
	return nil
}
