package usecase

import (
	"errors"

	"safeguardian-backend/internal/item/domain"
	"safeguardian-backend/internal/item/repository"
)

var (
	ErrItemNotFound      = errors.New("item not found")
	ErrInvalidItemStatus = errors.New("invalid item status")
)

type ItemUsecase interface {
	AddItem(ownerUserID string, req *CreateItemRequest) (*domain.Item, error)
	GetItems(ownerUserID string) ([]*domain.Item, error)
	UpdateItem(ownerUserID, itemID string, req *UpdateItemRequest) (*domain.Item, error)
	MarkLost(ownerUserID, itemID string, isLost bool) error
	DeleteItem(ownerUserID, itemID string) error
}

type CreateItemRequest struct {
	Name         string `json:"name" binding:"required,min=2,max=100"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	SerialNumber string `json:"serial_number"`
	ImageURL     string `json:"image_url"`
}

type UpdateItemRequest struct {
	Name         *string `json:"name" binding:"omitempty,min=2,max=100"`
	Description  *string `json:"description"`
	Category     *string `json:"category"`
	SerialNumber *string `json:"serial_number"`
	ImageURL     *string `json:"image_url"`
	Status       *string `json:"status"`
	// IsLost, when present, wins over Status and toggles lost/found.
	IsLost *bool `json:"is_lost"`
}

type itemUsecase struct {
	itemRepo repository.ItemRepository
}

func NewItemUsecase(itemRepo repository.ItemRepository) ItemUsecase {
	return &itemUsecase{
		itemRepo: itemRepo,
	}
}

func (u *itemUsecase) AddItem(ownerUserID string, req *CreateItemRequest) (*domain.Item, error) {
	item := &domain.Item{
		OwnerUserID:  ownerUserID,
		Name:         req.Name,
		Description:  req.Description,
		Category:     req.Category,
		SerialNumber: req.SerialNumber,
		ImageURL:     req.ImageURL,
		Status:       domain.ItemActive,
	}
	if err := u.itemRepo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (u *itemUsecase) GetItems(ownerUserID string) ([]*domain.Item, error) {
	return u.itemRepo.FindByOwner(ownerUserID)
}

func (u *itemUsecase) UpdateItem(ownerUserID, itemID string, req *UpdateItemRequest) (*domain.Item, error) {
	if req.IsLost != nil {
		if err := u.MarkLost(ownerUserID, itemID, *req.IsLost); err != nil {
			return nil, err
		}
		return u.itemRepo.FindByID(itemID)
	}

	item, err := u.itemRepo.FindByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil || item.OwnerUserID != ownerUserID {
		return nil, ErrItemNotFound
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.SerialNumber != nil {
		item.SerialNumber = *req.SerialNumber
	}
	if req.ImageURL != nil {
		item.ImageURL = *req.ImageURL
	}
	if req.Status != nil {
		status := domain.ItemStatus(*req.Status)
		if !status.Valid() {
			return nil, ErrInvalidItemStatus
		}
		item.Status = status
	}

	if err := u.itemRepo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (u *itemUsecase) MarkLost(ownerUserID, itemID string, isLost bool) error {
	status := domain.ItemFound
	if isLost {
		status = domain.ItemLost
	}
	affected, err := u.itemRepo.UpdateStatus(ownerUserID, itemID, status)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (u *itemUsecase) DeleteItem(ownerUserID, itemID string) error {
	affected, err := u.itemRepo.Delete(ownerUserID, itemID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrItemNotFound
	}
	return nil
}
