package usecase

import (
	"errors"

	"safeguardian-backend/internal/location/domain"
	"safeguardian-backend/internal/location/repository"
)

var (
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrNoLocation         = errors.New("no location recorded")
)

const defaultHistoryLimit = 100

type LocationUsecase interface {
	RecordLocation(ownerUserID string, req *RecordLocationRequest) (*domain.Location, error)
	History(ownerUserID string, limit int) ([]*domain.Location, error)
	Last(ownerUserID string) (*domain.Location, error)
}

type RecordLocationRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
	Accuracy  *float64 `json:"accuracy"`
	Altitude  *float64 `json:"altitude"`
}

type locationUsecase struct {
	locationRepo repository.LocationRepository
}

func NewLocationUsecase(locationRepo repository.LocationRepository) LocationUsecase {
	return &locationUsecase{
		locationRepo: locationRepo,
	}
}

func (u *locationUsecase) RecordLocation(ownerUserID string, req *RecordLocationRequest) (*domain.Location, error) {
	if req.Latitude == nil || req.Longitude == nil {
		return nil, ErrInvalidCoordinates
	}
	lat, lon := *req.Latitude, *req.Longitude
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return nil, ErrInvalidCoordinates
	}

	loc := &domain.Location{
		OwnerUserID: ownerUserID,
		Latitude:    lat,
		Longitude:   lon,
		Accuracy:    req.Accuracy,
		Altitude:    req.Altitude,
	}
	if err := u.locationRepo.Create(loc); err != nil {
		return nil, err
	}
	return loc, nil
}

func (u *locationUsecase) History(ownerUserID string, limit int) ([]*domain.Location, error) {
	if limit <= 0 || limit > 1000 {
		limit = defaultHistoryLimit
	}
	return u.locationRepo.History(ownerUserID, limit)
}

func (u *locationUsecase) Last(ownerUserID string) (*domain.Location, error) {
	loc, err := u.locationRepo.Last(ownerUserID)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, ErrNoLocation
	}
	return loc, nil
}
