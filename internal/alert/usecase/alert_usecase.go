package usecase

import (
	"context"
	"errors"

	"safeguardian-backend/internal/alert/domain"
	"safeguardian-backend/internal/alert/repository"
	authrepo "safeguardian-backend/internal/auth/repository"
	contactrepo "safeguardian-backend/internal/contact/repository"
	"safeguardian-backend/pkg/fcm"

	"go.uber.org/zap"
)

var (
	ErrInvalidCoordinates   = errors.New("invalid coordinates")
	ErrMessageTooLong       = errors.New("message must be at most 5000 characters")
	ErrAlertNotFound        = errors.New("alert not found")
	ErrContactNotFound      = errors.New("contact not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrInvalidAlertStatus   = errors.New("invalid alert status")
)

// PushService delivers device push notifications. Delivery failures are
// logged, never surfaced to the caller.
type PushService interface {
	SendToDevices(ctx context.Context, tokens []string, n fcm.Notification) ([]string, error)
}

// AlertUsecase is the SOS workflow: fan-out on creation, aggregated reads,
// owner-scoped status updates and contact responses.
type AlertUsecase interface {
	CreateAlert(ctx context.Context, ownerUserID string, req *CreateAlertRequest) (*CreateAlertResult, error)
	GetAlerts(ownerUserID string) ([]*domain.AlertSummary, error)
	GetNotifications(ownerUserID, alertID string) ([]*domain.AlertNotification, error)
	UpdateAlertStatus(ownerUserID, alertID string, status domain.AlertStatus) error
	RespondToAlert(ctx context.Context, contactID, alertID, responseText string) error

	SetPushService(push PushService)
}

// CreateAlertRequest uses pointer coordinates so that 0 survives the
// required binding (the equator and the prime meridian are valid places to
// need help from).
type CreateAlertRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
	Message   string   `json:"message"`
}

type CreateAlertResult struct {
	AlertID       string                      `json:"alert_id"`
	NotifiedCount int                         `json:"notified_count"`
	Notifications []*domain.AlertNotification `json:"notifications"`
}

type alertUsecase struct {
	alertRepo   repository.AlertRepository
	contactRepo contactrepo.ContactRepository
	deviceRepo  authrepo.DeviceTokenRepository
	push        PushService
	log         *zap.Logger
}

func NewAlertUsecase(
	alertRepo repository.AlertRepository,
	contactRepo contactrepo.ContactRepository,
	deviceRepo authrepo.DeviceTokenRepository,
	log *zap.Logger,
) AlertUsecase {
	return &alertUsecase{
		alertRepo:   alertRepo,
		contactRepo: contactRepo,
		deviceRepo:  deviceRepo,
		log:         log,
	}
}

func (u *alertUsecase) SetPushService(push PushService) {
	u.push = push
}

// CreateAlert validates the location, then writes the alert together with
// one pending notification per verified contact, ascending priority, in a
// single transaction. The snapshot is fixed at creation time.
func (u *alertUsecase) CreateAlert(ctx context.Context, ownerUserID string, req *CreateAlertRequest) (*CreateAlertResult, error) {
	if req.Latitude == nil || req.Longitude == nil {
		return nil, ErrInvalidCoordinates
	}
	lat, lon := *req.Latitude, *req.Longitude
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return nil, ErrInvalidCoordinates
	}
	if len(req.Message) > 5000 {
		return nil, ErrMessageTooLong
	}

	contacts, err := u.contactRepo.FindVerifiedByOwner(ownerUserID)
	if err != nil {
		return nil, err
	}
	contactIDs := make([]string, 0, len(contacts))
	for _, contact := range contacts {
		contactIDs = append(contactIDs, contact.ID)
	}

	alert := &domain.Alert{
		OwnerUserID: ownerUserID,
		Latitude:    lat,
		Longitude:   lon,
		Message:     req.Message,
	}

	notifications, err := u.alertRepo.CreateWithNotifications(alert, contactIDs)
	if err != nil {
		return nil, err
	}

	u.pushToOwnerDevices(ctx, ownerUserID, fcm.Notification{
		Title: "SOS alert sent",
		Body:  "Your emergency contacts are being notified",
		Data:  map[string]string{"alert_id": alert.ID},
	})

	return &CreateAlertResult{
		AlertID:       alert.ID,
		NotifiedCount: len(notifications),
		Notifications: notifications,
	}, nil
}

func (u *alertUsecase) GetAlerts(ownerUserID string) ([]*domain.AlertSummary, error) {
	return u.alertRepo.FindSummariesByOwner(ownerUserID)
}

func (u *alertUsecase) GetNotifications(ownerUserID, alertID string) ([]*domain.AlertNotification, error) {
	owned, err := u.alertRepo.ExistsForOwner(alertID, ownerUserID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, ErrAlertNotFound
	}
	return u.alertRepo.NotificationsByAlert(alertID)
}

// UpdateAlertStatus reports ErrAlertNotFound for both a missing alert and an
// alert owned by someone else; existence is not leaked.
func (u *alertUsecase) UpdateAlertStatus(ownerUserID, alertID string, status domain.AlertStatus) error {
	if !status.Valid() {
		return ErrInvalidAlertStatus
	}
	affected, err := u.alertRepo.UpdateStatus(ownerUserID, alertID, status)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrAlertNotFound
	}
	return nil
}

// RespondToAlert records a contact's response on its notification row.
// The contact may only respond to alerts belonging to the user who added it.
func (u *alertUsecase) RespondToAlert(ctx context.Context, contactID, alertID, responseText string) error {
	contact, err := u.contactRepo.FindByID(contactID)
	if err != nil {
		return err
	}
	if contact == nil {
		return ErrContactNotFound
	}

	owned, err := u.alertRepo.ExistsForOwner(alertID, contact.OwnerUserID)
	if err != nil {
		return err
	}
	if !owned {
		return ErrAlertNotFound
	}

	affected, err := u.alertRepo.MarkResponded(alertID, contactID, responseText)
	if err != nil {
		return err
	}
	if affected == 0 {
		// the contact was never part of this alert's snapshot
		return ErrNotificationNotFound
	}

	u.pushToOwnerDevices(ctx, contact.OwnerUserID, fcm.Notification{
		Title: "Emergency contact responded",
		Body:  contact.Name + ": " + responseText,
		Data:  map[string]string{"alert_id": alertID, "contact_id": contactID},
	})
	return nil
}

func (u *alertUsecase) pushToOwnerDevices(ctx context.Context, ownerUserID string, n fcm.Notification) {
	if u.push == nil {
		return
	}
	devices, err := u.deviceRepo.GetTokensByUserID(ownerUserID)
	if err != nil {
		u.log.Warn("device token lookup failed", zap.Error(err))
		return
	}
	tokens := make([]string, 0, len(devices))
	for _, d := range devices {
		tokens = append(tokens, d.Token)
	}
	if _, err := u.push.SendToDevices(ctx, tokens, n); err != nil {
		u.log.Warn("push delivery failed", zap.Error(err))
	}
}
