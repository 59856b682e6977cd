package repository

import (
	"errors"
	"time"

	"safeguardian-backend/internal/alert/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AlertRepository is the alert store. CreateWithNotifications is the one
// multi-row write in the system and is transactional.
type AlertRepository interface {
	CreateWithNotifications(alert *domain.Alert, contactIDs []string) ([]*domain.AlertNotification, error)
	FindSummariesByOwner(ownerUserID string) ([]*domain.AlertSummary, error)
	FindByID(id string) (*domain.Alert, error)
	ExistsForOwner(alertID, ownerUserID string) (bool, error)
	UpdateStatus(ownerUserID, alertID string, status domain.AlertStatus) (int64, error)
	MarkResponded(alertID, contactID, responseText string) (int64, error)
	NotificationsByAlert(alertID string) ([]*domain.AlertNotification, error)
}

type alertRepository struct {
	db *gorm.DB
}

func NewAlertRepository(db *gorm.DB) AlertRepository {
	return &alertRepository{
		db: db,
	}
}

// CreateWithNotifications inserts the alert and one pending notification per
// contact id, in the given order, atomically. A failure anywhere rolls the
// whole batch back so no alert exists without its snapshot, and vice versa.
func (r *alertRepository) CreateWithNotifications(alert *domain.Alert, contactIDs []string) ([]*domain.AlertNotification, error) {
	alert.ID = uuid.New().String()
	alert.Status = domain.AlertPending
	alert.CreatedAt = time.Now()
	alert.UpdatedAt = alert.CreatedAt

	notifications := make([]*domain.AlertNotification, 0, len(contactIDs))
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(alert).Error; err != nil {
			return err
		}
		for _, contactID := range contactIDs {
			notification := &domain.AlertNotification{
				ID:        uuid.New().String(),
				AlertID:   alert.ID,
				ContactID: contactID,
				Status:    domain.NotificationPending,
				CreatedAt: time.Now(),
			}
			if err := tx.Create(notification).Error; err != nil {
				return err
			}
			notifications = append(notifications, notification)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *alertRepository) FindSummariesByOwner(ownerUserID string) ([]*domain.AlertSummary, error) {
	var summaries []*domain.AlertSummary
	err := r.db.Model(&domain.Alert{}).
		Select(`alerts.id, alerts.owner_user_id, alerts.latitude, alerts.longitude,
			alerts.message, alerts.status, alerts.created_at,
			COUNT(n.id) AS notified_count,
			COUNT(CASE WHEN n.status = ? THEN 1 END) AS responded_count`,
			domain.NotificationResponded).
		Joins("LEFT JOIN alert_notifications n ON n.alert_id = alerts.id").
		Where("alerts.owner_user_id = ?", ownerUserID).
		Group("alerts.id, alerts.owner_user_id, alerts.latitude, alerts.longitude, alerts.message, alerts.status, alerts.created_at").
		Order("alerts.created_at DESC").
		Scan(&summaries).Error
	return summaries, err
}

func (r *alertRepository) FindByID(id string) (*domain.Alert, error) {
	var alert domain.Alert
	err := r.db.Where("id = ?", id).First(&alert).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &alert, nil
}

func (r *alertRepository) ExistsForOwner(alertID, ownerUserID string) (bool, error) {
	var count int64
	err := r.db.Model(&domain.Alert{}).
		Where("id = ? AND owner_user_id = ?", alertID, ownerUserID).
		Count(&count).Error
	return count > 0, err
}

// UpdateStatus is owner-scoped; zero affected rows covers both "doesn't
// exist" and "not owned".
func (r *alertRepository) UpdateStatus(ownerUserID, alertID string, status domain.AlertStatus) (int64, error) {
	res := r.db.Model(&domain.Alert{}).
		Where("id = ? AND owner_user_id = ?", alertID, ownerUserID).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})
	return res.RowsAffected, res.Error
}

// MarkResponded flips the matching notification to responded. A repeat
// response overwrites text and timestamp but the state stays terminal.
func (r *alertRepository) MarkResponded(alertID, contactID, responseText string) (int64, error) {
	res := r.db.Model(&domain.AlertNotification{}).
		Where("alert_id = ? AND contact_id = ?", alertID, contactID).
		Updates(map[string]interface{}{
			"status":       domain.NotificationResponded,
			"response":     responseText,
			"responded_at": time.Now(),
		})
	return res.RowsAffected, res.Error
}

// NotificationsByAlert returns the snapshot in contact-priority order.
func (r *alertRepository) NotificationsByAlert(alertID string) ([]*domain.AlertNotification, error) {
	var notifications []*domain.AlertNotification
	err := r.db.Model(&domain.AlertNotification{}).
		Joins("JOIN emergency_contacts c ON c.id = alert_notifications.contact_id").
		Where("alert_notifications.alert_id = ?", alertID).
		Order("c.priority ASC").
		Find(&notifications).Error
	return notifications, err
}
