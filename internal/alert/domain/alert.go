package domain

import "time"

// AlertStatus transitions only via explicit owner-initiated updates.
type AlertStatus string

const (
	AlertPending   AlertStatus = "pending"
	AlertResolved  AlertStatus = "resolved"
	AlertCancelled AlertStatus = "cancelled"
)

func (s AlertStatus) Valid() bool {
	switch s {
	case AlertPending, AlertResolved, AlertCancelled:
		return true
	}
	return false
}

// NotificationStatus is a two-state machine: pending -> responded, terminal.
type NotificationStatus string

const (
	NotificationPending   NotificationStatus = "pending"
	NotificationResponded NotificationStatus = "responded"
)

// Alert is an SOS raised by a user at a location. Its notification batch is
// a snapshot of the owner's verified contacts at creation time.
type Alert struct {
	ID          string      `json:"id" gorm:"primaryKey"`
	OwnerUserID string      `json:"owner_user_id" gorm:"index;not null"`
	Latitude    float64     `json:"latitude" gorm:"not null"`
	Longitude   float64     `json:"longitude" gorm:"not null"`
	Message     string      `json:"message,omitempty"`
	Status      AlertStatus `json:"status" gorm:"default:pending"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// AlertNotification is one (alert, contact) pair of the fan-out snapshot.
// Rows are never deleted; a response mutates status, text and timestamp only.
type AlertNotification struct {
	ID          string             `json:"id" gorm:"primaryKey"`
	AlertID     string             `json:"alert_id" gorm:"index;not null"`
	ContactID   string             `json:"contact_id" gorm:"index;not null"`
	Status      NotificationStatus `json:"status" gorm:"default:pending"`
	Response    string             `json:"response,omitempty"`
	RespondedAt *time.Time         `json:"responded_at,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
}

// AlertSummary is an alert with its aggregated notification counts, produced
// by a grouped join rather than per-alert queries.
type AlertSummary struct {
	ID             string      `json:"id"`
	OwnerUserID    string      `json:"owner_user_id"`
	Latitude       float64     `json:"latitude"`
	Longitude      float64     `json:"longitude"`
	Message        string      `json:"message,omitempty"`
	Status         AlertStatus `json:"status"`
	CreatedAt      time.Time   `json:"created_at"`
	NotifiedCount  int64       `json:"notified_count"`
	RespondedCount int64       `json:"responded_count"`
}
