package domain

import "time"

// Location is a recorded position ping from the user's device.
type Location struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	OwnerUserID string    `json:"owner_user_id" gorm:"index;not null"`
	Latitude    float64   `json:"latitude" gorm:"not null"`
	Longitude   float64   `json:"longitude" gorm:"not null"`
	Accuracy    *float64  `json:"accuracy,omitempty"`
	Altitude    *float64  `json:"altitude,omitempty"`
	RecordedAt  time.Time `json:"recorded_at"`
}
