package domain

import "time"

// EmergencyContact belongs to exactly one user. Priority defines fan-out
// order (ascending = contacted first) and only verified contacts take part
// in alert fan-out.
type EmergencyContact struct {
	ID           string     `json:"id" gorm:"primaryKey"`
	OwnerUserID  string     `json:"owner_user_id" gorm:"index;not null"`
	Name         string     `json:"name" gorm:"not null"`
	Phone        string     `json:"phone" gorm:"not null"`
	Email        string     `json:"email,omitempty"`
	Relationship string     `json:"relationship,omitempty"`
	Priority     int        `json:"priority" gorm:"default:1"`
	IsVerified   bool       `json:"is_verified" gorm:"default:false"`
	VerifiedAt   *time.Time `json:"verified_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
