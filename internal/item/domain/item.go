package domain

import "time"

type ItemStatus string

const (
	ItemActive ItemStatus = "active"
	ItemLost   ItemStatus = "lost"
	ItemFound  ItemStatus = "found"
)

func (s ItemStatus) Valid() bool {
	switch s {
	case ItemActive, ItemLost, ItemFound:
		return true
	}
	return false
}

// Item is a tracked personal belonging.
type Item struct {
	ID           string     `json:"id" gorm:"primaryKey"`
	OwnerUserID  string     `json:"owner_user_id" gorm:"index;not null"`
	Name         string     `json:"name" gorm:"not null"`
	Description  string     `json:"description,omitempty"`
	Category     string     `json:"category,omitempty"`
	SerialNumber string     `json:"serial_number,omitempty"`
	Status       ItemStatus `json:"status" gorm:"default:active"`
	ImageURL     string     `json:"image_url,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
