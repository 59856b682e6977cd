package domain

import "time"

// UserStatus gates access at the auth middleware: only active accounts pass.
type UserStatus string

const (
	StatusActive  UserStatus = "active"
	StatusPending UserStatus = "pending"
	StatusBlocked UserStatus = "blocked"
)

func (s UserStatus) Valid() bool {
	switch s {
	case StatusActive, StatusPending, StatusBlocked:
		return true
	}
	return false
}

type User struct {
	ID        string     `json:"id" gorm:"primaryKey"`
	Email     string     `json:"email" gorm:"uniqueIndex;not null"`
	Password  string     `json:"-" gorm:"not null"` // bcrypt digest, never serialized
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Phone     string     `json:"phone,omitempty"`
	Role      Role       `json:"role" gorm:"default:user"`
	Status    UserStatus `json:"status" gorm:"default:active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
