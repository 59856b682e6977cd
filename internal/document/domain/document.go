package domain

import "time"

// Document is a stored file's metadata record; the bytes live on disk or in
// object storage under FilePath.
type Document struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	OwnerUserID  string    `json:"owner_user_id" gorm:"index;not null"`
	Title        string    `json:"title" gorm:"not null"`
	DocumentType string    `json:"document_type,omitempty"`
	FilePath     string    `json:"-"` // storage detail, not exposed
	FileSize     int64     `json:"file_size"`
	UploadedAt   time.Time `json:"uploaded_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// DocumentShare grants one emergency contact read access to one document.
// This is the only delegation of ownership in the system.
type DocumentShare struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	DocumentID string    `json:"document_id" gorm:"index;not null"`
	ContactID  string    `json:"contact_id" gorm:"index;not null"`
	SharedAt   time.Time `json:"shared_at"`
}
