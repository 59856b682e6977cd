package security

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Event kinds recorded by the auth gate and role checks.
const (
	EventMissingToken     = "MISSING_TOKEN"
	EventMalformedToken   = "MALFORMED_TOKEN"
	EventBadSignature     = "BAD_SIGNATURE"
	EventExpiredToken     = "EXPIRED_TOKEN"
	EventIssuedInFuture   = "ISSUED_IN_FUTURE"
	EventUserNotFound     = "USER_NOT_FOUND"
	EventInactiveAccount  = "INACTIVE_ACCOUNT"
	EventRateLimited      = "RATE_LIMITED"
	EventUnauthorizedRole = "UNAUTHORIZED_ROLE"
)

// Event is one row of the security audit trail.
type Event struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	UserID    *string   `json:"user_id" gorm:"index"` // nil when the subject is unknown
	EventType string    `json:"event_type" gorm:"not null"`
	Details   string    `json:"details"`
	IPAddress string    `json:"ip_address"`
	UserAgent string    `json:"user_agent"`
	CreatedAt time.Time `json:"created_at"`
}

// Auditor records security events. The gate calls Record before terminating
// a rejected request.
type Auditor interface {
	Record(userID *string, eventType, details, ip, userAgent string)
}

type dbAuditor struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewAuditor persists events to the database and mirrors them to the logger.
func NewAuditor(db *gorm.DB, log *zap.Logger) Auditor {
	return &dbAuditor{db: db, log: log}
}

func (a *dbAuditor) Record(userID *string, eventType, details, ip, userAgent string) {
	event := &Event{
		ID:        uuid.New().String(),
		UserID:    userID,
		EventType: eventType,
		Details:   details,
		IPAddress: ip,
		UserAgent: userAgent,
		CreatedAt: time.Now(),
	}

	subject := ""
	if userID != nil {
		subject = *userID
	}
	a.log.Warn("security event",
		zap.String("event_type", eventType),
		zap.String("user_id", subject),
		zap.String("details", details),
		zap.String("ip", ip))

	// A failed audit write must not take the request path down with it.
	if err := a.db.Create(event).Error; err != nil {
		a.log.Error("security audit write failed", zap.Error(err))
	}
}
