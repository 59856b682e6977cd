package admin

import (
	"errors"
	"math"

	alertdomain "safeguardian-backend/internal/alert/domain"
	authdomain "safeguardian-backend/internal/auth/domain"
	authusecase "safeguardian-backend/internal/auth/usecase"
	contactdomain "safeguardian-backend/internal/contact/domain"
	"safeguardian-backend/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Handler serves the admin dashboard API: live metrics and user status
// management. Percentages are computed from current counts; no synthetic
// trend deltas.
type Handler struct {
	db          *gorm.DB
	authUsecase authusecase.AuthUsecase
}

func NewHandler(db *gorm.DB, authUsecase authusecase.AuthUsecase) *Handler {
	return &Handler{db: db, authUsecase: authUsecase}
}

type metrics struct {
	TotalUsers       int64   `json:"total_users"`
	ActiveUsers      int64   `json:"active_users"`
	TotalContacts    int64   `json:"total_contacts"`
	VerifiedContacts int64   `json:"verified_contacts"`
	TotalAlerts      int64   `json:"total_alerts"`
	PendingAlerts    int64   `json:"pending_alerts"`
	ResolvedAlerts   int64   `json:"resolved_alerts"`
	ResolvedPercent  float64 `json:"resolved_percent"`
	PendingPercent   float64 `json:"pending_percent"`
}

// Metrics handles GET /admin/metrics
func (h *Handler) Metrics(c *gin.Context) {
	var m metrics

	counts := []struct {
		model interface{}
		where []interface{}
		dst   *int64
	}{
		{&authdomain.User{}, nil, &m.TotalUsers},
		{&authdomain.User{}, []interface{}{"status = ?", authdomain.StatusActive}, &m.ActiveUsers},
		{&contactdomain.EmergencyContact{}, nil, &m.TotalContacts},
		{&contactdomain.EmergencyContact{}, []interface{}{"is_verified = ?", true}, &m.VerifiedContacts},
		{&alertdomain.Alert{}, nil, &m.TotalAlerts},
		{&alertdomain.Alert{}, []interface{}{"status = ?", alertdomain.AlertPending}, &m.PendingAlerts},
		{&alertdomain.Alert{}, []interface{}{"status = ?", alertdomain.AlertResolved}, &m.ResolvedAlerts},
	}
	for _, cnt := range counts {
		q := h.db.Model(cnt.model)
		if len(cnt.where) > 0 {
			q = q.Where(cnt.where[0], cnt.where[1:]...)
		}
		if err := q.Count(cnt.dst).Error; err != nil {
			response.Internal(c)
			return
		}
	}

	if m.TotalAlerts > 0 {
		m.ResolvedPercent = roundPercent(float64(m.ResolvedAlerts) / float64(m.TotalAlerts) * 100)
		m.PendingPercent = roundPercent(float64(m.PendingAlerts) / float64(m.TotalAlerts) * 100)
	}

	response.OK(c, "metrics retrieved", m)
}

type setStatusRequest struct {
	Status authdomain.UserStatus `json:"status" binding:"required"`
}

// SetUserStatus handles PUT /admin/users/:id/status
func (h *Handler) SetUserStatus(c *gin.Context) {
	var req setStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, map[string]string{"body": err.Error()})
		return
	}

	err := h.authUsecase.SetUserStatus(c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, authusecase.ErrUserNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, authusecase.ErrInvalidStatus):
			response.ValidationError(c, map[string]string{"status": err.Error()})
		default:
			response.Internal(c)
		}
		return
	}
	response.OK(c, "user status updated", nil)
}

func roundPercent(v float64) float64 {
	return math.Round(v*10) / 10
}
