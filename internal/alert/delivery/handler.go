package delivery

import (
	"errors"

	"safeguardian-backend/internal/alert/domain"
	"safeguardian-backend/internal/alert/usecase"
	"safeguardian-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type AlertHandler struct {
	alertUsecase usecase.AlertUsecase
}

func NewAlertHandler(alertUsecase usecase.AlertUsecase) *AlertHandler {
	return &AlertHandler{
		alertUsecase: alertUsecase,
	}
}

// CreateAlert handles POST /alerts
func (h *AlertHandler) CreateAlert(c *gin.Context) {
	var req usecase.CreateAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, map[string]string{"body": err.Error()})
		return
	}

	result, err := h.alertUsecase.CreateAlert(c.Request.Context(), c.GetString("userID"), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidCoordinates):
			response.ValidationError(c, map[string]string{"coordinates": err.Error()})
		case errors.Is(err, usecase.ErrMessageTooLong):
			response.ValidationError(c, map[string]string{"message": err.Error()})
		default:
			response.Internal(c)
		}
		return
	}
	response.Created(c, "alert created", result)
}

// GetAlerts handles GET /alerts
func (h *AlertHandler) GetAlerts(c *gin.Context) {
	summaries, err := h.alertUsecase.GetAlerts(c.GetString("userID"))
	if err != nil {
		response.Internal(c)
		return
	}
	response.OK(c, "alerts retrieved", gin.H{"alerts": summaries})
}

// GetNotifications handles GET /alerts/:id/notifications
func (h *AlertHandler) GetNotifications(c *gin.Context) {
	notifications, err := h.alertUsecase.GetNotifications(c.GetString("userID"), c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrAlertNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.Internal(c)
		return
	}
	response.OK(c, "notifications retrieved", gin.H{"notifications": notifications})
}

type updateStatusRequest struct {
	Status domain.AlertStatus `json:"status" binding:"required"`
}

// UpdateStatus handles PUT /alerts/:id and PATCH /alerts/:id/status
func (h *AlertHandler) UpdateStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, map[string]string{"body": err.Error()})
		return
	}

	err := h.alertUsecase.UpdateAlertStatus(c.GetString("userID"), c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrAlertNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, usecase.ErrInvalidAlertStatus):
			response.ValidationError(c, map[string]string{"status": err.Error()})
		default:
			response.Internal(c)
		}
		return
	}
	response.OK(c, "alert updated", nil)
}

type respondRequest struct {
	ContactID string `json:"contact_id" binding:"required"`
	Response  string `json:"response" binding:"required,max=5000"`
}

// Respond handles POST /alerts/:id/respond. Contact-scoped: the caller is
// identified by contact id in the payload, not by a bearer token.
func (h *AlertHandler) Respond(c *gin.Context) {
	var req respondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, map[string]string{"body": err.Error()})
		return
	}

	err := h.alertUsecase.RespondToAlert(c.Request.Context(), req.ContactID, c.Param("id"), req.Response)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrContactNotFound),
			errors.Is(err, usecase.ErrAlertNotFound),
			errors.Is(err, usecase.ErrNotificationNotFound):
			response.NotFound(c, err.Error())
		default:
			response.Internal(c)
		}
		return
	}
	response.OK(c, "response recorded", nil)
}
