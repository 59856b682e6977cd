package delivery

import (
	"errors"

	"safeguardian-backend/internal/contact/usecase"
	"safeguardian-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUsecase usecase.ContactUsecase
}

func NewContactHandler(contactUsecase usecase.ContactUsecase) *ContactHandler {
	return &ContactHandler{
		contactUsecase: contactUsecase,
	}
}

// AddContact handles POST /contacts
func (h *ContactHandler) AddContact(c *gin.Context) {
	var req usecase.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, map[string]string{"body": err.Error()})
		return
	}

	contact, err := h.contactUsecase.AddContact(c.GetString("userID"), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidPriority) {
			response.ValidationError(c, map[string]string{"priority": err.Error()})
			return
		}
		response.Internal(c)
		return
	}
	response.Created(c, "contact added", contact)
}

// GetContacts handles GET /contacts
func (h *ContactHandler) GetContacts(c *gin.Context) {
	contacts, err := h.contactUsecase.GetContacts(c.GetString("userID"))
	if err != nil {
		response.Internal(c)
		return
	}
	response.OK(c, "contacts retrieved", gin.H{"contacts": contacts})
}

// UpdateContact handles PUT /contacts/:id
func (h *ContactHandler) UpdateContact(c *gin.Context) {
	var req usecase.UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, map[string]string{"body": err.Error()})
		return
	}

	contact, err := h.contactUsecase.UpdateContact(c.GetString("userID"), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrContactNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, usecase.ErrInvalidPriority):
			response.ValidationError(c, map[string]string{"priority": err.Error()})
		default:
			response.Internal(c)
		}
		return
	}
	response.OK(c, "contact updated", contact)
}

// DeleteContact handles DELETE /contacts/:id
func (h *ContactHandler) DeleteContact(c *gin.Context) {
	if err := h.contactUsecase.DeleteContact(c.GetString("userID"), c.Param("id")); err != nil {
		if errors.Is(err, usecase.ErrContactNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.Internal(c)
		return
	}
	response.OK(c, "contact deleted", nil)
}

// VerifyContact handles POST /contacts/:id/verify
func (h *ContactHandler) VerifyContact(c *gin.Context) {
	if err := h.contactUsecase.VerifyContact(c.GetString("userID"), c.Param("id")); err != nil {
		if errors.Is(err, usecase.ErrContactNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.Internal(c)
		return
	}
	response.OK(c, "contact verified", nil)
}
