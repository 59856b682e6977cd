package delivery

import (
	"errors"

	"safeguardian-backend/internal/document/usecase"
	"safeguardian-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type DocumentHandler struct {
	documentUsecase usecase.DocumentUsecase
}

func NewDocumentHandler(documentUsecase usecase.DocumentUsecase) *DocumentHandler {
	return &DocumentHandler{
		documentUsecase: documentUsecase,
	}
}

// AddDocument handles POST /documents
func (h *DocumentHandler) AddDocument(c *gin.Context) {
	var req usecase.CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, map[string]string{"body": err.Error()})
		return
	}

	doc, err := h.documentUsecase.AddDocument(c.GetString("userID"), &req)
	if err != nil {
		response.Internal(c)
		return
	}
	response.Created(c, "document added", doc)
}

// GetDocuments handles GET /documents
func (h *DocumentHandler) GetDocuments(c *gin.Context) {
	docs, err := h.documentUsecase.GetDocuments(c.GetString("userID"))
	if err != nil {
		response.Internal(c)
		return
	}
	response.OK(c, "documents retrieved", gin.H{"documents": docs})
}

// Download handles GET /documents/:id/download and returns the storage
// location of an owned document for the client to fetch.
func (h *DocumentHandler) Download(c *gin.Context) {
	doc, err := h.documentUsecase.GetDownload(c.GetString("userID"), c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrDocumentNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.Internal(c)
		return
	}
	response.OK(c, "document ready", gin.H{
		"id":        doc.ID,
		"title":     doc.Title,
		"file_path": doc.FilePath,
		"file_size": doc.FileSize,
	})
}

// UpdateDocument handles PUT /documents/:id
func (h *DocumentHandler) UpdateDocument(c *gin.Context) {
	var req usecase.UpdateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, map[string]string{"body": err.Error()})
		return
	}

	doc, err := h.documentUsecase.UpdateDocument(c.GetString("userID"), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrDocumentNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.Internal(c)
		return
	}
	response.OK(c, "document updated", doc)
}

// DeleteDocument handles DELETE /documents/:id
func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	if err := h.documentUsecase.DeleteDocument(c.GetString("userID"), c.Param("id")); err != nil {
		if errors.Is(err, usecase.ErrDocumentNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.Internal(c)
		return
	}
	response.OK(c, "document deleted", nil)
}

type shareRequest struct {
	ContactIDs []string `json:"contact_ids" binding:"required,min=1"`
}

// Share handles POST /documents/:id/share
func (h *DocumentHandler) Share(c *gin.Context) {
	var req shareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, map[string]string{"body": err.Error()})
		return
	}

	err := h.documentUsecase.ShareDocument(c.GetString("userID"), c.Param("id"), req.ContactIDs)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDocumentNotFound), errors.Is(err, usecase.ErrContactNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, usecase.ErrNoShareTargets):
			response.ValidationError(c, map[string]string{"contact_ids": err.Error()})
		default:
			response.Internal(c)
		}
		return
	}
	response.OK(c, "document shared", nil)
}
