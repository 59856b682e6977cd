package delivery

import (
	"errors"

	"safeguardian-backend/internal/item/usecase"
	"safeguardian-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type ItemHandler struct {
	itemUsecase usecase.ItemUsecase
}

func NewItemHandler(itemUsecase usecase.ItemUsecase) *ItemHandler {
	return &ItemHandler{
		itemUsecase: itemUsecase,
	}
}

// AddItem handles POST /items
func (h *ItemHandler) AddItem(c *gin.Context) {
	var req usecase.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, map[string]string{"body": err.Error()})
		return
	}

	item, err := h.itemUsecase.AddItem(c.GetString("userID"), &req)
	if err != nil {
		response.Internal(c)
		return
	}
	response.Created(c, "item added", item)
}

// GetItems handles GET /items
func (h *ItemHandler) GetItems(c *gin.Context) {
	items, err := h.itemUsecase.GetItems(c.GetString("userID"))
	if err != nil {
		response.Internal(c)
		return
	}
	response.OK(c, "items retrieved", gin.H{"items": items})
}

// UpdateItem handles PUT /items/:id (including the is_lost toggle)
func (h *ItemHandler) UpdateItem(c *gin.Context) {
	var req usecase.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, map[string]string{"body": err.Error()})
		return
	}

	item, err := h.itemUsecase.UpdateItem(c.GetString("userID"), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrItemNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, usecase.ErrInvalidItemStatus):
			response.ValidationError(c, map[string]string{"status": err.Error()})
		default:
			response.Internal(c)
		}
		return
	}
	response.OK(c, "item updated", item)
}

type markLostRequest struct {
	IsLost *bool `json:"is_lost" binding:"required"`
}

// MarkLost handles PATCH /items/:id/lost
func (h *ItemHandler) MarkLost(c *gin.Context) {
	var req markLostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, map[string]string{"body": err.Error()})
		return
	}

	if err := h.itemUsecase.MarkLost(c.GetString("userID"), c.Param("id"), *req.IsLost); err != nil {
		if errors.Is(err, usecase.ErrItemNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.Internal(c)
		return
	}
	response.OK(c, "item status updated", nil)
}

// DeleteItem handles DELETE /items/:id
func (h *ItemHandler) DeleteItem(c *gin.Context) {
	if err := h.itemUsecase.DeleteItem(c.GetString("userID"), c.Param("id")); err != nil {
		if errors.Is(err, usecase.ErrItemNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.Internal(c)
		return
	}
	response.OK(c, "item deleted", nil)
}
