package delivery

import (
	"errors"
	"strconv"

	"safeguardian-backend/internal/location/usecase"
	"safeguardian-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type LocationHandler struct {
	locationUsecase usecase.LocationUsecase
}

func NewLocationHandler(locationUsecase usecase.LocationUsecase) *LocationHandler {
	return &LocationHandler{
		locationUsecase: locationUsecase,
	}
}

// RecordLocation handles POST /locations
func (h *LocationHandler) RecordLocation(c *gin.Context) {
	var req usecase.RecordLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, map[string]string{"body": err.Error()})
		return
	}

	loc, err := h.locationUsecase.RecordLocation(c.GetString("userID"), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCoordinates) {
			response.ValidationError(c, map[string]string{"coordinates": err.Error()})
			return
		}
		response.Internal(c)
		return
	}
	response.Created(c, "location recorded", loc)
}

// History handles GET /locations/history?limit=
func (h *LocationHandler) History(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	locs, err := h.locationUsecase.History(c.GetString("userID"), limit)
	if err != nil {
		response.Internal(c)
		return
	}
	response.OK(c, "location history retrieved", gin.H{"locations": locs})
}

// Last handles GET /locations/last
func (h *LocationHandler) Last(c *gin.Context) {
	loc, err := h.locationUsecase.Last(c.GetString("userID"))
	if err != nil {
		if errors.Is(err, usecase.ErrNoLocation) {
			response.NotFound(c, err.Error())
			return
		}
		response.Internal(c)
		return
	}
	response.OK(c, "last location retrieved", loc)
}
