package delivery

import (
	"errors"
	"net/http"

	authdto "safeguardian-backend/internal/auth/dto"
	"safeguardian-backend/internal/auth/usecase"
	"safeguardian-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthHandler exposes the account endpoints.
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
}

func NewAuthHandler(authUsecase usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
	}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req authdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, map[string]string{"body": err.Error()})
		return
	}

	result, err := h.authUsecase.Register(&req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrWeakPassword):
			response.ValidationError(c, map[string]string{"password": err.Error()})
		case errors.Is(err, usecase.ErrEmailTaken):
			response.Error(c, http.StatusBadRequest, err.Error())
		default:
			response.Internal(c)
		}
		return
	}

	response.Created(c, "registration successful", result)
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, map[string]string{"body": err.Error()})
		return
	}

	result, err := h.authUsecase.Login(&req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidCredentials):
			response.Unauthorized(c, err.Error())
		case errors.Is(err, usecase.ErrAccountBlocked):
			response.Forbidden(c, err.Error())
		default:
			response.Internal(c)
		}
		return
	}

	response.OK(c, "login successful", result)
}

// Profile handles GET /auth/me
func (h *AuthHandler) Profile(c *gin.Context) {
	user, err := h.authUsecase.GetProfile(c.GetString("userID"))
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.Internal(c)
		return
	}
	response.OK(c, "profile retrieved", user)
}

// UpdateProfile handles PUT /auth/profile
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req authdto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, map[string]string{"body": err.Error()})
		return
	}

	user, err := h.authUsecase.UpdateProfile(c.GetString("userID"), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.Internal(c)
		return
	}
	response.OK(c, "profile updated", user)
}

// ChangePassword handles PUT /auth/password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req authdto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, map[string]string{"body": err.Error()})
		return
	}

	err := h.authUsecase.ChangePassword(c.GetString("userID"), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrWrongPassword):
			response.Error(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, usecase.ErrWeakPassword):
			response.ValidationError(c, map[string]string{"new_password": err.Error()})
		default:
			response.Internal(c)
		}
		return
	}
	response.OK(c, "password changed", nil)
}

// RegisterDevice handles POST /devices/register
func (h *AuthHandler) RegisterDevice(c *gin.Context) {
	var req authdto.RegisterDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, map[string]string{"body": err.Error()})
		return
	}

	if err := h.authUsecase.RegisterDevice(c.GetString("userID"), req.Token, req.DeviceInfo); err != nil {
		response.Internal(c)
		return
	}
	response.Created(c, "device registered", nil)
}

// UnregisterDevice handles DELETE /devices/:token
func (h *AuthHandler) UnregisterDevice(c *gin.Context) {
	if err := h.authUsecase.UnregisterDevice(c.GetString("userID"), c.Param("token")); err != nil {
		response.Internal(c)
		return
	}
	response.OK(c, "device unregistered", nil)
}
