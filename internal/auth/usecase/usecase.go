package usecase

import (
	"context"

	authdomain "safeguardian-backend/internal/auth/domain"
	authdto "safeguardian-backend/internal/auth/dto"
)

// AuthUsecase covers account lifecycle and per-request authentication.
type AuthUsecase interface {
	Register(req *authdto.RegisterRequest) (*authdto.TokenResponse, error)
	Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error)
	GetProfile(userID string) (*authdomain.User, error)
	UpdateProfile(userID string, req *authdto.UpdateProfileRequest) (*authdomain.User, error)
	ChangePassword(userID string, req *authdto.ChangePasswordRequest) error
	RegisterDevice(userID, token, deviceInfo string) error
	UnregisterDevice(userID, token string) error
	SetUserStatus(userID string, status authdomain.UserStatus) error

	// Authenticate resolves the caller identity from the Authorization
	// header and enforces account state and the per-user rate limit.
	Authenticate(ctx context.Context, authHeader string, meta RequestMeta) (*authdomain.User, *GateError)
}
