package usecase

import (
	"errors"
	"time"

	authdomain "safeguardian-backend/internal/auth/domain"
	authdto "safeguardian-backend/internal/auth/dto"
	"safeguardian-backend/internal/auth/repository"
	"safeguardian-backend/internal/security"
	"safeguardian-backend/pkg/ratelimit"
	"safeguardian-backend/pkg/token"

	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountBlocked     = errors.New("account blocked")
	ErrUserNotFound       = errors.New("user not found")
	ErrWeakPassword       = errors.New("password must contain an upper-case letter, a lower-case letter and a digit")
	ErrWrongPassword      = errors.New("old password does not match")
	ErrInvalidStatus      = errors.New("invalid user status")
)

// authUsecase implements AuthUsecase
type authUsecase struct {
	userRepo   repository.UserRepository
	deviceRepo repository.DeviceTokenRepository
	codec      *token.Codec
	limiter    *ratelimit.PerUser
	auditor    security.Auditor
	tokenTTL   time.Duration
}

func NewAuthUsecase(
	userRepo repository.UserRepository,
	deviceRepo repository.DeviceTokenRepository,
	codec *token.Codec,
	limiter *ratelimit.PerUser,
	auditor security.Auditor,
	tokenTTL time.Duration,
) AuthUsecase {
	return &authUsecase{
		userRepo:   userRepo,
		deviceRepo: deviceRepo,
		codec:      codec,
		limiter:    limiter,
		auditor:    auditor,
		tokenTTL:   tokenTTL,
	}
}

func (u *authUsecase) Register(req *authdto.RegisterRequest) (*authdto.TokenResponse, error) {
	if !authdto.PasswordStrong(req.Password) {
		return nil, ErrWeakPassword
	}

	existing, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &authdomain.User{
		Email:     req.Email,
		Password:  hashedPassword,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Role:      authdomain.RoleUser,
		Status:    authdomain.StatusActive,
	}

	if err := u.userRepo.Create(user); err != nil {
		// Two registrations can pass the FindByEmail pre-check at the same
		// time; the unique index on email is the backstop.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return u.issueToken(user)
}

func (u *authUsecase) Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error) {
	user, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if !repository.CheckPasswordHash(req.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	if user.Status == authdomain.StatusBlocked {
		return nil, ErrAccountBlocked
	}

	return u.issueToken(user)
}

func (u *authUsecase) GetProfile(userID string) (*authdomain.User, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (u *authUsecase) UpdateProfile(userID string, req *authdto.UpdateProfileRequest) (*authdomain.User, error) {
	user, err := u.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}

	if err := u.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *authUsecase) ChangePassword(userID string, req *authdto.ChangePasswordRequest) error {
	user, err := u.GetProfile(userID)
	if err != nil {
		return err
	}

	if !repository.CheckPasswordHash(req.OldPassword, user.Password) {
		return ErrWrongPassword
	}
	if !authdto.PasswordStrong(req.NewPassword) {
		return ErrWeakPassword
	}

	hashed, err := repository.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	user.Password = hashed
	return u.userRepo.Update(user)
}

func (u *authUsecase) RegisterDevice(userID, deviceToken, deviceInfo string) error {
	return u.deviceRepo.SaveToken(userID, deviceToken, deviceInfo)
}

func (u *authUsecase) UnregisterDevice(userID, deviceToken string) error {
	return u.deviceRepo.DeleteToken(userID, deviceToken)
}

func (u *authUsecase) SetUserStatus(userID string, status authdomain.UserStatus) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	return u.userRepo.UpdateStatus(userID, status)
}

func (u *authUsecase) issueToken(user *authdomain.User) (*authdto.TokenResponse, error) {
	now := time.Now()
	signed, err := u.codec.Encode(token.Claims{
		SubjectID: user.ID,
		Role:      string(user.Role),
		IssuedAt:  now,
		ExpiresAt: now.Add(u.tokenTTL),
	})
	if err != nil {
		return nil, err
	}

	return &authdto.TokenResponse{
		Token: signed,
		User:  user,
	}, nil
}
