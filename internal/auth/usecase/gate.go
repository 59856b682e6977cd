package usecase

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	authdomain "safeguardian-backend/internal/auth/domain"
	"safeguardian-backend/internal/security"
	"safeguardian-backend/pkg/token"
)

// RequestMeta carries the request attributes recorded with each security event.
type RequestMeta struct {
	IP        string
	UserAgent string
}

// GateError is the structured outcome of a failed authentication. Kind uses
// the security event vocabulary; Status is the HTTP code the delivery layer
// should terminate with.
type GateError struct {
	Kind       string
	Status     int
	Detail     string
	RetryAfter time.Duration
}

func (e *GateError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

// Authenticate runs the ordered checks of the auth gate, short-circuiting on
// the first failure. Every failure is recorded to the security audit log
// before it is returned.
func (u *authUsecase) Authenticate(ctx context.Context, authHeader string, meta RequestMeta) (*authdomain.User, *GateError) {
	// 1. bearer token present
	raw, ok := bearerToken(authHeader)
	if !ok {
		return nil, u.reject(nil, security.EventMissingToken, "authorization header missing or not bearer", meta, http.StatusUnauthorized)
	}

	// 2. structural charset guard before any decoding work
	if !tokenCharsetOK(raw) {
		return nil, u.reject(nil, security.EventMalformedToken, "token contains disallowed characters", meta, http.StatusUnauthorized)
	}

	// 3. signature and structure
	claims, err := u.codec.Decode(raw)
	if err != nil {
		if err == token.ErrMalformed {
			return nil, u.reject(nil, security.EventMalformedToken, "token is not a valid three-segment token", meta, http.StatusUnauthorized)
		}
		return nil, u.reject(nil, security.EventBadSignature, "token signature verification failed", meta, http.StatusUnauthorized)
	}

	now := time.Now()

	// 4. temporal validity belongs to the gate, not the codec
	if claims.ExpiresAt.Before(now) {
		return nil, u.reject(&claims.SubjectID, security.EventExpiredToken, "token expired", meta, http.StatusUnauthorized)
	}

	// 5. clock-skew guard
	if claims.IssuedAt.After(now) {
		return nil, u.reject(&claims.SubjectID, security.EventIssuedInFuture, "token issued in the future", meta, http.StatusUnauthorized)
	}

	// 6. the subject may have been deleted since the token was issued
	user, lookupErr := u.userRepo.FindByID(claims.SubjectID)
	if lookupErr != nil {
		return nil, &GateError{Kind: "INTERNAL", Status: http.StatusInternalServerError, Detail: lookupErr.Error()}
	}
	if user == nil {
		return nil, u.reject(&claims.SubjectID, security.EventUserNotFound, "subject user no longer exists", meta, http.StatusUnauthorized)
	}

	// 7. account state
	if user.Status != authdomain.StatusActive {
		return nil, u.reject(&user.ID, security.EventInactiveAccount, "user status: "+string(user.Status), meta, http.StatusForbidden)
	}

	// 8. per-user rate limit
	res, limErr := u.limiter.Take(ctx, user.ID)
	if limErr != nil {
		return nil, &GateError{Kind: "INTERNAL", Status: http.StatusInternalServerError, Detail: limErr.Error()}
	}
	if !res.Allowed {
		gerr := u.reject(&user.ID, security.EventRateLimited, "per-user request limit exceeded", meta, http.StatusTooManyRequests)
		gerr.RetryAfter = res.RetryAfter
		return nil, gerr
	}

	return user, nil
}

func (u *authUsecase) reject(userID *string, kind, detail string, meta RequestMeta, status int) *GateError {
	u.auditor.Record(userID, kind, detail, meta.IP, meta.UserAgent)
	return &GateError{Kind: kind, Status: status, Detail: detail}
}

func bearerToken(authHeader string) (string, bool) {
	if authHeader == "" {
		return "", false
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// tokenCharsetOK accepts the URL-safe token alphabet plus the segment dots
// and trailing padding.
func tokenCharsetOK(raw string) bool {
	for _, r := range raw {
		switch {
		case r >= 'A' && r <= 'Z':
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '-' || r == '_' || r == '.' || r == '~' || r == '+' || r == '/' || r == '=':
		default:
			return false
		}
	}
	return true
}
