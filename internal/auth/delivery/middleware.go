package delivery

import (
	"net/http"

	authdomain "safeguardian-backend/internal/auth/domain"
	"safeguardian-backend/internal/auth/usecase"
	"safeguardian-backend/internal/security"
	"safeguardian-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware terminates any request the auth gate rejects and stores the
// resolved user in the context for downstream ownership checks.
func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		meta := usecase.RequestMeta{
			IP:        c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
		}

		user, gerr := authUsecase.Authenticate(c.Request.Context(), c.GetHeader("Authorization"), meta)
		if gerr != nil {
			switch gerr.Status {
			case http.StatusTooManyRequests:
				response.RateLimited(c, gerr.RetryAfter)
			case http.StatusForbidden:
				response.Forbidden(c, "account is not active")
			case http.StatusUnauthorized:
				response.Unauthorized(c, "invalid or expired token")
			default:
				response.Internal(c)
			}
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Set("userID", user.ID)
		c.Next()
	}
}

// RequirePermission gates a route on the role policy. It assumes
// AuthMiddleware already ran.
func RequirePermission(perm authdomain.Permission, auditor security.Auditor) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			response.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}
		if !user.Role.Allows(perm) {
			auditor.Record(&user.ID, security.EventUnauthorizedRole,
				"role "+string(user.Role)+" denied", c.ClientIP(), c.Request.UserAgent())
			response.Forbidden(c, "insufficient permissions")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the user resolved by AuthMiddleware, or nil.
func CurrentUser(c *gin.Context) *authdomain.User {
	v, ok := c.Get("user")
	if !ok {
		return nil
	}
	user, ok := v.(*authdomain.User)
	if !ok {
		return nil
	}
	return user
}
