package middleware

import (
	"strings"

	"storerating/internal/apperror"
	"storerating/internal/logger"
	"storerating/internal/microservices/http-api/models"
	"storerating/internal/microservices/http-api/policy"
	"storerating/internal/microservices/http-api/response"
	"storerating/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

// Context keys set by AuthMiddleware.
const (
	PrincipalKey = "principal"
	UserIDKey    = "userID"
	RoleKey      = "role"
)

const msgTokenRequired = "Access token required"

// AuthMiddleware resolves the bearer token into a principal. The role is the
// one stored for the user right now, not the one the token was issued with.
func AuthMiddleware(authService service.AuthService, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			response.Error(c, log, apperror.Unauthorized(msgTokenRequired))
			return
		}

		principal, err := authService.Authenticate(c.Request.Context(), token)
		if err != nil {
			response.Error(c, log, err)
			return
		}

		c.Set(PrincipalKey, principal)
		c.Set(UserIDKey, principal.UserID)
		c.Set(RoleKey, principal.Role)
		c.Request = c.Request.WithContext(log.WithField(c.Request.Context(), "user_id", principal.UserID))

		c.Next()
	}
}

// "Bearer <token>", scheme matched case-insensitively
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// Principal returns the caller set by AuthMiddleware.
func Principal(c *gin.Context) (policy.Principal, bool) {
	v, ok := c.Get(PrincipalKey)
	if !ok {
		return policy.Principal{}, false
	}
	p, ok := v.(policy.Principal)
	return p, ok
}

// RequireRoles lets the request through only when the caller holds one of roles.
func RequireRoles(log *logger.Logger, roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := Principal(c)
		if !ok {
			response.Error(c, log, apperror.Unauthorized(msgTokenRequired))
			return
		}
		if !p.HasRole(roles...) {
			response.Error(c, log, apperror.Forbidden("Insufficient permissions"))
			return
		}
		c.Next()
	}
}

func RequireAdmin(log *logger.Logger) gin.HandlerFunc {
	return RequireRoles(log, models.RoleAdmin)
}
