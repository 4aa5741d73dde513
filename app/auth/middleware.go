package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rubhub/catalog/app/api"
	"github.com/rubhub/catalog/internal/logger"
	"github.com/rubhub/catalog/internal/security"
)

const (
	AuthorizationHeaderKey  = "Authorization"
	AuthorizationTypeBearer = "Bearer"

	UserIDKey      = "userID"
	PermissionsKey = "permissions"
	PayloadKey     = "authPayload"
)

// Middleware verifies the bearer token and exposes its claims to later handlers.
func Middleware(tokenMaker security.Maker, revocations RevocationStore, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthorizationHeaderKey)
		if authHeader == "" {
			api.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		fields := strings.Fields(authHeader)
		if len(fields) < 2 || fields[0] != AuthorizationTypeBearer {
			api.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		payload, err := tokenMaker.VerifyToken(fields[1])
		if err != nil {
			api.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		if payload.Scope != security.ScopeAccess {
			api.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		revoked, err := revocations.IsRevoked(c.Request.Context(), payload.ID)
		if err != nil {
			log.Error(err, map[string]interface{}{"token_id": payload.ID.String()})
			api.ServiceUnavailableResponse(c, "Could not verify token status")
			c.Abort()
			return
		}
		if revoked {
			api.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		c.Set(UserIDKey, payload.UserID)
		c.Set(PermissionsKey, payload.Permissions)
		c.Set(PayloadKey, payload)
		c.Next()
	}
}
