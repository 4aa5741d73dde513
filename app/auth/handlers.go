package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rubhub/catalog/app/api"
	"github.com/rubhub/catalog/internal/logger"
	"github.com/rubhub/catalog/internal/security"
)

type Handler struct {
	revocations RevocationStore
	logger      logger.Logger
}

func NewHandler(revocations RevocationStore, log logger.Logger) *Handler {
	return &Handler{revocations: revocations, logger: log}
}

// RevokeToken revokes the token used to make this request
// @Summary Revoke current token
// @Description Revoke the bearer token of the caller until it expires
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} api.Response
// @Failure 401 {object} api.Response
// @Failure 503 {object} api.Response
// @Router /api/v1/auth/revoke [post]
func (h *Handler) RevokeToken(c *gin.Context) {
	value, exists := c.Get(PayloadKey)
	if !exists {
		api.UnauthorizedResponse(c)
		return
	}
	payload, ok := value.(*security.Payload)
	if !ok {
		api.UnauthorizedResponse(c)
		return
	}

	if err := h.revocations.Revoke(c.Request.Context(), payload); err != nil {
		h.logger.Error(err, map[string]interface{}{"user_id": payload.UserID.String()})
		api.ServiceUnavailableResponse(c, "Could not revoke token")
		return
	}

	api.SuccessResponse(c, http.StatusOK, "Token revoked", nil)
}
