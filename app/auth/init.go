package auth

import (
	"github.com/gin-gonic/gin"
	"github.com/rubhub/catalog/internal/deps"
)

const RevocationServiceKey = "auth_revocation_list"

// InitServices registers the revocation list backed by the shared cache
func InitServices(container *deps.Container) {
	container.Provide(RevocationServiceKey, NewRevocationList(container.Cache))
}

// MountAuthenticated mounts routes that act on the caller's own token
func MountAuthenticated(r *gin.RouterGroup, container *deps.Container) {
	handler := NewHandler(revocations(container), container.Logger)

	authGroup := r.Group("/auth")
	authGroup.POST("/revoke", handler.RevokeToken)
}

// ContainerMiddleware builds the token middleware from the container
func ContainerMiddleware(container *deps.Container) gin.HandlerFunc {
	return Middleware(container.TokenMaker, revocations(container), container.Logger)
}

func revocations(container *deps.Container) RevocationStore {
	return deps.MustResolve[RevocationStore](container, RevocationServiceKey)
}
