package servicetypes

import (
	"github.com/gin-gonic/gin"

	"github.com/rubhub/catalog/app/api"
	"github.com/rubhub/catalog/internal/deps"
	"github.com/rubhub/catalog/internal/logger"
)

const (
	RepoKey    = "service_type_repository"
	ServiceKey = "service_type_service"
)

// MountPublic mounts the read-only service type routes
func MountPublic(r *gin.RouterGroup, container *deps.Container) {
	handler := createHandler(container)

	group := r.Group("/service-types")
	group.GET("", handler.GetAllServiceTypes)
	group.GET("/active", handler.GetActiveServiceTypes)
	group.GET("/search", handler.SearchServiceTypes)
	group.GET("/code/:code", handler.GetServiceTypeByCode)
	group.GET("/:id", handler.GetServiceTypeByID)
}

// MountAuthenticated mounts the mutating routes. The group must already carry the token middleware.
func MountAuthenticated(r *gin.RouterGroup, container *deps.Container) {
	handler := createHandler(container)

	group := r.Group("/service-types")
	group.POST("", api.Can(PermissionManage), handler.CreateServiceType)
	group.PUT("/:id", api.Can(PermissionManage), handler.UpdateServiceType)
	group.PATCH("/:id/status", api.Can(PermissionManage), handler.UpdateServiceTypeStatus)
	group.DELETE("/:id", api.Can(PermissionManage), handler.DeleteServiceType)
}

// InitRepositories initializes and registers the repository and service for this module
func InitRepositories(container *deps.Container, config *Config) {
	repo := NewRepository(container.DB)
	container.Provide(RepoKey, repo)

	svc := NewService(repo, container.Publisher, container.Sanitizer, moduleLogger(container), config)
	container.Provide(ServiceKey, svc)
}

// createHandler creates a handler with all dependencies
func createHandler(container *deps.Container) *Handler {
	svc := deps.MustResolve[Service](container, ServiceKey)
	return NewHandler(svc, moduleLogger(container))
}

func moduleLogger(container *deps.Container) logger.Logger {
	return container.Logger.With(logger.Fields{"module": "servicetypes"})
}
