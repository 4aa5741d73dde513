package api

import (
	"context"
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var allowedHeaders = []string{
	"Content-Type",
	"Content-Length",
	"Accept-Encoding",
	"X-CSRF-Token",
	"Authorization",
	"Accept",
	"Origin",
	"Cache-Control",
	"X-Requested-With",
}

// Cors allows the given origins. An empty list or "*" allows every origin.
func Cors(origins []string) gin.HandlerFunc {
	config := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     allowedHeaders,
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if len(origins) == 0 || slices.Contains(origins, "*") {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = origins
	}

	return cors.New(config)
}

// Check is a named dependency probe used by HealthCheck
type Check struct {
	Name  string
	Probe func(ctx context.Context) error
}

const healthProbeTimeout = 2 * time.Second

// HealthCheck reports whether every dependency answers its probe.
// @Summary Health Check
// @Description Reports the status of the database and cache
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /api/v1/healthz [get]
func HealthCheck(environment, version string, checks ...Check) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthProbeTimeout)
		defer cancel()

		status, code := "healthy", http.StatusOK
		results := make(map[string]string, len(checks))
		for _, check := range checks {
			if err := check.Probe(ctx); err != nil {
				results[check.Name] = err.Error()
				status, code = "degraded", http.StatusServiceUnavailable
				continue
			}
			results[check.Name] = "ok"
		}

		c.JSON(code, gin.H{
			"status":      status,
			"environment": environment,
			"version":     version,
			"checks":      results,
		})
	}
}
