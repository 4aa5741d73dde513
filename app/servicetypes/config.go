package servicetypes

import (
	"fmt"

	"github.com/rubhub/catalog/models"
)

const PermissionManage = "service_types:manage"

type Config struct {
	// DefaultCategory is used when a create request names no category.
	DefaultCategory string `env:"SERVICE_TYPES_DEFAULT_CATEGORY" env-default:"relaxation"`
}

func (c *Config) Validate() error {
	if !models.IsServiceTypeCategory(c.DefaultCategory) {
		return fmt.Errorf("default category %q: %w", c.DefaultCategory, models.ErrInvalidServiceTypeCategory)
	}
	return nil
}

func GetDefaultConfig() *Config {
	return &Config{
		DefaultCategory: models.ServiceTypeCategoryRelaxation,
	}
}
