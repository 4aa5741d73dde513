package servicetypes

import (
	"context"

	"github.com/rubhub/catalog/models"
)

// Repository defines the interface for service type data access
type Repository interface {
	GetAll(ctx context.Context) ([]models.MassageServiceType, error)
	GetByID(ctx context.Context, id int64) (*models.MassageServiceType, error)
	GetByCode(ctx context.Context, code string) (*models.MassageServiceType, error)
	GetActive(ctx context.Context) ([]models.MassageServiceType, error)
	GetByCategory(ctx context.Context, category string) ([]models.MassageServiceType, error)
	SearchByName(ctx context.Context, term string) ([]models.MassageServiceType, error)
	Create(ctx context.Context, st *models.MassageServiceType) error
	Update(ctx context.Context, st *models.MassageServiceType) error
	UpdateStatus(ctx context.Context, id int64, active bool) error
	Delete(ctx context.Context, id int64) error
}

// Service defines the interface for service type business logic
type Service interface {
	GetAllServiceTypes(ctx context.Context) ([]ServiceTypeResponse, error)
	GetServiceTypeByID(ctx context.Context, id int64) (*ServiceTypeResponse, error)
	GetServiceTypeByCode(ctx context.Context, code string) (*ServiceTypeResponse, error)
	CreateServiceType(ctx context.Context, req *CreateServiceTypeRequest) (*ServiceTypeResponse, error)
	UpdateServiceType(ctx context.Context, id int64, req *UpdateServiceTypeRequest) (*ServiceTypeResponse, error)
	DeleteServiceType(ctx context.Context, id int64) error
	GetActiveServiceTypes(ctx context.Context) ([]ServiceTypeResponse, error)
	UpdateServiceTypeStatus(ctx context.Context, id int64, active bool) (*ServiceTypeResponse, error)
	SearchServiceTypesByName(ctx context.Context, name string) ([]ServiceTypeResponse, error)
	GetServiceTypesByCategory(ctx context.Context, category string) ([]ServiceTypeResponse, error)
}
