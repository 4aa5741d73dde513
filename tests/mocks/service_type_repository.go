package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rubhub/catalog/models"
)

// MockServiceTypeRepository is a testify mock of servicetypes.Repository
type MockServiceTypeRepository struct {
	mock.Mock
}

func (m *MockServiceTypeRepository) GetAll(ctx context.Context) ([]models.MassageServiceType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MassageServiceType), args.Error(1)
}

func (m *MockServiceTypeRepository) GetByID(ctx context.Context, id int64) (*models.MassageServiceType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MassageServiceType), args.Error(1)
}

func (m *MockServiceTypeRepository) GetByCode(ctx context.Context, code string) (*models.MassageServiceType, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MassageServiceType), args.Error(1)
}

func (m *MockServiceTypeRepository) GetActive(ctx context.Context) ([]models.MassageServiceType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MassageServiceType), args.Error(1)
}

func (m *MockServiceTypeRepository) GetByCategory(ctx context.Context, category string) ([]models.MassageServiceType, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MassageServiceType), args.Error(1)
}

func (m *MockServiceTypeRepository) SearchByName(ctx context.Context, term string) ([]models.MassageServiceType, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MassageServiceType), args.Error(1)
}

func (m *MockServiceTypeRepository) Create(ctx context.Context, st *models.MassageServiceType) error {
	args := m.Called(ctx, st)
	return args.Error(0)
}

func (m *MockServiceTypeRepository) Update(ctx context.Context, st *models.MassageServiceType) error {
	args := m.Called(ctx, st)
	return args.Error(0)
}

func (m *MockServiceTypeRepository) UpdateStatus(ctx context.Context, id int64, active bool) error {
	args := m.Called(ctx, id, active)
	return args.Error(0)
}

func (m *MockServiceTypeRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
