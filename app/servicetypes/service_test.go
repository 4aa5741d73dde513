package servicetypes

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/rubhub/catalog/internal/events"
	"github.com/rubhub/catalog/internal/logger"
	"github.com/rubhub/catalog/internal/sanitizer"
	"github.com/rubhub/catalog/models"
	"github.com/rubhub/catalog/tests/mocks"
)

func newTestService(repo Repository, pub events.Publisher) Service {
	if pub == nil {
		pub = events.NullPublisher{}
	}
	return NewService(repo, pub, sanitizer.NewHTMLStripper(), logger.NewNullLogger(), &Config{DefaultCategory: models.ServiceTypeCategoryRelaxation})
}

func swedish() *models.MassageServiceType {
	st := &models.MassageServiceType{
		ID:              1,
		Code:            "SWEDISH",
		Name:            "Swedish Massage",
		Category:        models.ServiceTypeCategoryRelaxation,
		DurationMinutes: 60,
		BasePrice:       decimal.NewFromInt(550),
	}
	st.SetActive(true)
	return st
}

func TestService_GetAllServiceTypes(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockRepo := new(mocks.MockServiceTypeRepository)
		srvc := newTestService(mockRepo, nil)
		ctx := context.Background()

		items := []models.MassageServiceType{*swedish(), {ID: 2, Code: "SPORTS", Name: "Sports Massage"}}
		mockRepo.On("GetAll", ctx).Return(items, nil)

		result, err := srvc.GetAllServiceTypes(ctx)

		assert.NoError(t, err)
		require.Len(t, result, 2)
		assert.True(t, result[0].IsActive)
		assert.False(t, result[1].IsActive)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Empty", func(t *testing.T) {
		mockRepo := new(mocks.MockServiceTypeRepository)
		srvc := newTestService(mockRepo, nil)
		ctx := context.Background()

		mockRepo.On("GetAll", ctx).Return([]models.MassageServiceType{}, nil)

		result, err := srvc.GetAllServiceTypes(ctx)

		assert.NoError(t, err)
		assert.NotNil(t, result)
		assert.Empty(t, result)
	})

	t.Run("Repository Error", func(t *testing.T) {
		mockRepo := new(mocks.MockServiceTypeRepository)
		srvc := newTestService(mockRepo, nil)
		ctx := context.Background()

		mockRepo.On("GetAll", ctx).Return(nil, assert.AnError)

		result, err := srvc.GetAllServiceTypes(ctx)

		assert.ErrorIs(t, err, models.ErrStoreUnavailable)
		assert.ErrorIs(t, err, assert.AnError)
		assert.Nil(t, result)
		mockRepo.AssertExpectations(t)
	})
}

func TestService_GetServiceTypeByID(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockRepo := new(mocks.MockServiceTypeRepository)
		srvc := newTestService(mockRepo, nil)
		ctx := context.Background()

		mockRepo.On("GetByID", ctx, int64(1)).Return(swedish(), nil)

		result, err := srvc.GetServiceTypeByID(ctx, 1)

		assert.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, "SWEDISH", result.Code)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockRepo := new(mocks.MockServiceTypeRepository)
		srvc := newTestService(mockRepo, nil)
		ctx := context.Background()

		mockRepo.On("GetByID", ctx, int64(99)).Return(nil, gorm.ErrRecordNotFound)

		result, err := srvc.GetServiceTypeByID(ctx, 99)

		assert.Equal(t, models.ErrRecordNotFound, err)
		assert.NotErrorIs(t, err, models.ErrStoreUnavailable)
		assert.Nil(t, result)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Repository Error", func(t *testing.T) {
		mockRepo := new(mocks.MockServiceTypeRepository)
		srvc := newTestService(mockRepo, nil)
		ctx := context.Background()

		mockRepo.On("GetByID", ctx, int64(1)).Return(nil, assert.AnError)

		result, err := srvc.GetServiceTypeByID(ctx, 1)

		assert.ErrorIs(t, err, models.ErrStoreUnavailable)
		assert.NotErrorIs(t, err, models.ErrRecordNotFound)
		assert.Nil(t, result)
	})
}

func TestService_GetServiceTypeByCode(t *testing.T) {
	t.Run("Normalizes code", func(t *testing.T) {
		mockRepo := new(mocks.MockServiceTypeRepository)
		srvc := newTestService(mockRepo, nil)
		ctx := context.Background()

		mockRepo.On("GetByCode", ctx, "SWEDISH").Return(swedish(), nil)

		result, err := srvc.GetServiceTypeByCode(ctx, "  swedish ")

		assert.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, int64(1), result.ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Blank code", func(t *testing.T) {
		mockRepo := new(mocks.MockServiceTypeRepository)
		srvc := newTestService(mockRepo, nil)

		result, err := srvc.GetServiceTypeByCode(context.Background(), "  ")

		assert.Equal(t, models.ErrRecordNotFound, err)
		assert.Nil(t, result)
		mockRepo.AssertNotCalled(t, "GetByCode", mock.Anything, mock.Anything)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockRepo := new(mocks.MockServiceTypeRepository)
		srvc := newTestService(mockRepo, nil)
		ctx := context.Background()

		mockRepo.On("GetByCode", ctx, "REIKI").Return(nil, gorm.ErrRecordNotFound)

		result, err := srvc.GetServiceTypeByCode(ctx, "reiki")

		assert.Equal(t, models.ErrRecordNotFound, err)
		assert.Nil(t, result)
	})
}

func TestService_GetActiveServiceTypes(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockRepo := new(mocks.MockServiceTypeRepository)
		srvc := newTestService(mockRepo, nil)
		ctx := context.Background()

		mockRepo.On("GetActive", ctx).Return([]models.MassageServiceType{*swedish()}, nil)

		result, err := srvc.GetActiveServiceTypes(ctx)

		assert.NoError(t, err)
		assert.Len(t, result, 1)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Repository Error", func(t *testing.T) {
		mockRepo := new(mocks.MockServiceTypeRepository)
		srvc := newTestService(mockRepo, nil)
		ctx := context.Background()

		mockRepo.On("GetActive", ctx).Return(nil, assert.AnError)

		_, err := srvc.GetActiveServiceTypes(ctx)

		assert.ErrorIs(t, err, models.ErrStoreUnavailable)
	})
}

func TestService_SearchServiceTypesByName(t *testing.T) {
	t.Run("Trims term", func(t *testing.T) {
		mockRepo := new(mocks.MockServiceTypeRepository)
		srvc := newTestService(mockRepo, nil)
		ctx := context.Background()

		mockRepo.On("SearchByName", ctx, "swed").Return([]models.MassageServiceType{*swedish()}, nil)

		result, err := srvc.SearchServiceTypesByName(ctx, "  swed  ")

		assert.NoError(t, err)
		assert.Len(t, result, 1)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Returns every match", func(t *testing.T) {
		mockRepo := new(mocks.MockServiceTypeRepository)
		srvc := newTestService(mockRepo, nil)
		ctx := context.Background()

		matches := make([]models.MassageServiceType, 120)
		for i := range matches {
			matches[i] = *swedish()
			matches[i].ID = int64(i + 1)
		}
		mockRepo.On("SearchByName", ctx, "massage").Return(matches, nil)

		result, err := srvc.SearchServiceTypesByName(ctx, "massage")

		assert.NoError(t, err)
		assert.Len(t, result, 120)
		assert.Equal(t, int64(120), result[119].ID)
	})

	t.Run("Blank term", func(t *testing.T) {
		mockRepo := new(mocks.MockServiceTypeRepository)
		srvc := newTestService(mockRepo, nil)

		result, err := srvc.SearchServiceTypesByName(context.Background(), " \t ")

		assert.Equal(t, models.ErrInvalidSearchTerm, err)
		assert.Nil(t, result)
		mockRepo.AssertNotCalled(t, "SearchByName", mock.Anything, mock.Anything)
	})

	t.Run("Repository Error", func(t *testing.T) {
		mockRepo := new(mocks.MockServiceTypeRepository)
		srvc := newTestService(mockRepo, nil)
		ctx := context.Background()

		mockRepo.On("SearchByName", ctx, "x").Return(nil, assert.AnError)

		_, err := srvc.SearchServiceTypesByName(ctx, "x")

		assert.ErrorIs(t, err, models.ErrStoreUnavailable)
	})
}

func TestService_CreateServiceType(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockRepo := new(mocks.MockServiceTypeRepository)
		pub := new(events.MockPublisher)
		srvc := newTestService(mockRepo, pub)
		ctx := context.Background()

		req := &CreateServiceTypeRequest{
			Code:            " swedish ",
			Name:            "<b>Swedish</b> Massage",
			Description:     "Relaxing <script>alert(1)</script>strokes",
			DurationMinutes: 60,
			BasePrice:       decimal.RequireFromString("550.499"),
		}

		mockRepo.On("GetByCode", ctx, "SWEDISH").Return(nil, gorm.ErrRecordNotFound)
		mockRepo.On("Create", ctx, mock.MatchedBy(func(st *models.MassageServiceType) bool {
			return st.Code == "SWEDISH" &&
				st.Name == "Swedish Massage" &&
				st.Description == "Relaxing strokes" &&
				st.Category == models.ServiceTypeCategoryRelaxation &&
				st.BasePrice.Equal(decimal.RequireFromString("550.50")) &&
				st.IsActiveValue()
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*models.MassageServiceType).ID = 7
		}).Return(nil)
		pub.On("Publish", ctx, events.ServiceTypeCreated, "SWEDISH", mock.AnythingOfType("*servicetypes.ServiceTypeResponse")).Return(nil)

		result, err := srvc.CreateServiceType(ctx, req)

		assert.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, int64(7), result.ID)
		assert.Equal(t, models.ServiceTypeCategoryRelaxation, result.Category)
		assert.True(t, result.IsActive)
		mockRepo.AssertExpectations(t)
		pub.AssertExpectations(t)
	})

	t.Run("Category normalized", func(t *testing.T) {
		mockRepo := new(mocks.MockServiceTypeRepository)
		srvc := newTestService(mockRepo, nil)
		ctx := context.Background()

		mockRepo.On("GetByCode", ctx, "DEEP_TISSUE").Return(nil, gorm.ErrRecordNotFound)
		mockRepo.On("Create", ctx, mock.MatchedBy(func(st *models.MassageServiceType) bool {
			return st.Category == models.ServiceTypeCategoryTherapeutic
		})).Return(nil)

		result, err := srvc.CreateServiceType(ctx, &CreateServiceTypeRequest{
			Code: "DEEP_TISSUE", Name: "Deep Tissue", Category: " Therapeutic ",
		})

		assert.NoError(t, err)
		assert.Equal(t, models.ServiceTypeCategoryTherapeutic, result.Category)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Configured default category", func(t *testing.T) {
		mockRepo := new(mocks.MockServiceTypeRepository)
		srvc := NewService(mockRepo, events.NullPublisher{}, sanitizer.NewHTMLStripper(), logger.NewNullLogger(),
			&Config{DefaultCategory: models.ServiceTypeCategorySports})
		ctx := context.Background()

		mockRepo.On("GetByCode", ctx, "SPORTS").Return(nil, gorm.ErrRecordNotFound)
		mockRepo.On("Create", ctx, mock.Anything).Return(nil)

		result, err := srvc.CreateServiceType(ctx, &CreateServiceTypeRequest{Code: "SPORTS", Name: "Sports Massage"})

		assert.NoError(t, err)
		assert.Equal(t, models.ServiceTypeCategorySports, result.Category)
	})

	t.Run("Inactive on request", func(t *testing.T) {
		mockRepo := new(mocks.MockServiceTypeRepository)
		srvc := newTestService(mockRepo, nil)
		ctx := context.Background()
		inactive := false

		mockRepo.On("GetByCode", ctx, "REIKI").Return(nil, gorm.ErrRecordNotFound)
		mockRepo.On("Create", ctx, mock.AnythingOfType("*models.MassageServiceType")).Return(nil)

		result, err := srvc.CreateServiceType(ctx, &CreateServiceTypeRequest{Code: "REIKI", Name: "Reiki", IsActive: &inactive})

		assert.NoError(t, err)
		assert.False(t, result.IsActive)
	})

	t.Run("Duplicate code", func(t *testing.T) {
		mockRepo := new(mocks.MockServiceTypeRepository)
		srvc := newTestService(mockRepo, nil)
		ctx := context.Background()

		mockRepo.On("GetByCode", ctx, "SWEDISH").Return(swedish(), nil)

		result, err := srvc.CreateServiceType(ctx, &CreateServiceTypeRequest{Code: "SWEDISH", Name: "Another"})

		assert.Equal(t, models.ErrServiceTypeCodeExists, err)
		assert.Nil(t, result)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Duplicate code race", func(t *testing.T) {
		mockRepo := new(mocks.MockServiceTypeRepository)
		srvc := newTestService(mockRepo, nil)
		ctx := context.Background()

		mockRepo.On("GetByCode", ctx, "SWEDISH").Return(nil, gorm.ErrRecordNotFound)
		mockRepo.On("Create", ctx, mock.Anything).Return(gorm.ErrDuplicatedKey)

		_, err := srvc.CreateServiceType(ctx, &CreateServiceTypeRequest{Code: "SWEDISH", Name: "Swedish"})

		assert.Equal(t, models.ErrServiceTypeCodeExists, err)
	})

	t.Run("Validation Error", func(t *testing.T) {
		mockRepo := new(mocks.MockServiceTypeRepository)
		srvc := newTestService(mockRepo, nil)

		_, err := srvc.CreateServiceType(context.Background(), &CreateServiceTypeRequest{Code: "HOT STONE", Name: "Hot Stone"})
		assert.Equal(t, models.ErrInvalidServiceTypeCode, err)

		_, err = srvc.CreateServiceType(context.Background(), &CreateServiceTypeRequest{Code: "HOT_STONE", Name: "<p> </p>"})
		assert.Equal(t, models.ErrInvalidServiceTypeName, err)

		_, err = srvc.CreateServiceType(context.Background(), &CreateServiceTypeRequest{
			Code: "HOT_STONE", Name: "Hot Stone", BasePrice: decimal.NewFromInt(-1),
		})
		assert.Equal(t, models.ErrInvalidServiceTypePrice, err)

		_, err = srvc.CreateServiceType(context.Background(), &CreateServiceTypeRequest{
			Code: "HOT_STONE", Name: "Hot Stone", Category: "aquatic",
		})
		assert.Equal(t, models.ErrInvalidServiceTypeCategory, err)

		mockRepo.AssertNotCalled(t, "GetByCode", mock.Anything, mock.Anything)
	})

	t.Run("Lookup Error", func(t *testing.T) {
		mockRepo := new(mocks.MockServiceTypeRepository)
		srvc := newTestService(mockRepo, nil)
		ctx := context.Background()

		mockRepo.On("GetByCode", ctx, "SWEDISH").Return(nil, assert.AnError)

		_, err := srvc.CreateServiceType(ctx, &CreateServiceTypeRequest{Code: "SWEDISH", Name: "Swedish"})

		assert.ErrorIs(t, err, models.ErrStoreUnavailable)
	})

	t.Run("Publish failure is not returned", func(t *testing.T) {
		mockRepo := new(mocks.MockServiceTypeRepository)
		pub := new(events.MockPublisher)
		srvc := newTestService(mockRepo, pub)
		ctx := context.Background()

		mockRepo.On("GetByCode", ctx, "SWEDISH").Return(nil, gorm.ErrRecordNotFound)
		mockRepo.On("Create", ctx, mock.Anything).Return(nil)
		pub.On("Publish", ctx, events.ServiceTypeCreated, "SWEDISH", mock.Anything).Return(errors.New("broker down"))

		result, err := srvc.CreateServiceType(ctx, &CreateServiceTypeRequest{Code: "SWEDISH", Name: "Swedish"})

		assert.NoError(t, err)
		assert.NotNil(t, result)
		pub.AssertExpectations(t)
	})
}

func TestService_UpdateServiceType(t *testing.T) {
	t.Run("Partial merge", func(t *testing.T) {
		mockRepo := new(mocks.MockServiceTypeRepository)
		pub := new(events.MockPublisher)
		srvc := newTestService(mockRepo, pub)
		ctx := context.Background()

		name := "Swedish Relaxation"
		mockRepo.On("GetByID", ctx, int64(1)).Return(swedish(), nil)
		mockRepo.On("Update", ctx, mock.MatchedBy(func(st *models.MassageServiceType) bool {
			return st.Name == name &&
				st.Code == "SWEDISH" &&
				st.DurationMinutes == 60 &&
				st.BasePrice.Equal(decimal.NewFromInt(550)) &&
				st.IsActiveValue()
		})).Return(nil)
		pub.On("Publish", ctx, events.ServiceTypeUpdated, "SWEDISH", mock.Anything).Return(nil)

		result, err := srvc.UpdateServiceType(ctx, 1, &UpdateServiceTypeRequest{Name: &name})

		assert.NoError(t, err)
		assert.Equal(t, name, result.Name)
		mockRepo.AssertNotCalled(t, "GetByCode", mock.Anything, mock.Anything)
		mockRepo.AssertExpectations(t)
		pub.AssertExpectations(t)
	})

	t.Run("Same code in other case skips uniqueness check", func(t *testing.T) {
		mockRepo := new(mocks.MockServiceTypeRepository)
		srvc := newTestService(mockRepo, nil)
		ctx := context.Background()

		code := "swedish"
		mockRepo.On("GetByID", ctx, int64(1)).Return(swedish(), nil)
		mockRepo.On("Update", ctx, mock.Anything).Return(nil)

		_, err := srvc.UpdateServiceType(ctx, 1, &UpdateServiceTypeRequest{Code: &code})

		assert.NoError(t, err)
		mockRepo.AssertNotCalled(t, "GetByCode", mock.Anything, mock.Anything)
	})

	t.Run("Code change to free code", func(t *testing.T) {
		mockRepo := new(mocks.MockServiceTypeRepository)
		srvc := newTestService(mockRepo, nil)
		ctx := context.Background()

		code := "classic_swedish"
		mockRepo.On("GetByID", ctx, int64(1)).Return(swedish(), nil)
		mockRepo.On("GetByCode", ctx, "CLASSIC_SWEDISH").Return(nil, gorm.ErrRecordNotFound)
		mockRepo.On("Update", ctx, mock.Anything).Return(nil)

		result, err := srvc.UpdateServiceType(ctx, 1, &UpdateServiceTypeRequest{Code: &code})

		assert.NoError(t, err)
		assert.Equal(t, "CLASSIC_SWEDISH", result.Code)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Code change to taken code", func(t *testing.T) {
		mockRepo := new(mocks.MockServiceTypeRepository)
		srvc := newTestService(mockRepo, nil)
		ctx := context.Background()

		code := "SPORTS"
		mockRepo.On("GetByID", ctx, int64(1)).Return(swedish(), nil)
		mockRepo.On("GetByCode", ctx, "SPORTS").Return(&models.MassageServiceType{ID: 2, Code: "SPORTS"}, nil)

		_, err := srvc.UpdateServiceType(ctx, 1, &UpdateServiceTypeRequest{Code: &code})

		assert.Equal(t, models.ErrServiceTypeCodeExists, err)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockRepo := new(mocks.MockServiceTypeRepository)
		srvc := newTestService(mockRepo, nil)
		ctx := context.Background()

		mockRepo.On("GetByID", ctx, int64(5)).Return(nil, gorm.ErrRecordNotFound)

		_, err := srvc.UpdateServiceType(ctx, 5, &UpdateServiceTypeRequest{})

		assert.Equal(t, models.ErrRecordNotFound, err)
	})

	t.Run("Validation Error", func(t *testing.T) {
		mockRepo := new(mocks.MockServiceTypeRepository)
		srvc := newTestService(mockRepo, nil)
		ctx := context.Background()

		duration := 600
		mockRepo.On("GetByID", ctx, int64(1)).Return(swedish(), nil)

		_, err := srvc.UpdateServiceType(ctx, 1, &UpdateServiceTypeRequest{DurationMinutes: &duration})

		assert.Equal(t, models.ErrInvalidServiceTypeDuration, err)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Category change", func(t *testing.T) {
		mockRepo := new(mocks.MockServiceTypeRepository)
		srvc := newTestService(mockRepo, nil)
		ctx := context.Background()

		category := "PREMIUM"
		mockRepo.On("GetByID", ctx, int64(1)).Return(swedish(), nil)
		mockRepo.On("Update", ctx, mock.MatchedBy(func(st *models.MassageServiceType) bool {
			return st.Category == models.ServiceTypeCategoryPremium
		})).Return(nil)

		result, err := srvc.UpdateServiceType(ctx, 1, &UpdateServiceTypeRequest{Category: &category})

		assert.NoError(t, err)
		assert.Equal(t, models.ServiceTypeCategoryPremium, result.Category)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Unknown category", func(t *testing.T) {
		mockRepo := new(mocks.MockServiceTypeRepository)
		srvc := newTestService(mockRepo, nil)
		ctx := context.Background()

		category := "aquatic"
		mockRepo.On("GetByID", ctx, int64(1)).Return(swedish(), nil)

		_, err := srvc.UpdateServiceType(ctx, 1, &UpdateServiceTypeRequest{Category: &category})

		assert.Equal(t, models.ErrInvalidServiceTypeCategory, err)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Deleted concurrently", func(t *testing.T) {
		mockRepo := new(mocks.MockServiceTypeRepository)
		srvc := newTestService(mockRepo, nil)
		ctx := context.Background()

		mockRepo.On("GetByID", ctx, int64(1)).Return(swedish(), nil)
		mockRepo.On("Update", ctx, mock.Anything).Return(gorm.ErrRecordNotFound)

		_, err := srvc.UpdateServiceType(ctx, 1, &UpdateServiceTypeRequest{})

		assert.Equal(t, models.ErrRecordNotFound, err)
	})
}

func TestService_UpdateServiceTypeStatus(t *testing.T) {
	t.Run("Deactivate", func(t *testing.T) {
		mockRepo := new(mocks.MockServiceTypeRepository)
		pub := new(events.MockPublisher)
		srvc := newTestService(mockRepo, pub)
		ctx := context.Background()

		before := swedish()
		before.UpdatedAt = time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
		after := swedish()
		after.SetActive(false)
		after.UpdatedAt = before.UpdatedAt.Add(time.Hour)

		mockRepo.On("GetByID", ctx, int64(1)).Return(before, nil).Once()
		mockRepo.On("UpdateStatus", ctx, int64(1), false).Return(nil)
		mockRepo.On("GetByID", ctx, int64(1)).Return(after, nil).Once()
		pub.On("Publish", ctx, events.ServiceTypeStatusChanged, "SWEDISH", mock.MatchedBy(func(res *ServiceTypeResponse) bool {
			return res.UpdatedAt.Equal(after.UpdatedAt)
		})).Return(nil)

		result, err := srvc.UpdateServiceTypeStatus(ctx, 1, false)

		assert.NoError(t, err)
		assert.False(t, result.IsActive)
		assert.Equal(t, after.UpdatedAt, result.UpdatedAt)
		mockRepo.AssertExpectations(t)
		mockRepo.AssertNumberOfCalls(t, "GetByID", 2)
		pub.AssertExpectations(t)
	})

	t.Run("Read back fails", func(t *testing.T) {
		mockRepo := new(mocks.MockServiceTypeRepository)
		pub := new(events.MockPublisher)
		srvc := newTestService(mockRepo, pub)
		ctx := context.Background()

		mockRepo.On("GetByID", ctx, int64(1)).Return(swedish(), nil).Once()
		mockRepo.On("UpdateStatus", ctx, int64(1), true).Return(nil)
		mockRepo.On("GetByID", ctx, int64(1)).Return(nil, assert.AnError).Once()

		_, err := srvc.UpdateServiceTypeStatus(ctx, 1, true)

		assert.ErrorIs(t, err, models.ErrStoreUnavailable)
		pub.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockRepo := new(mocks.MockServiceTypeRepository)
		srvc := newTestService(mockRepo, nil)
		ctx := context.Background()

		mockRepo.On("GetByID", ctx, int64(9)).Return(nil, gorm.ErrRecordNotFound)

		_, err := srvc.UpdateServiceTypeStatus(ctx, 9, true)

		assert.Equal(t, models.ErrRecordNotFound, err)
		mockRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Repository Error", func(t *testing.T) {
		mockRepo := new(mocks.MockServiceTypeRepository)
		srvc := newTestService(mockRepo, nil)
		ctx := context.Background()

		mockRepo.On("GetByID", ctx, int64(1)).Return(swedish(), nil)
		mockRepo.On("UpdateStatus", ctx, int64(1), true).Return(assert.AnError)

		_, err := srvc.UpdateServiceTypeStatus(ctx, 1, true)

		assert.ErrorIs(t, err, models.ErrStoreUnavailable)
	})
}

func TestService_DeleteServiceType(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockRepo := new(mocks.MockServiceTypeRepository)
		pub := new(events.MockPublisher)
		srvc := newTestService(mockRepo, pub)
		ctx := context.Background()

		mockRepo.On("GetByID", ctx, int64(1)).Return(swedish(), nil)
		mockRepo.On("Delete", ctx, int64(1)).Return(nil)
		pub.On("Publish", ctx, events.ServiceTypeDeleted, "SWEDISH", mock.Anything).Return(nil)

		err := srvc.DeleteServiceType(ctx, 1)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
		pub.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockRepo := new(mocks.MockServiceTypeRepository)
		srvc := newTestService(mockRepo, nil)
		ctx := context.Background()

		mockRepo.On("GetByID", ctx, int64(3)).Return(nil, gorm.ErrRecordNotFound)

		err := srvc.DeleteServiceType(ctx, 3)

		assert.Equal(t, models.ErrRecordNotFound, err)
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Repository Error", func(t *testing.T) {
		mockRepo := new(mocks.MockServiceTypeRepository)
		srvc := newTestService(mockRepo, nil)
		ctx := context.Background()

		mockRepo.On("GetByID", ctx, int64(1)).Return(swedish(), nil)
		mockRepo.On("Delete", ctx, int64(1)).Return(assert.AnError)

		err := srvc.DeleteServiceType(ctx, 1)

		assert.ErrorIs(t, err, models.ErrStoreUnavailable)
	})
}

func TestNewService_DefaultConfig(t *testing.T) {
	mockRepo := new(mocks.MockServiceTypeRepository)
	srvc := NewService(mockRepo, events.NullPublisher{}, sanitizer.NewHTMLStripper(), logger.NewNullLogger(), nil)
	ctx := context.Background()

	mockRepo.On("GetByCode", ctx, "REIKI").Return(nil, gorm.ErrRecordNotFound)
	mockRepo.On("Create", ctx, mock.Anything).Return(nil)

	result, err := srvc.CreateServiceType(ctx, &CreateServiceTypeRequest{Code: "REIKI", Name: "Reiki"})
	assert.NoError(t, err)
	assert.Equal(t, GetDefaultConfig().DefaultCategory, result.Category)
	mockRepo.AssertExpectations(t)
}

func TestService_GetServiceTypesByCategory(t *testing.T) {
	t.Run("Normalizes category", func(t *testing.T) {
		mockRepo := new(mocks.MockServiceTypeRepository)
		srvc := newTestService(mockRepo, nil)
		ctx := context.Background()

		mockRepo.On("GetByCategory", ctx, "relaxation").Return([]models.MassageServiceType{*swedish()}, nil)

		result, err := srvc.GetServiceTypesByCategory(ctx, " Relaxation ")

		assert.NoError(t, err)
		assert.Len(t, result, 1)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Unknown category", func(t *testing.T) {
		mockRepo := new(mocks.MockServiceTypeRepository)
		srvc := newTestService(mockRepo, nil)

		for _, category := range []string{"", "aquatic"} {
			result, err := srvc.GetServiceTypesByCategory(context.Background(), category)
			assert.Equal(t, models.ErrInvalidServiceTypeCategory, err)
			assert.Nil(t, result)
		}
		mockRepo.AssertNotCalled(t, "GetByCategory", mock.Anything, mock.Anything)
	})

	t.Run("Repository Error", func(t *testing.T) {
		mockRepo := new(mocks.MockServiceTypeRepository)
		srvc := newTestService(mockRepo, nil)
		ctx := context.Background()

		mockRepo.On("GetByCategory", ctx, "sports").Return(nil, assert.AnError)

		_, err := srvc.GetServiceTypesByCategory(ctx, "sports")

		assert.ErrorIs(t, err, models.ErrStoreUnavailable)
	})
}
