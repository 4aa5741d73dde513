package servicetypes

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/rubhub/catalog/internal/events"
	"github.com/rubhub/catalog/internal/logger"
	"github.com/rubhub/catalog/internal/sanitizer"
	"github.com/rubhub/catalog/models"
)

// service implements the Service interface
type service struct {
	repo      Repository
	publisher events.Publisher
	sanitizer sanitizer.HTMLStripperer
	logger    logger.Logger
	config    *Config
}

// NewService creates a new service type service
func NewService(repo Repository,
	publisher events.Publisher,
	sanitizer sanitizer.HTMLStripperer,
	log logger.Logger,
	config *Config) Service {
	if config == nil {
		config = GetDefaultConfig()
	}
	return &service{
		repo:      repo,
		publisher: publisher,
		sanitizer: sanitizer,
		logger:    log,
		config:    config,
	}
}

// mapRepoError converts repository errors into the errors callers match on
func mapRepoError(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return models.ErrRecordNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return models.ErrServiceTypeCodeExists
	default:
		return fmt.Errorf("%w: %w", models.ErrStoreUnavailable, err)
	}
}

// validate returns the first invalid field's error and logs all of them
func (s *service) validate(st *models.MassageServiceType) error {
	err := st.Validate()
	if err != nil {
		s.logger.Debug("service type rejected", map[string]interface{}{
			"code":     st.Code,
			"problems": st.ValidateAll().Error(),
		})
	}
	return err
}

// GetAllServiceTypes returns all service types
func (s *service) GetAllServiceTypes(ctx context.Context) ([]ServiceTypeResponse, error) {
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return ToServiceTypeResponseList(items), nil
}

// GetServiceTypeByID returns a service type by ID
func (s *service) GetServiceTypeByID(ctx context.Context, id int64) (*ServiceTypeResponse, error) {
	st, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return ToServiceTypeResponse(st), nil
}

// GetServiceTypeByCode returns a service type by code
func (s *service) GetServiceTypeByCode(ctx context.Context, code string) (*ServiceTypeResponse, error) {
	code = models.NormalizeServiceTypeCode(code)
	if code == "" {
		return nil, models.ErrRecordNotFound
	}

	st, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return ToServiceTypeResponse(st), nil
}

// GetActiveServiceTypes returns all active service types
func (s *service) GetActiveServiceTypes(ctx context.Context) ([]ServiceTypeResponse, error) {
	items, err := s.repo.GetActive(ctx)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return ToServiceTypeResponseList(items), nil
}

// SearchServiceTypesByName returns service types whose name contains name, ignoring case
func (s *service) SearchServiceTypesByName(ctx context.Context, name string) ([]ServiceTypeResponse, error) {
	term := strings.TrimSpace(name)
	if term == "" {
		return nil, models.ErrInvalidSearchTerm
	}

	items, err := s.repo.SearchByName(ctx, term)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return ToServiceTypeResponseList(items), nil
}

// GetServiceTypesByCategory returns the service types in category
func (s *service) GetServiceTypesByCategory(ctx context.Context, category string) ([]ServiceTypeResponse, error) {
	category = models.NormalizeServiceTypeCategory(category)
	if !models.IsServiceTypeCategory(category) {
		return nil, models.ErrInvalidServiceTypeCategory
	}

	items, err := s.repo.GetByCategory(ctx, category)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return ToServiceTypeResponseList(items), nil
}

// CreateServiceType creates a new service type
func (s *service) CreateServiceType(ctx context.Context, req *CreateServiceTypeRequest) (*ServiceTypeResponse, error) {
	category := models.NormalizeServiceTypeCategory(req.Category)
	if category == "" {
		category = s.config.DefaultCategory
	}

	st := &models.MassageServiceType{
		Code:            models.NormalizeServiceTypeCode(req.Code),
		Name:            s.sanitizer.StripHTML(req.Name),
		Description:     s.sanitizer.StripHTML(req.Description),
		Category:        category,
		DurationMinutes: req.DurationMinutes,
		BasePrice:       req.BasePrice.Round(2),
	}
	st.SetActive(req.IsActive == nil || *req.IsActive)

	if err := s.validate(st); err != nil {
		return nil, err
	}

	if err := s.ensureCodeAvailable(ctx, st.Code, 0); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, st); err != nil {
		return nil, mapRepoError(err)
	}

	res := ToServiceTypeResponse(st)
	s.publish(ctx, events.ServiceTypeCreated, res)
	return res, nil
}

// UpdateServiceType applies the fields present in req to an existing service type
func (s *service) UpdateServiceType(ctx context.Context, id int64, req *UpdateServiceTypeRequest) (*ServiceTypeResponse, error) {
	st, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err)
	}

	codeChanged := false
	if req.Code != nil {
		code := models.NormalizeServiceTypeCode(*req.Code)
		codeChanged = code != st.Code
		st.Code = code
	}
	if req.Name != nil {
		st.Name = s.sanitizer.StripHTML(*req.Name)
	}
	if req.Description != nil {
		st.Description = s.sanitizer.StripHTML(*req.Description)
	}
	if req.Category != nil {
		st.Category = models.NormalizeServiceTypeCategory(*req.Category)
	}
	if req.DurationMinutes != nil {
		st.DurationMinutes = *req.DurationMinutes
	}
	if req.BasePrice != nil {
		st.BasePrice = req.BasePrice.Round(2)
	}
	if req.IsActive != nil {
		st.SetActive(*req.IsActive)
	}

	if err := s.validate(st); err != nil {
		return nil, err
	}

	if codeChanged {
		if err := s.ensureCodeAvailable(ctx, st.Code, st.ID); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(ctx, st); err != nil {
		return nil, mapRepoError(err)
	}

	res := ToServiceTypeResponse(st)
	s.publish(ctx, events.ServiceTypeUpdated, res)
	return res, nil
}

// UpdateServiceTypeStatus sets the active flag and returns the service type as stored afterwards
func (s *service) UpdateServiceTypeStatus(ctx context.Context, id int64, active bool) (*ServiceTypeResponse, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, mapRepoError(err)
	}

	if err := s.repo.UpdateStatus(ctx, id, active); err != nil {
		return nil, mapRepoError(err)
	}

	// updated_at is set by the write, so read the row back
	st, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err)
	}

	res := ToServiceTypeResponse(st)
	s.publish(ctx, events.ServiceTypeStatusChanged, res)
	return res, nil
}

// DeleteServiceType deletes a service type
func (s *service) DeleteServiceType(ctx context.Context, id int64) error {
	st, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return mapRepoError(err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return mapRepoError(err)
	}

	s.publish(ctx, events.ServiceTypeDeleted, ToServiceTypeResponse(st))
	return nil
}

// ensureCodeAvailable fails when code belongs to a service type other than selfID
func (s *service) ensureCodeAvailable(ctx context.Context, code string, selfID int64) error {
	existing, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return mapRepoError(err)
	}
	if existing.ID != selfID {
		return models.ErrServiceTypeCodeExists
	}
	return nil
}

// publish logs delivery failures instead of returning them
func (s *service) publish(ctx context.Context, eventType events.EventType, res *ServiceTypeResponse) {
	if err := s.publisher.Publish(ctx, eventType, res.Code, res); err != nil {
		s.logger.Error(err, map[string]interface{}{
			"event": string(eventType),
			"id":    res.ID,
			"code":  res.Code,
		})
	}
}
