package servicetypes

import (
	"context"
	"errors"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/rubhub/catalog/models"
)

const (
	defaultOrder      = "name ASC, id ASC"
	pqUniqueViolation = "23505"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// repository implements the Repository interface using GORM
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new service type repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{
		db: db,
	}
}

// translateError folds driver level unique violations into gorm.ErrDuplicatedKey.
// The pgx dialector already does this when TranslateError is set; lib/pq
// connections do not.
func translateError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
		return gorm.ErrDuplicatedKey
	}
	return err
}

// EscapeLike escapes LIKE wildcards so term matches literally. Backslash is
// the default escape character in PostgreSQL.
func EscapeLike(term string) string {
	return likeEscaper.Replace(term)
}

// GetAll returns all service types
func (r *repository) GetAll(ctx context.Context) ([]models.MassageServiceType, error) {
	var items []models.MassageServiceType
	err := r.db.WithContext(ctx).Order(defaultOrder).Find(&items).Error
	return items, err
}

// GetByID returns a service type by ID
func (r *repository) GetByID(ctx context.Context, id int64) (*models.MassageServiceType, error) {
	var st models.MassageServiceType
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&st).Error
	if err != nil {
		return nil, err
	}
	return &st, nil
}

// GetByCode returns a service type by code
func (r *repository) GetByCode(ctx context.Context, code string) (*models.MassageServiceType, error) {
	var st models.MassageServiceType
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&st).Error
	if err != nil {
		return nil, err
	}
	return &st, nil
}

// GetActive returns all active service types
func (r *repository) GetActive(ctx context.Context) ([]models.MassageServiceType, error) {
	var items []models.MassageServiceType
	err := r.db.WithContext(ctx).Where("is_active = ?", true).Order(defaultOrder).Find(&items).Error
	return items, err
}

// GetByCategory returns the service types in category
func (r *repository) GetByCategory(ctx context.Context, category string) ([]models.MassageServiceType, error) {
	var items []models.MassageServiceType
	err := r.db.WithContext(ctx).Where("category = ?", category).Order(defaultOrder).Find(&items).Error
	return items, err
}

// SearchByName returns every service type whose name contains term, ignoring case
func (r *repository) SearchByName(ctx context.Context, term string) ([]models.MassageServiceType, error) {
	var items []models.MassageServiceType
	pattern := "%" + EscapeLike(term) + "%"
	err := r.db.WithContext(ctx).
		Where("name ILIKE ?", pattern).
		Order(defaultOrder).
		Find(&items).Error
	return items, err
}

// Create creates a new service type
func (r *repository) Create(ctx context.Context, st *models.MassageServiceType) error {
	return translateError(r.db.WithContext(ctx).Create(st).Error)
}

// Update writes every mutable column of st
func (r *repository) Update(ctx context.Context, st *models.MassageServiceType) error {
	result := r.db.WithContext(ctx).
		Model(st).
		Select("code", "name", "description", "category", "duration_minutes", "base_price", "is_active", "updated_at").
		Updates(st)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateStatus sets the active flag of a service type
func (r *repository) UpdateStatus(ctx context.Context, id int64, active bool) error {
	result := r.db.WithContext(ctx).
		Model(&models.MassageServiceType{}).
		Where("id = ?", id).
		Update("is_active", active)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete deletes a service type by ID
func (r *repository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.MassageServiceType{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
