package models

import (
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/rubhub/catalog/internal/validator"
	"github.com/shopspring/decimal"
)

const (
	MaxServiceTypeCodeLength        = 50
	MaxServiceTypeNameLength        = 100
	MaxServiceTypeDescriptionLength = 1000
	MaxServiceTypeDurationMinutes   = 480
)

// Service type categories, as grouped in the booking UI.
const (
	ServiceTypeCategoryTherapeutic = "therapeutic"
	ServiceTypeCategoryRelaxation  = "relaxation"
	ServiceTypeCategorySports      = "sports"
	ServiceTypeCategorySpecialized = "specialized"
	ServiceTypeCategoryPremium     = "premium"
)

var ServiceTypeCategories = []string{
	ServiceTypeCategoryTherapeutic,
	ServiceTypeCategoryRelaxation,
	ServiceTypeCategorySports,
	ServiceTypeCategorySpecialized,
	ServiceTypeCategoryPremium,
}

func IsServiceTypeCategory(category string) bool {
	return slices.Contains(ServiceTypeCategories, category)
}

// ServiceTypeCodeRgx matches a normalized service type code, e.g. DEEP_TISSUE.
var ServiceTypeCodeRgx = regexp.MustCompile(`^[A-Z0-9_]+$`)

// MassageServiceType is a kind of massage offered on the platform
type MassageServiceType struct {
	ID              int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Code            string          `gorm:"type:varchar(50);not null;uniqueIndex" json:"code"`
	Name            string          `gorm:"type:varchar(100);not null;index" json:"name"`
	Description     string          `gorm:"type:text" json:"description"`
	Category        string          `gorm:"type:varchar(30);not null;default:relaxation;index" json:"category"`
	DurationMinutes int             `gorm:"default:0" json:"duration_minutes"`
	BasePrice       decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"base_price"`
	IsActive        *bool           `gorm:"default:true" json:"is_active"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for MassageServiceType model
func (*MassageServiceType) TableName() string {
	return "massage_service_types"
}

// IsActiveValue reports the active flag, treating an unset flag as inactive
func (m *MassageServiceType) IsActiveValue() bool {
	return m.IsActive != nil && *m.IsActive
}

// SetActive sets the active flag
func (m *MassageServiceType) SetActive(active bool) {
	m.IsActive = &active
}

// NormalizeServiceTypeCategory trims and lower-cases a category
func NormalizeServiceTypeCategory(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}

// NormalizeServiceTypeCode trims and upper-cases a code so lookups and writes agree
func NormalizeServiceTypeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Validate returns the sentinel for the first invalid field, checked in
// column order.
func (m *MassageServiceType) Validate() error {
	return m.check().Err()
}

// ValidateAll reports every invalid field at once.
func (m *MassageServiceType) ValidateAll() error {
	return m.check().Join()
}

func (m *MassageServiceType) check() *validator.Validator {
	v := validator.New()
	v.Check(validator.NotBlank(m.Code) &&
		validator.MaxRunes(m.Code, MaxServiceTypeCodeLength) &&
		validator.Matches(m.Code, ServiceTypeCodeRgx), "code", ErrInvalidServiceTypeCode)
	v.Check(validator.NotBlank(m.Name) &&
		validator.MaxRunes(m.Name, MaxServiceTypeNameLength), "name", ErrInvalidServiceTypeName)
	v.Check(validator.MaxRunes(m.Description, MaxServiceTypeDescriptionLength), "description", ErrInvalidServiceTypeDescription)
	v.Check(IsServiceTypeCategory(m.Category), "category", ErrInvalidServiceTypeCategory)
	v.Check(validator.Between(m.DurationMinutes, 0, MaxServiceTypeDurationMinutes), "duration_minutes", ErrInvalidServiceTypeDuration)
	v.Check(!m.BasePrice.IsNegative(), "base_price", ErrInvalidServiceTypePrice)
	return v
}
