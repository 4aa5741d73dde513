package models

import "errors"

var (
	ErrInvalidServiceTypeCode        = errors.New("invalid service type code")
	ErrInvalidServiceTypeName        = errors.New("invalid service type name")
	ErrInvalidServiceTypeDescription = errors.New("service type description is too long")
	ErrInvalidServiceTypeDuration    = errors.New("invalid service type duration")
	ErrInvalidServiceTypePrice       = errors.New("service type price cannot be negative")
	ErrInvalidServiceTypeCategory    = errors.New("service type category must be one of therapeutic, relaxation, sports, specialized, premium")
	ErrInvalidSearchTerm             = errors.New("search term must not be blank")
	ErrServiceTypeCodeExists         = errors.New("service type with this code already exists")

	ErrDatabaseCredentialNotConfigured = errors.New("database credentials not configured")
	ErrStoreUnavailable                = errors.New("service type store unavailable")

	ErrRecordNotFound = errors.New("record not found")
)

// IsServiceTypeValidationError reports whether err is one of the service type input errors
func IsServiceTypeValidationError(err error) bool {
	return errors.Is(err, ErrInvalidServiceTypeCode) ||
		errors.Is(err, ErrInvalidServiceTypeName) ||
		errors.Is(err, ErrInvalidServiceTypeDescription) ||
		errors.Is(err, ErrInvalidServiceTypeDuration) ||
		errors.Is(err, ErrInvalidServiceTypePrice) ||
		errors.Is(err, ErrInvalidServiceTypeCategory) ||
		errors.Is(err, ErrInvalidSearchTerm)
}
