package servicetypes

import (
	"time"

	"github.com/rubhub/catalog/models"
	"github.com/shopspring/decimal"
)

// CreateServiceTypeRequest represents the request to create a service type
type CreateServiceTypeRequest struct {
	Code            string          `json:"code" binding:"required,max=50"`
	Name            string          `json:"name" binding:"required,max=100"`
	Description     string          `json:"description,omitempty" binding:"max=1000"`
	Category        string          `json:"category,omitempty" binding:"max=30"`
	DurationMinutes int             `json:"duration_minutes,omitempty" binding:"min=0,max=480"`
	BasePrice       decimal.Decimal `json:"base_price,omitempty" swaggertype:"string"`
	IsActive        *bool           `json:"is_active,omitempty"`
}

// UpdateServiceTypeRequest carries the fields to change. Omitted fields keep their value.
type UpdateServiceTypeRequest struct {
	Code            *string          `json:"code,omitempty" binding:"omitempty,max=50"`
	Name            *string          `json:"name,omitempty" binding:"omitempty,max=100"`
	Description     *string          `json:"description,omitempty" binding:"omitempty,max=1000"`
	Category        *string          `json:"category,omitempty" binding:"omitempty,max=30"`
	DurationMinutes *int             `json:"duration_minutes,omitempty" binding:"omitempty,min=0,max=480"`
	BasePrice       *decimal.Decimal `json:"base_price,omitempty" swaggertype:"string"`
	IsActive        *bool            `json:"is_active,omitempty"`
}

// UpdateStatusRequest toggles the active flag
type UpdateStatusRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// ServiceTypeResponse represents the response for service type data
type ServiceTypeResponse struct {
	ID              int64           `json:"id"`
	Code            string          `json:"code"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Category        string          `json:"category"`
	DurationMinutes int             `json:"duration_minutes"`
	BasePrice       decimal.Decimal `json:"base_price" swaggertype:"string"`
	IsActive        bool            `json:"is_active"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ToServiceTypeResponse converts a models.MassageServiceType to ServiceTypeResponse
func ToServiceTypeResponse(st *models.MassageServiceType) *ServiceTypeResponse {
	return &ServiceTypeResponse{
		ID:              st.ID,
		Code:            st.Code,
		Name:            st.Name,
		Description:     st.Description,
		Category:        st.Category,
		DurationMinutes: st.DurationMinutes,
		BasePrice:       st.BasePrice,
		IsActive:        st.IsActiveValue(),
		CreatedAt:       st.CreatedAt,
		UpdatedAt:       st.UpdatedAt,
	}
}

// ToServiceTypeResponseList converts a slice of models.MassageServiceType to ServiceTypeResponse
func ToServiceTypeResponseList(items []models.MassageServiceType) []ServiceTypeResponse {
	responses := make([]ServiceTypeResponse, len(items))
	for i := range items {
		responses[i] = *ToServiceTypeResponse(&items[i])
	}
	return responses
}
