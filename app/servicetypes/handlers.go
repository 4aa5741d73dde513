package servicetypes

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rubhub/catalog/app/api"
	"github.com/rubhub/catalog/internal/logger"
	"github.com/rubhub/catalog/models"
)

// Handler handles HTTP requests for service types
type Handler struct {
	service Service
	logger  logger.Logger
}

// NewHandler creates a new service type handler
func NewHandler(service Service, log logger.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  log,
	}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		api.BadRequestResponse(c, "Invalid service type ID")
		return 0, false
	}
	return id, true
}

// respondError writes the response matching err. Only store and internal
// failures are recorded on the context, so the request logger reports
// client errors at info level.
func (h *Handler) respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, models.ErrRecordNotFound):
		api.NotFoundResponse(c, "Service type")
	case errors.Is(err, models.ErrServiceTypeCodeExists):
		api.ConflictResponse(c, err.Error())
	case models.IsServiceTypeValidationError(err):
		api.ValidationErrorResponse(c, err.Error())
	case errors.Is(err, models.ErrStoreUnavailable):
		_ = c.Error(err)
		h.logger.Error(err, map[string]interface{}{"path": c.FullPath()})
		api.ServiceUnavailableResponse(c, "Service type store unavailable")
	default:
		_ = c.Error(err)
		h.logger.Error(err, map[string]interface{}{"path": c.FullPath()})
		api.InternalErrorResponse(c, fallback)
	}
}

// GetAllServiceTypes godoc
// @Summary List all service types
// @Description Get every massage service type ordered by name, optionally only one category
// @Tags service-types
// @Accept json
// @Produce json
// @Param category query string false "Category filter" Enums(therapeutic, relaxation, sports, specialized, premium)
// @Success 200 {object} api.Response{data=[]ServiceTypeResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 503 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/service-types [get]
func (h *Handler) GetAllServiceTypes(c *gin.Context) {
	var (
		items []ServiceTypeResponse
		err   error
	)
	if category, ok := c.GetQuery("category"); ok {
		items, err = h.service.GetServiceTypesByCategory(c.Request.Context(), category)
	} else {
		items, err = h.service.GetAllServiceTypes(c.Request.Context())
	}
	if err != nil {
		h.respondError(c, err, "Failed to fetch service types")
		return
	}

	api.ListResponse(c, "Service types retrieved successfully", items, len(items))
}

// GetActiveServiceTypes godoc
// @Summary List active service types
// @Description Get the massage service types that can currently be booked
// @Tags service-types
// @Accept json
// @Produce json
// @Success 200 {object} api.Response{data=[]ServiceTypeResponse}
// @Failure 503 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/service-types/active [get]
func (h *Handler) GetActiveServiceTypes(c *gin.Context) {
	items, err := h.service.GetActiveServiceTypes(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "Failed to fetch active service types")
		return
	}

	api.ListResponse(c, "Active service types retrieved successfully", items, len(items))
}

// SearchServiceTypes godoc
// @Summary Search service types by name
// @Description Case-insensitive substring search on the service type name
// @Tags service-types
// @Accept json
// @Produce json
// @Param name query string true "Part of the name"
// @Success 200 {object} api.Response{data=[]ServiceTypeResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 503 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/service-types/search [get]
func (h *Handler) SearchServiceTypes(c *gin.Context) {
	items, err := h.service.SearchServiceTypesByName(c.Request.Context(), c.Query("name"))
	if err != nil {
		h.respondError(c, err, "Failed to search service types")
		return
	}

	api.ListResponse(c, "Service types retrieved successfully", items, len(items))
}

// GetServiceTypeByID godoc
// @Summary Get service type by ID
// @Tags service-types
// @Accept json
// @Produce json
// @Param id path int true "Service type ID"
// @Success 200 {object} api.Response{data=ServiceTypeResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Failure 503 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/service-types/{id} [get]
func (h *Handler) GetServiceTypeByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	st, err := h.service.GetServiceTypeByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "Failed to fetch service type")
		return
	}

	api.SuccessResponse(c, http.StatusOK, "Service type retrieved successfully", st)
}

// GetServiceTypeByCode godoc
// @Summary Get service type by code
// @Description Lookup is case-insensitive, "swedish" finds SWEDISH
// @Tags service-types
// @Accept json
// @Produce json
// @Param code path string true "Service type code"
// @Success 200 {object} api.Response{data=ServiceTypeResponse}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Failure 503 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/service-types/code/{code} [get]
func (h *Handler) GetServiceTypeByCode(c *gin.Context) {
	st, err := h.service.GetServiceTypeByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.respondError(c, err, "Failed to fetch service type")
		return
	}

	api.SuccessResponse(c, http.StatusOK, "Service type retrieved successfully", st)
}

// CreateServiceType godoc
// @Summary Create a service type
// @Tags service-types
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateServiceTypeRequest true "Service type creation request"
// @Success 201 {object} api.Response{data=ServiceTypeResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 401 {object} api.Response{error=api.ErrorInfo}
// @Failure 403 {object} api.Response{error=api.ErrorInfo}
// @Failure 409 {object} api.Response{error=api.ErrorInfo}
// @Failure 503 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/service-types [post]
func (h *Handler) CreateServiceType(c *gin.Context) {
	var req CreateServiceTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.ValidationErrorResponse(c, err.Error())
		return
	}

	st, err := h.service.CreateServiceType(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err, "Failed to create service type")
		return
	}

	api.CreatedResponse(c, "Service type created successfully", st)
}

// UpdateServiceType godoc
// @Summary Update a service type
// @Description Only the fields present in the body are changed
// @Tags service-types
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Service type ID"
// @Param request body UpdateServiceTypeRequest true "Service type update request"
// @Success 200 {object} api.Response{data=ServiceTypeResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 401 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Failure 409 {object} api.Response{error=api.ErrorInfo}
// @Failure 503 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/service-types/{id} [put]
func (h *Handler) UpdateServiceType(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateServiceTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.ValidationErrorResponse(c, err.Error())
		return
	}

	st, err := h.service.UpdateServiceType(c.Request.Context(), id, &req)
	if err != nil {
		h.respondError(c, err, "Failed to update service type")
		return
	}

	api.UpdatedResponse(c, "Service type updated successfully", st)
}

// UpdateServiceTypeStatus godoc
// @Summary Activate or deactivate a service type
// @Tags service-types
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Service type ID"
// @Param request body UpdateStatusRequest true "New status"
// @Success 200 {object} api.Response{data=ServiceTypeResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 401 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Failure 503 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/service-types/{id}/status [patch]
func (h *Handler) UpdateServiceTypeStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.ValidationErrorResponse(c, err.Error())
		return
	}

	st, err := h.service.UpdateServiceTypeStatus(c.Request.Context(), id, *req.IsActive)
	if err != nil {
		h.respondError(c, err, "Failed to update service type status")
		return
	}

	api.UpdatedResponse(c, "Service type status updated successfully", st)
}

// DeleteServiceType godoc
// @Summary Delete a service type
// @Tags service-types
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Service type ID"
// @Success 200 {object} api.Response
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 401 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Failure 503 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/service-types/{id} [delete]
func (h *Handler) DeleteServiceType(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteServiceType(c.Request.Context(), id); err != nil {
		h.respondError(c, err, "Failed to delete service type")
		return
	}

	api.DeletedResponse(c, "Service type deleted successfully")
}
