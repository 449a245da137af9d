package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/amalynlocs/salon-api/internal/audit"
	"github.com/amalynlocs/salon-api/internal/httperr"
	"github.com/amalynlocs/salon-api/internal/httpresp"
	"github.com/amalynlocs/salon-api/internal/kv"
	"github.com/amalynlocs/salon-api/internal/middleware"
	"github.com/amalynlocs/salon-api/internal/models"
	"github.com/amalynlocs/salon-api/internal/timezone"
)

type ServiceHandler struct {
	store kv.Store
	audit *audit.Dispatcher
}

func NewServiceHandler(store kv.Store, auditDispatcher *audit.Dispatcher) *ServiceHandler {
	return &ServiceHandler{store: store, audit: auditDispatcher}
}

// --------- Requests ---------

type ServicePayload struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Duration    string  `json:"duration"`
	Category    string  `json:"category"`
	Active      *bool   `json:"active"`
	CreatedAt   string  `json:"createdAt"`
}

type CreateServiceRequest struct {
	Service ServicePayload `json:"service" binding:"required"`
}

type UpdateServiceRequest struct {
	Service struct {
		Name        *string  `json:"name,omitempty"`
		Description *string  `json:"description,omitempty"`
		Price       *float64 `json:"price,omitempty"`
		Duration    *string  `json:"duration,omitempty"`
		Category    *string  `json:"category,omitempty"`
		Active      *bool    `json:"active,omitempty"`
	} `json:"service" binding:"required"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	raws, err := h.store.GetByPrefix(c.Request.Context(), models.ServicePrefix)
	if err != nil {
		httperr.Internal(c, "failed_to_fetch_services", "Failed to fetch services.")
		return
	}

	services := make([]models.Service, 0, len(raws))
	for _, raw := range raws {
		var s models.Service
		if err := json.Unmarshal(raw, &s); err == nil {
			services = append(services, s)
		}
	}

	c.JSON(http.StatusOK, gin.H{"services": services})
}

func (h *ServiceHandler) Create(c *gin.Context) {
	adminEmail := c.MustGet(middleware.ContextAdminEmail).(string)

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid service payload.")
		return
	}

	if strings.TrimSpace(req.Service.Name) == "" {
		httperr.BadRequest(c, "missing_required_fields", "Service name is required.")
		return
	}

	id := req.Service.ID
	if id == "" {
		id = models.NewID()
	}

	active := true
	if req.Service.Active != nil {
		active = *req.Service.Active
	}

	createdAt := req.Service.CreatedAt
	if createdAt == "" {
		createdAt = timezone.Stamp()
	}

	service := models.Service{
		ID:          id,
		Name:        req.Service.Name,
		Description: req.Service.Description,
		Price:       req.Service.Price,
		Duration:    req.Service.Duration,
		Category:    strings.ToLower(req.Service.Category),
		Active:      active,
		CreatedAt:   createdAt,
		UpdatedAt:   timezone.Stamp(),
	}

	if err := h.store.Set(c.Request.Context(), models.ServiceKey(id), service); err != nil {
		httperr.Internal(c, "failed_to_save_service", "Failed to save service.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Actor:    adminEmail,
		Action:   "service_created",
		Entity:   "service",
		EntityID: id,
	})

	c.JSON(http.StatusCreated, gin.H{"success": true, "service": service})
}

func (h *ServiceHandler) Update(c *gin.Context) {
	adminEmail := c.MustGet(middleware.ContextAdminEmail).(string)
	id := c.Param("id")

	raw, err := h.store.Get(c.Request.Context(), models.ServiceKey(id))
	if err == kv.ErrNotFound {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}
	if err != nil {
		httperr.Internal(c, "failed_to_get_service", "Failed to get service.")
		return
	}

	var service models.Service
	if err := json.Unmarshal(raw, &service); err != nil {
		httperr.Internal(c, "failed_to_get_service", "Failed to get service.")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid service payload.")
		return
	}

	if req.Service.Name != nil {
		service.Name = *req.Service.Name
	}
	if req.Service.Description != nil {
		service.Description = *req.Service.Description
	}
	if req.Service.Price != nil {
		service.Price = *req.Service.Price
	}
	if req.Service.Duration != nil {
		service.Duration = *req.Service.Duration
	}
	if req.Service.Category != nil {
		service.Category = strings.ToLower(*req.Service.Category)
	}
	if req.Service.Active != nil {
		service.Active = *req.Service.Active
	}

	service.ID = id
	service.UpdatedAt = timezone.Stamp()

	if err := h.store.Set(c.Request.Context(), models.ServiceKey(id), service); err != nil {
		httperr.Internal(c, "failed_to_update_service", "Failed to update service.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Actor:    adminEmail,
		Action:   "service_updated",
		Entity:   "service",
		EntityID: id,
	})

	c.JSON(http.StatusOK, gin.H{"success": true, "service": service})
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	adminEmail := c.MustGet(middleware.ContextAdminEmail).(string)
	id := c.Param("id")

	if err := h.store.Del(c.Request.Context(), models.ServiceKey(id)); err != nil {
		httperr.Internal(c, "failed_to_delete_service", "Failed to delete service.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Actor:    adminEmail,
		Action:   "service_deleted",
		Entity:   "service",
		EntityID: id,
	})

	httpresp.Success(c, "Service deleted successfully")
}
