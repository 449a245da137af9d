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

type ProductHandler struct {
	store kv.Store
	audit *audit.Dispatcher
}

func NewProductHandler(store kv.Store, auditDispatcher *audit.Dispatcher) *ProductHandler {
	return &ProductHandler{store: store, audit: auditDispatcher}
}

// --------- Requests ---------

type ProductPayload struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	InStock     *bool   `json:"inStock"`
	CreatedAt   string  `json:"createdAt"`
}

type CreateProductRequest struct {
	Product ProductPayload `json:"product" binding:"required"`
}

type UpdateProductRequest struct {
	Product struct {
		Name        *string  `json:"name,omitempty"`
		Description *string  `json:"description,omitempty"`
		Price       *float64 `json:"price,omitempty"`
		Category    *string  `json:"category,omitempty"`
		Image       *string  `json:"image,omitempty"`
		InStock     *bool    `json:"inStock,omitempty"`
	} `json:"product" binding:"required"`
}

// --------- Handlers ---------

func (h *ProductHandler) List(c *gin.Context) {
	category := strings.ToLower(strings.TrimSpace(c.Query("category")))
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	raws, err := h.store.GetByPrefix(c.Request.Context(), models.ProductPrefix)
	if err != nil {
		httperr.Internal(c, "failed_to_fetch_products", "Failed to fetch products.")
		return
	}

	products := make([]models.Product, 0, len(raws))
	for _, raw := range raws {
		var p models.Product
		if err := json.Unmarshal(raw, &p); err != nil {
			continue
		}
		if category != "" && strings.ToLower(p.Category) != category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) {
			continue
		}
		products = append(products, p)
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h *ProductHandler) Create(c *gin.Context) {
	adminEmail := c.MustGet(middleware.ContextAdminEmail).(string)

	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid product payload.")
		return
	}

	if strings.TrimSpace(req.Product.Name) == "" {
		httperr.BadRequest(c, "missing_required_fields", "Product name is required.")
		return
	}

	id := req.Product.ID
	if id == "" {
		id = models.NewID()
	}

	inStock := true
	if req.Product.InStock != nil {
		inStock = *req.Product.InStock
	}

	createdAt := req.Product.CreatedAt
	if createdAt == "" {
		createdAt = timezone.Stamp()
	}

	product := models.Product{
		ID:          id,
		Name:        req.Product.Name,
		Description: req.Product.Description,
		Price:       req.Product.Price,
		Category:    strings.ToLower(req.Product.Category),
		Image:       req.Product.Image,
		InStock:     inStock,
		CreatedAt:   createdAt,
		UpdatedAt:   timezone.Stamp(),
	}

	if err := h.store.Set(c.Request.Context(), models.ProductKey(id), product); err != nil {
		httperr.Internal(c, "failed_to_save_product", "Failed to save product.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Actor:    adminEmail,
		Action:   "product_created",
		Entity:   "product",
		EntityID: id,
	})

	c.JSON(http.StatusCreated, gin.H{"success": true, "product": product})
}

func (h *ProductHandler) Update(c *gin.Context) {
	adminEmail := c.MustGet(middleware.ContextAdminEmail).(string)
	id := c.Param("id")

	raw, err := h.store.Get(c.Request.Context(), models.ProductKey(id))
	if err == kv.ErrNotFound {
		httperr.NotFound(c, "product_not_found", "Product not found.")
		return
	}
	if err != nil {
		httperr.Internal(c, "failed_to_get_product", "Failed to get product.")
		return
	}

	var product models.Product
	if err := json.Unmarshal(raw, &product); err != nil {
		httperr.Internal(c, "failed_to_get_product", "Failed to get product.")
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid product payload.")
		return
	}

	if req.Product.Name != nil {
		product.Name = *req.Product.Name
	}
	if req.Product.Description != nil {
		product.Description = *req.Product.Description
	}
	if req.Product.Price != nil {
		product.Price = *req.Product.Price
	}
	if req.Product.Category != nil {
		product.Category = strings.ToLower(*req.Product.Category)
	}
	if req.Product.Image != nil {
		product.Image = *req.Product.Image
	}
	if req.Product.InStock != nil {
		product.InStock = *req.Product.InStock
	}

	product.ID = id
	product.UpdatedAt = timezone.Stamp()

	if err := h.store.Set(c.Request.Context(), models.ProductKey(id), product); err != nil {
		httperr.Internal(c, "failed_to_update_product", "Failed to update product.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Actor:    adminEmail,
		Action:   "product_updated",
		Entity:   "product",
		EntityID: id,
	})

	c.JSON(http.StatusOK, gin.H{"success": true, "product": product})
}

func (h *ProductHandler) Delete(c *gin.Context) {
	adminEmail := c.MustGet(middleware.ContextAdminEmail).(string)
	id := c.Param("id")

	if err := h.store.Del(c.Request.Context(), models.ProductKey(id)); err != nil {
		httperr.Internal(c, "failed_to_delete_product", "Failed to delete product.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Actor:    adminEmail,
		Action:   "product_deleted",
		Entity:   "product",
		EntityID: id,
	})

	httpresp.Success(c, "Product deleted successfully")
}
