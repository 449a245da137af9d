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
	ucStyle "github.com/amalynlocs/salon-api/internal/usecase/style"
)

type StyleHandler struct {
	store      kv.Store
	activateUC *ucStyle.ActivateStyle
	audit      *audit.Dispatcher
}

func NewStyleHandler(
	store kv.Store,
	activateUC *ucStyle.ActivateStyle,
	auditDispatcher *audit.Dispatcher,
) *StyleHandler {
	return &StyleHandler{
		store:      store,
		activateUC: activateUC,
		audit:      auditDispatcher,
	}
}

// --------- Requests ---------

type StylePayload struct {
	ID         string                 `json:"id"`
	Name       string                 `json:"name"`
	Colors     models.StyleColors     `json:"colors"`
	Typography models.StyleTypography `json:"typography"`
	CustomCSS  string                 `json:"customCSS"`
	CreatedAt  string                 `json:"createdAt"`
}

type CreateStyleRequest struct {
	Style StylePayload `json:"style" binding:"required"`
}

type UpdateStyleRequest struct {
	Style struct {
		Name       *string                 `json:"name,omitempty"`
		Colors     *models.StyleColors     `json:"colors,omitempty"`
		Typography *models.StyleTypography `json:"typography,omitempty"`
		CustomCSS  *string                 `json:"customCSS,omitempty"`
	} `json:"style" binding:"required"`
}

type ActivateStyleRequest struct {
	StyleID string `json:"styleId" binding:"required"`
}

// --------- Handlers ---------

// List returns every saved style; isActive is computed against the
// active-style pointer so at most one style ever shows as active.
func (h *StyleHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	raws, err := h.store.GetByPrefix(ctx, models.StylePrefix)
	if err != nil {
		httperr.Internal(c, "failed_to_fetch_styles", "Failed to fetch styles.")
		return
	}

	activeID, err := ucStyle.ActiveID(ctx, h.store)
	if err != nil {
		httperr.Internal(c, "failed_to_fetch_styles", "Failed to fetch styles.")
		return
	}

	styles := make([]models.Style, 0, len(raws))
	for _, raw := range raws {
		var st models.Style
		if err := json.Unmarshal(raw, &st); err != nil {
			continue
		}
		st.IsActive = st.ID != "" && st.ID == activeID
		styles = append(styles, st)
	}

	c.JSON(http.StatusOK, gin.H{"styles": styles})
}

func (h *StyleHandler) Create(c *gin.Context) {
	adminEmail := c.MustGet(middleware.ContextAdminEmail).(string)

	var req CreateStyleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid style payload.")
		return
	}

	if strings.TrimSpace(req.Style.Name) == "" {
		httperr.BadRequest(c, "missing_required_fields", "Style name is required.")
		return
	}

	id := req.Style.ID
	if id == "" {
		id = models.NewID()
	}

	createdAt := req.Style.CreatedAt
	if createdAt == "" {
		createdAt = timezone.Stamp()
	}

	style := models.Style{
		ID:         id,
		Name:       req.Style.Name,
		Colors:     req.Style.Colors,
		Typography: req.Style.Typography,
		CustomCSS:  req.Style.CustomCSS,
		CreatedAt:  createdAt,
		UpdatedAt:  timezone.Stamp(),
	}

	if err := h.store.Set(c.Request.Context(), models.StyleKey(id), style); err != nil {
		httperr.Internal(c, "failed_to_save_style", "Failed to save style.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Actor:    adminEmail,
		Action:   "style_created",
		Entity:   "style",
		EntityID: id,
	})

	c.JSON(http.StatusCreated, gin.H{"success": true, "style": style})
}

func (h *StyleHandler) Update(c *gin.Context) {
	adminEmail := c.MustGet(middleware.ContextAdminEmail).(string)
	id := c.Param("id")
	ctx := c.Request.Context()

	raw, err := h.store.Get(ctx, models.StyleKey(id))
	if err == kv.ErrNotFound {
		httperr.NotFound(c, "style_not_found", "Style not found.")
		return
	}
	if err != nil {
		httperr.Internal(c, "failed_to_get_style", "Failed to get style.")
		return
	}

	var style models.Style
	if err := json.Unmarshal(raw, &style); err != nil {
		httperr.Internal(c, "failed_to_get_style", "Failed to get style.")
		return
	}

	var req UpdateStyleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid style payload.")
		return
	}

	if req.Style.Name != nil {
		style.Name = *req.Style.Name
	}
	if req.Style.Colors != nil {
		style.Colors = *req.Style.Colors
	}
	if req.Style.Typography != nil {
		style.Typography = *req.Style.Typography
	}
	if req.Style.CustomCSS != nil {
		style.CustomCSS = *req.Style.CustomCSS
	}

	style.ID = id
	style.IsActive = false // derived on read, never stored
	style.UpdatedAt = timezone.Stamp()

	if err := h.store.Set(ctx, models.StyleKey(id), style); err != nil {
		httperr.Internal(c, "failed_to_update_style", "Failed to update style.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Actor:    adminEmail,
		Action:   "style_updated",
		Entity:   "style",
		EntityID: id,
	})

	activeID, _ := ucStyle.ActiveID(ctx, h.store)
	style.IsActive = style.ID == activeID

	c.JSON(http.StatusOK, gin.H{"success": true, "style": style})
}

func (h *StyleHandler) Activate(c *gin.Context) {
	adminEmail := c.MustGet(middleware.ContextAdminEmail).(string)

	var req ActivateStyleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Style ID is required.")
		return
	}

	style, err := h.activateUC.Execute(c.Request.Context(), req.StyleID, adminEmail)
	if err != nil {
		if httperr.IsBusiness(err, "style_not_found") {
			httperr.NotFound(c, "style_not_found", "Style not found.")
			return
		}
		httperr.Internal(c, "failed_to_activate_style", "Failed to activate style.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Style activated successfully",
		"style":   style,
	})
}

func (h *StyleHandler) Delete(c *gin.Context) {
	adminEmail := c.MustGet(middleware.ContextAdminEmail).(string)
	id := c.Param("id")
	ctx := c.Request.Context()

	// deleting the active style leaves the storefront unthemed
	activeID, err := ucStyle.ActiveID(ctx, h.store)
	if err != nil {
		httperr.Internal(c, "failed_to_delete_style", "Failed to delete style.")
		return
	}
	if activeID == id {
		if err := h.store.Del(ctx, models.ActiveStyleKey); err != nil {
			httperr.Internal(c, "failed_to_delete_style", "Failed to delete style.")
			return
		}
	}

	if err := h.store.Del(ctx, models.StyleKey(id)); err != nil {
		httperr.Internal(c, "failed_to_delete_style", "Failed to delete style.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Actor:    adminEmail,
		Action:   "style_deleted",
		Entity:   "style",
		EntityID: id,
	})

	httpresp.Success(c, "Style deleted successfully")
}
