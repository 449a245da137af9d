package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amalynlocs/salon-api/internal/httperr"
	"github.com/amalynlocs/salon-api/internal/kv"
	"github.com/amalynlocs/salon-api/internal/models"
	ucBooking "github.com/amalynlocs/salon-api/internal/usecase/booking"
	ucStyle "github.com/amalynlocs/salon-api/internal/usecase/style"
)

// PublicHandler serves the unauthenticated storefront surface: the booking
// intake (the one public write path) and the active theme lookup.
type PublicHandler struct {
	store    kv.Store
	createUC *ucBooking.CreateBooking
}

func NewPublicHandler(store kv.Store, createUC *ucBooking.CreateBooking) *PublicHandler {
	return &PublicHandler{
		store:    store,
		createUC: createUC,
	}
}

// CreateBooking accepts a customer booking. The caller cannot choose a
// status: every public booking starts pending and waits for the admin to
// confirm over WhatsApp.
func (h *PublicHandler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking payload.")
		return
	}

	bk, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		ID:      req.Booking.ID,
		Name:    req.Booking.Name,
		Email:   req.Booking.Email,
		Phone:   req.Booking.Phone,
		Service: req.Booking.Service,
		Date:    req.Booking.Date,
		Time:    req.Booking.Time,
		Price:   req.Booking.Price,
		Notes:   req.Booking.Notes,
		Public:  true,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "booking": bk})
}

// ActiveStyle returns the theme the storefront should render with, or a
// null style when none has been activated.
func (h *PublicHandler) ActiveStyle(c *gin.Context) {
	ctx := c.Request.Context()

	activeID, err := ucStyle.ActiveID(ctx, h.store)
	if err != nil {
		httperr.Internal(c, "failed_to_fetch_active_style", "Failed to fetch active style.")
		return
	}

	if activeID == "" {
		c.JSON(http.StatusOK, gin.H{"style": nil})
		return
	}

	raw, err := h.store.Get(ctx, models.StyleKey(activeID))
	if err == kv.ErrNotFound {
		c.JSON(http.StatusOK, gin.H{"style": nil})
		return
	}
	if err != nil {
		httperr.Internal(c, "failed_to_fetch_active_style", "Failed to fetch active style.")
		return
	}

	var st models.Style
	if err := json.Unmarshal(raw, &st); err != nil {
		httperr.Internal(c, "failed_to_fetch_active_style", "Failed to fetch active style.")
		return
	}

	st.IsActive = true
	c.JSON(http.StatusOK, gin.H{"style": st})
}
