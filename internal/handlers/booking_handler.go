package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amalynlocs/salon-api/internal/audit"
	"github.com/amalynlocs/salon-api/internal/httperr"
	"github.com/amalynlocs/salon-api/internal/httpresp"
	"github.com/amalynlocs/salon-api/internal/kv"
	"github.com/amalynlocs/salon-api/internal/middleware"
	"github.com/amalynlocs/salon-api/internal/models"
	ucBooking "github.com/amalynlocs/salon-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	store    kv.Store
	createUC *ucBooking.CreateBooking
	statusUC *ucBooking.UpdateBookingStatus
	audit    *audit.Dispatcher
}

func NewBookingHandler(
	store kv.Store,
	createUC *ucBooking.CreateBooking,
	statusUC *ucBooking.UpdateBookingStatus,
	auditDispatcher *audit.Dispatcher,
) *BookingHandler {
	return &BookingHandler{
		store:    store,
		createUC: createUC,
		statusUC: statusUC,
		audit:    auditDispatcher,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookingPayload struct {
	ID      string        `json:"id"`
	Name    string        `json:"name"`
	Email   string        `json:"email"`
	Phone   string        `json:"phone"`
	Service string        `json:"service"`
	Date    string        `json:"date"`
	Time    string        `json:"time"`
	Status  string        `json:"status"`
	Price   models.Amount `json:"price"`
	Notes   string        `json:"notes"`
}

type CreateBookingRequest struct {
	Booking BookingPayload `json:"booking" binding:"required"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// LIST
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	raws, err := h.store.GetByPrefix(c.Request.Context(), models.BookingPrefix)
	if err != nil {
		httperr.Internal(c, "failed_to_fetch_bookings", "Failed to fetch bookings.")
		return
	}

	bookings := make([]models.Booking, 0, len(raws))
	for _, raw := range raws {
		var bk models.Booking
		if err := json.Unmarshal(raw, &bk); err == nil {
			bookings = append(bookings, bk)
		}
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// ======================================================
// CREATE (walk-ins recorded by the console)
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	adminEmail := c.MustGet(middleware.ContextAdminEmail).(string)

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
		Status:  req.Booking.Status,
		Price:   req.Booking.Price,
		Notes:   req.Booking.Notes,
		Public:  false,
		Actor:   adminEmail,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "booking": bk})
}

// ======================================================
// STATUS
// ======================================================

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	adminEmail := c.MustGet(middleware.ContextAdminEmail).(string)
	id := c.Param("id")

	var req UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Status is required.")
		return
	}

	bk, err := h.statusUC.Execute(c.Request.Context(), id, req.Status, adminEmail)
	if err != nil {
		if httperr.IsBusiness(err, "booking_not_found") {
			httperr.NotFound(c, "booking_not_found", "Booking not found.")
			return
		}
		if httperr.IsBusiness(err, "invalid_status") {
			httperr.BadRequest(c, "invalid_status", "Status must be pending, confirmed, completed or cancelled.")
			return
		}
		httperr.Internal(c, "failed_to_update_booking_status", "Failed to update booking status.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "booking": bk})
}

// ======================================================
// DELETE
// ======================================================

func (h *BookingHandler) Delete(c *gin.Context) {
	adminEmail := c.MustGet(middleware.ContextAdminEmail).(string)
	id := c.Param("id")

	if err := h.store.Del(c.Request.Context(), models.BookingKey(id)); err != nil {
		httperr.Internal(c, "failed_to_delete_booking", "Failed to delete booking.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Actor:    adminEmail,
		Action:   "booking_deleted",
		Entity:   "booking",
		EntityID: id,
	})

	httpresp.Success(c, "Booking deleted successfully")
}

// ======================================================
// ERRORS
// ======================================================

func writeBookingError(c *gin.Context, err error) {
	switch httperr.BusinessCode(err) {
	case "missing_required_fields":
		httperr.BadRequest(c, "missing_required_fields", "Name, phone, and service are required.")
	case "invalid_email":
		httperr.BadRequest(c, "invalid_email", "Email address does not look valid.")
	case "invalid_status":
		httperr.BadRequest(c, "invalid_status", "Status must be pending, confirmed, completed or cancelled.")
	default:
		httperr.Internal(c, "failed_to_save_booking", "Failed to save booking.")
	}
}
