package booking

import (
	"context"

	"github.com/amalynlocs/salon-api/internal/audit"
	domain "github.com/amalynlocs/salon-api/internal/domain/booking"
	"github.com/amalynlocs/salon-api/internal/httperr"
	"github.com/amalynlocs/salon-api/internal/kv"
	"github.com/amalynlocs/salon-api/internal/models"
	"github.com/amalynlocs/salon-api/internal/timezone"
	"github.com/amalynlocs/salon-api/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	ID      string
	Name    string
	Email   string
	Phone   string
	Service string
	Date    string
	Time    string
	Status  string
	Price   models.Amount
	Notes   string

	// Public submissions always start pending no matter what status the
	// caller sent; only the admin console may choose one.
	Public bool
	Actor  string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	store kv.Store
	audit *audit.Dispatcher
}

func NewCreateBooking(store kv.Store, audit *audit.Dispatcher) *CreateBooking {
	return &CreateBooking{
		store: store,
		audit: audit,
	}
}

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	if in.Name == "" || in.Phone == "" || in.Service == "" {
		return nil, httperr.ErrBusiness("missing_required_fields")
	}

	if in.Email != "" && !validators.IsEmailFormatValid(in.Email) {
		return nil, httperr.ErrBusiness("invalid_email")
	}

	status := domain.InitialStatus()
	if !in.Public && in.Status != "" {
		if !domain.IsValid(domain.Status(in.Status)) {
			return nil, httperr.ErrBusiness("invalid_status")
		}
		status = domain.Status(in.Status)
	}

	id := in.ID
	if id == "" {
		id = models.NewID()
	}

	bk := &models.Booking{
		ID:        id,
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Service:   in.Service,
		Date:      in.Date,
		Time:      in.Time,
		Status:    string(status),
		Price:     in.Price,
		Notes:     in.Notes,
		CreatedAt: timezone.Stamp(),
	}

	if err := uc.store.Set(ctx, models.BookingKey(id), bk); err != nil {
		return nil, err
	}

	actor := in.Actor
	if in.Public {
		actor = "public"
	}
	uc.audit.Dispatch(audit.Event{
		Actor:    actor,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: bk.ID,
	})

	return bk, nil
}
