package booking

import (
	"context"
	"encoding/json"

	"github.com/amalynlocs/salon-api/internal/audit"
	domain "github.com/amalynlocs/salon-api/internal/domain/booking"
	"github.com/amalynlocs/salon-api/internal/httperr"
	"github.com/amalynlocs/salon-api/internal/kv"
	"github.com/amalynlocs/salon-api/internal/models"
	"github.com/amalynlocs/salon-api/internal/timezone"
)

type UpdateBookingStatus struct {
	store kv.Store
	audit *audit.Dispatcher
}

func NewUpdateBookingStatus(store kv.Store, audit *audit.Dispatcher) *UpdateBookingStatus {
	return &UpdateBookingStatus{
		store: store,
		audit: audit,
	}
}

func (uc *UpdateBookingStatus) Execute(
	ctx context.Context,
	id string,
	status string,
	actor string,
) (*models.Booking, error) {

	raw, err := uc.store.Get(ctx, models.BookingKey(id))
	if err == kv.ErrNotFound {
		return nil, httperr.ErrBusiness("booking_not_found")
	}
	if err != nil {
		return nil, err
	}

	var bk models.Booking
	if err := json.Unmarshal(raw, &bk); err != nil {
		return nil, err
	}

	if err := domain.ValidateTransition(domain.Status(bk.Status), domain.Status(status)); err != nil {
		return nil, err
	}

	previous := bk.Status
	bk.Status = status
	bk.UpdatedAt = timezone.Stamp()

	if err := uc.store.Set(ctx, models.BookingKey(id), &bk); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    actor,
		Action:   "booking_status_updated",
		Entity:   "booking",
		EntityID: bk.ID,
		Metadata: map[string]string{"from": previous, "to": status},
	})

	return &bk, nil
}
