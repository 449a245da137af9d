package analytics

import (
	"context"
	"encoding/json"
	"time"

	domain "github.com/amalynlocs/salon-api/internal/domain/booking"
	"github.com/amalynlocs/salon-api/internal/dto"
	"github.com/amalynlocs/salon-api/internal/kv"
	"github.com/amalynlocs/salon-api/internal/models"
	"github.com/amalynlocs/salon-api/internal/timezone"
)

// Summary folds the current contents of the bookings, products, images and
// reviews collections into dashboard statistics. Pure read: nothing is
// cached, nothing is mutated, and a failed scan fails the whole request.
type Summary struct {
	store kv.Store
}

func NewSummary(store kv.Store) *Summary {
	return &Summary{store: store}
}

func (uc *Summary) Execute(ctx context.Context) (*dto.Analytics, error) {

	bookingsRaw, err := uc.store.GetByPrefix(ctx, models.BookingPrefix)
	if err != nil {
		return nil, err
	}
	productsRaw, err := uc.store.GetByPrefix(ctx, models.ProductPrefix)
	if err != nil {
		return nil, err
	}
	imagesRaw, err := uc.store.GetByPrefix(ctx, models.ImagePrefix)
	if err != nil {
		return nil, err
	}
	reviewsRaw, err := uc.store.GetByPrefix(ctx, models.ReviewPrefix)
	if err != nil {
		return nil, err
	}

	bookings := make([]models.Booking, 0, len(bookingsRaw))
	for _, raw := range bookingsRaw {
		var bk models.Booking
		if err := json.Unmarshal(raw, &bk); err == nil {
			bookings = append(bookings, bk)
		}
	}

	now := timezone.Now()
	// monthly window opens at the first day of the previous calendar month
	monthStart := time.Date(now.Year(), now.Month()-1, 1, 0, 0, 0, 0, now.Location())
	weekStart := now.AddDate(0, 0, -7)

	out := &dto.Analytics{
		Totals: dto.AnalyticsTotals{
			Bookings: len(bookings),
			Products: len(productsRaw),
			Images:   len(imagesRaw),
			Reviews:  len(reviewsRaw),
		},
	}

	for _, bk := range bookings {
		at := bookedAt(bk)
		monthly := at.After(monthStart)
		if monthly {
			out.Recent.MonthlyBookings++
		}
		if at.After(weekStart) {
			out.Recent.WeeklyBookings++
		}

		switch domain.Status(bk.Status) {
		case domain.StatusPending:
			out.BookingsByStatus.Pending++
		case domain.StatusConfirmed:
			out.BookingsByStatus.Confirmed++
		case domain.StatusCompleted:
			out.BookingsByStatus.Completed++
		case domain.StatusCancelled:
			out.BookingsByStatus.Cancelled++
		}

		if domain.Status(bk.Status) == domain.StatusCompleted {
			price := bk.Price.Float()
			out.Revenue.Total += price
			if monthly {
				out.Revenue.Monthly += price
			}
		}
	}

	return out, nil
}

// bookedAt orders a booking in time by createdAt, falling back to the
// requested appointment date when createdAt is absent or unreadable.
func bookedAt(bk models.Booking) time.Time {
	if bk.CreatedAt != "" {
		if t, err := time.Parse(time.RFC3339, bk.CreatedAt); err == nil {
			return t
		}
	}
	if bk.Date != "" {
		if t, err := time.Parse("2006-01-02", bk.Date); err == nil {
			return t
		}
	}
	return time.Time{}
}
