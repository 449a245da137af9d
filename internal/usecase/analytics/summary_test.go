package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/amalynlocs/salon-api/internal/kv"
	"github.com/amalynlocs/salon-api/internal/models"
	"github.com/amalynlocs/salon-api/internal/usecase/analytics"
)

func seedBooking(t *testing.T, store kv.Store, id, status string, price models.Amount, createdAt time.Time) {
	t.Helper()
	bk := models.Booking{
		ID:        id,
		Name:      "Client " + id,
		Phone:     "+234",
		Service:   "Retwist",
		Status:    status,
		Price:     price,
		CreatedAt: createdAt.Format(time.RFC3339),
	}
	require.NoError(t, store.Set(context.Background(), models.BookingKey(id), bk))
}

func TestRevenueCountsOnlyCompletedBookings(t *testing.T) {
	store := kv.NewMemoryStore()
	now := time.Now()

	// 3 completed with prices, 7 in other statuses
	seedBooking(t, store, "1", "completed", "1000", now)
	seedBooking(t, store, "2", "completed", "2000", now)
	seedBooking(t, store, "3", "completed", "3000", now)
	for i, status := range []string{"pending", "pending", "pending", "confirmed", "confirmed", "cancelled", "cancelled"} {
		seedBooking(t, store, string(rune('a'+i)), status, "9999", now)
	}

	out, err := analytics.NewSummary(store).Execute(context.Background())
	require.NoError(t, err)

	require.Equal(t, 10, out.Totals.Bookings)
	require.Equal(t, 6000.0, out.Revenue.Total)
	require.Equal(t, 3, out.BookingsByStatus.Completed)
	require.Equal(t, 3, out.BookingsByStatus.Pending)
	require.Equal(t, 2, out.BookingsByStatus.Confirmed)
	require.Equal(t, 2, out.BookingsByStatus.Cancelled)
}

func TestRevenueIgnoresNonNumericPrices(t *testing.T) {
	store := kv.NewMemoryStore()
	now := time.Now()

	seedBooking(t, store, "1", "completed", "1500", now)
	seedBooking(t, store, "2", "completed", "call for price", now)
	seedBooking(t, store, "3", "completed", "", now)

	out, err := analytics.NewSummary(store).Execute(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1500.0, out.Revenue.Total)
}

func TestRecentWindows(t *testing.T) {
	store := kv.NewMemoryStore()
	now := time.Now()

	seedBooking(t, store, "today", "pending", "", now)
	seedBooking(t, store, "last-week", "pending", "", now.AddDate(0, 0, -6))
	seedBooking(t, store, "old", "completed", "4000", now.AddDate(0, -4, 0))

	out, err := analytics.NewSummary(store).Execute(context.Background())
	require.NoError(t, err)

	require.Equal(t, 2, out.Recent.WeeklyBookings)
	require.GreaterOrEqual(t, out.Recent.MonthlyBookings, 2)
	// the old completed booking still counts toward total revenue
	require.Equal(t, 4000.0, out.Revenue.Total)
	require.Equal(t, 0.0, out.Revenue.Monthly)
}

func TestCreatedAtFallsBackToBookingDate(t *testing.T) {
	store := kv.NewMemoryStore()

	bk := models.Booking{
		ID:      "no-created-at",
		Name:    "Ada",
		Phone:   "+234",
		Service: "Retwist",
		Status:  "pending",
		Date:    time.Now().AddDate(0, 0, -1).Format("2006-01-02"),
	}
	require.NoError(t, store.Set(context.Background(), models.BookingKey(bk.ID), bk))

	out, err := analytics.NewSummary(store).Execute(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, out.Recent.WeeklyBookings)
}

func TestEmptyStoreYieldsZeroAnalytics(t *testing.T) {
	store := kv.NewMemoryStore()

	out, err := analytics.NewSummary(store).Execute(context.Background())
	require.NoError(t, err)
	require.Zero(t, out.Totals.Bookings)
	require.Zero(t, out.Totals.Reviews)
	require.Zero(t, out.Revenue.Total)
}
