package dto

type AnalyticsTotals struct {
	Bookings int `json:"bookings"`
	Products int `json:"products"`
	Images   int `json:"images"`
	Reviews  int `json:"reviews"`
}

type AnalyticsRecent struct {
	MonthlyBookings int `json:"monthlyBookings"`
	WeeklyBookings  int `json:"weeklyBookings"`
}

type BookingsByStatus struct {
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
}

type AnalyticsRevenue struct {
	Total   float64 `json:"total"`
	Monthly float64 `json:"monthly"`
}

type Analytics struct {
	Totals           AnalyticsTotals  `json:"totals"`
	Recent           AnalyticsRecent  `json:"recent"`
	BookingsByStatus BookingsByStatus `json:"bookingsByStatus"`
	Revenue          AnalyticsRevenue `json:"revenue"`
}
