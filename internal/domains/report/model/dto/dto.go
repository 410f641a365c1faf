package dto

type RevenueSummary struct {
	From             string  `json:"from"`
	To               string  `json:"to"`
	TotalBookings    int     `json:"total_bookings"`
	BookedNights     int     `json:"booked_nights"`
	RoomsCount       int     `json:"rooms_count"`
	DaysInWindow     int     `json:"days_in_window"`
	OccupancyRate    float64 `json:"occupancy_rate"`
	EstimatedRevenue float64 `json:"estimated_revenue"`
}
