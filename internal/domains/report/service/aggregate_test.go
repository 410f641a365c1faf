package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	bookingModel "lodge/internal/domains/booking/model"
	"lodge/internal/domains/report/service"
	roomModel "lodge/internal/domains/room/model"
)

func date(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}

	return parsed
}

func stay(roomType, checkIn, checkOut string) bookingModel.Booking {
	return bookingModel.Booking{
		RoomType: roomType,
		CheckIn:  date(checkIn),
		CheckOut: date(checkOut),
	}
}

func deluxeRooms(prices ...float64) []roomModel.Room {
	rooms := make([]roomModel.Room, len(prices))
	for i, price := range prices {
		rooms[i] = roomModel.Room{RoomType: "deluxe", PricePerNight: price}
	}

	return rooms
}

func TestSummarize_WindowBoundaryClamp(t *testing.T) {
	summary := service.Summarize(
		date("2024-01-03"), date("2024-01-10"),
		[]bookingModel.Booking{stay("deluxe", "2024-01-01", "2024-01-05")},
		deluxeRooms(100),
	)

	assert.Equal(t, 2, summary.BookedNights, "stay must clamp to [01-03, 01-05]")
	assert.Equal(t, 1, summary.TotalBookings)
	assert.InDelta(t, 200.0, summary.EstimatedRevenue, 0.001)
}

func TestSummarize_ExcludesOutOfWindow(t *testing.T) {
	summary := service.Summarize(
		date("2024-02-01"), date("2024-02-28"),
		[]bookingModel.Booking{
			stay("deluxe", "2024-01-01", "2024-01-05"),
			stay("deluxe", "2024-03-10", "2024-03-12"),
		},
		deluxeRooms(100),
	)

	assert.Zero(t, summary.TotalBookings)
	assert.Zero(t, summary.BookedNights)
	assert.Zero(t, summary.EstimatedRevenue)
}

func TestSummarize_MeanPricePerRoomType(t *testing.T) {
	summary := service.Summarize(
		date("2024-01-01"), date("2024-01-31"),
		[]bookingModel.Booking{stay("deluxe", "2024-01-10", "2024-01-12")},
		deluxeRooms(100, 200),
	)

	// 2 nights at mean price 150
	assert.Equal(t, 2, summary.BookedNights)
	assert.InDelta(t, 300.0, summary.EstimatedRevenue, 0.001)
}

func TestSummarize_UnknownRoomTypeContributesZeroRevenue(t *testing.T) {
	summary := service.Summarize(
		date("2024-01-01"), date("2024-01-31"),
		[]bookingModel.Booking{stay("suite", "2024-01-10", "2024-01-12")},
		deluxeRooms(100),
	)

	assert.Equal(t, 2, summary.BookedNights, "nights still count toward occupancy")
	assert.Zero(t, summary.EstimatedRevenue)
}

func TestSummarize_ZeroRoomsGuard(t *testing.T) {
	summary := service.Summarize(
		date("2024-01-01"), date("2024-01-31"),
		[]bookingModel.Booking{stay("deluxe", "2024-01-10", "2024-01-12")},
		nil,
	)

	assert.Zero(t, summary.OccupancyRate)
	assert.Zero(t, summary.RoomsCount)
}

func TestSummarize_SameDayWindowFloorsToOneDay(t *testing.T) {
	summary := service.Summarize(
		date("2024-01-10"), date("2024-01-10"),
		[]bookingModel.Booking{stay("deluxe", "2024-01-09", "2024-01-11")},
		deluxeRooms(100),
	)

	assert.Equal(t, 1, summary.DaysInWindow)
	assert.Zero(t, summary.BookedNights, "clamped same-day stay contributes zero nights")
	assert.Zero(t, summary.OccupancyRate)
}

func TestSummarize_InvertedStayContributesZeroNights(t *testing.T) {
	summary := service.Summarize(
		date("2024-01-01"), date("2024-01-31"),
		[]bookingModel.Booking{stay("deluxe", "2024-01-12", "2024-01-10")},
		deluxeRooms(100),
	)

	assert.Equal(t, 1, summary.TotalBookings)
	assert.Zero(t, summary.BookedNights)
	assert.Zero(t, summary.EstimatedRevenue)
}

func TestSummarize_OccupancyRate(t *testing.T) {
	// 2 rooms over a 10 day window, 5 booked nights
	summary := service.Summarize(
		date("2024-01-01"), date("2024-01-11"),
		[]bookingModel.Booking{
			stay("deluxe", "2024-01-01", "2024-01-04"),
			stay("deluxe", "2024-01-05", "2024-01-07"),
		},
		deluxeRooms(100, 100),
	)

	assert.Equal(t, 5, summary.BookedNights)
	assert.Equal(t, 10, summary.DaysInWindow)
	assert.InDelta(t, 0.25, summary.OccupancyRate, 0.001)
	assert.InDelta(t, 500.0, summary.EstimatedRevenue, 0.001)
}

func TestSummarize_RevenueRoundedToTwoDecimals(t *testing.T) {
	// mean price 100.333... over 3 rooms, 1 night
	summary := service.Summarize(
		date("2024-01-01"), date("2024-01-31"),
		[]bookingModel.Booking{stay("deluxe", "2024-01-10", "2024-01-11")},
		deluxeRooms(100, 100, 101),
	)

	assert.InDelta(t, 100.33, summary.EstimatedRevenue, 0.0001)
}
