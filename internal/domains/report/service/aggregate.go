package service

import (
	"math"
	"time"

	bookingModel "lodge/internal/domains/booking/model"
	"lodge/internal/domains/report/model/dto"
	roomModel "lodge/internal/domains/room/model"
	"lodge/shared/constant"
)

// Summarize computes the occupancy rate and estimated revenue for the given
// window. A booking counts when its stay [check_in, check_out) overlaps
// [from, to]; the stay is clamped to the window and never contributes
// negative nights. Revenue is priced by the mean price per night across all
// rooms sharing the booking's room type; unknown room types contribute 0.
func Summarize(from, to time.Time, bookings []bookingModel.Booking, rooms []roomModel.Room) dto.RevenueSummary {
	from = dateOnly(from)
	to = dateOnly(to)

	priceSum := map[string]float64{}
	priceCount := map[string]int{}

	for _, room := range rooms {
		priceSum[room.RoomType] += room.PricePerNight
		priceCount[room.RoomType]++
	}

	var (
		included     int
		bookedNights int
		revenue      float64
	)

	for _, booking := range bookings {
		checkIn := dateOnly(booking.CheckIn)
		checkOut := dateOnly(booking.CheckOut)

		if checkOut.Before(from) || checkIn.After(to) {
			continue
		}

		included++

		start := laterOf(checkIn, from)
		end := earlierOf(checkOut, to)

		nights := daysBetween(start, end)
		if nights < 0 {
			nights = 0
		}

		bookedNights += nights

		if count := priceCount[booking.RoomType]; count > 0 {
			revenue += float64(nights) * priceSum[booking.RoomType] / float64(count)
		}
	}

	days := daysBetween(from, to)
	if days < 1 {
		days = 1
	}

	occupancy := 0.0
	if len(rooms) > 0 {
		occupancy = float64(bookedNights) / float64(len(rooms)*days)
	}

	return dto.RevenueSummary{
		From:             from.Format(constant.DateOnlyFormat),
		To:               to.Format(constant.DateOnlyFormat),
		TotalBookings:    included,
		BookedNights:     bookedNights,
		RoomsCount:       len(rooms),
		DaysInWindow:     days,
		OccupancyRate:    occupancy,
		EstimatedRevenue: math.Round(revenue*100) / 100,
	}
}

// dateOnly normalizes to midnight UTC so day arithmetic is exact.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

func laterOf(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}

	return b
}

func earlierOf(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}

	return b
}
