package service

import (
	"time"

	bookingModel "lodge/internal/domains/booking/model"
	paymentModel "lodge/internal/domains/payment/model"
)

// Expected takings per occupied day, used only for the due screen. Kept
// separate from rate card resolution on purpose.
const dueRatePerDay = 100

// Arrivals returns the bookings whose check-in falls on the same day of the
// year as today. The year itself is not compared. Input order is preserved.
func Arrivals(bookings []bookingModel.Booking, today time.Time) []bookingModel.Booking {
	res := make([]bookingModel.Booking, 0, len(bookings))

	for _, booking := range bookings {
		if booking.CheckInDate.YearDay() == today.YearDay() {
			res = append(res, booking)
		}
	}

	return res
}

// Departures returns the bookings whose check-out falls on the same day of
// the year as today.
func Departures(bookings []bookingModel.Booking, today time.Time) []bookingModel.Booking {
	res := make([]bookingModel.Booking, 0, len(bookings))

	for _, booking := range bookings {
		if booking.CheckOutDate.YearDay() == today.YearDay() {
			res = append(res, booking)
		}
	}

	return res
}

// DueList returns the bookings whose recorded payments fall short of the
// flat per-day expectation over the stay's day-of-year span.
func DueList(bookings []bookingModel.Booking, paymentsByBooking map[string][]paymentModel.Payment) []bookingModel.Booking {
	res := make([]bookingModel.Booking, 0, len(bookings))

	for _, booking := range bookings {
		var paid int64
		for _, payment := range paymentsByBooking[booking.ID] {
			paid += payment.Amount
		}

		expected := int64(dueRatePerDay * (booking.CheckOutDate.YearDay() - booking.CheckInDate.YearDay()))

		if paid < expected {
			res = append(res, booking)
		}
	}

	return res
}
