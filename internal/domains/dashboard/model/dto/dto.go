package dto

import (
	bookingModel "lodge/internal/domains/booking/model"
	bookingDto "lodge/internal/domains/booking/model/dto"
	paymentModel "lodge/internal/domains/payment/model"
	paymentDto "lodge/internal/domains/payment/model/dto"
)

type DashboardBookingResponse struct {
	bookingDto.BookingResponse
	Payments []paymentDto.PaymentResponse `json:"payments"`
}

func (r *DashboardBookingResponse) FromModel(booking bookingModel.Booking, payments []paymentModel.Payment) {
	r.BookingResponse.FromModel(booking)

	r.Payments = make([]paymentDto.PaymentResponse, len(payments))
	for i, payment := range payments {
		r.Payments[i].FromModel(payment)
	}
}

type GetDashboardBookingsResponse struct {
	Bookings  []DashboardBookingResponse `json:"bookings"`
	TotalData int                        `json:"total_data"`
}

func (r *GetDashboardBookingsResponse) FromModels(bookings []bookingModel.Booking, paymentsByBooking map[string][]paymentModel.Payment) {
	r.TotalData = len(bookings)

	r.Bookings = make([]DashboardBookingResponse, len(bookings))
	for i, booking := range bookings {
		r.Bookings[i].FromModel(booking, paymentsByBooking[booking.ID])
	}
}
