package service

import (
	"context"
	"fmt"

	"lodge/infras/otel"
	bookingModel "lodge/internal/domains/booking/model"
	bookingRepo "lodge/internal/domains/booking/repository"
	"lodge/internal/domains/dashboard/model/dto"
	paymentModel "lodge/internal/domains/payment/model"
	paymentRepo "lodge/internal/domains/payment/repository"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Dashboard interface {
	Arrivals(ctx context.Context) (dto.GetDashboardBookingsResponse, error)
	Departures(ctx context.Context) (dto.GetDashboardBookingsResponse, error)
	DueList(ctx context.Context) (dto.GetDashboardBookingsResponse, error)
}

type serviceImpl struct {
	bookingRepo bookingRepo.Booking
	paymentRepo paymentRepo.Payment
	otel        otel.Otel
}

func New(bookingRepo bookingRepo.Booking, paymentRepo paymentRepo.Payment, otel otel.Otel) Dashboard {
	return &serviceImpl{
		bookingRepo: bookingRepo,
		paymentRepo: paymentRepo,
		otel:        otel,
	}
}

func (s *serviceImpl) Arrivals(ctx context.Context) (res dto.GetDashboardBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Arrivals")
	defer scope.End()
	defer scope.TraceIfError(err)

	bookings, err := s.listBookings(ctx)
	if err != nil {
		return res, err
	}

	arrivals := Arrivals(bookings, timezone.Now())

	payments, err := s.paymentsFor(ctx, arrivals)
	if err != nil {
		return res, err
	}

	res.FromModels(arrivals, payments)

	return res, nil
}

func (s *serviceImpl) Departures(ctx context.Context) (res dto.GetDashboardBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Departures")
	defer scope.End()
	defer scope.TraceIfError(err)

	bookings, err := s.listBookings(ctx)
	if err != nil {
		return res, err
	}

	departures := Departures(bookings, timezone.Now())

	payments, err := s.paymentsFor(ctx, departures)
	if err != nil {
		return res, err
	}

	res.FromModels(departures, payments)

	return res, nil
}

func (s *serviceImpl) DueList(ctx context.Context) (res dto.GetDashboardBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DueList")
	defer scope.End()
	defer scope.TraceIfError(err)

	bookings, err := s.listBookings(ctx)
	if err != nil {
		return res, err
	}

	payments, err := s.paymentsFor(ctx, bookings)
	if err != nil {
		return res, err
	}

	due := DueList(bookings, payments)

	res.FromModels(due, payments)

	return res, nil
}

func (s *serviceImpl) listBookings(ctx context.Context) ([]bookingModel.Booking, error) {
	bookings, err := s.bookingRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}

	return bookings, nil
}

func (s *serviceImpl) paymentsFor(ctx context.Context, bookings []bookingModel.Booking) (map[string][]paymentModel.Payment, error) {
	res := make(map[string][]paymentModel.Payment, len(bookings))

	if len(bookings) == 0 {
		return res, nil
	}

	ids := make([]string, len(bookings))
	for i, booking := range bookings {
		ids[i] = booking.ID
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    paymentModel.FieldBookingID,
				Table:    paymentModel.TableName,
				Operator: gDto.FilterOperatorIn,
				Value:    ids,
			},
		},
	}

	payments, err := s.paymentRepo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get payments")

		return nil, fmt.Errorf("failed to get payments: %w", err)
	}

	for _, payment := range payments {
		res[payment.BookingID] = append(res[payment.BookingID], payment)
	}

	return res, nil
}
