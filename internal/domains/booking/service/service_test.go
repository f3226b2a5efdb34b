package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lodge/config"
	"lodge/infras/kafka"
	kafkaMocks "lodge/infras/kafka/mocks"
	"lodge/infras/otel/mocks"
	bookingMocks "lodge/internal/domains/booking/mocks"
	"lodge/internal/domains/booking/model"
	"lodge/internal/domains/booking/model/dto"
	"lodge/internal/domains/booking/service"
	customerMocks "lodge/internal/domains/customer/mocks"
	customerModel "lodge/internal/domains/customer/model"
	ratecardMocks "lodge/internal/domains/ratecard/mocks"
	ratecardModel "lodge/internal/domains/ratecard/model"
	roomMocks "lodge/internal/domains/room/mocks"
	roomModel "lodge/internal/domains/room/model"
	cacheMocks "lodge/shared/cache/mocks"
	"lodge/shared/failure"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"
)

type bookingServiceMocks struct {
	repo         *bookingMocks.MockBooking
	roomRepo     *roomMocks.MockRoom
	customerRepo *customerMocks.MockCustomer
	rateRepo     *ratecardMocks.MockRateCard
	cache        *cacheMocks.MockRedisCache
}

func newBookingService(t *testing.T) (service.Booking, bookingServiceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	m := bookingServiceMocks{
		repo:         bookingMocks.NewMockBooking(ctrl),
		roomRepo:     roomMocks.NewMockRoom(ctrl),
		customerRepo: customerMocks.NewMockCustomer(ctrl),
		rateRepo:     ratecardMocks.NewMockRateCard(ctrl),
		cache:        cacheMocks.NewMockRedisCache(ctrl),
	}

	// Cache invalidation runs on a detached goroutine after the service
	// call returns, so the expectations cannot be strict.
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}

	svc := service.New(m.repo, m.roomRepo, m.customerRepo, m.rateRepo, cfg, m.cache, nil, mocks.NewOtel())

	return svc, m
}

func newBookingServiceWithBroker(t *testing.T) (service.Booking, bookingServiceMocks, *kafkaMocks.MockClient) {
	t.Helper()

	ctrl := gomock.NewController(t)

	m := bookingServiceMocks{
		repo:         bookingMocks.NewMockBooking(ctrl),
		roomRepo:     roomMocks.NewMockRoom(ctrl),
		customerRepo: customerMocks.NewMockCustomer(ctrl),
		rateRepo:     ratecardMocks.NewMockRateCard(ctrl),
		cache:        cacheMocks.NewMockRedisCache(ctrl),
	}

	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	broker := kafkaMocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Kafka.Enable = true
	cfg.Kafka.Topic.BookingEvents = "booking-events"

	svc := service.New(m.repo, m.roomRepo, m.customerRepo, m.rateRepo, cfg, m.cache, broker, mocks.NewOtel())

	return svc, m, broker
}

// awaitMessage blocks until the detached publish goroutine delivers, so the
// mock controller cannot finish before the call is recorded.
func awaitMessage(t *testing.T, ch <-chan kafka.Message) kafka.Message {
	t.Helper()

	select {
	case message := <-ch:
		return message
	case <-time.After(2 * time.Second):
		t.Fatal("no event published")

		return kafka.Message{}
	}
}

func validRoom() roomModel.Room {
	return roomModel.Room{
		ID:           "8f14e45f-ceea-467f-a8fb-3f1c7c2e0b1a",
		RoomNumber:   "101",
		RoomType:     roomModel.RoomTypeStandard,
		BathroomType: roomModel.BathroomTypeAttached,
	}
}

func validCustomer() customerModel.Customer {
	return customerModel.Customer{
		ID:   "c81e728d-9d4c-4f63-af06-7f89cc14862c",
		Name: "Asha Verma",
	}
}

func validBooking() model.Booking {
	return model.Booking{
		ID:           "a87ff679-a2f3-471d-9181-a67b7542122c",
		RoomID:       validRoom().ID,
		CustomerID:   validCustomer().ID,
		CheckInDate:  time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2025, time.March, 11, 0, 0, 0, 0, time.UTC),
		DueAmount:    5000,
		Status:       model.BookingStatusConfirmed,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "system",
			ModifiedBy: "system",
		},
	}
}

func TestBookingService_Create(t *testing.T) {
	dailyRate := ratecardModel.RateCard{
		RoomType:     roomModel.RoomTypeStandard,
		BathroomType: roomModel.BathroomTypeAttached,
		DurationType: ratecardModel.DurationTypeDaily,
		Cost:         500,
	}

	t.Run("prices a ten day stay from the daily rate", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validRoom(), nil)
		m.customerRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validCustomer(), nil)
		m.rateRepo.EXPECT().ListAll(gomock.Any()).Return([]ratecardModel.RateCard{dailyRate}, nil)
		m.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, booking model.Booking) error {
				assert.Equal(t, int64(5000), booking.DueAmount)

				return nil
			})

		res, err := svc.Create(context.Background(), dto.CreateBookingRequest{
			RoomID:       validRoom().ID,
			CustomerID:   validCustomer().ID,
			CheckInDate:  "2025-03-01",
			CheckOutDate: "2025-03-11",
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(5000), res.DueAmount)
		assert.Equal(t, "confirmed", res.Status)
		assert.Equal(t, "101", res.RoomNumber)
		assert.Equal(t, "Asha Verma", res.CustomerName)
	})

	t.Run("stamps zero due when no rate matches", func(t *testing.T) {
		svc, m := newBookingService(t)

		room := validRoom()
		room.RoomType = roomModel.RoomTypeDeluxe

		m.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room, nil)
		m.customerRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validCustomer(), nil)
		m.rateRepo.EXPECT().ListAll(gomock.Any()).Return([]ratecardModel.RateCard{dailyRate}, nil)
		m.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, booking model.Booking) error {
				assert.Zero(t, booking.DueAmount)

				return nil
			})

		res, err := svc.Create(context.Background(), dto.CreateBookingRequest{
			RoomID:       room.ID,
			CustomerID:   validCustomer().ID,
			CheckInDate:  "2025-03-01",
			CheckOutDate: "2025-03-11",
		})

		assert.NoError(t, err)
		assert.Zero(t, res.DueAmount)
	})

	t.Run("rejects an unknown room", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomModel.Room{}, nil)

		_, err := svc.Create(context.Background(), dto.CreateBookingRequest{
			RoomID:       validRoom().ID,
			CustomerID:   validCustomer().ID,
			CheckInDate:  "2025-03-01",
			CheckOutDate: "2025-03-11",
		})

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("rejects an unknown customer", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validRoom(), nil)
		m.customerRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(customerModel.Customer{}, nil)

		_, err := svc.Create(context.Background(), dto.CreateBookingRequest{
			RoomID:       validRoom().ID,
			CustomerID:   validCustomer().ID,
			CheckInDate:  "2025-03-01",
			CheckOutDate: "2025-03-11",
		})

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("rejects a malformed check-in date", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validRoom(), nil)
		m.customerRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validCustomer(), nil)

		_, err := svc.Create(context.Background(), dto.CreateBookingRequest{
			RoomID:       validRoom().ID,
			CustomerID:   validCustomer().ID,
			CheckInDate:  "01-03-2025",
			CheckOutDate: "2025-03-11",
		})

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("propagates a rate lookup failure", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validRoom(), nil)
		m.customerRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validCustomer(), nil)
		m.rateRepo.EXPECT().ListAll(gomock.Any()).Return(nil, errors.New("connection refused"))

		_, err := svc.Create(context.Background(), dto.CreateBookingRequest{
			RoomID:       validRoom().ID,
			CustomerID:   validCustomer().ID,
			CheckInDate:  "2025-03-01",
			CheckOutDate: "2025-03-11",
		})

		assert.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}

func TestBookingService_Update(t *testing.T) {
	t.Run("returns not found for an unknown booking", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		_, err := svc.Update(context.Background(), dto.UpdateBookingRequest{Status: "cancelled"}, "missing-id")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("rejects a room id that references nothing", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validBooking(), nil)
		m.roomRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := svc.Update(context.Background(), dto.UpdateBookingRequest{RoomID: validRoom().ID}, validBooking().ID)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("rejects a customer id that references nothing", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validBooking(), nil)
		m.customerRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := svc.Update(context.Background(), dto.UpdateBookingRequest{CustomerID: validCustomer().ID}, validBooking().ID)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("writes the patched due amount as given", func(t *testing.T) {
		svc, m := newBookingService(t)

		due := int64(999)

		updated := validBooking()
		updated.DueAmount = due
		updated.Status = model.BookingStatusCheckedOut

		gomock.InOrder(
			m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validBooking(), nil),
			m.repo.EXPECT().
				Update(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
					assert.Equal(t, due, fields[model.FieldDueAmount])
					assert.Equal(t, "checked_out", fields[model.FieldStatus])

					return nil
				}),
			m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(updated, nil),
		)

		res, err := svc.Update(context.Background(), dto.UpdateBookingRequest{
			DueAmount: &due,
			Status:    "checked_out",
		}, validBooking().ID)

		assert.NoError(t, err)
		assert.Equal(t, due, res.DueAmount)
		assert.Equal(t, "checked_out", res.Status)
	})

	t.Run("rejects an empty patch", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validBooking(), nil)

		_, err := svc.Update(context.Background(), dto.UpdateBookingRequest{}, validBooking().ID)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestBookingService_Delete(t *testing.T) {
	t.Run("deletes an existing booking", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validBooking(), nil)
		m.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		err := svc.Delete(context.Background(), validBooking().ID)

		assert.NoError(t, err)
	})

	t.Run("returns not found for an unknown booking", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		err := svc.Delete(context.Background(), "missing-id")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestBookingService_PublishEvents(t *testing.T) {
	t.Run("publishes a created event with the stored booking", func(t *testing.T) {
		svc, m, broker := newBookingServiceWithBroker(t)

		dailyRate := ratecardModel.RateCard{
			RoomType:     roomModel.RoomTypeStandard,
			BathroomType: roomModel.BathroomTypeAttached,
			DurationType: ratecardModel.DurationTypeDaily,
			Cost:         500,
		}

		m.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validRoom(), nil)
		m.customerRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validCustomer(), nil)
		m.rateRepo.EXPECT().ListAll(gomock.Any()).Return([]ratecardModel.RateCard{dailyRate}, nil)
		m.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

		published := make(chan kafka.Message, 1)
		broker.EXPECT().
			SendMessages(gomock.Any(), "booking-events", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
				published <- messages[0]

				return nil
			})

		res, err := svc.Create(context.Background(), dto.CreateBookingRequest{
			RoomID:       validRoom().ID,
			CustomerID:   validCustomer().ID,
			CheckInDate:  "2025-03-01",
			CheckOutDate: "2025-03-11",
		})
		assert.NoError(t, err)

		message := awaitMessage(t, published)
		assert.Equal(t, res.ID, message.Key)

		payload, err := json.Marshal(message.Value)
		assert.NoError(t, err)
		assert.Contains(t, string(payload), `"event":"booking.created"`)
		assert.Contains(t, string(payload), res.ID)
	})

	t.Run("publishes a deleted event", func(t *testing.T) {
		svc, m, broker := newBookingServiceWithBroker(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validBooking(), nil)
		m.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		published := make(chan kafka.Message, 1)
		broker.EXPECT().
			SendMessages(gomock.Any(), "booking-events", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
				published <- messages[0]

				return nil
			})

		err := svc.Delete(context.Background(), validBooking().ID)
		assert.NoError(t, err)

		message := awaitMessage(t, published)
		assert.Equal(t, validBooking().ID, message.Key)

		payload, err := json.Marshal(message.Value)
		assert.NoError(t, err)
		assert.Contains(t, string(payload), `"event":"booking.deleted"`)
	})
}
