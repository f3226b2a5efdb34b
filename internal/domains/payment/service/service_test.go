package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lodge/config"
	"lodge/infras/otel/mocks"
	bookingMocks "lodge/internal/domains/booking/mocks"
	paymentMocks "lodge/internal/domains/payment/mocks"
	"lodge/internal/domains/payment/model"
	"lodge/internal/domains/payment/model/dto"
	"lodge/internal/domains/payment/service"
	cacheMocks "lodge/shared/cache/mocks"
	"lodge/shared/failure"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"
)

type paymentServiceMocks struct {
	repo        *paymentMocks.MockPayment
	bookingRepo *bookingMocks.MockBooking
	cache       *cacheMocks.MockRedisCache
}

func newPaymentService(t *testing.T) (service.Payment, paymentServiceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	m := paymentServiceMocks{
		repo:        paymentMocks.NewMockPayment(ctrl),
		bookingRepo: bookingMocks.NewMockBooking(ctrl),
		cache:       cacheMocks.NewMockRedisCache(ctrl),
	}

	// Cache invalidation runs on a detached goroutine after the service
	// call returns, so the expectations cannot be strict.
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}

	svc := service.New(m.repo, m.bookingRepo, cfg, m.cache, mocks.NewOtel())

	return svc, m
}

func validPayment() model.Payment {
	return model.Payment{
		ID:        "e4da3b7f-bbce-4345-9777-1c9cdfe0ae3b",
		BookingID: "a87ff679-a2f3-471d-9181-a67b7542122c",
		Amount:    2500,
		Mode:      model.PaymentModeCash,
		PaidAt:    time.Date(2025, time.March, 5, 14, 30, 0, 0, time.UTC),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

func TestPaymentCreate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("records a payment against an existing booking", func(t *testing.T) {
		t.Parallel()

		svc, m := newPaymentService(t)

		req := dto.CreatePaymentRequest{
			BookingID: validPayment().BookingID,
			Amount:    2500,
			Mode:      "cash",
			PaidAt:    "2025-03-05T14:30:05",
		}

		m.bookingRepo.EXPECT().Exist(ctx, gomock.Any()).Return(true, nil)
		m.repo.EXPECT().Insert(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, payment model.Payment) error {
				assert.Equal(t, req.BookingID, payment.BookingID)
				assert.Equal(t, int64(2500), payment.Amount)
				assert.Equal(t, model.PaymentModeCash, payment.Mode)
				assert.Equal(t, 2025, payment.PaidAt.Year())
				assert.NotEmpty(t, payment.ID)

				return nil
			},
		)

		err := svc.Create(ctx, req)

		assert.NoError(t, err)
	})

	t.Run("defaults paid_at to now when omitted", func(t *testing.T) {
		t.Parallel()

		svc, m := newPaymentService(t)

		req := dto.CreatePaymentRequest{
			BookingID: validPayment().BookingID,
			Amount:    1000,
			Mode:      "upi",
		}

		m.bookingRepo.EXPECT().Exist(ctx, gomock.Any()).Return(true, nil)
		m.repo.EXPECT().Insert(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, payment model.Payment) error {
				assert.False(t, payment.PaidAt.IsZero())

				return nil
			},
		)

		err := svc.Create(ctx, req)

		assert.NoError(t, err)
	})

	t.Run("rejects a payment for an unknown booking", func(t *testing.T) {
		t.Parallel()

		svc, m := newPaymentService(t)

		req := dto.CreatePaymentRequest{
			BookingID: "c4ca4238-a0b9-4382-8dcc-509a6f75849b",
			Amount:    2500,
			Mode:      "cash",
		}

		m.bookingRepo.EXPECT().Exist(ctx, gomock.Any()).Return(false, nil)

		err := svc.Create(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("rejects a malformed paid_at", func(t *testing.T) {
		t.Parallel()

		svc, m := newPaymentService(t)

		req := dto.CreatePaymentRequest{
			BookingID: validPayment().BookingID,
			Amount:    2500,
			Mode:      "cash",
			PaidAt:    "05/03/2025",
		}

		m.bookingRepo.EXPECT().Exist(ctx, gomock.Any()).Return(true, nil)

		err := svc.Create(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("propagates a storage failure", func(t *testing.T) {
		t.Parallel()

		svc, m := newPaymentService(t)

		req := dto.CreatePaymentRequest{
			BookingID: validPayment().BookingID,
			Amount:    2500,
			Mode:      "cash",
		}

		m.bookingRepo.EXPECT().Exist(ctx, gomock.Any()).Return(true, nil)
		m.repo.EXPECT().Insert(ctx, gomock.Any()).Return(errors.New("connection refused"))

		err := svc.Create(ctx, req)

		assert.Error(t, err)
	})
}

func TestPaymentGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("returns a stored payment", func(t *testing.T) {
		t.Parallel()

		svc, m := newPaymentService(t)

		payment := validPayment()

		m.cache.EXPECT().Get(ctx, gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		m.repo.EXPECT().Get(ctx, gomock.Any()).Return(payment, nil)
		m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		res, err := svc.Get(ctx, payment.ID)

		assert.NoError(t, err)
		assert.Equal(t, payment.ID, res.ID)
		assert.Equal(t, int64(2500), res.Amount)
		assert.Equal(t, "cash", res.Mode)
	})

	t.Run("returns not found for a missing payment", func(t *testing.T) {
		t.Parallel()

		svc, m := newPaymentService(t)

		m.cache.EXPECT().Get(ctx, gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		m.repo.EXPECT().Get(ctx, gomock.Any()).Return(model.Payment{}, nil)

		_, err := svc.Get(ctx, "e4da3b7f-bbce-4345-9777-1c9cdfe0ae3b")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestPaymentUpdate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("updates amount and mode", func(t *testing.T) {
		t.Parallel()

		svc, m := newPaymentService(t)

		amount := int64(3000)
		req := dto.UpdatePaymentRequest{
			Amount: &amount,
			Mode:   "card",
		}

		m.repo.EXPECT().Exist(ctx, gomock.Any()).Return(true, nil)
		m.repo.EXPECT().Update(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, int64(3000), *fields["amount"].(*int64))
				assert.Equal(t, "card", fields["mode"])

				return nil
			},
		)

		err := svc.Update(ctx, req, validPayment().ID)

		assert.NoError(t, err)
	})

	t.Run("rejects an empty update", func(t *testing.T) {
		t.Parallel()

		svc, _ := newPaymentService(t)

		err := svc.Update(ctx, dto.UpdatePaymentRequest{}, validPayment().ID)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("returns not found for a missing payment", func(t *testing.T) {
		t.Parallel()

		svc, m := newPaymentService(t)

		mode := dto.UpdatePaymentRequest{Mode: "card"}

		m.repo.EXPECT().Exist(ctx, gomock.Any()).Return(false, nil)

		err := svc.Update(ctx, mode, validPayment().ID)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestPaymentDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("deletes a stored payment", func(t *testing.T) {
		t.Parallel()

		svc, m := newPaymentService(t)

		m.repo.EXPECT().Exist(ctx, gomock.Any()).Return(true, nil)
		m.repo.EXPECT().Delete(ctx, gomock.Any()).Return(nil)

		err := svc.Delete(ctx, validPayment().ID)

		assert.NoError(t, err)
	})

	t.Run("returns not found for a missing payment", func(t *testing.T) {
		t.Parallel()

		svc, m := newPaymentService(t)

		m.repo.EXPECT().Exist(ctx, gomock.Any()).Return(false, nil)

		err := svc.Delete(ctx, validPayment().ID)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
