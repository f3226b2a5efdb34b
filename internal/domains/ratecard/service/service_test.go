package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lodge/config"
	"lodge/infras/otel/mocks"
	rateCardMocks "lodge/internal/domains/ratecard/mocks"
	"lodge/internal/domains/ratecard/model"
	"lodge/internal/domains/ratecard/model/dto"
	"lodge/internal/domains/ratecard/service"
	roomModel "lodge/internal/domains/room/model"
	cacheMocks "lodge/shared/cache/mocks"
	"lodge/shared/failure"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"
)

type rateCardServiceMocks struct {
	repo  *rateCardMocks.MockRateCard
	cache *cacheMocks.MockRedisCache
}

func newRateCardService(t *testing.T) (service.RateCard, rateCardServiceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	m := rateCardServiceMocks{
		repo:  rateCardMocks.NewMockRateCard(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
	}

	// Cache invalidation runs on a detached goroutine after the service
	// call returns, so the expectations cannot be strict.
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}

	svc := service.New(m.repo, cfg, m.cache, mocks.NewOtel())

	return svc, m
}

func validRateCard() model.RateCard {
	return model.RateCard{
		ID:           "c4ca4238-a0b9-4382-8dcc-509a6f75849b",
		RoomType:     roomModel.RoomTypeStandard,
		BathroomType: roomModel.BathroomTypeAttached,
		DurationType: model.DurationTypeDaily,
		Cost:         1200,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

func TestRateCardCreate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("creates a rate card", func(t *testing.T) {
		t.Parallel()

		svc, m := newRateCardService(t)

		req := dto.CreateRateCardRequest{
			RoomType:     "deluxe",
			BathroomType: "attached",
			DurationType: "monthly",
			Cost:         18000,
		}

		m.repo.EXPECT().Insert(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, rateCard model.RateCard) error {
				assert.Equal(t, roomModel.RoomTypeDeluxe, rateCard.RoomType)
				assert.Equal(t, roomModel.BathroomTypeAttached, rateCard.BathroomType)
				assert.Equal(t, model.DurationTypeMonthly, rateCard.DurationType)
				assert.Equal(t, int64(18000), rateCard.Cost)
				assert.NotEmpty(t, rateCard.ID)

				return nil
			},
		)

		err := svc.Create(ctx, req)

		assert.NoError(t, err)
	})

	t.Run("propagates repository failure", func(t *testing.T) {
		t.Parallel()

		svc, m := newRateCardService(t)

		m.repo.EXPECT().Insert(ctx, gomock.Any()).Return(errors.New("insert failed"))

		err := svc.Create(ctx, dto.CreateRateCardRequest{
			RoomType:     "standard",
			BathroomType: "shared",
			DurationType: "daily",
			Cost:         900,
		})

		assert.Error(t, err)
	})
}

func TestRateCardGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("returns a rate card on cache miss", func(t *testing.T) {
		t.Parallel()

		svc, m := newRateCardService(t)
		rateCard := validRateCard()

		m.cache.EXPECT().Get(ctx, gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		m.repo.EXPECT().Get(ctx, gomock.Any()).Return(rateCard, nil)

		res, err := svc.Get(ctx, rateCard.ID)

		assert.NoError(t, err)
		assert.Equal(t, rateCard.ID, res.ID)
		assert.Equal(t, "standard", res.RoomType)
		assert.Equal(t, "daily", res.DurationType)
		assert.Equal(t, int64(1200), res.Cost)
	})

	t.Run("returns not found for an unknown id", func(t *testing.T) {
		t.Parallel()

		svc, m := newRateCardService(t)

		m.cache.EXPECT().Get(ctx, gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		m.repo.EXPECT().Get(ctx, gomock.Any()).Return(model.RateCard{}, nil)

		_, err := svc.Get(ctx, "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestRateCardUpdate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("updates only the provided fields", func(t *testing.T) {
		t.Parallel()

		svc, m := newRateCardService(t)
		rateCard := validRateCard()

		cost := int64(1500)
		req := dto.UpdateRateCardRequest{
			DurationType: "monthly",
			Cost:         &cost,
		}

		m.repo.EXPECT().Exist(ctx, gomock.Any()).Return(true, nil)
		m.repo.EXPECT().Update(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, "monthly", fields["duration_type"])
				assert.Equal(t, int64(1500), *fields["cost"].(*int64))
				assert.NotContains(t, fields, "room_type")

				return nil
			},
		)

		err := svc.Update(ctx, req, rateCard.ID)

		assert.NoError(t, err)
	})

	t.Run("rejects an empty update", func(t *testing.T) {
		t.Parallel()

		svc, _ := newRateCardService(t)

		err := svc.Update(ctx, dto.UpdateRateCardRequest{}, validRateCard().ID)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("returns not found for an unknown id", func(t *testing.T) {
		t.Parallel()

		svc, m := newRateCardService(t)

		m.repo.EXPECT().Exist(ctx, gomock.Any()).Return(false, nil)

		cost := int64(1500)
		err := svc.Update(ctx, dto.UpdateRateCardRequest{Cost: &cost}, "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestRateCardDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("deletes an existing rate card", func(t *testing.T) {
		t.Parallel()

		svc, m := newRateCardService(t)

		m.repo.EXPECT().Exist(ctx, gomock.Any()).Return(true, nil)
		m.repo.EXPECT().Delete(ctx, gomock.Any()).Return(nil)

		err := svc.Delete(ctx, validRateCard().ID)

		assert.NoError(t, err)
	})

	t.Run("returns not found for an unknown id", func(t *testing.T) {
		t.Parallel()

		svc, m := newRateCardService(t)

		m.repo.EXPECT().Exist(ctx, gomock.Any()).Return(false, nil)

		err := svc.Delete(ctx, "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
