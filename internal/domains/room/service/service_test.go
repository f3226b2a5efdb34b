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
	roomMocks "lodge/internal/domains/room/mocks"
	"lodge/internal/domains/room/model"
	"lodge/internal/domains/room/model/dto"
	"lodge/internal/domains/room/service"
	cacheMocks "lodge/shared/cache/mocks"
	"lodge/shared/failure"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"
)

type roomServiceMocks struct {
	repo  *roomMocks.MockRoom
	cache *cacheMocks.MockRedisCache
}

func newRoomService(t *testing.T) (service.Room, roomServiceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	m := roomServiceMocks{
		repo:  roomMocks.NewMockRoom(ctrl),
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

func validRoom() model.Room {
	return model.Room{
		ID:           "8f14e45f-ceea-467f-a8fb-3f1c7c2e0b1a",
		RoomNumber:   "101",
		RoomType:     model.RoomTypeStandard,
		BathroomType: model.BathroomTypeAttached,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

func TestRoomCreate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("creates a room", func(t *testing.T) {
		t.Parallel()

		svc, m := newRoomService(t)

		req := dto.CreateRoomRequest{
			RoomNumber:   "204",
			RoomType:     "deluxe",
			BathroomType: "shared",
		}

		m.repo.EXPECT().Insert(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, room model.Room) error {
				assert.Equal(t, "204", room.RoomNumber)
				assert.Equal(t, model.RoomTypeDeluxe, room.RoomType)
				assert.Equal(t, model.BathroomTypeShared, room.BathroomType)
				assert.NotEmpty(t, room.ID)

				return nil
			},
		)

		err := svc.Create(ctx, req)

		assert.NoError(t, err)
	})

	t.Run("propagates repository failure", func(t *testing.T) {
		t.Parallel()

		svc, m := newRoomService(t)

		m.repo.EXPECT().Insert(ctx, gomock.Any()).Return(errors.New("insert failed"))

		err := svc.Create(ctx, dto.CreateRoomRequest{
			RoomNumber:   "204",
			RoomType:     "standard",
			BathroomType: "attached",
		})

		assert.Error(t, err)
	})
}

func TestRoomGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("returns a room on cache miss", func(t *testing.T) {
		t.Parallel()

		svc, m := newRoomService(t)
		room := validRoom()

		m.cache.EXPECT().Get(ctx, gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		m.repo.EXPECT().Get(ctx, gomock.Any()).Return(room, nil)

		res, err := svc.Get(ctx, room.ID)

		assert.NoError(t, err)
		assert.Equal(t, room.ID, res.ID)
		assert.Equal(t, "101", res.RoomNumber)
		assert.Equal(t, "standard", res.RoomType)
	})

	t.Run("returns not found for an unknown id", func(t *testing.T) {
		t.Parallel()

		svc, m := newRoomService(t)

		m.cache.EXPECT().Get(ctx, gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		m.repo.EXPECT().Get(ctx, gomock.Any()).Return(model.Room{}, nil)

		_, err := svc.Get(ctx, "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestRoomUpdate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("updates only the provided fields", func(t *testing.T) {
		t.Parallel()

		svc, m := newRoomService(t)

		req := dto.UpdateRoomRequest{RoomNumber: "305"}

		m.repo.EXPECT().Exist(ctx, gomock.Any()).Return(true, nil)
		m.repo.EXPECT().Update(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, "305", fields["room_number"])
				assert.NotContains(t, fields, "room_type")

				return nil
			},
		)

		err := svc.Update(ctx, req, validRoom().ID)

		assert.NoError(t, err)
	})

	t.Run("rejects an empty update", func(t *testing.T) {
		t.Parallel()

		svc, _ := newRoomService(t)

		err := svc.Update(ctx, dto.UpdateRoomRequest{}, validRoom().ID)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("returns not found for an unknown id", func(t *testing.T) {
		t.Parallel()

		svc, m := newRoomService(t)

		m.repo.EXPECT().Exist(ctx, gomock.Any()).Return(false, nil)

		err := svc.Update(ctx, dto.UpdateRoomRequest{RoomNumber: "305"}, "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestRoomDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("deletes an existing room", func(t *testing.T) {
		t.Parallel()

		svc, m := newRoomService(t)

		m.repo.EXPECT().Exist(ctx, gomock.Any()).Return(true, nil)
		m.repo.EXPECT().Delete(ctx, gomock.Any()).Return(nil)

		err := svc.Delete(ctx, validRoom().ID)

		assert.NoError(t, err)
	})

	t.Run("returns not found for an unknown id", func(t *testing.T) {
		t.Parallel()

		svc, m := newRoomService(t)

		m.repo.EXPECT().Exist(ctx, gomock.Any()).Return(false, nil)

		err := svc.Delete(ctx, "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
