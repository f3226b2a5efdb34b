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
	expenseMocks "lodge/internal/domains/expense/mocks"
	"lodge/internal/domains/expense/model"
	"lodge/internal/domains/expense/model/dto"
	"lodge/internal/domains/expense/service"
	cacheMocks "lodge/shared/cache/mocks"
	"lodge/shared/failure"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"
)

type expenseServiceMocks struct {
	repo  *expenseMocks.MockExpense
	cache *cacheMocks.MockRedisCache
}

func newExpenseService(t *testing.T) (service.Expense, expenseServiceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	m := expenseServiceMocks{
		repo:  expenseMocks.NewMockExpense(ctrl),
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

func validExpense() model.Expense {
	return model.Expense{
		ID:          "1679091c-5a88-4faf-9e3d-5c2e86a3b1f4",
		Name:        "Linen laundry",
		Description: "Weekly pickup",
		Amount:      750,
		IncurredAt:  time.Date(2025, time.February, 20, 9, 0, 0, 0, time.UTC),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

func TestExpenseCreate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("records an expense with an explicit incurred_at", func(t *testing.T) {
		t.Parallel()

		svc, m := newExpenseService(t)

		req := dto.CreateExpenseRequest{
			Name:       "Linen laundry",
			Amount:     750,
			IncurredAt: "2025-02-20T09:00:00",
		}

		m.repo.EXPECT().Insert(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, expense model.Expense) error {
				assert.Equal(t, "Linen laundry", expense.Name)
				assert.Equal(t, int64(750), expense.Amount)
				assert.Equal(t, 2025, expense.IncurredAt.Year())
				assert.Equal(t, time.February, expense.IncurredAt.Month())
				assert.NotEmpty(t, expense.ID)

				return nil
			},
		)

		err := svc.Create(ctx, req)

		assert.NoError(t, err)
	})

	t.Run("defaults incurred_at to now when omitted", func(t *testing.T) {
		t.Parallel()

		svc, m := newExpenseService(t)

		m.repo.EXPECT().Insert(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, expense model.Expense) error {
				assert.False(t, expense.IncurredAt.IsZero())

				return nil
			},
		)

		err := svc.Create(ctx, dto.CreateExpenseRequest{Name: "Plumbing", Amount: 1200})

		assert.NoError(t, err)
	})

	t.Run("rejects a malformed incurred_at", func(t *testing.T) {
		t.Parallel()

		svc, _ := newExpenseService(t)

		err := svc.Create(ctx, dto.CreateExpenseRequest{
			Name:       "Plumbing",
			Amount:     1200,
			IncurredAt: "20/02/2025",
		})

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("propagates repository failure", func(t *testing.T) {
		t.Parallel()

		svc, m := newExpenseService(t)

		m.repo.EXPECT().Insert(ctx, gomock.Any()).Return(errors.New("insert failed"))

		err := svc.Create(ctx, dto.CreateExpenseRequest{Name: "Plumbing", Amount: 1200})

		assert.Error(t, err)
	})
}

func TestExpenseGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("returns an expense on cache miss", func(t *testing.T) {
		t.Parallel()

		svc, m := newExpenseService(t)
		expense := validExpense()

		m.cache.EXPECT().Get(ctx, gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		m.repo.EXPECT().Get(ctx, gomock.Any()).Return(expense, nil)

		res, err := svc.Get(ctx, expense.ID)

		assert.NoError(t, err)
		assert.Equal(t, expense.ID, res.ID)
		assert.Equal(t, "Linen laundry", res.Name)
		assert.Equal(t, int64(750), res.Amount)
	})

	t.Run("returns not found for an unknown id", func(t *testing.T) {
		t.Parallel()

		svc, m := newExpenseService(t)

		m.cache.EXPECT().Get(ctx, gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		m.repo.EXPECT().Get(ctx, gomock.Any()).Return(model.Expense{}, nil)

		_, err := svc.Get(ctx, "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestExpenseUpdate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("updates only the provided fields", func(t *testing.T) {
		t.Parallel()

		svc, m := newExpenseService(t)

		amount := int64(900)
		req := dto.UpdateExpenseRequest{Amount: &amount}

		m.repo.EXPECT().Exist(ctx, gomock.Any()).Return(true, nil)
		m.repo.EXPECT().Update(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, int64(900), *fields["amount"].(*int64))
				assert.NotContains(t, fields, "name")

				return nil
			},
		)

		err := svc.Update(ctx, req, validExpense().ID)

		assert.NoError(t, err)
	})

	t.Run("rejects an empty update", func(t *testing.T) {
		t.Parallel()

		svc, _ := newExpenseService(t)

		err := svc.Update(ctx, dto.UpdateExpenseRequest{}, validExpense().ID)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("returns not found for an unknown id", func(t *testing.T) {
		t.Parallel()

		svc, m := newExpenseService(t)

		m.repo.EXPECT().Exist(ctx, gomock.Any()).Return(false, nil)

		err := svc.Update(ctx, dto.UpdateExpenseRequest{Name: "Repainting"}, "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestExpenseDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("deletes an existing expense", func(t *testing.T) {
		t.Parallel()

		svc, m := newExpenseService(t)

		m.repo.EXPECT().Exist(ctx, gomock.Any()).Return(true, nil)
		m.repo.EXPECT().Delete(ctx, gomock.Any()).Return(nil)

		err := svc.Delete(ctx, validExpense().ID)

		assert.NoError(t, err)
	})

	t.Run("returns not found for an unknown id", func(t *testing.T) {
		t.Parallel()

		svc, m := newExpenseService(t)

		m.repo.EXPECT().Exist(ctx, gomock.Any()).Return(false, nil)

		err := svc.Delete(ctx, "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
