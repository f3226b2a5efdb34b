package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/internal/domains/ratecard/model"
	gDto "lodge/shared/dto"
	gRepo "lodge/shared/repository"
)

type RateCard interface {
	Insert(ctx context.Context, model model.RateCard) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.RateCard, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.RateCard, error)
	ListAll(ctx context.Context) ([]model.RateCard, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.RateCard]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) RateCard {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.RateCard](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// ListAll returns every rate card in insertion order. Rate resolution scans
// the list front to back, so the ordering here decides which row wins.
func (repo *repositoryImpl) ListAll(ctx context.Context) ([]model.RateCard, error) {
	params := gDto.QueryParams{
		SortBy:  model.TableName + "." + model.FieldCreatedAt,
		SortDir: gDto.SortDirAsc,
	}

	return repo.GetAll(ctx, params, gDto.FilterGroup{})
}
