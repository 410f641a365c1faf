package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/internal/domains/guest/model"
	gDto "lodge/shared/dto"
	gRepo "lodge/shared/repository"
)

type Guest interface {
	Insert(ctx context.Context, model model.Guest) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Guest, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Guest, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	InsertReceipt(ctx context.Context, receipt model.Receipt) error
	GetReceipts(ctx context.Context, guestID string) ([]model.Receipt, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Guest]
	receipts gRepo.Repository[model.Receipt]
	db       *postgres.Connection
	otel     otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Guest {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Guest](model.EntityName, model.TableName, model.FieldID, db, otel),
		receipts:   gRepo.NewRepository[model.Receipt](model.ReceiptEntityName, model.ReceiptTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) InsertReceipt(ctx context.Context, receipt model.Receipt) error {
	return repo.receipts.Insert(ctx, receipt) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetReceipts(ctx context.Context, guestID string) ([]model.Receipt, error) {
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldGuestID,
				Operator: gDto.FilterOperatorEq,
				Value:    guestID,
				Table:    model.ReceiptTableName,
			},
		},
	}

	return repo.receipts.GetAll(ctx, gDto.QueryParams{}, filter) //nolint:wrapcheck
}
