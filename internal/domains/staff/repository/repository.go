package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/internal/domains/staff/model"
	gDto "lodge/shared/dto"
	gRepo "lodge/shared/repository"
)

type Staff interface {
	Insert(ctx context.Context, model model.Staff) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Staff, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Staff, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	InsertDocument(ctx context.Context, document model.Document) error
	GetDocuments(ctx context.Context, staffID string) ([]model.Document, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Staff]
	documents gRepo.Repository[model.Document]
	db        *postgres.Connection
	otel      otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Staff {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Staff](model.EntityName, model.TableName, model.FieldID, db, otel),
		documents:  gRepo.NewRepository[model.Document](model.DocumentEntityName, model.DocumentTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) InsertDocument(ctx context.Context, document model.Document) error {
	return repo.documents.Insert(ctx, document) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetDocuments(ctx context.Context, staffID string) ([]model.Document, error) {
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStaffID,
				Operator: gDto.FilterOperatorEq,
				Value:    staffID,
				Table:    model.DocumentTableName,
			},
		},
	}

	return repo.documents.GetAll(ctx, gDto.QueryParams{}, filter) //nolint:wrapcheck
}
