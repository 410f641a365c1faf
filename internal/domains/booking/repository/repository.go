package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/internal/domains/booking/model"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/logger"
	gRepo "lodge/shared/repository"
)

type Booking interface {
	Submit(ctx context.Context, booking model.Booking, meta model.BookingMeta) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetRow(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.BookingRow, error)
	GetAllRows(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.BookingRow, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	GetMeta(ctx context.Context, bookingID string) (model.BookingMeta, error)
	UpsertMeta(ctx context.Context, meta model.BookingMeta) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	rowRepo  gRepo.Repository[model.BookingRow]
	metaRepo gRepo.Repository[model.BookingMeta]
	db       *postgres.Connection
	otel     otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		rowRepo:    gRepo.NewRepository[model.BookingRow](model.EntityName, model.TableName, model.FieldID, db, otel),
		metaRepo:   gRepo.NewRepository[model.BookingMeta](model.MetaEntityName, model.MetaTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Submit persists the booking and its initial meta row in one
// transaction so a failed meta write never leaves a referencable
// booking without metadata.
func (repo *repositoryImpl) Submit(ctx context.Context, booking model.Booking, meta model.BookingMeta) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Submit")
	defer scope.End()
	defer scope.TraceIfError(err)

	return repo.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := repo.InsertTx(ctx, tx, booking); err != nil {
			return err
		}

		return repo.metaRepo.InsertTx(ctx, tx, meta)
	})
}

func (repo *repositoryImpl) GetRow(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.BookingRow, error) {
	return repo.rowRepo.Get(ctx, filter, columns...)
}

func (repo *repositoryImpl) GetAllRows(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.BookingRow, error) {
	return repo.rowRepo.GetAll(ctx, params, filter, columns...)
}

func (repo *repositoryImpl) GetMeta(ctx context.Context, bookingID string) (model.BookingMeta, error) {
	return repo.metaRepo.Get(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBookingID,
				Operator: gDto.FilterOperatorEq,
				Value:    bookingID,
				Table:    model.MetaTableName,
			},
		},
	})
}

// UpsertMeta writes the meta row atomically. The unique constraint on
// booking_id makes concurrent first writes collapse into one row.
func (repo *repositoryImpl) UpsertMeta(ctx context.Context, meta model.BookingMeta) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking_meta.UpsertMeta")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `INSERT INTO booking_meta
			(id, booking_id, status, payment_status, payment_proof, created_at, modified_at, created_by, modified_by)
		VALUES
			(:id, :booking_id, :status, :payment_status, :payment_proof, :created_at, :modified_at, :created_by, :modified_by)
		ON CONFLICT (booking_id) DO UPDATE SET
			status = EXCLUDED.status,
			payment_status = EXCLUDED.payment_status,
			payment_proof = EXCLUDED.payment_proof,
			modified_at = EXCLUDED.modified_at,
			modified_by = EXCLUDED.modified_by`

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	_, err = repo.db.Write.NamedExecContext(ctx, query, meta)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to upsert data (%s): %w", model.MetaEntityName, err)
	}

	return nil
}
