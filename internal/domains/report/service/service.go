package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"lodge/config"
	"lodge/infras/otel"
	bookingModel "lodge/internal/domains/booking/model"
	bookingRepository "lodge/internal/domains/booking/repository"
	"lodge/internal/domains/report/model/dto"
	roomRepository "lodge/internal/domains/room/repository"
	"lodge/shared"
	"lodge/shared/cache"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	"lodge/shared/timezone"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

const (
	cacheRevenueReport = "report:revenue"

	defaultWindowDays = 30

	exportSheetName = "Bookings"
)

var exportHeader = []string{
	"reference_number",
	"guest_name",
	"guest_email",
	"guest_phone",
	"room_type",
	"check_in",
	"check_out",
	"status",
	"payment_status",
	"created_at",
}

type Report interface {
	Revenue(ctx context.Context, from, to string) (dto.RevenueSummary, error)
	ExportCSV(ctx context.Context) (string, []byte, error)
	ExportXLSX(ctx context.Context) (string, []byte, error)
}

type serviceImpl struct {
	bookings bookingRepository.Booking
	rooms    roomRepository.Room
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(
	bookings bookingRepository.Booking,
	rooms roomRepository.Room,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Report {
	return &serviceImpl{
		bookings: bookings,
		rooms:    rooms,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

func (s *serviceImpl) Revenue(ctx context.Context, from, to string) (res dto.RevenueSummary, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Revenue")
	defer scope.End()
	defer scope.TraceIfError(err)

	fromDate, toDate, err := resolveWindow(from, to)
	if err != nil {
		return res, err
	}

	cacheKey := shared.BuildCacheKey(cacheRevenueReport, fromDate.Format(constant.DateOnlyFormat), toDate.Format(constant.DateOnlyFormat))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for revenue report")

		return res, nil
	}

	rows, err := s.bookings.GetAllRows(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings for revenue report")

		return res, fmt.Errorf("failed to get bookings for revenue report: %w", err)
	}

	bookings := make([]bookingModel.Booking, len(rows))
	for i, row := range rows {
		bookings[i] = row.Booking
	}

	rooms, err := s.rooms.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms for revenue report")

		return res, fmt.Errorf("failed to get rooms for revenue report: %w", err)
	}

	res = Summarize(fromDate, toDate, bookings, rooms)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save revenue report to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) ExportCSV(ctx context.Context) (fileName string, data []byte, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ExportCSV")
	defer scope.End()
	defer scope.TraceIfError(err)

	rows, err := s.exportRows(ctx)
	if err != nil {
		return "", nil, err
	}

	buffer := &bytes.Buffer{}
	writer := csv.NewWriter(buffer)

	if err = writer.Write(exportHeader); err != nil {
		return "", nil, fmt.Errorf("failed to write export header: %w", err)
	}

	for _, row := range rows {
		record := exportRecord(row)

		if err = writer.Write(record); err != nil {
			return "", nil, fmt.Errorf("failed to write export record: %w", err)
		}
	}

	writer.Flush()

	if err = writer.Error(); err != nil {
		return "", nil, fmt.Errorf("failed to flush export: %w", err)
	}

	fileName = fmt.Sprintf("bookings_%s.csv", timezone.Now().Format(constant.DateOnlyFormat))

	return fileName, buffer.Bytes(), nil
}

func (s *serviceImpl) ExportXLSX(ctx context.Context) (fileName string, data []byte, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ExportXLSX")
	defer scope.End()
	defer scope.TraceIfError(err)

	rows, err := s.exportRows(ctx)
	if err != nil {
		return "", nil, err
	}

	file := excelize.NewFile()
	defer file.Close()

	index, err := file.NewSheet(exportSheetName)
	if err != nil {
		return "", nil, fmt.Errorf("failed to create export sheet: %w", err)
	}

	file.SetActiveSheet(index)

	for col, header := range exportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		_ = file.SetCellValue(exportSheetName, cell, header)
	}

	for i, row := range rows {
		for col, value := range exportRecord(row) {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			_ = file.SetCellValue(exportSheetName, cell, value)
		}
	}

	_ = file.SetColWidth(exportSheetName, "A", "J", 20)
	_ = file.DeleteSheet("Sheet1")

	buffer, err := file.WriteToBuffer()
	if err != nil {
		return "", nil, fmt.Errorf("failed to encode export workbook: %w", err)
	}

	fileName = fmt.Sprintf("bookings_%s.xlsx", timezone.Now().Format(constant.DateOnlyFormat))

	return fileName, buffer.Bytes(), nil
}

func (s *serviceImpl) exportRows(ctx context.Context) ([]bookingModel.BookingRow, error) {
	params := gDto.QueryParams{
		SortBy:  bookingModel.TableName + "." + constant.FieldCreatedAt,
		SortDir: gDto.SortDirDesc,
	}

	rows, err := s.bookings.GetAllRows(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings for export")

		return nil, fmt.Errorf("failed to get bookings for export: %w", err)
	}

	return rows, nil
}

func exportRecord(row bookingModel.BookingRow) []string {
	return []string{
		row.ReferenceNumber,
		row.GuestName,
		row.GuestEmail,
		row.GuestPhone,
		row.RoomType,
		row.CheckIn.Format(constant.DateOnlyFormat),
		row.CheckOut.Format(constant.DateOnlyFormat),
		row.Status(),
		row.PaymentStatus(),
		timezone.Format(row.CreatedAt, constant.DateFormat),
	}
}

// resolveWindow applies the default reporting window: to defaults to today,
// from defaults to thirty days before to.
func resolveWindow(from, to string) (time.Time, time.Time, error) {
	toDate := timezone.Now()

	if to != "" {
		parsed, err := time.Parse(constant.DateOnlyFormat, to)
		if err != nil {
			return time.Time{}, time.Time{}, failure.BadRequestFromString("invalid to date, expected YYYY-MM-DD") // nolint:wrapcheck
		}

		toDate = parsed
	}

	fromDate := toDate.AddDate(0, 0, -defaultWindowDays)

	if from != "" {
		parsed, err := time.Parse(constant.DateOnlyFormat, from)
		if err != nil {
			return time.Time{}, time.Time{}, failure.BadRequestFromString("invalid from date, expected YYYY-MM-DD") // nolint:wrapcheck
		}

		fromDate = parsed
	}

	return fromDate, toDate, nil
}
