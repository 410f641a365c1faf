package service_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"

	"lodge/config"
	"lodge/infras/otel/mocks"
	bookingMocks "lodge/internal/domains/booking/mocks"
	bookingModel "lodge/internal/domains/booking/model"
	"lodge/internal/domains/report/service"
	roomMocks "lodge/internal/domains/room/mocks"
	roomModel "lodge/internal/domains/room/model"
	"lodge/shared/cache"
	"lodge/shared/failure"
)

type stubCache struct{}

func (stubCache) Save(_ context.Context, _ string, _ any, _ int) error { return nil }
func (stubCache) Get(_ context.Context, _ string, _ any) error        { return cache.Nil }
func (stubCache) Delete(_ context.Context, _ string) error            { return nil }
func (stubCache) Clear(_ context.Context, _ string) error             { return nil }

func newService(t *testing.T) (service.Report, *bookingMocks.MockBooking, *roomMocks.MockRoom) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockBookings := bookingMocks.NewMockBooking(ctrl)
	mockRooms := roomMocks.NewMockRoom(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockBookings, mockRooms, cfg, stubCache{}, mocks.NewOtel())

	return svc, mockBookings, mockRooms
}

func sampleRows() []bookingModel.BookingRow {
	return []bookingModel.BookingRow{
		{
			Booking: bookingModel.Booking{
				ID:              "booking-1",
				ReferenceNumber: "BK12345678",
				GuestName:       "Ada",
				GuestEmail:      "ada@x.com",
				RoomType:        "deluxe",
				CheckIn:         date("2024-01-03"),
				CheckOut:        date("2024-01-05"),
			},
		},
	}
}

func TestReportService_Revenue(t *testing.T) {
	svc, mockBookings, mockRooms := newService(t)

	mockBookings.EXPECT().
		GetAllRows(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(sampleRows(), nil)

	mockRooms.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]roomModel.Room{{RoomType: "deluxe", PricePerNight: 100}}, nil)

	summary, err := svc.Revenue(context.Background(), "2024-01-01", "2024-01-31")
	require.NoError(t, err)

	assert.Equal(t, "2024-01-01", summary.From)
	assert.Equal(t, "2024-01-31", summary.To)
	assert.Equal(t, 2, summary.BookedNights)
	assert.InDelta(t, 200.0, summary.EstimatedRevenue, 0.001)
}

func TestReportService_Revenue_DefaultWindow(t *testing.T) {
	svc, mockBookings, mockRooms := newService(t)

	mockBookings.EXPECT().
		GetAllRows(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil)

	mockRooms.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil)

	summary, err := svc.Revenue(context.Background(), "", "")
	require.NoError(t, err)

	assert.Equal(t, 30, summary.DaysInWindow)
}

func TestReportService_Revenue_InvalidDates(t *testing.T) {
	svc, _, _ := newService(t)

	_, err := svc.Revenue(context.Background(), "01-01-2024", "")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

	_, err = svc.Revenue(context.Background(), "", "not-a-date")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestReportService_ExportCSV(t *testing.T) {
	svc, mockBookings, _ := newService(t)

	mockBookings.EXPECT().
		GetAllRows(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(sampleRows(), nil)

	fileName, data, err := svc.ExportCSV(context.Background())
	require.NoError(t, err)

	assert.Regexp(t, `^bookings_\d{4}-\d{2}-\d{2}\.csv$`, fileName)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "reference_number", records[0][0])
	assert.Equal(t, "BK12345678", records[1][0])
	assert.Equal(t, "pending", records[1][7], "missing meta must fall back to default status")
	assert.Equal(t, "unpaid", records[1][8])
}

func TestReportService_ExportXLSX(t *testing.T) {
	svc, mockBookings, _ := newService(t)

	mockBookings.EXPECT().
		GetAllRows(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(sampleRows(), nil)

	fileName, data, err := svc.ExportXLSX(context.Background())
	require.NoError(t, err)

	assert.Regexp(t, `^bookings_\d{4}-\d{2}-\d{2}\.xlsx$`, fileName)

	file, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer file.Close()

	rows, err := file.GetRows("Bookings")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "reference_number", rows[0][0])
	assert.Equal(t, "BK12345678", rows[1][0])
}
