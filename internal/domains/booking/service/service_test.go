package service_test

import (
	"context"
	"database/sql"
	"net/http"
	"regexp"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"lodge/config"
	"lodge/infras/otel/mocks"
	bookingMocks "lodge/internal/domains/booking/mocks"
	"lodge/internal/domains/booking/model"
	"lodge/internal/domains/booking/model/dto"
	"lodge/internal/domains/booking/service"
	"lodge/internal/notify"
	"lodge/shared/cache"
	"lodge/shared/constant"
	"lodge/shared/failure"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"
)

var referencePattern = regexp.MustCompile(`^BK\d{8}$`)

type stubCache struct{}

func (stubCache) Save(_ context.Context, _ string, _ any, _ int) error { return nil }
func (stubCache) Get(_ context.Context, _ string, _ any) error        { return cache.Nil }
func (stubCache) Delete(_ context.Context, _ string) error            { return nil }
func (stubCache) Clear(_ context.Context, _ string) error             { return nil }

type stubPublisher struct{}

func (stubPublisher) Publish(_ context.Context, _ string, _ any) error { return nil }

type stubStore struct {
	enabled bool
	url     string
}

func (s stubStore) Enabled() bool { return s.enabled }
func (s stubStore) Put(_ context.Context, _, _, _ string, _ []byte) (string, error) {
	return s.url, nil
}
func (s stubStore) Delete(_ context.Context, _, _ string) error { return nil }

type recordingDispatcher struct {
	mu     sync.Mutex
	emails []notify.Email
	sms    []notify.SMS
}

func (d *recordingDispatcher) EnqueueEmail(email notify.Email) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.emails = append(d.emails, email)
}

func (d *recordingDispatcher) EnqueueSMS(message notify.SMS) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sms = append(d.sms, message)
}

func (d *recordingDispatcher) Close() {}

func newService(t *testing.T, store stubStore) (service.Booking, *bookingMocks.MockBooking, *recordingDispatcher) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	dispatcher := &recordingDispatcher{}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Notify.AdminEmail = "frontdesk@example.com"
	cfg.Notify.StatusPageURL = "https://example.com/status"

	svc := service.New(mockRepo, cfg, stubCache{}, dispatcher, stubPublisher{}, store, mocks.NewOtel())

	return svc, mockRepo, dispatcher
}

func adminContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserEmail, "admin@example.com")
}

func TestBookingService_Submit_Defaults(t *testing.T) {
	svc, mockRepo, dispatcher := newService(t, stubStore{})

	var gotBooking model.Booking
	var gotMeta model.BookingMeta

	mockRepo.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(false, nil)

	mockRepo.EXPECT().
		Submit(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, booking model.Booking, meta model.BookingMeta) error {
			gotBooking = booking
			gotMeta = meta

			return nil
		})

	res, err := svc.Submit(context.Background(), dto.SubmitBookingRequest{
		GuestName:  "Ada",
		GuestEmail: "ada@x.com",
		RoomType:   "deluxe",
		CheckIn:    "2024-03-01",
		CheckOut:   "2024-03-03",
	})
	require.NoError(t, err)

	assert.Regexp(t, referencePattern, res.ReferenceNumber)
	assert.Equal(t, gotBooking.ReferenceNumber, res.ReferenceNumber)
	assert.Equal(t, gotBooking.ID, gotMeta.BookingID)
	assert.Equal(t, model.StatusPending, gotMeta.Status)
	assert.Equal(t, model.PaymentStatusUnpaid, gotMeta.PaymentStatus)
	assert.Empty(t, gotMeta.PaymentProof)

	// guest and admin mail scheduled, no phone so no sms
	require.Len(t, dispatcher.emails, 2)
	assert.Equal(t, "frontdesk@example.com", dispatcher.emails[0].To)
	assert.Equal(t, "ada@x.com", dispatcher.emails[1].To)
	assert.Empty(t, dispatcher.sms)
}

func TestBookingService_Submit_WithPaymentProof(t *testing.T) {
	svc, mockRepo, dispatcher := newService(t, stubStore{})

	var gotMeta model.BookingMeta

	mockRepo.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(false, nil)

	mockRepo.EXPECT().
		Submit(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ model.Booking, meta model.BookingMeta) error {
			gotMeta = meta

			return nil
		})

	_, err := svc.Submit(context.Background(), dto.SubmitBookingRequest{
		GuestName:    "Ada",
		GuestEmail:   "ada@x.com",
		GuestPhone:   "+628123456789",
		RoomType:     "deluxe",
		CheckIn:      "2024-03-01",
		CheckOut:     "2024-03-03",
		PaymentProof: "data:image/png;base64,aGVsbG8=",
	})
	require.NoError(t, err)

	assert.Equal(t, model.PaymentStatusPending, gotMeta.PaymentStatus)
	assert.Equal(t, "data:image/png;base64,aGVsbG8=", gotMeta.PaymentProof)
	assert.Len(t, dispatcher.sms, 1)
}

func TestBookingService_Submit_ProofOffloadedToStorage(t *testing.T) {
	svc, mockRepo, _ := newService(t, stubStore{enabled: true, url: "https://cdn.example.com/payment-proofs/x"})

	var gotMeta model.BookingMeta

	mockRepo.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(false, nil)

	mockRepo.EXPECT().
		Submit(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ model.Booking, meta model.BookingMeta) error {
			gotMeta = meta

			return nil
		})

	_, err := svc.Submit(context.Background(), dto.SubmitBookingRequest{
		GuestName:    "Ada",
		GuestEmail:   "ada@x.com",
		RoomType:     "deluxe",
		CheckIn:      "2024-03-01",
		CheckOut:     "2024-03-03",
		PaymentProof: "data:image/png;base64,aGVsbG8=",
	})
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example.com/payment-proofs/x", gotMeta.PaymentProof)
	assert.Equal(t, model.PaymentStatusPending, gotMeta.PaymentStatus)
}

func TestBookingService_Submit_ReferenceExhausted(t *testing.T) {
	svc, mockRepo, dispatcher := newService(t, stubStore{})

	mockRepo.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(true, nil).
		Times(5)

	_, err := svc.Submit(context.Background(), dto.SubmitBookingRequest{
		GuestName:  "Ada",
		GuestEmail: "ada@x.com",
		RoomType:   "deluxe",
		CheckIn:    "2024-03-01",
		CheckOut:   "2024-03-03",
	})
	require.Error(t, err)

	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	assert.Empty(t, dispatcher.emails)
}

func TestBookingService_Submit_InvalidDate(t *testing.T) {
	svc, mockRepo, _ := newService(t, stubStore{})

	mockRepo.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(false, nil)

	_, err := svc.Submit(context.Background(), dto.SubmitBookingRequest{
		GuestName:  "Ada",
		GuestEmail: "ada@x.com",
		RoomType:   "deluxe",
		CheckIn:    "not-a-date",
		CheckOut:   "2024-03-03",
	})
	require.Error(t, err)

	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestBookingService_GetByReference_NotFound(t *testing.T) {
	svc, mockRepo, _ := newService(t, stubStore{})

	mockRepo.EXPECT().
		GetRow(gomock.Any(), gomock.Any()).
		Return(model.BookingRow{}, nil)

	_, err := svc.GetByReference(context.Background(), "BK99999999")
	require.Error(t, err)

	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestBookingService_GetByReference_DefaultsWithoutMeta(t *testing.T) {
	svc, mockRepo, _ := newService(t, stubStore{})

	row := model.BookingRow{
		Booking: model.Booking{
			ID:              "booking-1",
			ReferenceNumber: "BK12345678",
			GuestName:       "Ada",
			GuestEmail:      "ada@x.com",
			RoomType:        "deluxe",
			CheckIn:         timezone.Now(),
			CheckOut:        timezone.Now().AddDate(0, 0, 2),
		},
	}

	mockRepo.EXPECT().
		GetRow(gomock.Any(), gomock.Any()).
		Return(row, nil)

	res, err := svc.GetByReference(context.Background(), "BK12345678")
	require.NoError(t, err)

	assert.Equal(t, model.StatusPending, res.Status)
	assert.Equal(t, model.PaymentStatusUnpaid, res.PaymentStatus)
	assert.Empty(t, res.PaymentProof)
}

func TestBookingService_UpdateStatus_CreatesDefaultedMeta(t *testing.T) {
	svc, mockRepo, _ := newService(t, stubStore{})

	booking := model.Booking{ID: "booking-1", ReferenceNumber: "BK12345678"}

	var gotMeta model.BookingMeta

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(booking, nil)

	mockRepo.EXPECT().
		GetMeta(gomock.Any(), "booking-1").
		Return(model.BookingMeta{}, nil)

	mockRepo.EXPECT().
		UpsertMeta(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, meta model.BookingMeta) error {
			gotMeta = meta

			return nil
		})

	res, err := svc.UpdateStatus(adminContext(), "BK12345678", dto.UpdateStatusRequest{Status: "confirmed"})
	require.NoError(t, err)

	assert.Equal(t, "booking-1", gotMeta.BookingID)
	assert.Equal(t, "confirmed", gotMeta.Status)
	assert.Equal(t, model.PaymentStatusUnpaid, gotMeta.PaymentStatus)
	assert.Equal(t, "admin@example.com", gotMeta.ModifiedBy)
	assert.Equal(t, "confirmed", res.Status)
}

func TestBookingService_UpdateStatus_KeepsPaymentStatusWhenOmitted(t *testing.T) {
	svc, mockRepo, _ := newService(t, stubStore{})

	booking := model.Booking{ID: "booking-1", ReferenceNumber: "BK12345678"}
	existing := model.BookingMeta{
		ID:            "meta-1",
		BookingID:     "booking-1",
		Status:        "confirmed",
		PaymentStatus: "paid",
		Metadata:      gModel.Metadata{CreatedBy: "admin@example.com"},
	}

	var gotMeta model.BookingMeta

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(booking, nil)

	mockRepo.EXPECT().
		GetMeta(gomock.Any(), "booking-1").
		Return(existing, nil)

	mockRepo.EXPECT().
		UpsertMeta(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, meta model.BookingMeta) error {
			gotMeta = meta

			return nil
		})

	_, err := svc.UpdateStatus(adminContext(), "BK12345678", dto.UpdateStatusRequest{Status: "checked_in"})
	require.NoError(t, err)

	assert.Equal(t, "checked_in", gotMeta.Status)
	assert.Equal(t, "paid", gotMeta.PaymentStatus, "omitted payment status must stay untouched")
}

func TestBookingService_UpdateStatus_OverwritesPaymentStatusWhenGiven(t *testing.T) {
	svc, mockRepo, _ := newService(t, stubStore{})

	booking := model.Booking{ID: "booking-1", ReferenceNumber: "BK12345678"}

	var gotMeta model.BookingMeta

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(booking, nil)

	mockRepo.EXPECT().
		GetMeta(gomock.Any(), "booking-1").
		Return(model.BookingMeta{ID: "meta-1", BookingID: "booking-1", Status: "pending", PaymentStatus: "unpaid"}, nil)

	mockRepo.EXPECT().
		UpsertMeta(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, meta model.BookingMeta) error {
			gotMeta = meta

			return nil
		})

	_, err := svc.UpdateStatus(adminContext(), "BK12345678", dto.UpdateStatusRequest{Status: "confirmed", PaymentStatus: "paid"})
	require.NoError(t, err)

	assert.Equal(t, "confirmed", gotMeta.Status)
	assert.Equal(t, "paid", gotMeta.PaymentStatus)
}

func TestBookingService_UpdateStatus_BookingNotFound(t *testing.T) {
	svc, mockRepo, _ := newService(t, stubStore{})

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Booking{}, nil)

	_, err := svc.UpdateStatus(adminContext(), "BK00000000", dto.UpdateStatusRequest{Status: "confirmed"})
	require.Error(t, err)

	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestBookingService_UpdatePaymentProof_DoesNotTouchPaymentStatus(t *testing.T) {
	svc, mockRepo, _ := newService(t, stubStore{})

	booking := model.Booking{ID: "booking-1", ReferenceNumber: "BK12345678"}

	var gotMeta model.BookingMeta

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(booking, nil)

	mockRepo.EXPECT().
		GetMeta(gomock.Any(), "booking-1").
		Return(model.BookingMeta{ID: "meta-1", BookingID: "booking-1", Status: "pending", PaymentStatus: "unpaid"}, nil)

	mockRepo.EXPECT().
		UpsertMeta(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, meta model.BookingMeta) error {
			gotMeta = meta

			return nil
		})

	_, err := svc.UpdatePaymentProof(context.Background(), "BK12345678", dto.UpdatePaymentProofRequest{
		PaymentProof: "data:image/png;base64,aGVsbG8=",
	})
	require.NoError(t, err)

	assert.Equal(t, "data:image/png;base64,aGVsbG8=", gotMeta.PaymentProof)
	assert.Equal(t, "unpaid", gotMeta.PaymentStatus, "proof upload must not flip payment status by itself")
	assert.Equal(t, "pending", gotMeta.Status)
}

func TestBookingRow_Defaults(t *testing.T) {
	row := model.BookingRow{}

	assert.Equal(t, model.StatusPending, row.Status())
	assert.Equal(t, model.PaymentStatusUnpaid, row.PaymentStatus())
	assert.Empty(t, row.PaymentProof())

	row.MetaStatus = sql.NullString{String: "confirmed", Valid: true}
	row.MetaPaymentStatus = sql.NullString{String: "paid", Valid: true}
	row.MetaPaymentProof = sql.NullString{String: "https://cdn.example.com/p", Valid: true}

	assert.Equal(t, "confirmed", row.Status())
	assert.Equal(t, "paid", row.PaymentStatus())
	assert.Equal(t, "https://cdn.example.com/p", row.PaymentProof())
}
