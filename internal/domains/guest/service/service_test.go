package service_test

import (
	"context"
	"testing"

	"lodge/config"
	"lodge/infras/otel/mocks"
	guestMocks "lodge/internal/domains/guest/mocks"
	"lodge/internal/domains/guest/model"
	"lodge/internal/domains/guest/model/dto"
	"lodge/internal/domains/guest/service"
	"lodge/shared/cache"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type stubCache struct{}

func (stubCache) Save(_ context.Context, _ string, _ any, _ int) error { return nil }
func (stubCache) Get(_ context.Context, _ string, _ any) error        { return cache.Nil }
func (stubCache) Delete(_ context.Context, _ string) error            { return nil }
func (stubCache) Clear(_ context.Context, _ string) error             { return nil }

type stubStore struct {
	enabled bool
	url     string
}

func (s stubStore) Enabled() bool { return s.enabled }
func (s stubStore) Put(_ context.Context, _, _, _ string, _ []byte) (string, error) {
	return s.url, nil
}
func (s stubStore) Delete(_ context.Context, _, _ string) error { return nil }

func newService(t *testing.T, store stubStore) (service.Guest, *guestMocks.MockGuest) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := guestMocks.NewMockGuest(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	return service.New(mockRepo, cfg, stubCache{}, store, mocks.NewOtel()), mockRepo
}

func TestCreate_StampsActorAndPreferences(t *testing.T) {
	svc, mockRepo := newService(t, stubStore{})

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserEmail, "admin@example.com")

	var inserted model.Guest

	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, guest model.Guest) error {
			inserted = guest

			return nil
		})

	res, err := svc.Create(ctx, dto.CreateGuestRequest{
		GuestName:   "Lena Okafor",
		Email:       "lena@example.com",
		Preferences: []string{"late checkout", "high floor"},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, res.ID)
	assert.Equal(t, "Lena Okafor", inserted.GuestName)
	assert.Equal(t, []string{"late checkout", "high floor"}, []string(inserted.Preferences))
	assert.Equal(t, "admin@example.com", inserted.CreatedBy)
}

func TestGet_NotFound(t *testing.T) {
	svc, mockRepo := newService(t, stubStore{})

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Guest{}, nil)

	_, err := svc.Get(context.Background(), "missing-id")
	require.Error(t, err)
	assert.Equal(t, 404, failure.GetCode(err))
}

func TestUpdate_NotFound(t *testing.T) {
	svc, mockRepo := newService(t, stubStore{})

	mockRepo.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(false, nil)

	err := svc.Update(context.Background(), dto.UpdateGuestRequest{GuestName: "New Name"}, "missing-id")
	require.Error(t, err)
	assert.Equal(t, 404, failure.GetCode(err))
}

func TestAddReceipt_KeepsEmbeddedPayloadWhenStorageDisabled(t *testing.T) {
	svc, mockRepo := newService(t, stubStore{})

	payload := "data:application/pdf;base64,JVBERi0="

	mockRepo.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(true, nil)

	var receipt model.Receipt

	mockRepo.EXPECT().
		InsertReceipt(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec model.Receipt) error {
			receipt = rec

			return nil
		})

	res, err := svc.AddReceipt(context.Background(), "guest-1", dto.AddReceiptRequest{
		Name:    "stay-invoice.pdf",
		Payload: payload,
	})
	require.NoError(t, err)

	assert.Equal(t, payload, receipt.URL)
	assert.Equal(t, "application/pdf", receipt.ContentType)
	assert.Equal(t, "guest-1", res.GuestID)
}

func TestAddReceipt_OffloadsToObjectStorage(t *testing.T) {
	svc, mockRepo := newService(t, stubStore{enabled: true, url: "https://cdn.example.com/guest-receipts/x"})

	mockRepo.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(true, nil)

	var receipt model.Receipt

	mockRepo.EXPECT().
		InsertReceipt(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec model.Receipt) error {
			receipt = rec

			return nil
		})

	_, err := svc.AddReceipt(context.Background(), "guest-1", dto.AddReceiptRequest{
		Name:    "stay-invoice.pdf",
		Payload: "data:application/pdf;base64,JVBERi0=",
	})
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example.com/guest-receipts/x", receipt.URL)
}

func TestAddReceipt_GuestNotFound(t *testing.T) {
	svc, mockRepo := newService(t, stubStore{})

	mockRepo.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(false, nil)

	_, err := svc.AddReceipt(context.Background(), "missing-id", dto.AddReceiptRequest{
		Name:    "stay-invoice.pdf",
		Payload: "https://receipts.example.com/invoice.pdf",
	})
	require.Error(t, err)
	assert.Equal(t, 404, failure.GetCode(err))
}

func TestGetReceipts_ReturnsStoredReceipts(t *testing.T) {
	svc, mockRepo := newService(t, stubStore{})

	mockRepo.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(true, nil)

	mockRepo.EXPECT().
		GetReceipts(gomock.Any(), "guest-1").
		Return([]model.Receipt{
			{ID: "rec-1", GuestID: "guest-1", Name: "invoice.pdf"},
			{ID: "rec-2", GuestID: "guest-1", Name: "deposit.png"},
		}, nil)

	res, err := svc.GetReceipts(context.Background(), "guest-1")
	require.NoError(t, err)

	require.Len(t, res.Receipts, 2)
	assert.Equal(t, "invoice.pdf", res.Receipts[0].Name)
}

func TestGetAll_ReturnsGuestsWithTotal(t *testing.T) {
	svc, mockRepo := newService(t, stubStore{})

	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Guest{{ID: "guest-1", GuestName: "Lena Okafor"}}, nil)

	mockRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(1, nil)

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, filter)
	require.NoError(t, err)

	require.Len(t, res.Guests, 1)
	assert.Equal(t, 1, res.TotalData)
	assert.Equal(t, 1, res.TotalPage)
}
