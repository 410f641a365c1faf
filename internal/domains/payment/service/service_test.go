package service_test

import (
	"context"
	"testing"

	"lodge/config"
	"lodge/infras/otel/mocks"
	payMocks "lodge/internal/domains/payment/mocks"
	"lodge/internal/domains/payment/model"
	"lodge/internal/domains/payment/model/dto"
	"lodge/internal/domains/payment/service"
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

func newService(t *testing.T) (service.Payment, *payMocks.MockPayment) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := payMocks.NewMockPayment(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	return service.New(mockRepo, cfg, stubCache{}, mocks.NewOtel()), mockRepo
}

func TestCreate_DefaultsActive(t *testing.T) {
	svc, mockRepo := newService(t)

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserEmail, "admin@example.com")

	var inserted model.Account

	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, account model.Account) error {
			inserted = account

			return nil
		})

	res, err := svc.Create(ctx, dto.CreateAccountRequest{
		BankName:      "BCA",
		AccountNumber: "1234567890",
		AccountName:   "Lodge Hospitality",
	})
	require.NoError(t, err)

	assert.True(t, inserted.IsActive)
	assert.Equal(t, inserted.ID, res.ID)
	assert.Equal(t, "BCA", res.BankName)
}

func TestGetAll_AnonymousOnlySeesActive(t *testing.T) {
	svc, mockRepo := newService(t)

	var gotFilter gDto.FilterGroup

	mockRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
			gotFilter = filter

			return 1, nil
		})
	mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Account{
		{ID: "acc-1", BankName: "BCA", IsActive: true},
	}, nil)

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Limit: 10}, gDto.FilterGroup{})
	require.NoError(t, err)

	require.Len(t, gotFilter.Filters, 1)

	f, ok := gotFilter.Filters[0].(gDto.Filter)
	require.True(t, ok)
	assert.Equal(t, model.FieldActive, f.Field)
	assert.Equal(t, true, f.Value)
	assert.Len(t, res.Accounts, 1)
}

func TestGetAll_AdminSeesInactiveAccounts(t *testing.T) {
	svc, mockRepo := newService(t)

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserRole, constant.RoleAdmin)

	var gotFilter gDto.FilterGroup

	mockRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
			gotFilter = filter

			return 2, nil
		})
	mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Account{
		{ID: "acc-1", IsActive: true},
		{ID: "acc-2", IsActive: false},
	}, nil)

	res, err := svc.GetAll(ctx, gDto.QueryParams{Limit: 10}, gDto.FilterGroup{})
	require.NoError(t, err)

	assert.Empty(t, gotFilter.Filters)
	assert.Len(t, res.Accounts, 2)
}

func TestUpdate_NotFound(t *testing.T) {
	svc, mockRepo := newService(t)

	mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

	err := svc.Update(context.Background(), dto.UpdateAccountRequest{BankName: "Mandiri"}, "missing")
	require.Error(t, err)
	assert.Equal(t, 404, failure.GetCode(err))
}

func TestDelete_NotFound(t *testing.T) {
	svc, mockRepo := newService(t)

	mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

	err := svc.Delete(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, 404, failure.GetCode(err))
}
