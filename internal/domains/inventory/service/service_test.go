package service_test

import (
	"context"
	"testing"

	"lodge/config"
	"lodge/infras/otel/mocks"
	invMocks "lodge/internal/domains/inventory/mocks"
	"lodge/internal/domains/inventory/model"
	"lodge/internal/domains/inventory/model/dto"
	"lodge/internal/domains/inventory/service"
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

func newService(t *testing.T) (service.Inventory, *invMocks.MockInventory) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := invMocks.NewMockInventory(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	return service.New(mockRepo, cfg, stubCache{}, mocks.NewOtel()), mockRepo
}

func TestCreate_DefaultsAvailableWithPcsUnit(t *testing.T) {
	svc, mockRepo := newService(t)

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserEmail, "admin@example.com")

	var inserted model.Item

	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, item model.Item) error {
			inserted = item

			return nil
		})

	res, err := svc.Create(ctx, dto.CreateItemRequest{
		Name:     "Bath Towel",
		Category: "linen",
		Quantity: 40,
	})
	require.NoError(t, err)

	assert.Equal(t, "available", inserted.Status)
	assert.Equal(t, "pcs", inserted.Unit)
	assert.Equal(t, "admin@example.com", inserted.CreatedBy)
	assert.Equal(t, inserted.ID, res.ID)
	assert.Equal(t, 40, res.Quantity)
}

func TestGetAll_ReturnsItemsWithTotal(t *testing.T) {
	svc, mockRepo := newService(t)

	mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
	mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Item{
		{ID: "item-1", Name: "Bath Towel"},
		{ID: "item-2", Name: "Shampoo"},
	}, nil)

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Limit: 10}, gDto.FilterGroup{})
	require.NoError(t, err)

	assert.Equal(t, 2, res.TotalData)
	assert.Len(t, res.Items, 2)
}

func TestUpdate_AdjustsQuantity(t *testing.T) {
	svc, mockRepo := newService(t)

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserEmail, "admin@example.com")

	var gotFields map[string]any

	mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	mockRepo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
			gotFields = fields

			return nil
		})

	quantity := 12

	err := svc.Update(ctx, dto.UpdateItemRequest{Quantity: &quantity}, "item-1")
	require.NoError(t, err)

	got, ok := gotFields[model.FieldQuantity].(*int)
	require.True(t, ok)
	assert.Equal(t, 12, *got)
	assert.Equal(t, "admin@example.com", gotFields[constant.FieldModifiedBy])
}

func TestUpdate_NotFound(t *testing.T) {
	svc, mockRepo := newService(t)

	mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

	err := svc.Update(context.Background(), dto.UpdateItemRequest{}, "missing")
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
