package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"lodge/config"
	"lodge/infras/otel/mocks"
	roomMocks "lodge/internal/domains/room/mocks"
	"lodge/internal/domains/room/model"
	"lodge/internal/domains/room/model/dto"
	"lodge/internal/domains/room/service"
	"lodge/shared/cache"
	"lodge/shared/constant"
	"lodge/shared/failure"
	gDto "lodge/shared/dto"
)

type stubCache struct{}

func (stubCache) Save(_ context.Context, _ string, _ any, _ int) error { return nil }
func (stubCache) Get(_ context.Context, _ string, _ any) error        { return cache.Nil }
func (stubCache) Delete(_ context.Context, _ string) error            { return nil }
func (stubCache) Clear(_ context.Context, _ string) error             { return nil }

func newService(t *testing.T) (service.Room, *roomMocks.MockRoom) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := roomMocks.NewMockRoom(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, stubCache{}, mocks.NewOtel())

	return svc, mockRepo
}

func adminContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserEmail, "admin@example.com")
}

func TestRoomService_Create(t *testing.T) {
	svc, mockRepo := newService(t)

	var gotRoom model.Room

	mockRepo.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(false, nil)

	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, room model.Room) error {
			gotRoom = room

			return nil
		})

	err := svc.Create(adminContext(), dto.CreateRoomRequest{
		RoomNumber:    "101",
		Name:          "Garden View",
		RoomType:      "deluxe",
		PricePerNight: 150.5,
		Capacity:      2,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, gotRoom.ID)
	assert.Equal(t, "101", gotRoom.RoomNumber)
	assert.Equal(t, "deluxe", gotRoom.RoomType)
	assert.True(t, gotRoom.IsAvailable, "rooms default to available")
	assert.Equal(t, "admin@example.com", gotRoom.CreatedBy)
}

func TestRoomService_Create_DuplicateRoomNumber(t *testing.T) {
	svc, mockRepo := newService(t)

	mockRepo.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(true, nil)

	err := svc.Create(adminContext(), dto.CreateRoomRequest{
		RoomNumber:    "101",
		RoomType:      "deluxe",
		PricePerNight: 150.5,
	})
	require.Error(t, err)

	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
}

func TestRoomService_Get_NotFound(t *testing.T) {
	svc, mockRepo := newService(t)

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Room{}, nil)

	_, err := svc.Get(context.Background(), "missing-id")
	require.Error(t, err)

	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestRoomService_Update(t *testing.T) {
	svc, mockRepo := newService(t)

	unavailable := false
	price := 200.0

	var gotFields map[string]any

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Room{ID: "room-1", RoomNumber: "101"}, nil)

	mockRepo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
			gotFields = fields

			return nil
		})

	err := svc.Update(adminContext(), dto.UpdateRoomRequest{
		PricePerNight: &price,
		IsAvailable:   &unavailable,
	}, "room-1")
	require.NoError(t, err)

	gotPrice, ok := gotFields[model.FieldPricePerNight].(*float64)
	require.True(t, ok)
	assert.Equal(t, price, *gotPrice)

	gotAvailable, ok := gotFields[model.FieldIsAvailable].(*bool)
	require.True(t, ok)
	assert.False(t, *gotAvailable, "explicit false must survive the partial update")
	assert.NotContains(t, gotFields, model.FieldRoomNumber, "unset fields must not be overwritten")
	assert.Equal(t, "admin@example.com", gotFields[constant.FieldModifiedBy])
}

func TestRoomService_Update_NotFound(t *testing.T) {
	svc, mockRepo := newService(t)

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Room{}, nil)

	err := svc.Update(adminContext(), dto.UpdateRoomRequest{}, "missing-id")
	require.Error(t, err)

	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestRoomService_Delete_NotFound(t *testing.T) {
	svc, mockRepo := newService(t)

	mockRepo.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(false, nil)

	err := svc.Delete(context.Background(), "missing-id")
	require.Error(t, err)

	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}
