package service_test

import (
	"context"
	"testing"
	"time"

	"lodge/config"
	"lodge/infras/otel/mocks"
	checkinMocks "lodge/internal/domains/checkin/mocks"
	"lodge/internal/domains/checkin/model"
	"lodge/internal/domains/checkin/model/dto"
	"lodge/internal/domains/checkin/service"
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

func newService(t *testing.T) (service.Checkin, *checkinMocks.MockCheckin) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := checkinMocks.NewMockCheckin(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	return service.New(mockRepo, cfg, stubCache{}, mocks.NewOtel()), mockRepo
}

func TestCreate_DefaultsToExpected(t *testing.T) {
	svc, mockRepo := newService(t)

	var inserted model.Checkin

	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record model.Checkin) error {
			inserted = record

			return nil
		})

	res, err := svc.Create(context.Background(), dto.CreateCheckinRequest{
		GuestName:  "Maya Putri",
		RoomNumber: "101",
	})
	require.NoError(t, err)

	assert.Equal(t, model.StatusExpected, inserted.Status)
	assert.Nil(t, inserted.CheckedInAt)
	assert.Nil(t, inserted.CheckedOutAt)
	assert.Equal(t, inserted.ID, res.ID)
}

func TestCreate_CheckedInStampsTimestamp(t *testing.T) {
	svc, mockRepo := newService(t)

	var inserted model.Checkin

	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record model.Checkin) error {
			inserted = record

			return nil
		})

	_, err := svc.Create(context.Background(), dto.CreateCheckinRequest{
		GuestName: "Maya Putri",
		Status:    model.StatusCheckedIn,
	})
	require.NoError(t, err)

	require.NotNil(t, inserted.CheckedInAt)
	assert.Nil(t, inserted.CheckedOutAt)
}

func TestUpdate_CheckedInStampsOnce(t *testing.T) {
	svc, mockRepo := newService(t)

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserEmail, "staff@example.com")
	id := "checkin-1"

	var gotFields map[string]any

	mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Checkin{
		ID:     id,
		Status: model.StatusExpected,
	}, nil)
	mockRepo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
			gotFields = fields

			return nil
		})

	res, err := svc.Update(ctx, dto.UpdateCheckinRequest{Status: model.StatusCheckedIn}, id)
	require.NoError(t, err)

	_, stamped := gotFields[model.FieldCheckedInAt]
	assert.True(t, stamped)
	assert.Equal(t, "staff@example.com", gotFields[constant.FieldModifiedBy])
	assert.Equal(t, model.StatusCheckedIn, res.Status)
	assert.NotNil(t, res.CheckedInAt)
}

func TestUpdate_CheckedInKeepsExistingTimestamp(t *testing.T) {
	svc, mockRepo := newService(t)

	id := "checkin-1"
	stampedAt := time.Date(2026, 3, 1, 14, 0, 0, 0, time.UTC)

	var gotFields map[string]any

	mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Checkin{
		ID:          id,
		Status:      model.StatusCheckedIn,
		CheckedInAt: &stampedAt,
	}, nil)
	mockRepo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
			gotFields = fields

			return nil
		})

	res, err := svc.Update(context.Background(), dto.UpdateCheckinRequest{Status: model.StatusCheckedIn}, id)
	require.NoError(t, err)

	assert.NotContains(t, gotFields, model.FieldCheckedInAt)
	require.NotNil(t, res.CheckedInAt)
	assert.Equal(t, stampedAt, *res.CheckedInAt)
}

func TestUpdate_CheckedOutStampsTimestamp(t *testing.T) {
	svc, mockRepo := newService(t)

	id := "checkin-1"
	checkedIn := time.Date(2026, 3, 1, 14, 0, 0, 0, time.UTC)

	var gotFields map[string]any

	mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Checkin{
		ID:          id,
		Status:      model.StatusCheckedIn,
		CheckedInAt: &checkedIn,
	}, nil)
	mockRepo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
			gotFields = fields

			return nil
		})

	res, err := svc.Update(context.Background(), dto.UpdateCheckinRequest{Status: model.StatusCheckedOut}, id)
	require.NoError(t, err)

	_, stamped := gotFields[model.FieldCheckedOutAt]
	assert.True(t, stamped)
	assert.NotContains(t, gotFields, model.FieldCheckedInAt)
	assert.Equal(t, model.StatusCheckedOut, res.Status)
	assert.NotNil(t, res.CheckedOutAt)
}

func TestUpdate_NotFound(t *testing.T) {
	svc, mockRepo := newService(t)

	mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Checkin{}, nil)

	_, err := svc.Update(context.Background(), dto.UpdateCheckinRequest{Status: model.StatusCheckedIn}, "missing")
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
