package service_test

import (
	"context"
	"testing"
	"time"

	"lodge/config"
	"lodge/infras/otel/mocks"
	hkMocks "lodge/internal/domains/housekeeping/mocks"
	"lodge/internal/domains/housekeeping/model"
	"lodge/internal/domains/housekeeping/model/dto"
	"lodge/internal/domains/housekeeping/service"
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

func newService(t *testing.T) (service.Housekeeping, *hkMocks.MockHousekeeping) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := hkMocks.NewMockHousekeeping(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	return service.New(mockRepo, cfg, stubCache{}, mocks.NewOtel()), mockRepo
}

func TestCreate_DefaultsPendingMediumPriority(t *testing.T) {
	svc, mockRepo := newService(t)

	var inserted model.Task

	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, task model.Task) error {
			inserted = task

			return nil
		})

	res, err := svc.Create(context.Background(), dto.CreateTaskRequest{
		RoomNumber: "101",
		Type:       "cleaning",
	})
	require.NoError(t, err)

	assert.Equal(t, model.StatusPending, inserted.Status)
	assert.Equal(t, "medium", inserted.Priority)
	assert.Nil(t, inserted.CompletedAt)
	assert.Equal(t, inserted.ID, res.ID)
}

func TestUpdate_CompletedStampsOnce(t *testing.T) {
	svc, mockRepo := newService(t)

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserEmail, "staff@example.com")
	id := "task-1"

	var gotFields map[string]any

	mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Task{
		ID:     id,
		Status: model.StatusInProgress,
	}, nil)
	mockRepo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
			gotFields = fields

			return nil
		})

	res, err := svc.Update(ctx, dto.UpdateTaskRequest{Status: model.StatusCompleted}, id)
	require.NoError(t, err)

	_, stamped := gotFields[model.FieldCompletedAt]
	assert.True(t, stamped)
	assert.Equal(t, model.StatusCompleted, res.Status)
	assert.NotNil(t, res.CompletedAt)
}

func TestUpdate_CompletedKeepsExistingTimestamp(t *testing.T) {
	svc, mockRepo := newService(t)

	id := "task-1"
	completedAt := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	var gotFields map[string]any

	mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Task{
		ID:          id,
		Status:      model.StatusCompleted,
		CompletedAt: &completedAt,
	}, nil)
	mockRepo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
			gotFields = fields

			return nil
		})

	res, err := svc.Update(context.Background(), dto.UpdateTaskRequest{Status: model.StatusCompleted}, id)
	require.NoError(t, err)

	assert.NotContains(t, gotFields, model.FieldCompletedAt)
	require.NotNil(t, res.CompletedAt)
	assert.Equal(t, completedAt, *res.CompletedAt)
}

func TestUpdate_NotFound(t *testing.T) {
	svc, mockRepo := newService(t)

	mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Task{}, nil)

	_, err := svc.Update(context.Background(), dto.UpdateTaskRequest{Status: model.StatusCompleted}, "missing")
	require.Error(t, err)
	assert.Equal(t, 404, failure.GetCode(err))
}
