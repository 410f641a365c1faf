package service_test

import (
	"context"
	"testing"

	"lodge/config"
	"lodge/infras/otel/mocks"
	annMocks "lodge/internal/domains/announcement/mocks"
	"lodge/internal/domains/announcement/model"
	"lodge/internal/domains/announcement/model/dto"
	"lodge/internal/domains/announcement/service"
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

func newService(t *testing.T) (service.Announcement, *annMocks.MockAnnouncement) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := annMocks.NewMockAnnouncement(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	return service.New(mockRepo, cfg, stubCache{}, mocks.NewOtel()), mockRepo
}

func audiencesFromFilter(t *testing.T, filter gDto.FilterGroup) []string {
	t.Helper()

	for _, raw := range filter.Filters {
		f, ok := raw.(gDto.Filter)
		if !ok || f.Field != model.FieldAudience {
			continue
		}

		audiences, ok := f.Value.([]string)
		require.True(t, ok)

		return audiences
	}

	return nil
}

func TestCreate_DefaultsStaffAudienceActive(t *testing.T) {
	svc, mockRepo := newService(t)

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserEmail, "admin@example.com")

	var inserted model.Announcement

	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, announcement model.Announcement) error {
			inserted = announcement

			return nil
		})

	res, err := svc.Create(ctx, dto.CreateAnnouncementRequest{
		Title:   "Pool closed",
		Message: "Maintenance on Tuesday morning.",
	})
	require.NoError(t, err)

	assert.Equal(t, model.AudienceStaff, inserted.Audience)
	assert.True(t, inserted.IsActive)
	assert.Nil(t, inserted.ExpiresAt)
	assert.Equal(t, inserted.ID, res.ID)
}

func TestGetAll_AdminSeesEverything(t *testing.T) {
	svc, mockRepo := newService(t)

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserRole, constant.RoleAdmin)

	var gotFilter gDto.FilterGroup

	mockRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
			gotFilter = filter

			return 1, nil
		})
	mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Announcement{
		{ID: "ann-1", Audience: model.AudienceStaff, IsActive: false},
	}, nil)

	res, err := svc.GetAll(ctx, gDto.QueryParams{Limit: 10}, gDto.FilterGroup{})
	require.NoError(t, err)

	assert.Empty(t, gotFilter.Filters)
	assert.Len(t, res.Announcements, 1)
}

func TestGetAll_StaffScopedToStaffAndAll(t *testing.T) {
	svc, mockRepo := newService(t)

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserRole, constant.RoleStaff)

	var gotFilter gDto.FilterGroup

	mockRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
			gotFilter = filter

			return 0, nil
		})
	mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Announcement{}, nil)

	_, err := svc.GetAll(ctx, gDto.QueryParams{Limit: 10}, gDto.FilterGroup{})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{model.AudienceStaff, model.AudienceAll}, audiencesFromFilter(t, gotFilter))
}

func TestGetAll_AnonymousScopedToPublicAndAll(t *testing.T) {
	svc, mockRepo := newService(t)

	var gotFilter gDto.FilterGroup

	mockRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
			gotFilter = filter

			return 0, nil
		})
	mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Announcement{}, nil)

	_, err := svc.GetAll(context.Background(), gDto.QueryParams{Limit: 10}, gDto.FilterGroup{})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{model.AudiencePublic, model.AudienceAll}, audiencesFromFilter(t, gotFilter))

	var hasActive, hasExpiry bool

	for _, raw := range gotFilter.Filters {
		switch f := raw.(type) {
		case gDto.Filter:
			if f.Field == model.FieldActive {
				hasActive = true
			}
		case gDto.FilterGroup:
			hasExpiry = f.Operator == gDto.FilterGroupOperatorOr
		}
	}

	assert.True(t, hasActive)
	assert.True(t, hasExpiry)
}

func TestUpdate_NotFound(t *testing.T) {
	svc, mockRepo := newService(t)

	mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

	err := svc.Update(context.Background(), dto.UpdateAnnouncementRequest{Title: "Updated"}, "missing")
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
