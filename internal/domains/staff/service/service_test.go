package service_test

import (
	"context"
	"testing"

	"lodge/config"
	"lodge/infras/otel/mocks"
	"lodge/internal/domains/staff/model"
	"lodge/internal/domains/staff/model/dto"
	staffMocks "lodge/internal/domains/staff/mocks"
	"lodge/internal/domains/staff/service"
	"lodge/shared/cache"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	"lodge/shared/password"

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

func newService(t *testing.T, store stubStore) (service.Staff, *staffMocks.MockStaff) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := staffMocks.NewMockStaff(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	return service.New(mockRepo, cfg, stubCache{}, store, mocks.NewOtel()), mockRepo
}

func TestCreate_ReturnsPlaintextCodeOnce(t *testing.T) {
	svc, mockRepo := newService(t, stubStore{})

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserEmail, "admin@example.com")

	var inserted model.Staff

	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, staff model.Staff) error {
			inserted = staff

			return nil
		})

	res, err := svc.Create(ctx, dto.CreateStaffRequest{
		Name:  "Maya Putri",
		Email: "maya@example.com",
		Role:  "housekeeping",
	})
	require.NoError(t, err)

	assert.Len(t, res.StaffCode, 8)
	assert.NotEqual(t, res.StaffCode, inserted.Code)
	assert.NoError(t, password.Verify(res.StaffCode, inserted.Code))
	assert.True(t, inserted.Active)
	assert.Equal(t, "admin@example.com", inserted.CreatedBy)
	assert.NotEmpty(t, inserted.ID)
	assert.Equal(t, inserted.ID, res.Staff.ID)
}

func TestResetCode_ReplacesHash(t *testing.T) {
	svc, mockRepo := newService(t, stubStore{})

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserEmail, "admin@example.com")
	id := "staff-1"

	var updatedFields map[string]any

	mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	mockRepo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
			updatedFields = fields

			return nil
		})

	res, err := svc.ResetCode(ctx, id)
	require.NoError(t, err)

	assert.Len(t, res.StaffCode, 8)

	hashed, ok := updatedFields[model.FieldCode].(string)
	require.True(t, ok)
	assert.NoError(t, password.Verify(res.StaffCode, hashed))
	assert.Equal(t, "admin@example.com", updatedFields[constant.FieldModifiedBy])
}

func TestResetCode_NotFound(t *testing.T) {
	svc, mockRepo := newService(t, stubStore{})

	mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

	_, err := svc.ResetCode(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, 404, failure.GetCode(err))
}

func TestAddDocument_OffloadsEmbeddedPayload(t *testing.T) {
	svc, mockRepo := newService(t, stubStore{enabled: true, url: "https://cdn.example.com/staff-documents/doc-1"})

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserEmail, "admin@example.com")
	id := "staff-1"

	var inserted model.Document

	mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	mockRepo.EXPECT().
		InsertDocument(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, document model.Document) error {
			inserted = document

			return nil
		})

	res, err := svc.AddDocument(ctx, id, dto.AddDocumentRequest{
		Name:    "ID card",
		Payload: "data:image/png;base64,aGVsbG8=",
	})
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example.com/staff-documents/doc-1", inserted.URL)
	assert.Equal(t, "image/png", inserted.ContentType)
	assert.Equal(t, id, inserted.StaffID)
	assert.Equal(t, inserted.URL, res.URL)
}

func TestAddDocument_KeepsPlainURLWhenStoreDisabled(t *testing.T) {
	svc, mockRepo := newService(t, stubStore{})

	id := "staff-1"
	url := "https://example.com/docs/contract.pdf"

	var inserted model.Document

	mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	mockRepo.EXPECT().
		InsertDocument(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, document model.Document) error {
			inserted = document

			return nil
		})

	_, err := svc.AddDocument(context.Background(), id, dto.AddDocumentRequest{
		Name:    "Contract",
		Payload: url,
	})
	require.NoError(t, err)

	assert.Equal(t, url, inserted.URL)
}

func TestAddDocument_StaffNotFound(t *testing.T) {
	svc, mockRepo := newService(t, stubStore{})

	mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

	_, err := svc.AddDocument(context.Background(), "missing", dto.AddDocumentRequest{
		Name:    "ID card",
		Payload: "https://example.com/id.png",
	})
	require.Error(t, err)
	assert.Equal(t, 404, failure.GetCode(err))
}

func TestGetDocuments(t *testing.T) {
	svc, mockRepo := newService(t, stubStore{})

	id := "staff-1"

	mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	mockRepo.EXPECT().GetDocuments(gomock.Any(), id).Return([]model.Document{
		{ID: "doc-1", StaffID: id, Name: "ID card"},
		{ID: "doc-2", StaffID: id, Name: "Contract"},
	}, nil)

	res, err := svc.GetDocuments(context.Background(), id)
	require.NoError(t, err)

	require.Len(t, res.Documents, 2)
	assert.Equal(t, "ID card", res.Documents[0].Name)
}

func TestUpdate_NotFound(t *testing.T) {
	svc, mockRepo := newService(t, stubStore{})

	mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

	err := svc.Update(context.Background(), dto.UpdateStaffRequest{Name: "New Name"}, "missing")
	require.Error(t, err)
	assert.Equal(t, 404, failure.GetCode(err))
}
