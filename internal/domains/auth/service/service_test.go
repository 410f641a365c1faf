package service_test

import (
	"context"
	"testing"

	"lodge/config"
	"lodge/infras/jwt"
	"lodge/infras/otel/mocks"
	"lodge/internal/domains/auth/model/dto"
	"lodge/internal/domains/auth/service"
	staffMocks "lodge/internal/domains/staff/mocks"
	staffModel "lodge/internal/domains/staff/model"
	userMocks "lodge/internal/domains/user/mocks"
	userModel "lodge/internal/domains/user/model"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	"lodge/shared/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "lodge-test"
	cfg.JWT.AccessSecret = "access-secret"
	cfg.JWT.RefreshSecret = "refresh-secret"
	cfg.JWT.AccessExpireMin = 15
	cfg.JWT.RefreshExpireMin = 60

	return cfg
}

func newService(t *testing.T) (service.Auth, *userMocks.MockUser, *staffMocks.MockStaff) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockUsers := userMocks.NewMockUser(ctrl)
	mockStaff := staffMocks.NewMockStaff(ctrl)
	cfg := testConfig()

	return service.New(mockUsers, mockStaff, cfg, mocks.NewOtel(), jwt.New(cfg)), mockUsers, mockStaff
}

func mustHash(t *testing.T, plain string) string {
	t.Helper()

	hashed, err := password.Hash(plain)
	require.NoError(t, err)

	return hashed
}

func TestInit_CreatesFirstAdmin(t *testing.T) {
	svc, mockUsers, _ := newService(t)

	var inserted userModel.User

	mockUsers.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil)
	mockUsers.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user userModel.User) error {
			inserted = user

			return nil
		})

	err := svc.Init(context.Background(), dto.InitRequest{
		Email:    "admin@example.com",
		Password: "s3cret-pass",
		Name:     "Admin",
	})
	require.NoError(t, err)

	assert.Equal(t, "admin@example.com", inserted.Email)
	assert.True(t, inserted.Active)
	assert.NotEqual(t, "s3cret-pass", inserted.Password)
	assert.NoError(t, password.Verify("s3cret-pass", inserted.Password))
}

func TestInit_RefusesWhenAdminExists(t *testing.T) {
	svc, mockUsers, _ := newService(t)

	mockUsers.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)

	err := svc.Init(context.Background(), dto.InitRequest{
		Email:    "admin@example.com",
		Password: "s3cret-pass",
		Name:     "Admin",
	})
	require.Error(t, err)
	assert.Equal(t, 409, failure.GetCode(err))
}

func TestLogin_Success(t *testing.T) {
	svc, mockUsers, _ := newService(t)

	user := userModel.User{
		ID:       "user-1",
		Email:    "admin@example.com",
		Password: mustHash(t, "s3cret-pass"),
		Name:     "Admin",
		Active:   true,
	}

	mockUsers.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)
	mockUsers.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	res, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "admin@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, res.AccessToken)
	assert.NotEmpty(t, res.RefreshToken)
	assert.Equal(t, "Bearer", res.TokenType)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, mockUsers, _ := newService(t)

	user := userModel.User{
		ID:       "user-1",
		Email:    "admin@example.com",
		Password: mustHash(t, "s3cret-pass"),
		Active:   true,
	}

	mockUsers.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "admin@example.com",
		Password: "wrong-pass",
	})
	require.Error(t, err)
	assert.Equal(t, 401, failure.GetCode(err))
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, mockUsers, _ := newService(t)

	mockUsers.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever1",
	})
	require.Error(t, err)
	assert.Equal(t, 401, failure.GetCode(err))
}

func TestLogin_DeactivatedAccount(t *testing.T) {
	svc, mockUsers, _ := newService(t)

	user := userModel.User{
		ID:       "user-1",
		Email:    "admin@example.com",
		Password: mustHash(t, "s3cret-pass"),
		Active:   false,
	}

	mockUsers.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "admin@example.com",
		Password: "s3cret-pass",
	})
	require.Error(t, err)
	assert.Equal(t, 401, failure.GetCode(err))
}

func TestStaffLogin_SingleMatch(t *testing.T) {
	svc, _, mockStaff := newService(t)

	mockStaff.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]staffModel.Staff{
			{ID: "staff-1", Email: "maya@example.com", Name: "Maya", Role: "housekeeping", Code: mustHash(t, "a1b2c3d4"), Active: true},
			{ID: "staff-2", Email: "rudi@example.com", Name: "Rudi", Role: "housekeeping", Code: mustHash(t, "deadbeef"), Active: true},
		}, nil)

	res, err := svc.StaffLogin(context.Background(), dto.StaffLoginRequest{
		Role: "housekeeping",
		Code: "a1b2c3d4",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, res.AccessToken)
}

func TestStaffLogin_NoMatch(t *testing.T) {
	svc, _, mockStaff := newService(t)

	mockStaff.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]staffModel.Staff{
			{ID: "staff-1", Role: "housekeeping", Code: mustHash(t, "a1b2c3d4"), Active: true},
		}, nil)

	_, err := svc.StaffLogin(context.Background(), dto.StaffLoginRequest{
		Role: "housekeeping",
		Code: "wrong000",
	})
	require.Error(t, err)
	assert.Equal(t, 401, failure.GetCode(err))
}

func TestStaffLogin_AmbiguousCode(t *testing.T) {
	svc, _, mockStaff := newService(t)

	code := "a1b2c3d4"

	mockStaff.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]staffModel.Staff{
			{ID: "staff-1", Role: "housekeeping", Code: mustHash(t, code), Active: true},
			{ID: "staff-2", Role: "housekeeping", Code: mustHash(t, code), Active: true},
		}, nil)

	_, err := svc.StaffLogin(context.Background(), dto.StaffLoginRequest{
		Role: "housekeeping",
		Code: code,
	})
	require.Error(t, err)
	assert.Equal(t, 409, failure.GetCode(err))
}

func TestStaffLogin_FiltersRoleAndActive(t *testing.T) {
	svc, _, mockStaff := newService(t)

	var gotFilter gDto.FilterGroup

	mockStaff.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]staffModel.Staff, error) {
			gotFilter = filter

			return nil, nil
		})

	_, err := svc.StaffLogin(context.Background(), dto.StaffLoginRequest{
		Role: "frontdesk",
		Code: "a1b2c3d4",
	})
	require.Error(t, err)

	require.Len(t, gotFilter.Filters, 2)
	first, ok := gotFilter.Filters[0].(gDto.Filter)
	require.True(t, ok)
	assert.Equal(t, staffModel.FieldRole, first.Field)
	assert.Equal(t, "frontdesk", first.Value)
}

func TestRefreshToken_Success(t *testing.T) {
	svc, mockUsers, _ := newService(t)

	user := userModel.User{
		ID:       "user-1",
		Email:    "admin@example.com",
		Password: mustHash(t, "s3cret-pass"),
		Active:   true,
	}

	mockUsers.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)
	mockUsers.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	login, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "admin@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	res, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{
		RefreshToken: login.RefreshToken,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, res.AccessToken)
	assert.NotEmpty(t, res.RefreshToken)
}

func TestRefreshToken_Invalid(t *testing.T) {
	svc, _, _ := newService(t)

	_, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{
		RefreshToken: "not-a-token",
	})
	require.Error(t, err)
	assert.Equal(t, 401, failure.GetCode(err))
}

func TestMe_FromContext(t *testing.T) {
	svc, _, _ := newService(t)

	ctx := context.Background()
	ctx = context.WithValue(ctx, constant.ContextKeyUserID, "user-1")
	ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, "admin@example.com")
	ctx = context.WithValue(ctx, constant.ContextKeyUserName, "Admin")
	ctx = context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleAdmin)

	res, err := svc.Me(ctx)
	require.NoError(t, err)

	assert.Equal(t, "user-1", res.ID)
	assert.Equal(t, "admin@example.com", res.Email)
	assert.Equal(t, "Admin", res.Name)
	assert.Equal(t, constant.RoleAdmin, res.Role)
}

func TestMe_MissingCredentials(t *testing.T) {
	svc, _, _ := newService(t)

	_, err := svc.Me(context.Background())
	require.Error(t, err)
	assert.Equal(t, 401, failure.GetCode(err))
}

func TestChangePassword_Admin(t *testing.T) {
	svc, mockUsers, _ := newService(t)

	ctx := context.Background()
	ctx = context.WithValue(ctx, constant.ContextKeyUserID, "user-1")
	ctx = context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleAdmin)

	user := userModel.User{
		ID:       "user-1",
		Email:    "admin@example.com",
		Password: mustHash(t, "old-secret"),
		Active:   true,
	}

	var updatedFields map[string]any

	mockUsers.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)
	mockUsers.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
			updatedFields = fields

			return nil
		})

	err := svc.ChangePassword(ctx, dto.ChangePasswordRequest{
		CurrentPassword: "old-secret",
		NewPassword:     "new-secret-1",
	})
	require.NoError(t, err)

	hashed, ok := updatedFields[userModel.FieldPassword].(string)
	require.True(t, ok)
	assert.NoError(t, password.Verify("new-secret-1", hashed))
}

func TestChangePassword_AdminWrongCurrent(t *testing.T) {
	svc, mockUsers, _ := newService(t)

	ctx := context.Background()
	ctx = context.WithValue(ctx, constant.ContextKeyUserID, "user-1")
	ctx = context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleAdmin)

	user := userModel.User{
		ID:       "user-1",
		Password: mustHash(t, "old-secret"),
	}

	mockUsers.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)

	err := svc.ChangePassword(ctx, dto.ChangePasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "new-secret-1",
	})
	require.Error(t, err)
	assert.Equal(t, 400, failure.GetCode(err))
}

func TestChangePassword_StaffRotatesCode(t *testing.T) {
	svc, _, mockStaff := newService(t)

	ctx := context.Background()
	ctx = context.WithValue(ctx, constant.ContextKeyUserID, "staff-1")
	ctx = context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleStaff)

	staff := staffModel.Staff{
		ID:    "staff-1",
		Email: "maya@example.com",
		Code:  mustHash(t, "a1b2c3d4"),
	}

	var updatedFields map[string]any

	mockStaff.EXPECT().Get(gomock.Any(), gomock.Any()).Return(staff, nil)
	mockStaff.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
			updatedFields = fields

			return nil
		})

	err := svc.ChangePassword(ctx, dto.ChangePasswordRequest{
		CurrentPassword: "a1b2c3d4",
		NewPassword:     "e5f6a7b8",
	})
	require.NoError(t, err)

	hashed, ok := updatedFields[staffModel.FieldCode].(string)
	require.True(t, ok)
	assert.NoError(t, password.Verify("e5f6a7b8", hashed))
}
