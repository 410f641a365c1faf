package service

import (
	"context"
	"fmt"

	"lodge/config"
	"lodge/infras/jwt"
	"lodge/infras/otel"
	"lodge/internal/domains/auth/model/dto"
	staffModel "lodge/internal/domains/staff/model"
	staffRepo "lodge/internal/domains/staff/repository"
	userModel "lodge/internal/domains/user/model"
	userRepo "lodge/internal/domains/user/repository"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	"lodge/shared/password"
	"lodge/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Auth interface {
	Init(ctx context.Context, req dto.InitRequest) error
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	StaffLogin(ctx context.Context, req dto.StaffLoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
	Me(ctx context.Context) (dto.MeResponse, error)
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) error
}

type serviceImpl struct {
	userRepo   userRepo.User
	staffRepo  staffRepo.Staff
	cfg        *config.Config
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(userRepo userRepo.User, staffRepo staffRepo.Staff, cfg *config.Config, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		userRepo:   userRepo,
		staffRepo:  staffRepo,
		cfg:        cfg,
		otel:       otel,
		jwtService: jwt,
	}
}

// Init creates the first administrator account. It refuses to run once any
// administrator exists, so the endpoint is only usable on a fresh install.
func (s *serviceImpl) Init(ctx context.Context, req dto.InitRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Init")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.userRepo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count admin users")

		return fmt.Errorf("failed to count admin users: %w", err)
	}

	if total > 0 {
		return failure.Conflict("admin account already initialized") // nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err = s.userRepo.Insert(ctx, req.ToUserModel(hashedPassword)); err != nil {
		log.Error().Err(err).Msg("failed to create admin user")

		return fmt.Errorf("failed to create admin user: %w", err)
	}

	return nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	emailFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    userModel.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    req.Email,
				Table:    userModel.TableName,
			},
		},
	}

	user, err := s.userRepo.Get(ctx, emailFilter)
	if err != nil {
		log.Warn().Str("email", req.Email).Msg("login attempt failed to load user")

		return res, failure.Unauthorized("invalid email or password") // nolint:wrapcheck
	}

	if user.ID == constant.Empty {
		log.Warn().Str("email", req.Email).Msg("login attempt with unknown email")

		return res, failure.Unauthorized("invalid email or password") // nolint:wrapcheck
	}

	if err := password.Verify(req.Password, user.Password); err != nil {
		log.Warn().Str("email", req.Email).Msg("login attempt with wrong password")

		return res, failure.Unauthorized("invalid email or password") // nolint:wrapcheck
	}

	if !user.Active {
		return res, failure.Unauthorized("account is deactivated") // nolint:wrapcheck
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(user.ID, user.Email, user.Name, constant.RoleAdmin)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	lastLogin := dto.UpdateLastLoginRequest{LastLogin: timezone.Now()}
	updatedFields := shared.TransformFields(lastLogin, user.Email)

	if err := s.userRepo.Update(ctx, updatedFields, emailFilter); err != nil {
		log.Warn().Err(err).Str("user_id", user.ID).Msg("failed to update last login")
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

// StaffLogin authenticates a staff member by role and login code. The code is
// only stored hashed, so every active staff member with the requested role is
// checked. More than one match means the code can no longer identify a single
// person and must be reset by an administrator.
func (s *serviceImpl) StaffLogin(ctx context.Context, req dto.StaffLoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".StaffLogin")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    staffModel.FieldRole,
				Operator: gDto.FilterOperatorEq,
				Value:    req.Role,
				Table:    staffModel.TableName,
			},
			gDto.Filter{
				Field:    staffModel.FieldActive,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    staffModel.TableName,
			},
		},
	}

	candidates, err := s.staffRepo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get staff candidates")

		return res, fmt.Errorf("failed to get staff candidates: %w", err)
	}

	var matched []staffModel.Staff

	for _, candidate := range candidates {
		if password.Verify(req.Code, candidate.Code) == nil {
			matched = append(matched, candidate)
		}
	}

	if len(matched) == 0 {
		log.Warn().Str("role", req.Role).Msg("staff login attempt with invalid code")

		return res, failure.Unauthorized("invalid role or code") // nolint:wrapcheck
	}

	if len(matched) > 1 {
		log.Error().Str("role", req.Role).Int("matches", len(matched)).Msg("staff login code matches multiple staff members")

		return res, failure.Conflict("login code is ambiguous, ask an administrator to reset it") // nolint:wrapcheck
	}

	staff := matched[0]

	tokenPair, err := s.jwtService.GenerateTokenPair(staff.ID, staff.Email, staff.Name, constant.RoleStaff)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	tokenPair, err := s.jwtService.RefreshTokens(req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized("invalid refresh token") // nolint:wrapcheck
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

// Me reports the identity carried by the access token. It reads the claims
// the auth middleware stored on the context and never touches the database.
func (s *serviceImpl) Me(ctx context.Context) (res dto.MeResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Me")
	defer scope.End()
	defer scope.TraceIfError(err)

	id, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if id == constant.Empty {
		return res, failure.Unauthorized("missing credentials") // nolint:wrapcheck
	}

	res.ID = id
	res.Email, _ = ctx.Value(constant.ContextKeyUserEmail).(string)
	res.Name, _ = ctx.Value(constant.ContextKeyUserName).(string)
	res.Role, _ = ctx.Value(constant.ContextKeyUserRole).(string)

	return res, nil
}

// ChangePassword rotates the caller's own credential. Administrators change
// their password, staff members change their login code.
func (s *serviceImpl) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChangePassword")
	defer scope.End()
	defer scope.TraceIfError(err)

	id, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if id == constant.Empty {
		return failure.Unauthorized("missing credentials") // nolint:wrapcheck
	}

	switch role {
	case constant.RoleAdmin:
		return s.changeAdminPassword(ctx, req, id)
	case constant.RoleStaff:
		return s.changeStaffCode(ctx, req, id)
	default:
		return failure.Forbidden("unknown role") // nolint:wrapcheck
	}
}

func (s *serviceImpl) changeAdminPassword(ctx context.Context, req dto.ChangePasswordRequest, userID string) error {
	filter := shared.FilterByID(userID, userModel.FieldID, userModel.TableName)

	user, err := s.userRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get admin user")

		return fmt.Errorf("failed to get admin user: %w", err)
	}

	if user.ID == constant.Empty {
		return failure.NotFound("admin user not found") // nolint:wrapcheck
	}

	if err := password.Verify(req.CurrentPassword, user.Password); err != nil {
		return failure.BadRequestFromString("current password is incorrect") // nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.NewPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash new password")

		return fmt.Errorf("failed to hash new password: %w", err)
	}

	updatePassword := dto.UpdatePasswordRequest{Password: hashedPassword}
	updatedFields := shared.TransformFields(updatePassword, user.Email)

	if err = s.userRepo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update password")

		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

func (s *serviceImpl) changeStaffCode(ctx context.Context, req dto.ChangePasswordRequest, staffID string) error {
	filter := shared.FilterByID(staffID, staffModel.FieldID, staffModel.TableName)

	staff, err := s.staffRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get staff member")

		return fmt.Errorf("failed to get staff member: %w", err)
	}

	if staff.ID == constant.Empty {
		return failure.NotFound("staff member not found") // nolint:wrapcheck
	}

	if err := password.Verify(req.CurrentPassword, staff.Code); err != nil {
		return failure.BadRequestFromString("current code is incorrect") // nolint:wrapcheck
	}

	hashedCode, err := password.Hash(req.NewPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash new code")

		return fmt.Errorf("failed to hash new code: %w", err)
	}

	updateCode := dto.UpdateCodeRequest{Code: hashedCode}
	updatedFields := shared.TransformFields(updateCode, staff.Email)

	if err = s.staffRepo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update code")

		return fmt.Errorf("failed to update code: %w", err)
	}

	return nil
}
