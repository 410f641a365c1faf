package auth

import (
	"net/http"

	"lodge/infras/otel"
	"lodge/internal/domains/auth/model/dto"
	"lodge/internal/domains/auth/service"
	"lodge/shared/constant"
	"lodge/shared/validator"
	"lodge/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Auth
	otel    otel.Otel
}

func New(service service.Auth, otel otel.Otel) *Handler {
	return &Handler{
		service: service,
		otel:    otel,
	}
}

func (h *Handler) Router(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/init", h.Init)
		r.Post("/login", h.Login)
		r.Post("/staff/login", h.StaffLogin)
		r.Post("/refresh", h.RefreshToken)
		r.Get("/me", h.Me)
		r.Post("/change-password", h.ChangePassword)
	})
}

// Init creates the first administrator account.
//
//	@Summary		Initialize the admin account
//	@Description	This endpoint creates the first administrator account. It fails once any administrator exists.
//	@Tags			auth
//	@Param			request	body	dto.InitRequest	true	"Request body"
//	@Produce		json
//	@Success		201	{object}	response.Base
//	@Failure		400	{object}	response.Base
//	@Failure		409	{object}	response.Base
//	@Failure		500	{object}	response.Base
//	@Router			/v1/auth/init [post]
func (h *Handler) Init(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Init")
	defer scope.End()

	var req dto.InitRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := h.service.Init(ctx, req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusCreated, "Admin account created successfully")
}

// Login authenticates an administrator.
//
//	@Summary		Login as administrator
//	@Description	This endpoint authenticates an administrator by email and password.
//	@Tags			auth
//	@Param			request	body	dto.LoginRequest	true	"Request body"
//	@Produce		json
//	@Success		200	{object}	response.Base{data=dto.LoginResponse}
//	@Failure		400	{object}	response.Base
//	@Failure		401	{object}	response.Base
//	@Failure		500	{object}	response.Base
//	@Router			/v1/auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	var req dto.LoginRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := h.service.Login(ctx, req)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// StaffLogin authenticates a staff member.
//
//	@Summary		Login as staff
//	@Description	This endpoint authenticates a staff member by role and login code.
//	@Tags			auth
//	@Param			request	body	dto.StaffLoginRequest	true	"Request body"
//	@Produce		json
//	@Success		200	{object}	response.Base{data=dto.LoginResponse}
//	@Failure		400	{object}	response.Base
//	@Failure		401	{object}	response.Base
//	@Failure		409	{object}	response.Base
//	@Failure		500	{object}	response.Base
//	@Router			/v1/auth/staff/login [post]
func (h *Handler) StaffLogin(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".StaffLogin")
	defer scope.End()

	var req dto.StaffLoginRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := h.service.StaffLogin(ctx, req)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// RefreshToken exchanges a refresh token for a new token pair.
//
//	@Summary		Refresh tokens
//	@Description	This endpoint exchanges a valid refresh token for a new token pair.
//	@Tags			auth
//	@Param			request	body	dto.RefreshTokenRequest	true	"Request body"
//	@Produce		json
//	@Success		200	{object}	response.Base{data=dto.RefreshTokenResponse}
//	@Failure		400	{object}	response.Base
//	@Failure		401	{object}	response.Base
//	@Failure		500	{object}	response.Base
//	@Router			/v1/auth/refresh [post]
func (h *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RefreshToken")
	defer scope.End()

	var req dto.RefreshTokenRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := h.service.RefreshToken(ctx, req)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Me returns the authenticated identity.
//
//	@Summary		Get the authenticated identity
//	@Description	This endpoint returns the identity carried by the access token.
//	@Tags			auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	response.Base{data=dto.MeResponse}
//	@Failure		401	{object}	response.Base
//	@Router			/v1/auth/me [get]
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Me")
	defer scope.End()

	res, err := h.service.Me(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ChangePassword rotates the caller's credential.
//
//	@Summary		Change the caller's credential
//	@Description	This endpoint changes the administrator password or the staff login code of the caller.
//	@Tags			auth
//	@Security		BearerAuth
//	@Param			request	body	dto.ChangePasswordRequest	true	"Request body"
//	@Produce		json
//	@Success		200	{object}	response.Base
//	@Failure		400	{object}	response.Base
//	@Failure		401	{object}	response.Base
//	@Failure		500	{object}	response.Base
//	@Router			/v1/auth/change-password [post]
func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ChangePassword")
	defer scope.End()

	var req dto.ChangePasswordRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := h.service.ChangePassword(ctx, req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Credential updated successfully")
}
