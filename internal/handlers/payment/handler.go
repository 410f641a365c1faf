package payment

import (
	"net/http"

	"lodge/infras/otel"
	"lodge/internal/domains/payment/model/dto"
	"lodge/internal/domains/payment/service"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/validator"
	"lodge/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Payment
	otel    otel.Otel
}

func New(service service.Payment, otel otel.Otel) *Handler {
	return &Handler{
		service: service,
		otel:    otel,
	}
}

func (h *Handler) Router(r chi.Router) {
	r.Route("/payment-accounts", func(r chi.Router) {
		r.Get("/", h.GetAccounts)
		r.Post("/", h.CreateAccount)
		r.Put("/{id}", h.UpdateAccount)
		r.Delete("/{id}", h.DeleteAccount)
	})
}

// CreateAccount creates a payment account.
//
//	@Summary		Create a payment account
//	@Description	This endpoint creates a bank account used for transfer payments.
//	@Tags			payment
//	@Security		BearerAuth
//	@Param			request	body	dto.CreateAccountRequest	true	"Request body"
//	@Produce		json
//	@Success		201	{object}	response.Base{data=dto.AccountResponse}
//	@Failure		400	{object}	response.Base
//	@Failure		500	{object}	response.Base
//	@Router			/v1/payment-accounts [post]
func (h *Handler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateAccount")
	defer scope.End()

	var req dto.CreateAccountRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := h.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// GetAccounts gets payment accounts.
//
//	@Summary		Get payment accounts
//	@Description	This endpoint gets payment accounts. Non-admin callers only see active accounts.
//	@Tags			payment
//	@Param			page	query	int	false	"Page number"
//	@Param			limit	query	int	false	"Items per page"
//	@Produce		json
//	@Success		200	{object}	response.Base{data=dto.GetAccountsResponse}
//	@Failure		500	{object}	response.Base
//	@Router			/v1/payment-accounts [get]
func (h *Handler) GetAccounts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAccounts")
	defer scope.End()

	var req gDto.QueryParams

	req.FromRequest(r, true)

	res, err := h.service.GetAll(ctx, req, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	})
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateAccount updates a payment account.
//
//	@Summary		Update a payment account
//	@Description	This endpoint updates a payment account by its ID.
//	@Tags			payment
//	@Security		BearerAuth
//	@Param			id		path	string						true	"Account ID"
//	@Param			request	body	dto.UpdateAccountRequest	true	"Request body"
//	@Produce		json
//	@Success		200	{object}	response.Base
//	@Failure		400	{object}	response.Base
//	@Failure		404	{object}	response.Base
//	@Failure		500	{object}	response.Base
//	@Router			/v1/payment-accounts/{id} [put]
func (h *Handler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateAccount")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.UpdateAccountRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := h.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Payment account updated successfully")
}

// DeleteAccount deletes a payment account.
//
//	@Summary		Delete a payment account
//	@Description	This endpoint deletes a payment account by its ID.
//	@Tags			payment
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Account ID"
//	@Produce		json
//	@Success		200	{object}	response.Base
//	@Failure		404	{object}	response.Base
//	@Failure		500	{object}	response.Base
//	@Router			/v1/payment-accounts/{id} [delete]
func (h *Handler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteAccount")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := h.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Payment account deleted successfully")
}
