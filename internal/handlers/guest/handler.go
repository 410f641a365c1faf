package guest

import (
	"net/http"

	"lodge/infras/otel"
	"lodge/internal/domains/guest/model"
	"lodge/internal/domains/guest/model/dto"
	"lodge/internal/domains/guest/service"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/validator"
	"lodge/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Guest
	otel    otel.Otel
}

func New(service service.Guest, otel otel.Otel) *Handler {
	return &Handler{
		service: service,
		otel:    otel,
	}
}

func (h *Handler) Router(r chi.Router) {
	r.Route("/guests", func(r chi.Router) {
		r.Get("/", h.GetGuests)
		r.Post("/", h.CreateGuest)
		r.Get("/{id}", h.GetGuestByID)
		r.Put("/{id}", h.UpdateGuest)
		r.Delete("/{id}", h.DeleteGuest)
		r.Get("/{id}/receipts", h.GetReceipts)
		r.Post("/{id}/receipts", h.AddReceipt)
	})
}

// CreateGuest creates a guest profile.
//
//	@Summary		Create a guest profile
//	@Description	This endpoint creates a guest profile.
//	@Tags			guests
//	@Security		BearerAuth
//	@Param			request	body	dto.CreateGuestRequest	true	"Request body"
//	@Produce		json
//	@Success		201	{object}	response.Base{data=dto.GuestResponse}
//	@Failure		400	{object}	response.Base
//	@Failure		500	{object}	response.Base
//	@Router			/v1/guests [post]
func (h *Handler) CreateGuest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateGuest")
	defer scope.End()

	var req dto.CreateGuestRequest

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

// GetGuests gets guest profiles.
//
//	@Summary		Get guest profiles
//	@Description	This endpoint gets guest profiles with pagination and filters.
//	@Tags			guests
//	@Security		BearerAuth
//	@Param			page		query	int		false	"Page number"
//	@Param			limit		query	int		false	"Items per page"
//	@Param			guest_name	query	string	false	"Filter by guest name"
//	@Param			email		query	string	false	"Filter by email"
//	@Produce		json
//	@Success		200	{object}	response.Base{data=dto.GetGuestsResponse}
//	@Failure		500	{object}	response.Base
//	@Router			/v1/guests [get]
func (h *Handler) GetGuests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuests")
	defer scope.End()

	var req gDto.QueryParams

	req.FromRequest(r, true)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if name := r.URL.Query().Get(model.FieldGuestName); name != constant.Empty {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldGuestName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
			Table:    model.TableName,
		})
	}

	if email := r.URL.Query().Get(model.FieldEmail); email != constant.Empty {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldEmail,
			Operator: gDto.FilterOperatorEq,
			Value:    email,
			Table:    model.TableName,
		})
	}

	res, err := h.service.GetAll(ctx, req, filter)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetGuestByID gets a guest profile by ID.
//
//	@Summary		Get a guest profile
//	@Description	This endpoint gets a guest profile by its ID.
//	@Tags			guests
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Guest ID"
//	@Produce		json
//	@Success		200	{object}	response.Base{data=dto.GuestResponse}
//	@Failure		404	{object}	response.Base
//	@Failure		500	{object}	response.Base
//	@Router			/v1/guests/{id} [get]
func (h *Handler) GetGuestByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuestByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := h.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateGuest updates a guest profile.
//
//	@Summary		Update a guest profile
//	@Description	This endpoint updates a guest profile by its ID.
//	@Tags			guests
//	@Security		BearerAuth
//	@Param			id		path	string					true	"Guest ID"
//	@Param			request	body	dto.UpdateGuestRequest	true	"Request body"
//	@Produce		json
//	@Success		200	{object}	response.Base
//	@Failure		400	{object}	response.Base
//	@Failure		404	{object}	response.Base
//	@Failure		500	{object}	response.Base
//	@Router			/v1/guests/{id} [put]
func (h *Handler) UpdateGuest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateGuest")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.UpdateGuestRequest

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

	response.WithMessage(w, http.StatusOK, "Guest updated successfully")
}

// DeleteGuest deletes a guest profile.
//
//	@Summary		Delete a guest profile
//	@Description	This endpoint deletes a guest profile by its ID.
//	@Tags			guests
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Guest ID"
//	@Produce		json
//	@Success		200	{object}	response.Base
//	@Failure		404	{object}	response.Base
//	@Failure		500	{object}	response.Base
//	@Router			/v1/guests/{id} [delete]
func (h *Handler) DeleteGuest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteGuest")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := h.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Guest deleted successfully")
}

// AddReceipt adds a guest receipt.
//
//	@Summary		Add a guest receipt
//	@Description	This endpoint attaches a receipt to a guest profile.
//	@Tags			guests
//	@Security		BearerAuth
//	@Param			id		path	string					true	"Guest ID"
//	@Param			request	body	dto.AddReceiptRequest	true	"Request body"
//	@Produce		json
//	@Success		201	{object}	response.Base{data=dto.ReceiptResponse}
//	@Failure		400	{object}	response.Base
//	@Failure		404	{object}	response.Base
//	@Failure		500	{object}	response.Base
//	@Router			/v1/guests/{id}/receipts [post]
func (h *Handler) AddReceipt(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddReceipt")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.AddReceiptRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := h.service.AddReceipt(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// GetReceipts gets guest receipts.
//
//	@Summary		Get guest receipts
//	@Description	This endpoint gets the receipts attached to a guest profile.
//	@Tags			guests
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Guest ID"
//	@Produce		json
//	@Success		200	{object}	response.Base{data=dto.GetReceiptsResponse}
//	@Failure		404	{object}	response.Base
//	@Failure		500	{object}	response.Base
//	@Router			/v1/guests/{id}/receipts [get]
func (h *Handler) GetReceipts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReceipts")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := h.service.GetReceipts(ctx, id)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
