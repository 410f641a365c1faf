package checkin

import (
	"net/http"

	"lodge/infras/otel"
	"lodge/internal/domains/checkin/model"
	"lodge/internal/domains/checkin/model/dto"
	"lodge/internal/domains/checkin/service"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/validator"
	"lodge/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Checkin
	otel    otel.Otel
}

func New(service service.Checkin, otel otel.Otel) *Handler {
	return &Handler{
		service: service,
		otel:    otel,
	}
}

func (h *Handler) Router(r chi.Router) {
	r.Route("/checkins", func(r chi.Router) {
		r.Get("/", h.GetCheckins)
		r.Post("/", h.CreateCheckin)
		r.Patch("/{id}", h.UpdateCheckin)
		r.Delete("/{id}", h.DeleteCheckin)
	})
}

// CreateCheckin creates a check-in record.
//
//	@Summary		Create a check-in record
//	@Description	This endpoint creates a check-in record for a stay.
//	@Tags			checkins
//	@Security		BearerAuth
//	@Param			request	body	dto.CreateCheckinRequest	true	"Request body"
//	@Produce		json
//	@Success		201	{object}	response.Base{data=dto.CheckinResponse}
//	@Failure		400	{object}	response.Base
//	@Failure		500	{object}	response.Base
//	@Router			/v1/checkins [post]
func (h *Handler) CreateCheckin(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCheckin")
	defer scope.End()

	var req dto.CreateCheckinRequest

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

// GetCheckins gets check-in records.
//
//	@Summary		Get check-in records
//	@Description	This endpoint gets check-in records with pagination and filters.
//	@Tags			checkins
//	@Security		BearerAuth
//	@Param			page	query	int		false	"Page number"
//	@Param			limit	query	int		false	"Items per page"
//	@Param			status	query	string	false	"Filter by status"
//	@Produce		json
//	@Success		200	{object}	response.Base{data=dto.GetCheckinsResponse}
//	@Failure		500	{object}	response.Base
//	@Router			/v1/checkins [get]
func (h *Handler) GetCheckins(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCheckins")
	defer scope.End()

	var req gDto.QueryParams

	req.FromRequest(r, true)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if status := r.URL.Query().Get(model.FieldStatus); status != constant.Empty {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
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

// UpdateCheckin updates a check-in record.
//
//	@Summary		Update a check-in record
//	@Description	This endpoint updates a check-in record. Moving to checked_in or checked_out stamps the matching timestamp.
//	@Tags			checkins
//	@Security		BearerAuth
//	@Param			id		path	string						true	"Check-in record ID"
//	@Param			request	body	dto.UpdateCheckinRequest	true	"Request body"
//	@Produce		json
//	@Success		200	{object}	response.Base{data=dto.CheckinResponse}
//	@Failure		400	{object}	response.Base
//	@Failure		404	{object}	response.Base
//	@Failure		500	{object}	response.Base
//	@Router			/v1/checkins/{id} [patch]
func (h *Handler) UpdateCheckin(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCheckin")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.UpdateCheckinRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := h.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteCheckin deletes a check-in record.
//
//	@Summary		Delete a check-in record
//	@Description	This endpoint deletes a check-in record by its ID.
//	@Tags			checkins
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Check-in record ID"
//	@Produce		json
//	@Success		200	{object}	response.Base
//	@Failure		404	{object}	response.Base
//	@Failure		500	{object}	response.Base
//	@Router			/v1/checkins/{id} [delete]
func (h *Handler) DeleteCheckin(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteCheckin")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := h.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Check-in record deleted successfully")
}
