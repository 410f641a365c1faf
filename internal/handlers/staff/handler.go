package staff

import (
	"net/http"

	"lodge/infras/otel"
	"lodge/internal/domains/staff/model"
	"lodge/internal/domains/staff/model/dto"
	"lodge/internal/domains/staff/service"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/validator"
	"lodge/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Staff
	otel    otel.Otel
}

func New(service service.Staff, otel otel.Otel) *Handler {
	return &Handler{
		service: service,
		otel:    otel,
	}
}

func (h *Handler) Router(r chi.Router) {
	r.Route("/staff", func(r chi.Router) {
		r.Get("/", h.GetStaff)
		r.Post("/", h.CreateStaff)
		r.Get("/{id}", h.GetStaffByID)
		r.Put("/{id}", h.UpdateStaff)
		r.Delete("/{id}", h.DeleteStaff)
		r.Post("/{id}/reset-code", h.ResetCode)
		r.Get("/{id}/documents", h.GetDocuments)
		r.Post("/{id}/documents", h.AddDocument)
	})
}

// CreateStaff creates a staff member.
//
//	@Summary		Create a staff member
//	@Description	This endpoint creates a staff member and returns the one-time login code.
//	@Tags			staff
//	@Security		BearerAuth
//	@Param			request	body	dto.CreateStaffRequest	true	"Request body"
//	@Produce		json
//	@Success		201	{object}	response.Base{data=dto.CreateStaffResponse}
//	@Failure		400	{object}	response.Base
//	@Failure		500	{object}	response.Base
//	@Router			/v1/staff [post]
func (h *Handler) CreateStaff(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateStaff")
	defer scope.End()

	var req dto.CreateStaffRequest

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

// GetStaff gets staff members.
//
//	@Summary		Get staff members
//	@Description	This endpoint gets staff members with pagination and filters.
//	@Tags			staff
//	@Security		BearerAuth
//	@Param			page	query	int		false	"Page number"
//	@Param			limit	query	int		false	"Items per page"
//	@Param			role	query	string	false	"Filter by role"
//	@Param			active	query	bool	false	"Filter by active flag"
//	@Produce		json
//	@Success		200	{object}	response.Base{data=dto.GetStaffResponse}
//	@Failure		500	{object}	response.Base
//	@Router			/v1/staff [get]
func (h *Handler) GetStaff(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStaff")
	defer scope.End()

	var req gDto.QueryParams

	req.FromRequest(r, true)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if role := r.URL.Query().Get(model.FieldRole); role != constant.Empty {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldRole,
			Operator: gDto.FilterOperatorEq,
			Value:    role,
			Table:    model.TableName,
		})
	}

	if active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldActive)); active != nil {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
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

// GetStaffByID gets a staff member by ID.
//
//	@Summary		Get a staff member
//	@Description	This endpoint gets a staff member by its ID.
//	@Tags			staff
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Staff ID"
//	@Produce		json
//	@Success		200	{object}	response.Base{data=dto.StaffResponse}
//	@Failure		404	{object}	response.Base
//	@Failure		500	{object}	response.Base
//	@Router			/v1/staff/{id} [get]
func (h *Handler) GetStaffByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStaffByID")
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

// UpdateStaff updates a staff member.
//
//	@Summary		Update a staff member
//	@Description	This endpoint updates a staff member by its ID.
//	@Tags			staff
//	@Security		BearerAuth
//	@Param			id		path	string					true	"Staff ID"
//	@Param			request	body	dto.UpdateStaffRequest	true	"Request body"
//	@Produce		json
//	@Success		200	{object}	response.Base
//	@Failure		400	{object}	response.Base
//	@Failure		404	{object}	response.Base
//	@Failure		500	{object}	response.Base
//	@Router			/v1/staff/{id} [put]
func (h *Handler) UpdateStaff(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateStaff")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.UpdateStaffRequest

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

	response.WithMessage(w, http.StatusOK, "Staff member updated successfully")
}

// DeleteStaff deletes a staff member.
//
//	@Summary		Delete a staff member
//	@Description	This endpoint deletes a staff member by its ID.
//	@Tags			staff
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Staff ID"
//	@Produce		json
//	@Success		200	{object}	response.Base
//	@Failure		404	{object}	response.Base
//	@Failure		500	{object}	response.Base
//	@Router			/v1/staff/{id} [delete]
func (h *Handler) DeleteStaff(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteStaff")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := h.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Staff member deleted successfully")
}

// ResetCode resets a staff login code.
//
//	@Summary		Reset a staff login code
//	@Description	This endpoint generates a new login code for a staff member and returns it once.
//	@Tags			staff
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Staff ID"
//	@Produce		json
//	@Success		200	{object}	response.Base{data=dto.ResetCodeResponse}
//	@Failure		404	{object}	response.Base
//	@Failure		500	{object}	response.Base
//	@Router			/v1/staff/{id}/reset-code [post]
func (h *Handler) ResetCode(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ResetCode")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := h.service.ResetCode(ctx, id)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// AddDocument adds a staff document.
//
//	@Summary		Add a staff document
//	@Description	This endpoint attaches a document to a staff member.
//	@Tags			staff
//	@Security		BearerAuth
//	@Param			id		path	string					true	"Staff ID"
//	@Param			request	body	dto.AddDocumentRequest	true	"Request body"
//	@Produce		json
//	@Success		201	{object}	response.Base{data=dto.DocumentResponse}
//	@Failure		400	{object}	response.Base
//	@Failure		404	{object}	response.Base
//	@Failure		500	{object}	response.Base
//	@Router			/v1/staff/{id}/documents [post]
func (h *Handler) AddDocument(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddDocument")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.AddDocumentRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := h.service.AddDocument(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// GetDocuments gets staff documents.
//
//	@Summary		Get staff documents
//	@Description	This endpoint gets the documents attached to a staff member.
//	@Tags			staff
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Staff ID"
//	@Produce		json
//	@Success		200	{object}	response.Base{data=dto.GetDocumentsResponse}
//	@Failure		404	{object}	response.Base
//	@Failure		500	{object}	response.Base
//	@Router			/v1/staff/{id}/documents [get]
func (h *Handler) GetDocuments(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDocuments")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := h.service.GetDocuments(ctx, id)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
