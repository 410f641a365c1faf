package announcement

import (
	"net/http"

	"lodge/infras/otel"
	"lodge/internal/domains/announcement/model"
	"lodge/internal/domains/announcement/model/dto"
	"lodge/internal/domains/announcement/service"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/validator"
	"lodge/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Announcement
	otel    otel.Otel
}

func New(service service.Announcement, otel otel.Otel) *Handler {
	return &Handler{
		service: service,
		otel:    otel,
	}
}

func (h *Handler) Router(r chi.Router) {
	r.Route("/announcements", func(r chi.Router) {
		r.Get("/", h.GetAnnouncements)
		r.Post("/", h.CreateAnnouncement)
		r.Put("/{id}", h.UpdateAnnouncement)
		r.Delete("/{id}", h.DeleteAnnouncement)
	})
}

// CreateAnnouncement creates an announcement.
//
//	@Summary		Create an announcement
//	@Description	This endpoint creates an announcement for a given audience.
//	@Tags			announcement
//	@Security		BearerAuth
//	@Param			request	body	dto.CreateAnnouncementRequest	true	"Request body"
//	@Produce		json
//	@Success		201	{object}	response.Base{data=dto.AnnouncementResponse}
//	@Failure		400	{object}	response.Base
//	@Failure		500	{object}	response.Base
//	@Router			/v1/announcements [post]
func (h *Handler) CreateAnnouncement(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateAnnouncement")
	defer scope.End()

	var req dto.CreateAnnouncementRequest

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

// GetAnnouncements gets announcements visible to the caller.
//
//	@Summary		Get announcements
//	@Description	This endpoint gets announcements. The result is scoped to the caller's role.
//	@Tags			announcement
//	@Param			page		query	int		false	"Page number"
//	@Param			limit		query	int		false	"Items per page"
//	@Param			audience	query	string	false	"Filter by audience"
//	@Param			is_active	query	bool	false	"Filter by active flag"
//	@Produce		json
//	@Success		200	{object}	response.Base{data=dto.GetAnnouncementsResponse}
//	@Failure		500	{object}	response.Base
//	@Router			/v1/announcements [get]
func (h *Handler) GetAnnouncements(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAnnouncements")
	defer scope.End()

	var req gDto.QueryParams

	req.FromRequest(r, true)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if audience := r.URL.Query().Get(model.FieldAudience); audience != constant.Empty {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldAudience,
			Operator: gDto.FilterOperatorEq,
			Value:    audience,
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

// UpdateAnnouncement updates an announcement.
//
//	@Summary		Update an announcement
//	@Description	This endpoint updates an announcement by its ID.
//	@Tags			announcement
//	@Security		BearerAuth
//	@Param			id		path	string							true	"Announcement ID"
//	@Param			request	body	dto.UpdateAnnouncementRequest	true	"Request body"
//	@Produce		json
//	@Success		200	{object}	response.Base
//	@Failure		400	{object}	response.Base
//	@Failure		404	{object}	response.Base
//	@Failure		500	{object}	response.Base
//	@Router			/v1/announcements/{id} [put]
func (h *Handler) UpdateAnnouncement(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateAnnouncement")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.UpdateAnnouncementRequest

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

	response.WithMessage(w, http.StatusOK, "Announcement updated successfully")
}

// DeleteAnnouncement deletes an announcement.
//
//	@Summary		Delete an announcement
//	@Description	This endpoint deletes an announcement by its ID.
//	@Tags			announcement
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Announcement ID"
//	@Produce		json
//	@Success		200	{object}	response.Base
//	@Failure		404	{object}	response.Base
//	@Failure		500	{object}	response.Base
//	@Router			/v1/announcements/{id} [delete]
func (h *Handler) DeleteAnnouncement(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteAnnouncement")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := h.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Announcement deleted successfully")
}
