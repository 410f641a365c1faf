package housekeeping

import (
	"net/http"

	"lodge/infras/otel"
	"lodge/internal/domains/housekeeping/model"
	"lodge/internal/domains/housekeeping/model/dto"
	"lodge/internal/domains/housekeeping/service"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/validator"
	"lodge/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Housekeeping
	otel    otel.Otel
}

func New(service service.Housekeeping, otel otel.Otel) *Handler {
	return &Handler{
		service: service,
		otel:    otel,
	}
}

func (h *Handler) Router(r chi.Router) {
	r.Route("/housekeeping", func(r chi.Router) {
		r.Get("/", h.GetTasks)
		r.Post("/", h.CreateTask)
		r.Patch("/{id}", h.UpdateTask)
		r.Delete("/{id}", h.DeleteTask)
	})
}

// CreateTask creates a housekeeping task.
//
//	@Summary		Create a housekeeping task
//	@Description	This endpoint creates a housekeeping task for a room.
//	@Tags			housekeeping
//	@Security		BearerAuth
//	@Param			request	body	dto.CreateTaskRequest	true	"Request body"
//	@Produce		json
//	@Success		201	{object}	response.Base{data=dto.TaskResponse}
//	@Failure		400	{object}	response.Base
//	@Failure		500	{object}	response.Base
//	@Router			/v1/housekeeping [post]
func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTask")
	defer scope.End()

	var req dto.CreateTaskRequest

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

// GetTasks gets housekeeping tasks.
//
//	@Summary		Get housekeeping tasks
//	@Description	This endpoint gets housekeeping tasks with pagination and filters.
//	@Tags			housekeeping
//	@Security		BearerAuth
//	@Param			page		query	int		false	"Page number"
//	@Param			limit		query	int		false	"Items per page"
//	@Param			status		query	string	false	"Filter by status"
//	@Param			priority	query	string	false	"Filter by priority"
//	@Produce		json
//	@Success		200	{object}	response.Base{data=dto.GetTasksResponse}
//	@Failure		500	{object}	response.Base
//	@Router			/v1/housekeeping [get]
func (h *Handler) GetTasks(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTasks")
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

	if priority := r.URL.Query().Get(model.FieldPriority); priority != constant.Empty {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldPriority,
			Operator: gDto.FilterOperatorEq,
			Value:    priority,
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

// UpdateTask updates a housekeeping task.
//
//	@Summary		Update a housekeeping task
//	@Description	This endpoint updates a housekeeping task. Moving to completed stamps completed_at.
//	@Tags			housekeeping
//	@Security		BearerAuth
//	@Param			id		path	string					true	"Task ID"
//	@Param			request	body	dto.UpdateTaskRequest	true	"Request body"
//	@Produce		json
//	@Success		200	{object}	response.Base{data=dto.TaskResponse}
//	@Failure		400	{object}	response.Base
//	@Failure		404	{object}	response.Base
//	@Failure		500	{object}	response.Base
//	@Router			/v1/housekeeping/{id} [patch]
func (h *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTask")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.UpdateTaskRequest

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

// DeleteTask deletes a housekeeping task.
//
//	@Summary		Delete a housekeeping task
//	@Description	This endpoint deletes a housekeeping task by its ID.
//	@Tags			housekeeping
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Task ID"
//	@Produce		json
//	@Success		200	{object}	response.Base
//	@Failure		404	{object}	response.Base
//	@Failure		500	{object}	response.Base
//	@Router			/v1/housekeeping/{id} [delete]
func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTask")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := h.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Housekeeping task deleted successfully")
}
