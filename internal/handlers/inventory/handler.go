package inventory

import (
	"net/http"

	"lodge/infras/otel"
	"lodge/internal/domains/inventory/model"
	"lodge/internal/domains/inventory/model/dto"
	"lodge/internal/domains/inventory/service"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/validator"
	"lodge/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Inventory
	otel    otel.Otel
}

func New(service service.Inventory, otel otel.Otel) *Handler {
	return &Handler{
		service: service,
		otel:    otel,
	}
}

func (h *Handler) Router(r chi.Router) {
	r.Route("/inventory", func(r chi.Router) {
		r.Get("/", h.GetItems)
		r.Post("/", h.CreateItem)
		r.Put("/{id}", h.UpdateItem)
		r.Delete("/{id}", h.DeleteItem)
	})
}

// CreateItem creates an inventory item.
//
//	@Summary		Create an inventory item
//	@Description	This endpoint creates an inventory item.
//	@Tags			inventory
//	@Security		BearerAuth
//	@Param			request	body	dto.CreateItemRequest	true	"Request body"
//	@Produce		json
//	@Success		201	{object}	response.Base{data=dto.ItemResponse}
//	@Failure		400	{object}	response.Base
//	@Failure		500	{object}	response.Base
//	@Router			/v1/inventory [post]
func (h *Handler) CreateItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateItem")
	defer scope.End()

	var req dto.CreateItemRequest

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

// GetItems gets inventory items.
//
//	@Summary		Get inventory items
//	@Description	This endpoint gets inventory items with pagination and filters.
//	@Tags			inventory
//	@Security		BearerAuth
//	@Param			page		query	int		false	"Page number"
//	@Param			limit		query	int		false	"Items per page"
//	@Param			category	query	string	false	"Filter by category"
//	@Param			status		query	string	false	"Filter by status"
//	@Produce		json
//	@Success		200	{object}	response.Base{data=dto.GetItemsResponse}
//	@Failure		500	{object}	response.Base
//	@Router			/v1/inventory [get]
func (h *Handler) GetItems(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetItems")
	defer scope.End()

	var req gDto.QueryParams

	req.FromRequest(r, true)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if category := r.URL.Query().Get(model.FieldCategory); category != constant.Empty {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldCategory,
			Operator: gDto.FilterOperatorEq,
			Value:    category,
			Table:    model.TableName,
		})
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

// UpdateItem updates an inventory item.
//
//	@Summary		Update an inventory item
//	@Description	This endpoint updates an inventory item by its ID.
//	@Tags			inventory
//	@Security		BearerAuth
//	@Param			id		path	string					true	"Item ID"
//	@Param			request	body	dto.UpdateItemRequest	true	"Request body"
//	@Produce		json
//	@Success		200	{object}	response.Base
//	@Failure		400	{object}	response.Base
//	@Failure		404	{object}	response.Base
//	@Failure		500	{object}	response.Base
//	@Router			/v1/inventory/{id} [put]
func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateItem")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.UpdateItemRequest

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

	response.WithMessage(w, http.StatusOK, "Inventory item updated successfully")
}

// DeleteItem deletes an inventory item.
//
//	@Summary		Delete an inventory item
//	@Description	This endpoint deletes an inventory item by its ID.
//	@Tags			inventory
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Item ID"
//	@Produce		json
//	@Success		200	{object}	response.Base
//	@Failure		404	{object}	response.Base
//	@Failure		500	{object}	response.Base
//	@Router			/v1/inventory/{id} [delete]
func (h *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteItem")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := h.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Inventory item deleted successfully")
}
