package contact

import (
	"net/http"

	"lodge/infras/otel"
	"lodge/internal/domains/contact/model"
	"lodge/internal/domains/contact/model/dto"
	"lodge/internal/domains/contact/service"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/validator"
	"lodge/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Contact
	otel    otel.Otel
}

func New(service service.Contact, otel otel.Otel) *Handler {
	return &Handler{
		service: service,
		otel:    otel,
	}
}

func (h *Handler) Router(r chi.Router) {
	r.Route("/contacts", func(r chi.Router) {
		r.Get("/", h.GetContacts)
		r.Post("/", h.CreateContact)
	})
}

// CreateContact submits a contact message.
//
//	@Summary		Submit a contact message
//	@Description	This endpoint submits a message from the public contact form.
//	@Tags			contact
//	@Param			request	body	dto.CreateContactRequest	true	"Request body"
//	@Produce		json
//	@Success		201	{object}	response.Base{data=dto.ContactResponse}
//	@Failure		400	{object}	response.Base
//	@Failure		500	{object}	response.Base
//	@Router			/v1/contacts [post]
func (h *Handler) CreateContact(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateContact")
	defer scope.End()

	var req dto.CreateContactRequest

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

// GetContacts gets contact messages.
//
//	@Summary		Get contact messages
//	@Description	This endpoint gets submitted contact messages with pagination.
//	@Tags			contact
//	@Security		BearerAuth
//	@Param			page	query	int		false	"Page number"
//	@Param			limit	query	int		false	"Items per page"
//	@Param			email	query	string	false	"Filter by sender email"
//	@Produce		json
//	@Success		200	{object}	response.Base{data=dto.GetContactsResponse}
//	@Failure		500	{object}	response.Base
//	@Router			/v1/contacts [get]
func (h *Handler) GetContacts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetContacts")
	defer scope.End()

	var req gDto.QueryParams

	req.FromRequest(r, true)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
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
