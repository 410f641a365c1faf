package booking

import (
	"net/http"

	"lodge/infras/otel"
	"lodge/internal/domains/booking/model"
	"lodge/internal/domains/booking/model/dto"
	"lodge/internal/domains/booking/service"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/validator"
	"lodge/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) *Handler {
	return &Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.SubmitBooking)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/{reference}", handler.GetBookingByReference)
		routerGroup.Put("/{reference}/proof", handler.UpdatePaymentProof)
		routerGroup.Patch("/{reference}/status", handler.UpdateStatus)
		routerGroup.Patch("/{reference}/meta", handler.UpdateMeta)
	})
}

// SubmitBooking handles the submission of a new booking.
// @Summary Submit a new booking
// @Description Submit a new room booking and receive a reference number for tracking.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.SubmitBookingRequest true "Submit Booking Request"
// @Success 201 {object} response.Data[dto.SubmitBookingResponse] "Booking submitted successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
func (handler *Handler) SubmitBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitBooking")
	defer scope.End()

	req := dto.SubmitBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Submit(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to submit booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking submitted successfully with reference " + res.ReferenceNumber)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetBookings retrieves all bookings based on query parameters.
// @Summary Get all bookings
// @Description Retrieve all bookings with optional filtering and pagination.
// @Tags Booking
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status"
// @Param payment_status query string false "Filter by payment status"
// @Param room_type query string false "Filter by room type"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of bookings"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	status := r.URL.Query().Get(model.FieldStatus)
	paymentStatus := r.URL.Query().Get(model.FieldPaymentStatus)
	roomType := r.URL.Query().Get(model.FieldRoomType)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	// Only add filters if the values are non-empty
	if status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.MetaTableName,
		})
	}

	if paymentStatus != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldPaymentStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    paymentStatus,
			Table:    model.MetaTableName,
		})
	}

	if roomType != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRoomType,
			Operator: gDto.FilterOperatorEq,
			Value:    roomType,
			Table:    model.TableName,
		})
	}

	bookings, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetBookingByReference retrieves a booking by its reference number.
// @Summary Get a booking by reference number
// @Description Retrieve a booking and its current status using the reference number.
// @Tags Booking
// @Accept json
// @Produce json
// @Param reference path string true "Booking Reference Number"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{reference} [get]
func (handler *Handler) GetBookingByReference(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByReference")
	defer scope.End()

	reference := chi.URLParam(r, constant.RequestParamReference)

	booking, err := handler.service.GetByReference(ctx, reference)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking by reference")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking retrieved successfully")

	response.WithJSON(w, http.StatusOK, booking)
}

// UpdatePaymentProof attaches a payment proof to an existing booking.
// @Summary Update booking payment proof
// @Description Attach or replace the payment proof of a booking using its reference number.
// @Tags Booking
// @Accept json
// @Produce json
// @Param reference path string true "Booking Reference Number"
// @Param request body dto.UpdatePaymentProofRequest true "Update Payment Proof Request"
// @Success 200 {object} response.Data[dto.BookingMetaResponse] "Payment proof updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{reference}/proof [put]
func (handler *Handler) UpdatePaymentProof(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePaymentProof")
	defer scope.End()

	reference := chi.URLParam(r, constant.RequestParamReference)

	req := dto.UpdatePaymentProofRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	meta, err := handler.service.UpdatePaymentProof(ctx, reference, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update payment proof")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Payment proof updated successfully for booking " + reference)

	response.WithJSON(w, http.StatusOK, meta)
}

// UpdateStatus updates the status of an existing booking.
// @Summary Update booking status
// @Description Update the status and optionally the payment status of a booking.
// @Tags Booking
// @Accept json
// @Produce json
// @Param reference path string true "Booking Reference Number"
// @Param request body dto.UpdateStatusRequest true "Update Status Request"
// @Success 200 {object} response.Data[dto.BookingMetaResponse] "Booking status updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{reference}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateStatus")
	defer scope.End()

	reference := chi.URLParam(r, constant.RequestParamReference)

	req := dto.UpdateStatusRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	meta, err := handler.service.UpdateStatus(ctx, reference, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking status")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	scope.AddEvent("Booking status updated successfully by user " + user)

	response.WithJSON(w, http.StatusOK, meta)
}

// UpdateMeta updates the mutable fields of an existing booking.
// @Summary Update booking meta
// @Description Update the mutable status fields of a booking in one request.
// @Tags Booking
// @Accept json
// @Produce json
// @Param reference path string true "Booking Reference Number"
// @Param request body dto.UpdateMetaRequest true "Update Meta Request"
// @Success 200 {object} response.Data[dto.BookingMetaResponse] "Booking meta updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{reference}/meta [patch]
// @Security BearerAuth
func (handler *Handler) UpdateMeta(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateMeta")
	defer scope.End()

	reference := chi.URLParam(r, constant.RequestParamReference)

	req := dto.UpdateMetaRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	meta, err := handler.service.UpdateMeta(ctx, reference, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking meta")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	scope.AddEvent("Booking meta updated successfully by user " + user)

	response.WithJSON(w, http.StatusOK, meta)
}
