package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"lodge/config"
	"lodge/infras/event"
	"lodge/infras/objectstore"
	"lodge/infras/otel"
	"lodge/internal/domains/booking/model"
	"lodge/internal/domains/booking/model/dto"
	"lodge/internal/domains/booking/repository"
	"lodge/internal/notify"
	"lodge/shared"
	"lodge/shared/cache"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	gModel "lodge/shared/model"
	"lodge/shared/proof"
	"lodge/shared/reference"
	"lodge/shared/timezone"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"

	proofDirectory = "payment-proofs"

	eventBookingSubmitted = "booking.submitted"
	eventBookingUpdated   = "booking.meta_updated"
)

type Booking interface {
	Submit(ctx context.Context, req dto.SubmitBookingRequest) (dto.SubmitBookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	GetByReference(ctx context.Context, ref string) (dto.BookingResponse, error)
	UpdateStatus(ctx context.Context, ref string, req dto.UpdateStatusRequest) (dto.BookingMetaResponse, error)
	UpdatePaymentProof(ctx context.Context, ref string, req dto.UpdatePaymentProofRequest) (dto.BookingMetaResponse, error)
	UpdateMeta(ctx context.Context, ref string, req dto.UpdateMetaRequest) (dto.BookingMetaResponse, error)
}

type serviceImpl struct {
	repo       repository.Booking
	cfg        *config.Config
	cache      cache.RedisCache
	dispatcher notify.Dispatcher
	events     event.Publisher
	store      objectstore.ObjectStore
	otel       otel.Otel
}

func New(
	repo repository.Booking,
	cfg *config.Config,
	cache cache.RedisCache,
	dispatcher notify.Dispatcher,
	events event.Publisher,
	store objectstore.ObjectStore,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:       repo,
		cfg:        cfg,
		cache:      cache,
		dispatcher: dispatcher,
		events:     events,
		store:      store,
		otel:       otel,
	}
}

func (s *serviceImpl) Submit(ctx context.Context, req dto.SubmitBookingRequest) (res dto.SubmitBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Submit")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	if user == "" {
		user = constant.ContextSystem
	}

	ref, err := reference.Generate(ctx, func(ctx context.Context, candidate string) (bool, error) {
		return s.repo.Exist(ctx, filterByReference(candidate))
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to allocate booking reference")

		return res, fmt.Errorf("failed to allocate booking reference: %w", err)
	}

	booking, meta, err := req.ToModels(ref, user)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking request")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	meta.PaymentProof = s.offloadProof(ctx, booking.ID, meta.PaymentProof)

	if err = s.repo.Submit(ctx, booking, meta); err != nil {
		log.Error().Err(err).Msg("failed to submit booking")

		return res, fmt.Errorf("failed to submit booking: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)

		if err := s.events.Publish(c, eventBookingSubmitted, booking); err != nil {
			log.Error().Err(err).Msg("failed to publish booking submitted event")
		}
	}()

	s.notifySubmission(booking)

	res.Message = "Booking submitted successfully"
	res.ReferenceNumber = booking.ReferenceNumber

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	rows, err := s.repo.GetAllRows(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromRows(rows, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetByReference(ctx context.Context, ref string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByReference")
	defer scope.End()
	defer scope.TraceIfError(nil)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, ref)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	row, err := s.repo.GetRow(ctx, filterByReference(ref))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking by reference")

		return res, fmt.Errorf("failed to get booking by reference: %w", err)
	}

	if row.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromRow(row)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, ref string, req dto.UpdateStatusRequest) (res dto.BookingMetaResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.applyMetaUpdate(ctx, ref, func(meta *model.BookingMeta) {
		meta.Status = req.Status

		if req.PaymentStatus != "" {
			meta.PaymentStatus = req.PaymentStatus
		}
	})
}

func (s *serviceImpl) UpdatePaymentProof(ctx context.Context, ref string, req dto.UpdatePaymentProofRequest) (res dto.BookingMetaResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdatePaymentProof")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.applyMetaUpdate(ctx, ref, func(meta *model.BookingMeta) {
		meta.PaymentProof = s.offloadProof(ctx, meta.BookingID, req.PaymentProof)
	})
}

func (s *serviceImpl) UpdateMeta(ctx context.Context, ref string, req dto.UpdateMetaRequest) (res dto.BookingMetaResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateMeta")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateMetaRequest{}) {
		return res, failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	return s.applyMetaUpdate(ctx, ref, func(meta *model.BookingMeta) {
		if req.Status != "" {
			meta.Status = req.Status
		}

		if req.PaymentStatus != "" {
			meta.PaymentStatus = req.PaymentStatus
		}

		if req.PaymentProof != "" {
			meta.PaymentProof = s.offloadProof(ctx, meta.BookingID, req.PaymentProof)
		}
	})
}

// applyMetaUpdate loads the meta row for the booking behind ref,
// creating a defaulted one when absent, lets mutate rework it and
// persists the result with last-write-wins semantics.
func (s *serviceImpl) applyMetaUpdate(ctx context.Context, ref string, mutate func(meta *model.BookingMeta)) (res dto.BookingMetaResponse, err error) {
	booking, err := s.repo.Get(ctx, filterByReference(ref))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	meta, err := s.repo.GetMeta(ctx, booking.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking meta")

		return res, fmt.Errorf("failed to get booking meta: %w", err)
	}

	user, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	now := timezone.Now()

	if meta.ID == constant.Empty {
		meta = model.BookingMeta{
			ID:            uuid.NewString(),
			BookingID:     booking.ID,
			Status:        model.StatusPending,
			PaymentStatus: model.PaymentStatusUnpaid,
			Metadata: gModel.Metadata{
				CreatedAt: now,
				CreatedBy: user,
			},
		}
	}

	mutate(&meta)

	meta.ModifiedAt = now
	meta.ModifiedBy = user

	if err = s.repo.UpsertMeta(ctx, meta); err != nil {
		log.Error().Err(err).Msg("failed to upsert booking meta")

		return res, fmt.Errorf("failed to upsert booking meta: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, ref)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)

		if err := s.events.Publish(c, eventBookingUpdated, meta); err != nil {
			log.Error().Err(err).Msg("failed to publish booking meta updated event")
		}
	}()

	res.FromModel(meta)

	return res, nil
}

// offloadProof moves an embedded proof payload to object storage and
// returns its URL. The embedded payload is kept as-is when storage is
// disabled or the upload fails.
func (s *serviceImpl) offloadProof(ctx context.Context, bookingID, payload string) string {
	if payload == "" || !s.store.Enabled() || !proof.IsEmbedded(payload) {
		return payload
	}

	url, err := s.store.Put(ctx, proofDirectory, bookingID, proof.ContentType(payload), proof.Decode(payload))
	if err != nil {
		log.Error().Err(err).Str("bookingID", bookingID).Msg("failed to offload payment proof, keeping embedded payload")

		return payload
	}

	return url
}

func (s *serviceImpl) notifySubmission(booking model.Booking) {
	statusPage := s.cfg.Notify.StatusPageURL

	if admin := s.cfg.Notify.AdminEmail; admin != "" {
		s.dispatcher.EnqueueEmail(notify.Email{
			To:      admin,
			Subject: "New booking " + booking.ReferenceNumber,
			Body: fmt.Sprintf("New booking %s: %s, %s, %s to %s",
				booking.ReferenceNumber, booking.GuestName, booking.RoomType,
				booking.CheckIn.Format(constant.DateOnlyFormat), booking.CheckOut.Format(constant.DateOnlyFormat)),
		})
	}

	body := fmt.Sprintf("Thank you %s, your booking is received. Reference: %s", booking.GuestName, booking.ReferenceNumber)
	if statusPage != "" {
		body += fmt.Sprintf(". Track it at %s/%s", statusPage, booking.ReferenceNumber)
	}

	s.dispatcher.EnqueueEmail(notify.Email{
		To:      booking.GuestEmail,
		Subject: "Booking received " + booking.ReferenceNumber,
		Body:    body,
	})

	if booking.GuestPhone != "" {
		s.dispatcher.EnqueueSMS(notify.SMS{
			To:   booking.GuestPhone,
			Body: "Booking received. Reference: " + booking.ReferenceNumber,
		})
	}
}

func filterByReference(ref string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldReferenceNumber,
				Operator: gDto.FilterOperatorEq,
				Value:    ref,
				Table:    model.TableName,
			},
		},
	}
}
