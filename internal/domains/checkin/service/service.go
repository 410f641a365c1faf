package service

import (
	"context"
	"fmt"

	"lodge/config"
	"lodge/infras/otel"
	"lodge/internal/domains/checkin/model"
	"lodge/internal/domains/checkin/model/dto"
	"lodge/internal/domains/checkin/repository"
	"lodge/shared"
	"lodge/shared/cache"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	"lodge/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllCheckin = "checkin:gets"
	cacheCountCheckin  = "checkin:count"
)

type Checkin interface {
	Create(ctx context.Context, req dto.CreateCheckinRequest) (dto.CheckinResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetCheckinsResponse, error)
	Update(ctx context.Context, req dto.UpdateCheckinRequest, id string) (dto.CheckinResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Checkin
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Checkin, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Checkin {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateCheckinRequest) (res dto.CheckinResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	record := req.ToModel(user)

	// A record may legitimately be created mid-stay, stamp the timestamps
	// the status implies.
	now := timezone.Now()
	if record.Status == model.StatusCheckedIn {
		record.CheckedInAt = &now
	}

	if record.Status == model.StatusCheckedOut {
		record.CheckedOutAt = &now
	}

	if err = s.repo.Insert(ctx, record); err != nil {
		log.Error().Err(err).Msg("failed to create check-in record")

		return res, fmt.Errorf("failed to create check-in record: %w", err)
	}

	s.invalidate(ctx)

	res.FromModel(record)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetCheckinsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllCheckin, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for check-in records")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count check-in records")

		return res, fmt.Errorf("failed to count check-in records: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get check-in records")

		return res, fmt.Errorf("failed to get check-in records: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save check-in records to cache")
		}
	}()

	return res, nil
}

// Update applies a partial update. Moving to checked_in or checked_out stamps
// the matching timestamp once, a record that already carries the timestamp
// keeps the original value.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateCheckinRequest, id string) (res dto.CheckinResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	record, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get check-in record")

		return res, fmt.Errorf("failed to get check-in record: %w", err)
	}

	if record.ID == constant.Empty {
		return res, failure.NotFound("check-in record not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)

	now := timezone.Now()

	if req.Status == model.StatusCheckedIn && record.CheckedInAt == nil {
		updatedFields[model.FieldCheckedInAt] = now
		record.CheckedInAt = &now
	}

	if req.Status == model.StatusCheckedOut && record.CheckedOutAt == nil {
		updatedFields[model.FieldCheckedOutAt] = now
		record.CheckedOutAt = &now
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update check-in record")

		return res, fmt.Errorf("failed to update check-in record: %w", err)
	}

	s.invalidate(ctx)

	if req.Status != constant.Empty {
		record.Status = req.Status
	}

	if req.RoomID != constant.Empty {
		record.RoomID = req.RoomID
	}

	if req.RoomNumber != constant.Empty {
		record.RoomNumber = req.RoomNumber
	}

	if req.Notes != nil {
		record.Notes = *req.Notes
	}

	res.FromModel(record)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check check-in record existence")

		return fmt.Errorf("failed to check check-in record existence: %w", err)
	}

	if !exist {
		return failure.NotFound("check-in record not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete check-in record")

		return fmt.Errorf("failed to delete check-in record: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllCheckin)
		shared.InvalidateCaches(c, s.cache, cacheCountCheckin)
	}()
}
