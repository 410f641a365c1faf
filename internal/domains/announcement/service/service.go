package service

import (
	"context"
	"fmt"

	"lodge/config"
	"lodge/infras/otel"
	"lodge/internal/domains/announcement/model"
	"lodge/internal/domains/announcement/model/dto"
	"lodge/internal/domains/announcement/repository"
	"lodge/shared"
	"lodge/shared/cache"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	"lodge/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllAnnouncement = "announcement:gets"
	cacheCountAnnouncement  = "announcement:count"
)

type Announcement interface {
	Create(ctx context.Context, req dto.CreateAnnouncementRequest) (dto.AnnouncementResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetAnnouncementsResponse, error)
	Update(ctx context.Context, req dto.UpdateAnnouncementRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Announcement
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Announcement, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Announcement {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateAnnouncementRequest) (res dto.AnnouncementResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	announcement := req.ToModel(user)

	if err = s.repo.Insert(ctx, announcement); err != nil {
		log.Error().Err(err).Msg("failed to create announcement")

		return res, fmt.Errorf("failed to create announcement: %w", err)
	}

	s.invalidate(ctx)

	res.FromModel(announcement)

	return res, nil
}

// GetAll lists announcements visible to the caller. Admins see everything,
// staff see active unexpired entries aimed at staff or everyone, anonymous
// callers see active unexpired public entries.
func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetAnnouncementsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	// The key is built before the visibility filters are applied, the
	// expiry cutoff inside them changes on every call.
	cacheKey := shared.BuildCacheKeyWithQuery(shared.BuildCacheKey(cacheGetAllAnnouncement, role), req, filter)

	filter = s.scopeToAudience(filter, role)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for announcements")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count announcements")

		return res, fmt.Errorf("failed to count announcements: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get announcements")

		return res, fmt.Errorf("failed to get announcements: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save announcements to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateAnnouncementRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check announcement existence")

		return fmt.Errorf("failed to check announcement existence: %w", err)
	}

	if !exist {
		return failure.NotFound("announcement not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update announcement")

		return fmt.Errorf("failed to update announcement: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check announcement existence")

		return fmt.Errorf("failed to check announcement existence: %w", err)
	}

	if !exist {
		return failure.NotFound("announcement not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete announcement")

		return fmt.Errorf("failed to delete announcement: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) scopeToAudience(filter gDto.FilterGroup, role string) gDto.FilterGroup {
	if role == constant.RoleAdmin {
		return filter
	}

	audiences := []string{model.AudiencePublic, model.AudienceAll}
	if role == constant.RoleStaff {
		audiences = []string{model.AudienceStaff, model.AudienceAll}
	}

	if filter.Operator == constant.Empty {
		filter.Operator = gDto.FilterGroupOperatorAnd
	}

	filter.Filters = append(filter.Filters,
		gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    true,
			Table:    model.TableName,
		},
		gDto.Filter{
			Field:    model.FieldAudience,
			Operator: gDto.FilterOperatorIn,
			Value:    audiences,
			Table:    model.TableName,
		},
		gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorOr,
			Filters: []any{
				gDto.Filter{
					Field:    model.FieldExpiresAt,
					Operator: gDto.FilterIsNull,
					Table:    model.TableName,
				},
				gDto.Filter{
					Field:    model.FieldExpiresAt,
					Operator: gDto.FilterOperatorGreaterEq,
					Value:    timezone.Now(),
					Table:    model.TableName,
				},
			},
		},
	)

	return filter
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllAnnouncement)
		shared.InvalidateCaches(c, s.cache, cacheCountAnnouncement)
	}()
}
