package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"lodge/config"
	"lodge/infras/objectstore"
	"lodge/infras/otel"
	"lodge/internal/domains/staff/model"
	"lodge/internal/domains/staff/model/dto"
	"lodge/internal/domains/staff/repository"
	"lodge/shared"
	"lodge/shared/cache"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	gModel "lodge/shared/model"
	"lodge/shared/password"
	"lodge/shared/proof"
	"lodge/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetStaff    = "staff:get"
	cacheGetAllStaff = "staff:gets"
	cacheCountStaff  = "staff:count"

	documentDirectory = "staff-documents"

	codeBytes = 4
)

type Staff interface {
	Create(ctx context.Context, req dto.CreateStaffRequest) (dto.CreateStaffResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetStaffResponse, error)
	Get(ctx context.Context, id string) (dto.StaffResponse, error)
	Update(ctx context.Context, req dto.UpdateStaffRequest, id string) error
	Delete(ctx context.Context, id string) error
	ResetCode(ctx context.Context, id string) (dto.ResetCodeResponse, error)
	AddDocument(ctx context.Context, id string, req dto.AddDocumentRequest) (dto.DocumentResponse, error)
	GetDocuments(ctx context.Context, id string) (dto.GetDocumentsResponse, error)
}

type serviceImpl struct {
	repo  repository.Staff
	cfg   *config.Config
	cache cache.RedisCache
	store objectstore.ObjectStore
	otel  otel.Otel
}

func New(repo repository.Staff, cfg *config.Config, cache cache.RedisCache, store objectstore.ObjectStore, otel otel.Otel) Staff {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		store: store,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateStaffRequest) (res dto.CreateStaffResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserEmail).(string)

	plainCode, hashedCode, err := newStaffCode()
	if err != nil {
		log.Error().Err(err).Msg("failed to generate staff code")

		return res, fmt.Errorf("failed to generate staff code: %w", err)
	}

	staff := req.ToModel(user, hashedCode)

	if err = s.repo.Insert(ctx, staff); err != nil {
		log.Error().Err(err).Msg("failed to create staff")

		return res, fmt.Errorf("failed to create staff: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllStaff)
		shared.InvalidateCaches(c, s.cache, cacheCountStaff)
	}()

	res.Staff.FromModel(staff)
	res.StaffCode = plainCode

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetStaffResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllStaff, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for staff")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count staff")

		return res, fmt.Errorf("failed to count staff: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get staff")

		return res, fmt.Errorf("failed to get staff: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save staff to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.StaffResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetStaff, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for staff member")

		return res, nil
	}

	staff, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get staff member")

		return res, fmt.Errorf("failed to get staff member: %w", err)
	}

	if staff.ID == constant.Empty {
		return res, failure.NotFound("staff member not found") // nolint:wrapcheck
	}

	res.FromModel(staff)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save staff member to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateStaffRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check staff existence")

		return fmt.Errorf("failed to check staff existence: %w", err)
	}

	if !exist {
		log.Error().Str("id", id).Msg("staff member not found")

		return failure.NotFound("staff member not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update staff member")

		return fmt.Errorf("failed to update staff member: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check staff existence")

		return fmt.Errorf("failed to check staff existence: %w", err)
	}

	if !exist {
		log.Error().Str("id", id).Msg("staff member not found")

		return failure.NotFound("staff member not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete staff member")

		return fmt.Errorf("failed to delete staff member: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// ResetCode replaces the staff login code and returns the new plaintext code
// once. Only the bcrypt hash is stored.
func (s *serviceImpl) ResetCode(ctx context.Context, id string) (res dto.ResetCodeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ResetCode")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check staff existence")

		return res, fmt.Errorf("failed to check staff existence: %w", err)
	}

	if !exist {
		return res, failure.NotFound("staff member not found") // nolint:wrapcheck
	}

	plainCode, hashedCode, err := newStaffCode()
	if err != nil {
		log.Error().Err(err).Msg("failed to generate staff code")

		return res, fmt.Errorf("failed to generate staff code: %w", err)
	}

	updatedFields := map[string]any{
		model.FieldCode:          hashedCode,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to reset staff code")

		return res, fmt.Errorf("failed to reset staff code: %w", err)
	}

	s.invalidate(ctx, id)

	res.StaffCode = plainCode

	return res, nil
}

func (s *serviceImpl) AddDocument(ctx context.Context, id string, req dto.AddDocumentRequest) (res dto.DocumentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddDocument")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserEmail).(string)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check staff existence")

		return res, fmt.Errorf("failed to check staff existence: %w", err)
	}

	if !exist {
		return res, failure.NotFound("staff member not found") // nolint:wrapcheck
	}

	document := model.Document{
		ID:          uuid.NewString(),
		StaffID:     id,
		Name:        req.Name,
		ContentType: proof.ContentType(req.Payload),
		URL:         s.offloadDocument(ctx, id, req.Payload),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if err = s.repo.InsertDocument(ctx, document); err != nil {
		log.Error().Err(err).Msg("failed to add staff document")

		return res, fmt.Errorf("failed to add staff document: %w", err)
	}

	res.FromModel(document)

	return res, nil
}

func (s *serviceImpl) GetDocuments(ctx context.Context, id string) (res dto.GetDocumentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetDocuments")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check staff existence")

		return res, fmt.Errorf("failed to check staff existence: %w", err)
	}

	if !exist {
		return res, failure.NotFound("staff member not found") // nolint:wrapcheck
	}

	documents, err := s.repo.GetDocuments(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get staff documents")

		return res, fmt.Errorf("failed to get staff documents: %w", err)
	}

	res.FromModels(documents)

	return res, nil
}

// offloadDocument uploads an embedded payload to object storage and returns
// its URL. The embedded payload is kept as-is when storage is disabled or the
// upload fails.
func (s *serviceImpl) offloadDocument(ctx context.Context, staffID, payload string) string {
	if payload == "" || !s.store.Enabled() || !proof.IsEmbedded(payload) {
		return payload
	}

	fileName := staffID + "-" + uuid.NewString()

	url, err := s.store.Put(ctx, documentDirectory, fileName, proof.ContentType(payload), proof.Decode(payload))
	if err != nil {
		log.Error().Err(err).Str("staffID", staffID).Msg("failed to offload staff document, keeping embedded payload")

		return payload
	}

	return url
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetStaff, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete staff member from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllStaff)
		shared.InvalidateCaches(c, s.cache, cacheCountStaff)
	}()
}

func newStaffCode() (plain, hashed string, err error) {
	buffer := make([]byte, codeBytes)

	if _, err = rand.Read(buffer); err != nil {
		return "", "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	plain = hex.EncodeToString(buffer)

	hashed, err = password.Hash(plain)
	if err != nil {
		return "", "", fmt.Errorf("failed to hash staff code: %w", err)
	}

	return plain, hashed, nil
}
