package objectstore

//go:generate go run go.uber.org/mock/mockgen -source=./objectstore.go -destination=./mocks/objectstore_mock.go -package=mocks

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"

	"lodge/config"
	"lodge/infras/otel"
	"lodge/shared/constant"
)

const (
	otelAttrObjectKey = "object_key"
	otelAttrBucket    = "bucket"
)

// ObjectStore offloads binary payloads (payment proofs, staff documents)
// to an S3 compatible bucket. When disabled the payloads stay embedded in
// the database rows.
type ObjectStore interface {
	Enabled() bool
	Put(ctx context.Context, directory, fileName, contentType string, data []byte) (url string, err error)
	Delete(ctx context.Context, directory, objectName string) error
}

type s3Store struct {
	client *s3.Client
	config *config.Config
	otel   otel.Otel
}

func (store *s3Store) Enabled() bool {
	return true
}

func (store *s3Store) Put(ctx context.Context, directory, fileName, contentType string, data []byte) (url string, err error) {
	ctx, scope := store.otel.NewScope(ctx, constant.OtelStorageScopeName, constant.OtelStorageScopeName+".Put")
	defer scope.End()
	defer scope.TraceIfError(err)

	bucket := store.config.Storage.S3.Bucket
	objectKey := path.Join(directory, fileName)

	scope.SetAttributes(map[string]any{
		otelAttrObjectKey: objectKey,
		otelAttrBucket:    bucket,
	})

	fileReader := bytes.NewReader(data)

	_, err = store.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(objectKey),
		Body:          fileReader,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(fileReader.Size()),
	})
	if err != nil {
		log.Error().Err(err).Str("objectKey", objectKey).Msg("failed to upload object")

		return constant.Empty, fmt.Errorf("failed to upload object: %w", err)
	}

	return fmt.Sprintf("%s/%s", store.config.Storage.S3.BaseURL, objectKey), nil
}

func (store *s3Store) Delete(ctx context.Context, directory, objectName string) (err error) {
	ctx, scope := store.otel.NewScope(ctx, constant.OtelStorageScopeName, constant.OtelStorageScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	bucket := store.config.Storage.S3.Bucket
	objectKey := path.Join(directory, objectName)

	scope.SetAttributes(map[string]any{
		otelAttrObjectKey: objectKey,
		otelAttrBucket:    bucket,
	})

	_, err = store.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		log.Error().Err(err).Str("objectKey", objectKey).Msg("failed to delete object")

		return fmt.Errorf("failed to delete object: %w", err)
	}

	return nil
}

type disabledStore struct{}

func (disabledStore) Enabled() bool {
	return false
}

func (disabledStore) Put(_ context.Context, _, _, _ string, _ []byte) (string, error) {
	return constant.Empty, nil
}

func (disabledStore) Delete(_ context.Context, _, _ string) error {
	return nil
}

func New(cfg *config.Config, otl otel.Otel) ObjectStore {
	if !cfg.Storage.S3.Enable {
		log.Info().Msg("Object storage disabled, binary payloads stay embedded")

		return disabledStore{}
	}

	staticProvider := credentials.NewStaticCredentialsProvider(
		cfg.Storage.S3.AccessKey,
		cfg.Storage.S3.SecretKey,
		"",
	)

	awsCfg, err := awsConfig.LoadDefaultConfig(
		context.TODO(),
		awsConfig.WithCredentialsProvider(staticProvider),
		awsConfig.WithRegion(cfg.Storage.S3.Region),
	)
	if err != nil {
		log.Err(err).Msg("Error loading AWS configuration")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = true
	})

	log.Info().Str("bucket", cfg.Storage.S3.Bucket).Msg("Object storage initialized")

	return &s3Store{
		client: client,
		config: cfg,
		otel:   otl,
	}
}
