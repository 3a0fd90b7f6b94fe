// Package storage provides blob-backed implementations of the file storage
// interface used for profile image uploads.
package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"passport/config"
	"passport/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Register the bucket URL schemes uploads may be configured with.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/s3blob"
)

// bucketStorage stores files in a blob bucket and returns public URLs.
type bucketStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

func (s *bucketStorage) Save(ctx context.Context, key string, content io.Reader, contentType string) (string, error) {
	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to open bucket writer")
	}

	if _, err := io.Copy(writer, content); err != nil {
		writer.Close()

		return "", errors.Wrap(err, "failed to write object")
	}
	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to close bucket writer")
	}

	return strings.TrimSuffix(s.publicBaseURL, "/") + "/" + key, nil
}

// StorageParams holds dependencies for FileStorages, injected by Fx
type StorageParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewFileStorages builds the storage backends from configuration. The local
// backend is always available; the online backend requires a bucket URL.
func NewFileStorages(params StorageParams) (*service.FileStorages, error) {
	cfg := params.Config.Storage
	logger := params.Logger

	if cfg == nil {
		return nil, errors.New("storage configuration is required")
	}
	if cfg.LocalDir == "" {
		return nil, errors.New("storage local directory is required")
	}

	storages := &service.FileStorages{
		Local: newLocalStorage(cfg.LocalDir),
	}

	if cfg.Bucket == "" {
		logger.Info("Blob bucket not configured, online uploads disabled")

		return storages, nil
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.Bucket)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.Bucket)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing blob bucket")

			return bucket.Close()
		},
	})

	logger.Info("Blob bucket opened", slog.String("bucket", cfg.Bucket))

	storages.Online = &bucketStorage{
		bucket:        bucket,
		publicBaseURL: cfg.PublicBaseURL,
	}

	return storages, nil
}

// Module provides the storage FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewFileStorages),
)
