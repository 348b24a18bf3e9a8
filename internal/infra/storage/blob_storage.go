// Package storage implements photo storage on a blob bucket. The bucket URL
// decides the backend (file://, gs://, s3://); uploaded objects are served
// from a public base URL.
package storage

import (
	"context"
	"log/slog"
	"strings"

	"esnaftaucuz/config"
	"esnaftaucuz/internal/domain/lifecycle"
	"esnaftaucuz/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"
)

type blobStorage struct {
	bucket    *blob.Bucket
	publicURL string
	logger    *slog.Logger
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured blob bucket and wires its lifecycle.
func New(params Params) (service.PhotoStorage, error) {
	if params.Config.Storage.BucketURL == "" {
		return nil, errors.New("storage bucket URL is required")
	}

	openCtx, cancel := context.WithTimeout(params.Ctx, lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(openCtx, params.Config.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open blob bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobStorage{
		bucket:    bucket,
		publicURL: strings.TrimSuffix(params.Config.Storage.PublicURL, "/"),
		logger:    params.Logger,
	}, nil
}

// Upload writes a photo under the given key and returns its public URL.
func (s *blobStorage) Upload(ctx context.Context, key, contentType string, data []byte) (string, error) {
	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to open writer for %s", key)
	}

	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()

		return "", errors.Wrapf(err, "failed to write %s", key)
	}

	if err := writer.Close(); err != nil {
		return "", errors.Wrapf(err, "failed to finalize %s", key)
	}

	s.logger.LogAttrs(ctx, slog.LevelDebug, "photo uploaded",
		slog.String("key", key),
		slog.Int("size", len(data)),
	)

	return s.publicURL + "/" + key, nil
}

// Delete removes a photo by key. Missing objects are not an error.
func (s *blobStorage) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrapf(err, "failed to delete %s", key)
	}

	return nil
}
