// Package storage provides blob storage backed implementations of the
// StorageService interface using the Go CDK, so the bucket backend is chosen
// by URL (file://, gs://, mem://).
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"breadmap/config"
	"breadmap/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // local filesystem buckets for development
	_ "gocloud.dev/blob/gcsblob"  // Google Cloud Storage buckets
	_ "gocloud.dev/blob/memblob"  // in-memory buckets for tests
)

type blobStorage struct {
	bucket    *blob.Bucket
	publicURL string
}

// Params holds dependencies for the storage service, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and registers a shutdown hook to close it.
func New(params Params) (service.StorageService, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("storage bucket URL must be provided")
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	params.Logger.Info("Blob storage initialized",
		slog.String("bucket_url", cfg.BucketURL),
	)

	svc := &blobStorage{
		bucket:    bucket,
		publicURL: strings.TrimRight(cfg.PublicURL, "/"),
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing blob storage")

			return svc.Close()
		},
	})

	return svc, nil
}

// Upload stores the object under key and returns its public URL.
func (s *blobStorage) Upload(ctx context.Context, key string, contentType string, body io.Reader) (string, error) {
	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrapf(err, "failed to open writer for %s", key)
	}

	if _, err := io.Copy(w, body); err != nil {
		w.Close()

		return "", errors.Wrapf(err, "failed to write object %s", key)
	}
	if err := w.Close(); err != nil {
		return "", errors.Wrapf(err, "failed to finalize object %s", key)
	}

	return fmt.Sprintf("%s/%s", s.publicURL, key), nil
}

// Delete removes the object stored under key.
func (s *blobStorage) Delete(ctx context.Context, key string) error {
	return errors.WithStack(s.bucket.Delete(ctx, key))
}

// Close releases the underlying bucket handle.
func (s *blobStorage) Close() error {
	return errors.WithStack(s.bucket.Close())
}
