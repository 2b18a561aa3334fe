// Package storage keeps plant photo binaries in a gocloud.dev blob bucket.
package storage

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"path"
	"strings"

	"verdeluxe/config"
	domainerrors "verdeluxe/internal/domain/errors"
	"verdeluxe/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"
)

const defaultPublicPath = "/uploads"

type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

type blobStorage struct {
	bucket     *blob.Bucket
	publicPath string
}

// NewPhotoStorage opens the bucket named by storage.bucketUrl.
func NewPhotoStorage(params Params) (service.PhotoStorage, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("storage.bucketUrl is required")
	}

	bucketURL, err := withCreateDir(cfg.BucketURL)
	if err != nil {
		return nil, err
	}

	bucket, err := blob.OpenBucket(params.Ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", cfg.BucketURL)
	}

	params.Logger.Info("Photo storage opened", slog.String("bucket", cfg.BucketURL))

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing photo storage")

			return errors.WithStack(bucket.Close())
		},
	})

	return NewBlobStorage(bucket, cfg.PublicPath), nil
}

func NewBlobStorage(bucket *blob.Bucket, publicPath string) service.PhotoStorage {
	publicPath = strings.TrimRight(publicPath, "/")
	if publicPath == "" {
		publicPath = defaultPublicPath
	}

	return &blobStorage{bucket: bucket, publicPath: publicPath}
}

func (s *blobStorage) Put(ctx context.Context, key, contentType string, r io.Reader) (int64, error) {
	if err := validateKey(key); err != nil {
		return 0, err
	}

	// Cancelling the writer's context before Close aborts the upload.
	writeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	writer, err := s.bucket.NewWriter(writeCtx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return 0, errors.Wrapf(err, "open writer for %s", key)
	}

	written, err := io.Copy(writer, r)
	if err != nil {
		cancel()
		_ = writer.Close()

		return 0, errors.Wrapf(err, "write %s", key)
	}

	if err := writer.Close(); err != nil {
		return 0, errors.Wrapf(err, "commit %s", key)
	}

	return written, nil
}

func (s *blobStorage) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	if err := validateKey(key); err != nil {
		return nil, "", domainerrors.ErrPhotoNotFound
	}

	reader, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, "", domainerrors.ErrPhotoNotFound
		}

		return nil, "", errors.Wrapf(err, "open %s", key)
	}

	return reader, reader.ContentType(), nil
}

func (s *blobStorage) Delete(ctx context.Context, key string) error {
	if err := validateKey(key); err != nil {
		return err
	}

	if err := s.bucket.Delete(ctx, key); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "delete %s", key)
	}

	return nil
}

func (s *blobStorage) URL(key string) string {
	return s.publicPath + "/" + key
}

// validateKey rejects keys that escape the bucket or are not clean paths.
func validateKey(key string) error {
	if key == "" || strings.HasPrefix(key, "/") || path.Clean(key) != key || strings.Contains(key, "..") {
		return errors.Errorf("invalid object key %q", key)
	}

	return nil
}

// withCreateDir makes fileblob create the upload directory on first use.
func withCreateDir(bucketURL string) (string, error) {
	u, err := url.Parse(bucketURL)
	if err != nil {
		return "", errors.Wrap(err, "parse bucket url")
	}
	if u.Scheme != "file" {
		return bucketURL, nil
	}

	query := u.Query()
	if query.Get("create_dir") == "" {
		query.Set("create_dir", "true")
	}
	u.RawQuery = query.Encode()

	return u.String(), nil
}
