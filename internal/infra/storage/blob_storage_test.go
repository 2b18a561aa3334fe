package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"verdeluxe/config"
	domainerrors "verdeluxe/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"gocloud.dev/blob/memblob"
)

func TestBlobStorage_PutOpenDelete(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { bucket.Close() })

	store := NewBlobStorage(bucket, "/uploads/")
	ctx := context.Background()
	key := "plants/3f1e/9a2b.jpg"

	size, err := store.Put(ctx, key, "image/jpeg", strings.NewReader("jpeg-bytes"))
	require.NoError(t, err)
	assert.Equal(t, int64(10), size)

	reader, contentType, err := store.Open(ctx, key)
	require.NoError(t, err)
	body, err := io.ReadAll(reader)
	require.NoError(t, err)
	require.NoError(t, reader.Close())
	assert.Equal(t, "jpeg-bytes", string(body))
	assert.Equal(t, "image/jpeg", contentType)

	assert.Equal(t, "/uploads/plants/3f1e/9a2b.jpg", store.URL(key))

	require.NoError(t, store.Delete(ctx, key))
	_, _, err = store.Open(ctx, key)
	assert.ErrorIs(t, err, domainerrors.ErrPhotoNotFound)

	// Deleting a missing object is not an error.
	assert.NoError(t, store.Delete(ctx, key))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("connection reset") }

func TestBlobStorage_PutAbortsOnReadError(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { bucket.Close() })

	store := NewBlobStorage(bucket, "")
	ctx := context.Background()

	_, err := store.Put(ctx, "plants/p/broken.png", "image/png", failingReader{})
	require.Error(t, err)

	exists, err := bucket.Exists(ctx, "plants/p/broken.png")
	require.NoError(t, err)
	assert.False(t, exists)
	assert.Equal(t, "/uploads/plants/p/x.png", store.URL("plants/p/x.png"))
}

func TestBlobStorage_RejectsEscapingKeys(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { bucket.Close() })

	store := NewBlobStorage(bucket, "/uploads")
	ctx := context.Background()

	for _, key := range []string{"", "/etc/passwd", "plants/../../secret", "plants//a.jpg"} {
		_, err := store.Put(ctx, key, "image/png", strings.NewReader("x"))
		assert.Error(t, err, key)

		_, _, err = store.Open(ctx, key)
		assert.ErrorIs(t, err, domainerrors.ErrPhotoNotFound, key)
	}
}

func TestNewPhotoStorage(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	store, err := NewPhotoStorage(Params{
		Lc:     lc,
		Ctx:    context.Background(),
		Config: &config.Config{Storage: &config.StorageConfig{BucketURL: "file://" + t.TempDir() + "/photos", PublicPath: "/uploads"}},
		Logger: slog.New(slog.DiscardHandler),
	})
	require.NoError(t, err)

	_, err = store.Put(context.Background(), "plants/a/b.webp", "image/webp", strings.NewReader("webp"))
	require.NoError(t, err)

	lc.RequireStart().RequireStop()

	_, err = NewPhotoStorage(Params{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: &config.Config{},
		Logger: slog.New(slog.DiscardHandler),
	})
	assert.Error(t, err)
}

func TestWithCreateDir(t *testing.T) {
	got, err := withCreateDir("file:///var/lib/verdeluxe/uploads")
	require.NoError(t, err)
	assert.Equal(t, "file:///var/lib/verdeluxe/uploads?create_dir=true", got)

	got, err = withCreateDir("gs://verdeluxe-photos")
	require.NoError(t, err)
	assert.Equal(t, "gs://verdeluxe-photos", got)
}
