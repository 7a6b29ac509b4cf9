package storage

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore(t *testing.T) {
	t.Run("creates the root directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "blobs")

		store, err := NewStore(dir)

		require.NoError(t, err)
		assert.Equal(t, dir, store.BaseDir())
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("rejects empty directory", func(t *testing.T) {
		_, err := NewStore("")
		assert.Error(t, err)
	})
}

func TestStore_Save(t *testing.T) {
	t.Run("writes blob and returns relative path", func(t *testing.T) {
		store, err := NewStore(t.TempDir())
		require.NoError(t, err)

		path, err := store.Save(BucketContents, "gatsby.txt", strings.NewReader("some text"))

		require.NoError(t, err)
		assert.Equal(t, filepath.Join("contents", "gatsby.txt"), path)

		data, err := os.ReadFile(filepath.Join(store.BaseDir(), path))
		require.NoError(t, err)
		assert.Equal(t, "some text", string(data))
	})

	t.Run("creates bucket directory on first use", func(t *testing.T) {
		store, err := NewStore(t.TempDir())
		require.NoError(t, err)

		_, err = store.Save(BucketCovers, "cover.jpg", strings.NewReader("jpeg"))
		require.NoError(t, err)

		info, err := os.Stat(filepath.Join(store.BaseDir(), BucketCovers))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("silently overwrites an existing name", func(t *testing.T) {
		store, err := NewStore(t.TempDir())
		require.NoError(t, err)

		_, err = store.Save(BucketContents, "book.txt", strings.NewReader("first"))
		require.NoError(t, err)
		path, err := store.Save(BucketContents, "book.txt", strings.NewReader("second"))
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(store.BaseDir(), path))
		require.NoError(t, err)
		assert.Equal(t, "second", string(data))
	})
}

func TestStore_Open(t *testing.T) {
	t.Run("returns stored bytes", func(t *testing.T) {
		store, err := NewStore(t.TempDir())
		require.NoError(t, err)

		_, err = store.Save(BucketContents, "book.txt", strings.NewReader("contents here"))
		require.NoError(t, err)

		r, err := store.Open(BucketContents, "book.txt")
		require.NoError(t, err)
		defer r.Close()

		data, err := io.ReadAll(r)
		require.NoError(t, err)
		assert.Equal(t, "contents here", string(data))
	})

	t.Run("resolves stored references by basename", func(t *testing.T) {
		store, err := NewStore(t.TempDir())
		require.NoError(t, err)

		_, err = store.Save(BucketContents, "book.txt", strings.NewReader("x"))
		require.NoError(t, err)

		// A stored reference like "contents/book.txt" looks up the same blob.
		r, err := store.Open(BucketContents, "contents/book.txt")
		require.NoError(t, err)
		r.Close()
	})

	t.Run("returns ErrNotFound for a missing blob", func(t *testing.T) {
		store, err := NewStore(t.TempDir())
		require.NoError(t, err)

		_, err = store.Open(BucketContents, "nope.txt")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestStore_Resolve(t *testing.T) {
	t.Run("returns on-disk path for existing blob", func(t *testing.T) {
		store, err := NewStore(t.TempDir())
		require.NoError(t, err)

		_, err = store.Save(BucketCovers, "cover.jpg", strings.NewReader("jpeg"))
		require.NoError(t, err)

		path, err := store.Resolve(BucketCovers, "covers/cover.jpg")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(store.BaseDir(), BucketCovers, "cover.jpg"), path)
	})

	t.Run("returns ErrNotFound for missing blob", func(t *testing.T) {
		store, err := NewStore(t.TempDir())
		require.NoError(t, err)

		_, err = store.Resolve(BucketCovers, "missing.jpg")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
