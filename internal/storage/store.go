// Package storage persists opaque blobs (cover images, book contents)
// under bucket directories below a single filesystem root.
package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const (
	// BucketCovers holds uploaded cover images.
	BucketCovers = "covers"
	// BucketContents holds book content files.
	BucketContents = "contents"
)

// ErrNotFound is returned when no blob exists under the requested name.
var ErrNotFound = errors.New("blob not found")

// Store is a filesystem-backed content store. Blob names are the original
// client-supplied filenames, stored verbatim: writing an existing name
// silently overwrites the previous blob, and names are not sanitized on
// write. Reads only ever trust the basename component.
type Store struct {
	baseDir string
}

// NewStore creates a content store rooted at baseDir, creating the root
// directory if absent.
func NewStore(baseDir string) (*Store, error) {
	if baseDir == "" {
		return nil, errors.New("storage directory is required")
	}
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &Store{baseDir: baseDir}, nil
}

// Save writes the blob under bucket/name, creating the bucket directory
// on first use, and returns the relative path used as the stored
// reference.
func (s *Store) Save(bucket, name string, r io.Reader) (string, error) {
	dir := filepath.Join(s.baseDir, bucket)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create bucket dir: %w", err)
	}

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("create blob: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return "", fmt.Errorf("write blob: %w", err)
	}

	return filepath.Join(bucket, name), nil
}

// Open returns a reader over the blob stored under bucket/name. Only the
// basename of name is used for lookup, so stored references like
// "contents/gatsby.txt" resolve the same as bare filenames.
func (s *Store) Open(bucket, name string) (io.ReadCloser, error) {
	path, err := s.Resolve(bucket, name)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open blob: %w", err)
	}
	return f, nil
}

// Resolve returns the on-disk path of the blob stored under bucket/name,
// or ErrNotFound if no such blob exists.
func (s *Store) Resolve(bucket, name string) (string, error) {
	path := filepath.Join(s.baseDir, bucket, filepath.Base(name))
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("stat blob: %w", err)
	}
	if info.IsDir() {
		return "", ErrNotFound
	}
	return path, nil
}

// BaseDir returns the storage root directory.
func (s *Store) BaseDir() string {
	return s.baseDir
}
