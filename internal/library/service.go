// Package library implements the book ingestion workflow: storing the
// uploaded blobs and creating the metadata record as one logical unit.
package library

import (
	"errors"
	"fmt"
	"io"

	"github.com/booklore/bookshelf/internal/entities"
	"github.com/booklore/bookshelf/internal/storage"
)

// ErrMissingFields is returned when title, author or the content blob is
// absent from an upload.
var ErrMissingFields = errors.New("missing required fields")

// BookCreator is the slice of the books repository the workflow needs.
type BookCreator interface {
	CreateBook(book *entities.Book) (*entities.Book, error)
}

// ContentStore is the slice of the content store the workflow needs.
type ContentStore interface {
	Save(bucket, name string, r io.Reader) (string, error)
}

// Upload is a named byte stream submitted by a client. The filename is
// used verbatim as the storage key.
type Upload struct {
	Filename string
	Data     io.Reader
}

// UploadRequest is a new book submission. Cover is optional; everything
// else is required.
type UploadRequest struct {
	Title   string
	Author  string
	Cover   *Upload
	Content *Upload
}

// Service composes the content store and the books repository.
type Service struct {
	store ContentStore
	books BookCreator
}

// NewService creates a new ingestion service.
func NewService(store ContentStore, books BookCreator) *Service {
	return &Service{
		store: store,
		books: books,
	}
}

// UploadBook validates the submission, stores the cover (when present)
// and the content blob, then creates the book record referencing the
// stored paths.
//
// The blob writes and the record insert are two separate fallible steps
// with no rollback: if the insert fails after a blob write succeeded,
// the blob stays on disk with no referencing record.
func (s *Service) UploadBook(req UploadRequest) (*entities.Book, error) {
	if req.Title == "" || req.Author == "" || req.Content == nil {
		return nil, ErrMissingFields
	}

	var coverPath string
	if req.Cover != nil {
		path, err := s.store.Save(storage.BucketCovers, req.Cover.Filename, req.Cover.Data)
		if err != nil {
			return nil, fmt.Errorf("failed to store cover: %w", err)
		}
		coverPath = path
	}

	contentPath, err := s.store.Save(storage.BucketContents, req.Content.Filename, req.Content.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to store content: %w", err)
	}

	book := &entities.Book{
		Title:    req.Title,
		Author:   req.Author,
		CoverURL: coverPath,
		FilePath: contentPath,
	}

	created, err := s.books.CreateBook(book)
	if err != nil {
		return nil, fmt.Errorf("failed to create book record: %w", err)
	}

	return created, nil
}
