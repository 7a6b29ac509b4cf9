package http

import (
	"github.com/booklore/bookshelf/internal/entities"
	"github.com/booklore/bookshelf/internal/library"
)

// This file consolidates the store interface definitions used by HTTP
// controllers. Each controller takes only the slice of behavior it
// needs, so tests can substitute fakes per concern.

// BookStore provides read access to book records.
type BookStore interface {
	GetBookByID(id uint) (*entities.Book, error)
	GetAllBooks() ([]entities.Book, error)
}

// UserStore provides registration and credential lookup.
type UserStore interface {
	CreateUser(username, password string) (*entities.User, error)
	FindByCredentials(username, password string) (*entities.User, error)
}

// ShelfStore provides bookshelf membership operations.
type ShelfStore interface {
	AddToShelf(userID, bookID uint) (*entities.BookshelfEntry, error)
	RemoveFromShelf(userID, bookID uint) error
	GetShelfBooks(userID uint) ([]entities.Book, error)
}

// ContentResolver resolves stored blob references to servable paths.
type ContentResolver interface {
	Resolve(bucket, name string) (string, error)
}

// BookUploader accepts a new book submission.
type BookUploader interface {
	UploadBook(req library.UploadRequest) (*entities.Book, error)
}
