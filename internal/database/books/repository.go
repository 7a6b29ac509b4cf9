// Package books provides database operations for book records.
//
// # Usage
//
//	repo := books.NewRepository(db)
//	book, err := repo.GetBookByID(id)
package books

import (
	"errors"

	"gorm.io/gorm"

	"github.com/booklore/bookshelf/internal/entities"
)

// ErrBookNotFound is returned when a book id does not resolve.
var ErrBookNotFound = errors.New("book not found")

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateBook inserts a new book record and returns it with the assigned
// id. Field validation is the caller's responsibility.
func (r *Repository) CreateBook(book *entities.Book) (*entities.Book, error) {
	if err := r.db.Create(book).Error; err != nil {
		return nil, err
	}
	return book, nil
}

// GetBookByID retrieves a book by id.
func (r *Repository) GetBookByID(id uint) (*entities.Book, error) {
	var book entities.Book
	err := r.db.First(&book, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBookNotFound
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// GetAllBooks returns every book record ordered by id ascending.
func (r *Repository) GetAllBooks() ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Order("id ASC").Find(&books).Error
	return books, err
}
