// Package bookshelf provides database operations for per-user shelf
// membership, the many-to-many link between users and books.
package bookshelf

import (
	"errors"

	"gorm.io/gorm"

	"github.com/booklore/bookshelf/internal/entities"
)

var (
	// ErrUserNotFound is returned when the user id does not resolve.
	ErrUserNotFound = errors.New("user not found")
	// ErrBookNotFound is returned when the book id does not resolve.
	ErrBookNotFound = errors.New("book not found")
	// ErrAlreadyOnShelf is returned when the (user, book) pair already
	// has a membership row.
	ErrAlreadyOnShelf = errors.New("book already in bookshelf")
	// ErrNotOnShelf is returned when removing a pair with no membership.
	ErrNotOnShelf = errors.New("book not found in bookshelf")
)

// Repository handles all bookshelf membership operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new bookshelf repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// AddToShelf places a book on a user's shelf. Both ids must resolve.
// Pair uniqueness is enforced by the composite unique index on
// user_bookshelf, not by a pre-insert lookup: concurrent adds of the
// same pair leave exactly one membership row, the rest fail with
// ErrAlreadyOnShelf.
func (r *Repository) AddToShelf(userID, bookID uint) (*entities.BookshelfEntry, error) {
	if err := r.checkReferences(userID, bookID); err != nil {
		return nil, err
	}

	entry := &entities.BookshelfEntry{
		UserID: userID,
		BookID: bookID,
	}
	err := r.db.Create(entry).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, ErrAlreadyOnShelf
	}
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// RemoveFromShelf deletes the membership row for the (user, book) pair.
func (r *Repository) RemoveFromShelf(userID, bookID uint) error {
	if err := r.checkReferences(userID, bookID); err != nil {
		return err
	}

	result := r.db.Where("user_id = ? AND book_id = ?", userID, bookID).
		Delete(&entities.BookshelfEntry{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotOnShelf
	}
	return nil
}

// GetShelfBooks returns the books on a user's shelf ordered by book id
// ascending.
func (r *Repository) GetShelfBooks(userID uint) ([]entities.Book, error) {
	if err := r.checkUser(userID); err != nil {
		return nil, err
	}

	var books []entities.Book
	err := r.db.Model(&entities.Book{}).
		Joins("JOIN user_bookshelf ON user_bookshelf.book_id = books.id").
		Where("user_bookshelf.user_id = ?", userID).
		Order("books.id ASC").
		Find(&books).Error
	return books, err
}

func (r *Repository) checkUser(userID uint) error {
	var user entities.User
	err := r.db.First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrUserNotFound
	}
	return err
}

func (r *Repository) checkReferences(userID, bookID uint) error {
	if err := r.checkUser(userID); err != nil {
		return err
	}
	var book entities.Book
	err := r.db.First(&book, bookID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrBookNotFound
	}
	return err
}
