// Package users provides database operations for user accounts.
//
// Credentials are stored and compared as plaintext. This reproduces the
// upstream contract and is a documented weakness, not an oversight.
package users

import (
	"errors"

	"gorm.io/gorm"

	"github.com/booklore/bookshelf/internal/entities"
)

var (
	// ErrUserNotFound is returned when a user id or credential pair does
	// not resolve.
	ErrUserNotFound = errors.New("user not found")
	// ErrUsernameTaken is returned when registering an existing username.
	ErrUsernameTaken = errors.New("username already exists")
)

// Repository handles all user database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new users repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateUser inserts a new user. Username uniqueness is enforced by the
// unique index on the users table; the duplicate-key error from the
// storage engine is the conflict signal, so concurrent registrations of
// the same username cannot both succeed.
func (r *Repository) CreateUser(username, password string) (*entities.User, error) {
	user := &entities.User{
		Username: username,
		Password: password,
	}

	err := r.db.Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, ErrUsernameTaken
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserByID retrieves a user by id.
func (r *Repository) GetUserByID(id uint) (*entities.User, error) {
	var user entities.User
	err := r.db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByUsername retrieves a user by username.
func (r *Repository) GetUserByUsername(username string) (*entities.User, error) {
	var user entities.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByCredentials retrieves the user matching both username and
// password exactly.
func (r *Repository) FindByCredentials(username, password string) (*entities.User, error) {
	var user entities.User
	err := r.db.Where("username = ? AND password = ?", username, password).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
