package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/booklore/bookshelf/internal/database/bookshelf"
)

// BookshelfController manages per-user shelf membership.
type BookshelfController struct {
	shelf ShelfStore
}

// NewBookshelfController creates a new BookshelfController.
func NewBookshelfController(store ShelfStore) *BookshelfController {
	return &BookshelfController{shelf: store}
}

// GetShelf handles GET /get_user_bookshelf/:user_id.
func (controller *BookshelfController) GetShelf(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}

	shelfBooks, err := controller.shelf.GetShelfBooks(userID)
	if errors.Is(err, bookshelf.ErrUserNotFound) {
		respondNotFound(c, "User not found")
		return
	}
	if err != nil {
		respondInternalError(c, err, "get bookshelf")
		return
	}

	c.JSON(http.StatusOK, shelfBooks)
}

// AddToShelf handles POST /add_to_bookshelf (form: user_id, book_id).
func (controller *BookshelfController) AddToShelf(c *gin.Context) {
	userID, ok := parseFormID(c, "user_id")
	if !ok {
		return
	}
	bookID, ok := parseFormID(c, "book_id")
	if !ok {
		return
	}

	_, err := controller.shelf.AddToShelf(userID, bookID)
	switch {
	case errors.Is(err, bookshelf.ErrUserNotFound), errors.Is(err, bookshelf.ErrBookNotFound):
		respondNotFound(c, "User or book not found")
		return
	case errors.Is(err, bookshelf.ErrAlreadyOnShelf):
		respondConflict(c, "Book already in bookshelf")
		return
	case err != nil:
		respondInternalError(c, err, "add to bookshelf")
		return
	}

	c.JSON(http.StatusCreated, MessageResponse{Message: "Book added to bookshelf successfully"})
}

// RemoveFromShelf handles POST /remove_from_bookshelf (form: user_id,
// book_id).
func (controller *BookshelfController) RemoveFromShelf(c *gin.Context) {
	userID, ok := parseFormID(c, "user_id")
	if !ok {
		return
	}
	bookID, ok := parseFormID(c, "book_id")
	if !ok {
		return
	}

	err := controller.shelf.RemoveFromShelf(userID, bookID)
	switch {
	case errors.Is(err, bookshelf.ErrUserNotFound), errors.Is(err, bookshelf.ErrBookNotFound):
		respondNotFound(c, "User or book not found")
		return
	case errors.Is(err, bookshelf.ErrNotOnShelf):
		respondNotFound(c, "Book not found in bookshelf")
		return
	case err != nil:
		respondInternalError(c, err, "remove from bookshelf")
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Book removed from bookshelf successfully"})
}
