package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/booklore/bookshelf/internal/database/books"
	"github.com/booklore/bookshelf/internal/storage"
)

// BooksController serves book metadata and book content.
type BooksController struct {
	books   BookStore
	content ContentResolver
}

// NewBooksController creates a new BooksController.
func NewBooksController(store BookStore, content ContentResolver) *BooksController {
	return &BooksController{
		books:   store,
		content: content,
	}
}

// GetAllBooks handles GET /books.
func (controller *BooksController) GetAllBooks(c *gin.Context) {
	allBooks, err := controller.books.GetAllBooks()
	if err != nil {
		respondInternalError(c, err, "list books")
		return
	}
	c.JSON(http.StatusOK, allBooks)
}

// GetBook handles GET /get_book/:id.
func (controller *BooksController) GetBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, err := controller.books.GetBookByID(id)
	if errors.Is(err, books.ErrBookNotFound) {
		respondNotFound(c, "Book not found")
		return
	}
	if err != nil {
		respondInternalError(c, err, "get book")
		return
	}

	c.JSON(http.StatusOK, book)
}

// GetBookContent handles GET /get_book_content/:id, serving the raw
// stored bytes. Missing record and missing blob both map to 404.
func (controller *BooksController) GetBookContent(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, err := controller.books.GetBookByID(id)
	if errors.Is(err, books.ErrBookNotFound) {
		respondNotFound(c, "Book not found")
		return
	}
	if err != nil {
		respondInternalError(c, err, "get book content")
		return
	}

	path, err := controller.content.Resolve(storage.BucketContents, book.FilePath)
	if errors.Is(err, storage.ErrNotFound) {
		respondNotFound(c, "Book not found")
		return
	}
	if err != nil {
		respondInternalError(c, err, "resolve book content")
		return
	}

	c.File(path)
}
