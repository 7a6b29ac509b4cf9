package http

import (
	"github.com/gin-gonic/gin"

	"github.com/booklore/bookshelf/internal/database"
)

// RouterConfig carries every dependency the router needs. Passing a
// single struct keeps the constructor signature stable as wiring grows.
type RouterConfig struct {
	Books    BookStore
	Users    UserStore
	Shelf    ShelfStore
	Uploader BookUploader
	Content  ContentResolver
	Database *database.Database
	Version  string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	health := NewHealthController(cfg.Database, cfg.Version)
	booksController := NewBooksController(cfg.Books, cfg.Content)
	uploadController := NewUploadController(cfg.Uploader)
	usersController := NewUsersController(cfg.Users)
	shelfController := NewBookshelfController(cfg.Shelf)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Book endpoints
	router.POST("/upload_book", uploadController.UploadBook)
	router.GET("/books", booksController.GetAllBooks)
	router.GET("/get_book/:id", booksController.GetBook)
	router.GET("/get_book_content/:id", booksController.GetBookContent)

	// User endpoints
	router.POST("/register", usersController.Register)
	router.POST("/login", usersController.Login)

	// Bookshelf endpoints
	router.GET("/get_user_bookshelf/:user_id", shelfController.GetShelf)
	router.POST("/add_to_bookshelf", shelfController.AddToShelf)
	router.POST("/remove_from_bookshelf", shelfController.RemoveFromShelf)

	return router
}
