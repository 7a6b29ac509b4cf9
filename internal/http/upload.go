package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/booklore/bookshelf/internal/library"
)

// UploadController handles new book submissions.
type UploadController struct {
	uploader BookUploader
}

// NewUploadController creates a new UploadController.
func NewUploadController(uploader BookUploader) *UploadController {
	return &UploadController{uploader: uploader}
}

// UploadBook handles POST /upload_book (multipart form: title, author,
// contentFile, optional coverImage).
func (controller *UploadController) UploadBook(c *gin.Context) {
	req := library.UploadRequest{
		Title:  c.PostForm("title"),
		Author: c.PostForm("author"),
	}

	if header, err := c.FormFile("coverImage"); err == nil {
		cover, err := header.Open()
		if err != nil {
			respondInternalError(c, err, "open cover upload")
			return
		}
		defer cover.Close()
		req.Cover = &library.Upload{Filename: header.Filename, Data: cover}
	}

	if header, err := c.FormFile("contentFile"); err == nil {
		content, err := header.Open()
		if err != nil {
			respondInternalError(c, err, "open content upload")
			return
		}
		defer content.Close()
		req.Content = &library.Upload{Filename: header.Filename, Data: content}
	}

	book, err := controller.uploader.UploadBook(req)
	if errors.Is(err, library.ErrMissingFields) {
		respondBadRequest(c, "Missing required fields")
		return
	}
	if err != nil {
		respondInternalError(c, err, "upload book")
		return
	}

	c.JSON(http.StatusCreated, book)
}
