package http

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/booklore/bookshelf/internal/entities"
	"github.com/booklore/bookshelf/internal/storage"
)

type uploadForm struct {
	title       string
	author      string
	coverName   string
	coverData   string
	contentName string
	contentData string
}

func postUpload(t *testing.T, router *gin.Engine, form uploadForm) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if form.title != "" {
		require.NoError(t, writer.WriteField("title", form.title))
	}
	if form.author != "" {
		require.NoError(t, writer.WriteField("author", form.author))
	}
	if form.coverName != "" {
		part, err := writer.CreateFormFile("coverImage", form.coverName)
		require.NoError(t, err)
		_, err = io.WriteString(part, form.coverData)
		require.NoError(t, err)
	}
	if form.contentName != "" {
		part, err := writer.CreateFormFile("contentFile", form.contentName)
		require.NoError(t, err)
		_, err = io.WriteString(part, form.contentData)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/upload_book", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	router.ServeHTTP(w, req)
	return w
}

func TestUploadBook(t *testing.T) {
	t.Run("creates a book from a full submission", func(t *testing.T) {
		router, _, store, cleanup := setupTestServer(t)
		defer cleanup()

		w := postUpload(t, router, uploadForm{
			title:       "Dune",
			author:      "Frank Herbert",
			coverName:   "dune.jpg",
			coverData:   "jpeg bytes",
			contentName: "dune.txt",
			contentData: "the spice must flow",
		})

		assert.Equal(t, http.StatusCreated, w.Code)

		var book entities.Book
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &book))
		assert.NotZero(t, book.ID)
		assert.Equal(t, "Dune", book.Title)

		// getBook on the returned id resolves to the submitted bytes.
		r, err := store.Open(storage.BucketContents, book.FilePath)
		require.NoError(t, err)
		defer r.Close()
		data, err := io.ReadAll(r)
		require.NoError(t, err)
		assert.Equal(t, "the spice must flow", string(data))
	})

	t.Run("cover is optional", func(t *testing.T) {
		router, _, _, cleanup := setupTestServer(t)
		defer cleanup()

		w := postUpload(t, router, uploadForm{
			title:       "Dune",
			author:      "Frank Herbert",
			contentName: "dune.txt",
			contentData: "text",
		})

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("rejects missing title", func(t *testing.T) {
		router, _, _, cleanup := setupTestServer(t)
		defer cleanup()

		w := postUpload(t, router, uploadForm{
			author:      "Frank Herbert",
			contentName: "dune.txt",
			contentData: "text",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Missing required fields")
	})

	t.Run("rejects missing content file", func(t *testing.T) {
		router, _, _, cleanup := setupTestServer(t)
		defer cleanup()

		w := postUpload(t, router, uploadForm{
			title:  "Dune",
			author: "Frank Herbert",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Missing required fields")
	})
}
