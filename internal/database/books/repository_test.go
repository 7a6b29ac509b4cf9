package books

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/booklore/bookshelf/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	t.Helper()

	dbPath := "./test_books_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.Book{})
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return repo, cleanup
}

func TestRepository_CreateBook(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	book, err := repo.CreateBook(&entities.Book{
		Title:    "The Go Programming Language",
		Author:   "Donovan and Kernighan",
		CoverURL: "covers/gopl.jpg",
		FilePath: "contents/gopl.txt",
	})

	require.NoError(t, err)
	assert.NotZero(t, book.ID)
	assert.Equal(t, "The Go Programming Language", book.Title)
	assert.Equal(t, "contents/gopl.txt", book.FilePath)
}

func TestRepository_GetBookByID(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	created, err := repo.CreateBook(&entities.Book{
		Title:    "Dune",
		Author:   "Frank Herbert",
		FilePath: "contents/dune.txt",
	})
	require.NoError(t, err)

	book, err := repo.GetBookByID(created.ID)

	require.NoError(t, err)
	assert.Equal(t, created.ID, book.ID)
	assert.Equal(t, "Dune", book.Title)
}

func TestRepository_GetBookByID_NotFound(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.GetBookByID(12345)

	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestRepository_GetAllBooks(t *testing.T) {
	t.Run("returns empty slice when no books", func(t *testing.T) {
		repo, cleanup := setupTestDB(t)
		defer cleanup()

		books, err := repo.GetAllBooks()

		require.NoError(t, err)
		assert.Empty(t, books)
	})

	t.Run("returns books ordered by id ascending", func(t *testing.T) {
		repo, cleanup := setupTestDB(t)
		defer cleanup()

		first, err := repo.CreateBook(&entities.Book{Title: "A", Author: "X", FilePath: "contents/a.txt"})
		require.NoError(t, err)
		second, err := repo.CreateBook(&entities.Book{Title: "B", Author: "Y", FilePath: "contents/b.txt"})
		require.NoError(t, err)

		books, err := repo.GetAllBooks()

		require.NoError(t, err)
		require.Len(t, books, 2)
		assert.Equal(t, first.ID, books[0].ID)
		assert.Equal(t, second.ID, books[1].ID)
	})
}
