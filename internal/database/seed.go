package database

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/booklore/bookshelf/internal/entities"
)

// ContentWriter is the slice of the content store needed for seeding.
type ContentWriter interface {
	Save(bucket, name string, r io.Reader) (string, error)
}

// ContentsBucket is the bucket demo blobs are seeded into. It matches
// storage.BucketContents; redeclared here so seeding only depends on the
// injected ContentWriter.
const ContentsBucket = "contents"

type demoBook struct {
	title    string
	author   string
	coverURL string
	filename string
	content  string
}

var demoBooks = []demoBook{
	{
		title:    "The Great Gatsby",
		author:   "F. Scott Fitzgerald",
		coverURL: "https://example.com/gatsby.jpg",
		filename: "gatsby.txt",
		content:  "In my younger and more vulnerable years my father gave me some advice that I've been turning over in my mind ever since.\n",
	},
	{
		title:    "To Kill a Mockingbird",
		author:   "Harper Lee",
		coverURL: "https://example.com/mockingbird.jpg",
		filename: "mockingbird.txt",
		content:  "When he was nearly thirteen, my brother Jem got his arm badly broken at the elbow.\n",
	},
	{
		title:    "1984",
		author:   "George Orwell",
		coverURL: "https://example.com/1984.jpg",
		filename: "1984.txt",
		content:  "It was a bright cold day in April, and the clocks were striking thirteen.\n",
	},
}

var demoUsers = []entities.User{
	{Username: "user1", Password: "password1"},
	{Username: "user2", Password: "password2"},
	{Username: "user3", Password: "password3"},
}

// SeedDemoData inserts the fixed demo books and users on first start.
// Books are only seeded when the books table is empty, users when the
// users table is empty. Demo book contents are written through the
// content store so that the seeded FilePath references resolve.
func (d *Database) SeedDemoData(store ContentWriter) error {
	var bookCount int64
	if err := d.DB.Model(&entities.Book{}).Count(&bookCount).Error; err != nil {
		return fmt.Errorf("failed to count books: %w", err)
	}

	if bookCount == 0 {
		for _, demo := range demoBooks {
			path, err := store.Save(ContentsBucket, demo.filename, strings.NewReader(demo.content))
			if err != nil {
				return fmt.Errorf("failed to seed content for %q: %w", demo.title, err)
			}

			book := entities.Book{
				Title:    demo.title,
				Author:   demo.author,
				CoverURL: demo.coverURL,
				FilePath: path,
			}
			if err := d.DB.Create(&book).Error; err != nil {
				return fmt.Errorf("failed to seed book %q: %w", demo.title, err)
			}
		}
		log.Printf("Seeded %d demo books", len(demoBooks))
	}

	var userCount int64
	if err := d.DB.Model(&entities.User{}).Count(&userCount).Error; err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}

	if userCount == 0 {
		for _, user := range demoUsers {
			user := user
			if err := d.DB.Create(&user).Error; err != nil {
				return fmt.Errorf("failed to seed user %q: %w", user.Username, err)
			}
		}
		log.Printf("Seeded %d demo users", len(demoUsers))
	}

	return nil
}
