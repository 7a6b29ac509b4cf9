package entities

// Book is a library record pointing at blobs in the content store.
// CoverURL may be empty or reference an external image; FilePath always
// references a blob in the "contents" bucket.
type Book struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Title    string `gorm:"size:100;not null" json:"title"`
	Author   string `gorm:"size:100;not null" json:"author"`
	CoverURL string `gorm:"size:200" json:"coverUrl"`
	FilePath string `gorm:"size:200;not null" json:"filePath"`
}

// User is a registered account. Passwords are stored and compared as
// plaintext; this mirrors the upstream contract and must not be changed
// without a wire-format migration.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"uniqueIndex;size:80;not null" json:"username"`
	Password string `gorm:"size:80;not null" json:"-"`
}

// BookshelfEntry links one user to one book. The composite unique index
// guarantees a book appears at most once on a given shelf, enforced by
// the storage engine rather than an application-level check.
type BookshelfEntry struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index;uniqueIndex:idx_user_book;not null" json:"user_id"`
	BookID uint `gorm:"index;uniqueIndex:idx_user_book;not null" json:"book_id"`

	User User `gorm:"foreignKey:UserID" json:"-"`
	Book Book `gorm:"foreignKey:BookID" json:"-"`
}

func (Book) TableName() string {
	return "books"
}

func (User) TableName() string {
	return "users"
}

func (BookshelfEntry) TableName() string {
	return "user_bookshelf"
}
