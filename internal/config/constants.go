package config

// Default paths for persistent state
const (
	// DefaultDatabasePath is the default path for the library database
	DefaultDatabasePath = "./books.db"

	// DefaultStoragePath is the default root for the covers and contents
	// bucket directories
	DefaultStoragePath = "."
)
