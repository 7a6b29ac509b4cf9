package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/booklore/bookshelf/internal/config"
	"github.com/booklore/bookshelf/internal/database"
	"github.com/booklore/bookshelf/internal/database/books"
	"github.com/booklore/bookshelf/internal/database/bookshelf"
	"github.com/booklore/bookshelf/internal/database/users"
	http_controllers "github.com/booklore/bookshelf/internal/http"
	"github.com/booklore/bookshelf/internal/library"
	"github.com/booklore/bookshelf/internal/storage"
)

// Serve runs the HTTP server until SIGINT/SIGTERM, then shuts it down
// gracefully within the configured timeout.
func Serve(router *gin.Engine, cfg *config.Config) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

// Run wires the database, content store, repositories and router, seeds
// the demo data on first start, and serves HTTP.
func Run(cfg *config.Config, version string) {
	log.Printf("Starting Bookshelf v%s", version)

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	store, err := storage.NewStore(cfg.Storage.Path)
	if err != nil {
		log.Fatalf("Failed to initialize content store: %v", err)
	}

	if err := db.SeedDemoData(store); err != nil {
		log.Fatalf("Failed to seed demo data: %v", err)
	}

	booksRepo := books.NewRepository(db.DB)
	usersRepo := users.NewRepository(db.DB)
	shelfRepo := bookshelf.NewRepository(db.DB)
	libraryService := library.NewService(store, booksRepo)

	routerCfg := http_controllers.RouterConfig{
		Books:    booksRepo,
		Users:    usersRepo,
		Shelf:    shelfRepo,
		Uploader: libraryService,
		Content:  store,
		Database: db,
		Version:  version,
	}

	router := http_controllers.NewRouter(routerCfg)

	Serve(router, cfg)
}
