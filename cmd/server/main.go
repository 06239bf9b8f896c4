package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"time"

	"food-truck-finder/internal/adapters/feed"
	"food-truck-finder/internal/adapters/repositories"
	"food-truck-finder/internal/api"
	"food-truck-finder/internal/config"
	"food-truck-finder/internal/domain"
	"food-truck-finder/internal/services"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"
)

// main wires the read-only rankings API: the same feed, normalizer, ranker
// and ledger snapshot as the interactive finder, minus any selection (the
// ledger is never written over HTTP).
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "database.db")
	feedURL := config.Get("FEED_URL", feed.DefaultFeedURL)
	port := config.Get("PORT", "8080")

	db, err := openDB(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := repositories.InitSchema(db); err != nil {
		log.Fatal(err)
	}

	ledger := repositories.NewSqliteVisitLedger(db)
	source := feed.NewSFGovFeed(feedURL)
	router := api.NewRouter(source, ledger, domain.DefaultLocation, services.DefaultPageSize)

	// Timeouts are tuned for per-request feed downloads (external latency).
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}
