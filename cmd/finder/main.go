package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"food-truck-finder/internal/adapters/console"
	"food-truck-finder/internal/adapters/feed"
	"food-truck-finder/internal/adapters/repositories"
	"food-truck-finder/internal/config"
	"food-truck-finder/internal/domain"
	"food-truck-finder/internal/platform/db"
	"food-truck-finder/internal/ports"
	"food-truck-finder/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"
)

// main is the interactive composition root: it wires a feed source and a
// visit ledger behind ports, computes one ranking, and runs the selection
// session against the terminal.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	testing := flag.Bool("test", false, "use the canned feed fixture and an isolated testing database")
	dbPath := flag.String("db", config.Get("DB_PATH", "database.db"), "path to the SQLite visit database")
	pageSize := flag.Int("page-size", services.DefaultPageSize, "ranked trucks shown per page")
	flag.Parse()

	if *pageSize <= 0 {
		log.Fatalf("page-size must be positive, got %d", *pageSize)
	}

	// Optional positional argument: current position as lat,long (no spaces).
	position := domain.DefaultLocation
	if args := flag.Args(); len(args) > 0 {
		loc, err := domain.ParseLocation(args[0])
		if err != nil {
			log.Fatal(err)
		}
		position = loc
	}

	var source ports.FeedSource = feed.NewSFGovFeed(config.Get("FEED_URL", feed.DefaultFeedURL))
	if *testing {
		source = feed.NewFixtureFeed(config.Get("FIXTURE_PATH", "data/fixtures/example.csv"))
		*dbPath = "testing.db"
	}

	ledger, closeDB, err := openLedger(*dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer closeDB()

	ctx := context.Background()

	records, err := source.Fetch(ctx)
	if err != nil {
		log.Fatal(err)
	}
	trucks := services.Normalize(records)

	snapshot, err := ledger.Snapshot(ctx)
	if err != nil {
		log.Fatal(err)
	}

	entries, err := services.Rank(trucks, snapshot, position)
	if err != nil {
		log.Fatal(err)
	}

	session, err := services.NewSession(entries, *pageSize, ledger)
	if err != nil {
		log.Fatal(err)
	}

	ui := console.NewUI(os.Stdin, os.Stdout)
	if _, err := services.Run(ctx, session, ui, ui); err != nil {
		log.Fatal(err)
	}
}

// openLedger picks the visit store: a shared Postgres ledger when
// DATABASE_URL is set, the local SQLite file otherwise. Schema init is
// idempotent and runs on every start.
func openLedger(dbPath string) (ports.VisitLedger, func(), error) {
	if databaseURL := os.Getenv("DATABASE_URL"); strings.TrimSpace(databaseURL) != "" {
		conn, err := db.Open(databaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("open ledger: %w: %w", err, domain.ErrLedgerUnavailable)
		}
		if err := repositories.InitSchema(conn); err != nil {
			conn.Close()
			return nil, nil, fmt.Errorf("open ledger: %w: %w", err, domain.ErrLedgerUnavailable)
		}
		return repositories.NewPostgresVisitLedger(conn), func() { conn.Close() }, nil
	}

	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open ledger: open sqlite database %q: %w: %w", dbPath, err, domain.ErrLedgerUnavailable)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("open ledger: verify sqlite connection to %q: %w: %w", dbPath, err, domain.ErrLedgerUnavailable)
	}
	if err := repositories.InitSchema(conn); err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("open ledger: %w: %w", err, domain.ErrLedgerUnavailable)
	}
	return repositories.NewSqliteVisitLedger(conn), func() { conn.Close() }, nil
}
