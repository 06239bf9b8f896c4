package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"food-truck-finder/internal/adapters/repositories"
	"food-truck-finder/internal/config"
	"food-truck-finder/internal/platform/db"
	"food-truck-finder/internal/ports"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"
)

// dbtool maintains the visit store: initializes the schema, optionally
// seeds counts from JSON, and dumps what is recorded. Targets the shared
// Postgres ledger when DATABASE_URL is set, the local SQLite file otherwise.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	var (
		conn    *sql.DB
		dialect repositories.Dialect
		ledger  ports.VisitLedger
		err     error
	)

	if databaseURL := os.Getenv("DATABASE_URL"); strings.TrimSpace(databaseURL) != "" {
		conn, err = db.Open(databaseURL)
		if err != nil {
			log.Fatal(err)
		}
		dialect = repositories.DialectPostgres
		ledger = repositories.NewPostgresVisitLedger(conn)
	} else {
		dbPath := config.Get("DB_PATH", "database.db")
		conn, err = sql.Open("sqlite", dbPath)
		if err != nil {
			log.Fatalf("open sqlite database %q: %v", dbPath, err)
		}
		dialect = repositories.DialectSQLite
		ledger = repositories.NewSqliteVisitLedger(conn)
	}
	defer conn.Close()

	log.Println("Initializing visit store schema...")
	if err := repositories.InitSchema(conn); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	if seedPath := os.Getenv("SEED_PATH"); strings.TrimSpace(seedPath) != "" {
		log.Println("Seeding visit counts...")
		if err := repositories.SeedFromJSON(conn, seedPath, dialect); err != nil {
			log.Fatalf("seeding failed: %v", err)
		}
		log.Println("Seeding complete.")
	}

	counts, err := ledger.Snapshot(context.Background())
	if err != nil {
		log.Fatalf("snapshot failed: %v", err)
	}

	ids := make([]string, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		fmt.Printf("%s\t%d\n", id, counts[id])
	}
	log.Printf("trucks recorded: %d", len(ids))
}
