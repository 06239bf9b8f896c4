package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Placeholder dialect of the backing engine.
type Dialect int

const (
	DialectSQLite Dialect = iota
	DialectPostgres
)

// Initialize the visit store schema. The DDL is shared by both engines.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	createVisitsQuery := `
	CREATE TABLE IF NOT EXISTS visits (
		truck_id TEXT PRIMARY KEY,
		visits INTEGER NOT NULL DEFAULT 0
	);
	`

	if _, err := db.Exec(createVisitsQuery); err != nil {
		return fmt.Errorf("init schema: create visits table: %w", err)
	}

	return nil
}

type VisitSeed struct {
	TruckID string `json:"truck_id"`
	Visits  int    `json:"visits"`
}

// Populate the visit store from a JSON file of truck_id/visits pairs.
// Existing rows are overwritten; used to migrate or reset histories.
func SeedFromJSON(db *sql.DB, jsonPath string, dialect Dialect) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed visits: read %q: %w", jsonPath, err)
	}

	var data []VisitSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed visits: parse json: %w", err)
	}

	rows := make([]VisitSeed, 0, len(data))
	for i, item := range data {
		id := strings.TrimSpace(item.TruckID)
		if id == "" {
			return fmt.Errorf("seed visits: empty truck_id at index %d", i+1)
		}
		if item.Visits < 0 {
			return fmt.Errorf("seed visits: negative count at index %d: %d", i+1, item.Visits)
		}
		rows = append(rows, VisitSeed{TruckID: id, Visits: item.Visits})
	}

	query := `
	INSERT INTO visits (truck_id, visits)
	VALUES (?, ?)
	ON CONFLICT (truck_id) DO UPDATE SET visits = excluded.visits;
	`
	if dialect == DialectPostgres {
		query = `
	INSERT INTO visits (truck_id, visits)
	VALUES ($1, $2)
	ON CONFLICT (truck_id) DO UPDATE SET visits = excluded.visits;
	`
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed visits: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed visits: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, v := range rows {
		if _, err := stmt.Exec(v.TruckID, v.Visits); err != nil {
			return fmt.Errorf("seed visits: insert truck_id=%s: %w", v.TruckID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed visits: commit tx: %w", err)
	}

	return nil
}
