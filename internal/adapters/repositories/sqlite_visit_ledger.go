package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"food-truck-finder/internal/domain"
	"food-truck-finder/internal/platform/obs"
)

// SQLite-backed implementation of the VisitLedger port. The default store:
// a single local file shared by every run on one machine.
type SqliteVisitLedger struct {
	DB *sql.DB
}

func NewSqliteVisitLedger(db *sql.DB) *SqliteVisitLedger {
	return &SqliteVisitLedger{DB: db}
}

// Snapshot reads all known visit counts in one pass.
func (s *SqliteVisitLedger) Snapshot(ctx context.Context) (_ map[string]int, err error) {
	defer obs.Time(ctx, "ledger.sqlite.Snapshot")(&err)

	if s.DB == nil {
		return nil, fmt.Errorf("visit ledger: DB is nil: %w", domain.ErrLedgerUnavailable)
	}

	query := `
	SELECT
		truck_id,
		visits
	FROM visits;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("snapshot visits: query visits table: %w: %w", err, domain.ErrLedgerUnavailable)
	}
	defer rows.Close()

	counts := make(map[string]int, 64)
	for rows.Next() {
		var id string
		var visits int
		if err := rows.Scan(&id, &visits); err != nil {
			return nil, fmt.Errorf("snapshot visits: scan row: %w: %w", err, domain.ErrLedgerUnavailable)
		}
		counts[id] = visits
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("snapshot visits: row iteration: %w: %w", err, domain.ErrLedgerUnavailable)
	}

	return counts, nil
}

// RecordVisit bumps one truck's count by exactly one and returns the new
// count. The upsert is a single statement, so concurrent runs against the
// same file serialize per id instead of racing a read-modify-write.
func (s *SqliteVisitLedger) RecordVisit(ctx context.Context, truckID string) (_ int, err error) {
	defer obs.Time(ctx, "ledger.sqlite.RecordVisit")(&err)

	if s.DB == nil {
		return 0, fmt.Errorf("visit ledger: DB is nil: %w", domain.ErrLedgerUnavailable)
	}

	if strings.TrimSpace(truckID) == "" {
		return 0, errors.New("record visit: truck id must not be empty")
	}

	query := `
	INSERT INTO visits (truck_id, visits)
	VALUES (?, 1)
	ON CONFLICT (truck_id) DO UPDATE SET visits = visits + 1
	RETURNING visits;
	`
	var visits int
	if err := s.DB.QueryRowContext(ctx, query, truckID).Scan(&visits); err != nil {
		return 0, fmt.Errorf("record visit truck_id=%s: %w: %w", truckID, err, domain.ErrLedgerUnavailable)
	}

	return visits, nil
}

// CountOf reads one truck's count; never-picked trucks read as zero.
func (s *SqliteVisitLedger) CountOf(ctx context.Context, truckID string) (int, error) {
	if s.DB == nil {
		return 0, fmt.Errorf("visit ledger: DB is nil: %w", domain.ErrLedgerUnavailable)
	}

	query := `
	SELECT visits
	FROM visits
	WHERE truck_id = ?;
	`
	var visits int
	err := s.DB.QueryRowContext(ctx, query, truckID).Scan(&visits)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("count of truck_id=%s: %w: %w", truckID, err, domain.ErrLedgerUnavailable)
	}

	return visits, nil
}
