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

// Postgres-backed implementation of the VisitLedger port, for a ledger
// shared between machines. Increments ride on the same single-statement
// upsert contract as the SQLite adapter, so independent runs hitting the
// same truck id serialize correctly.
type PostgresVisitLedger struct {
	DB *sql.DB
}

func NewPostgresVisitLedger(db *sql.DB) *PostgresVisitLedger {
	return &PostgresVisitLedger{DB: db}
}

func (p *PostgresVisitLedger) Snapshot(ctx context.Context) (_ map[string]int, err error) {
	defer obs.Time(ctx, "ledger.postgres.Snapshot")(&err)

	if p.DB == nil {
		return nil, fmt.Errorf("visit ledger: DB is nil: %w", domain.ErrLedgerUnavailable)
	}

	query := `
	SELECT
		truck_id,
		visits
	FROM visits;
	`
	rows, err := p.DB.QueryContext(ctx, query)
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

func (p *PostgresVisitLedger) RecordVisit(ctx context.Context, truckID string) (_ int, err error) {
	defer obs.Time(ctx, "ledger.postgres.RecordVisit")(&err)

	if p.DB == nil {
		return 0, fmt.Errorf("visit ledger: DB is nil: %w", domain.ErrLedgerUnavailable)
	}

	if strings.TrimSpace(truckID) == "" {
		return 0, errors.New("record visit: truck id must not be empty")
	}

	query := `
	INSERT INTO visits (truck_id, visits)
	VALUES ($1, 1)
	ON CONFLICT (truck_id) DO UPDATE SET visits = visits.visits + 1
	RETURNING visits;
	`
	var visits int
	if err := p.DB.QueryRowContext(ctx, query, truckID).Scan(&visits); err != nil {
		return 0, fmt.Errorf("record visit truck_id=%s: %w: %w", truckID, err, domain.ErrLedgerUnavailable)
	}

	return visits, nil
}

func (p *PostgresVisitLedger) CountOf(ctx context.Context, truckID string) (int, error) {
	if p.DB == nil {
		return 0, fmt.Errorf("visit ledger: DB is nil: %w", domain.ErrLedgerUnavailable)
	}

	query := `
	SELECT visits
	FROM visits
	WHERE truck_id = $1;
	`
	var visits int
	err := p.DB.QueryRowContext(ctx, query, truckID).Scan(&visits)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("count of truck_id=%s: %w: %w", truckID, err, domain.ErrLedgerUnavailable)
	}

	return visits, nil
}
