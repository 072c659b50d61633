// Package ledger records completed pipeline runs in a SQLite database.
package ledger

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// Ledger is an append-only history of pipeline runs.
type Ledger struct {
	db *sql.DB
}

// Run is one recorded pipeline execution.
type Run struct {
	ID           string    // UUIDv7
	Scenario     string    // scenario name
	A, B         int       // input coefficients
	C            float64   // derived constant
	RootSum      float64   // alpha + beta
	ExpectedSum  float64   // -b/a
	RootProduct  float64   // alpha * beta
	DocumentPath string    // where the document was written
	CreatedAt    time.Time // UTC
}

// NewRunID returns a time-sortable UUIDv7 run identifier.
// Panics if UUID generation fails (should never happen in practice).
func NewRunID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Open creates or opens a ledger database at the given path.
//
// The database is configured with WAL mode, NORMAL synchronous mode, a
// 5-second busy timeout, and a single-connection pool (SQLite allows one
// writer at a time). Opening is idempotent; the schema is applied on
// every open with IF NOT EXISTS guards.
func Open(path string) (*Ledger, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open ledger: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect ledger: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Ledger{db: db}, nil
}

// Close closes the underlying database connection.
func (l *Ledger) Close() error {
	if l.db == nil {
		return nil
	}
	return l.db.Close()
}

// RecordRun inserts a run record.
// Uses ON CONFLICT(id) DO NOTHING for idempotency - a duplicate run ID is
// silently ignored. A zero CreatedAt is filled with the current UTC time.
func (l *Ledger) RecordRun(ctx context.Context, run Run) error {
	createdAt := run.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := l.db.ExecContext(ctx, `
		INSERT INTO runs
		(id, scenario, a, b, c, root_sum, expected_sum, root_product, document_path, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		run.ID,
		run.Scenario,
		run.A,
		run.B,
		run.C,
		run.RootSum,
		run.ExpectedSum,
		run.RootProduct,
		run.DocumentPath,
		createdAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}

// ListRuns returns recorded runs, newest first.
// A limit of 0 or less returns all runs.
func (l *Ledger) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	query := `
		SELECT id, scenario, a, b, c, root_sum, expected_sum, root_product, document_path, created_at
		FROM runs
		ORDER BY created_at DESC, id DESC
	`
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := l.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	runs := []Run{}
	for rows.Next() {
		var run Run
		var createdAt string
		if err := rows.Scan(
			&run.ID,
			&run.Scenario,
			&run.A,
			&run.B,
			&run.C,
			&run.RootSum,
			&run.ExpectedSum,
			&run.RootProduct,
			&run.DocumentPath,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		run.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse run timestamp: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return runs, nil
}

// applyPragmas sets required SQLite configuration.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("execute %q: %w", pragma, err)
		}
	}
	return nil
}
