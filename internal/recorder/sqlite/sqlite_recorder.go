package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"hungerguard/internal/domain"
	"hungerguard/internal/port"
)

const schema = `
CREATE TABLE IF NOT EXISTS allocation_plans (
	id         TEXT PRIMARY KEY,
	focus      TEXT NOT NULL DEFAULT '',
	plan_text  TEXT NOT NULL,
	summary    TEXT NOT NULL DEFAULT '',
	impact     TEXT NOT NULL DEFAULT '{}',
	created_at TEXT NOT NULL
);`

// Recorder is an append-only allocation plan store on SQLite. It implements
// port.PlanRecorder.
type Recorder struct {
	db *sqlx.DB
}

// NewRecorder opens (creating if needed) the plan store at path and applies
// the schema.
func NewRecorder(path string) (*Recorder, error) {
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening plan store: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("applying plan store schema: %w", err)
	}
	return &Recorder{db: db}, nil
}

func (r *Recorder) Record(ctx context.Context, rec *port.PlanRecord) error {
	impact, err := json.Marshal(rec.Impact)
	if err != nil {
		return fmt.Errorf("marshaling impact: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO allocation_plans (id, focus, plan_text, summary, impact, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Focus, rec.PlanText, rec.Summary, string(impact),
		rec.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting plan record: %w", err)
	}
	return nil
}

func (r *Recorder) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// Close releases the underlying database handle.
func (r *Recorder) Close() error {
	return r.db.Close()
}

// Recent returns the most recently recorded plans, newest first.
func (r *Recorder) Recent(ctx context.Context, limit int) ([]port.PlanRecord, error) {
	rows, err := r.db.QueryxContext(ctx,
		`SELECT id, focus, plan_text, summary, impact, created_at
		 FROM allocation_plans ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying plan records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []port.PlanRecord
	for rows.Next() {
		var (
			rec       port.PlanRecord
			impact    string
			createdAt string
		)
		if err := rows.Scan(&rec.ID, &rec.Focus, &rec.PlanText, &rec.Summary, &impact, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning plan record: %w", err)
		}
		var metrics domain.ImpactMetrics
		if err := json.Unmarshal([]byte(impact), &metrics); err != nil {
			return nil, fmt.Errorf("unmarshaling impact: %w", err)
		}
		rec.Impact = metrics
		if ts, err := time.Parse(time.RFC3339, createdAt); err == nil {
			rec.CreatedAt = ts
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
