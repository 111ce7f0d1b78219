package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/kozaktomas/aerogate/internal/database"
)

// LogRepository provides PostgreSQL-backed access log storage. The log is
// append-only; no update or delete statement exists in this repository.
type LogRepository struct {
	pool *Pool
}

// NewLogRepository creates a new PostgreSQL access log repository.
func NewLogRepository(pool *Pool) *LogRepository {
	return &LogRepository{pool: pool}
}

// Append writes one verification attempt. The timestamp is assigned by the
// database at write time and filled back into the entry.
func (r *LogRepository) Append(ctx context.Context, entry *database.AccessLogEntry) error {
	query := `
		INSERT INTO access_logs (name, passport, verdict, confidence)
		VALUES ($1, NULLIF($2, ''), $3, $4)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(ctx, query,
		entry.Name,
		entry.Passport,
		entry.Verdict,
		entry.Confidence,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("append access log: %w", err)
	}

	return nil
}

// ListAll returns all log entries newest-first by ID.
func (r *LogRepository) ListAll(ctx context.Context) ([]database.AccessLogEntry, error) {
	query := `
		SELECT id, name, passport, verdict, confidence, created_at
		FROM access_logs
		ORDER BY id DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query access logs: %w", err)
	}
	defer rows.Close()

	var entries []database.AccessLogEntry
	for rows.Next() {
		var e database.AccessLogEntry
		var passport sql.NullString
		if err := rows.Scan(&e.ID, &e.Name, &passport, &e.Verdict, &e.Confidence, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan access log: %w", err)
		}
		e.Passport = passport.String
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate access logs: %w", err)
	}

	return entries, nil
}
