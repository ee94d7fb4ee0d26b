// Package audit provides durable backends for the per-record change
// trail. The engine keeps its own in-memory log; the archive mirrors
// entries into Postgres so the trail survives session expiry.
package audit

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/meridian-ops/meridian-ops/internal/browse"
)

// Schema is the DDL the archive expects. Applied out of band.
const Schema = `
CREATE TABLE IF NOT EXISTS audit_entries (
    id         TEXT PRIMARY KEY,
    dataset    TEXT NOT NULL,
    record_id  TEXT NOT NULL,
    at         TIMESTAMPTZ NOT NULL,
    actor      TEXT NOT NULL,
    field      TEXT NOT NULL,
    from_value TEXT NOT NULL,
    to_value   TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS audit_entries_record_idx ON audit_entries (dataset, record_id, at DESC);
`

type dbtx interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
}

// Archive persists audit entries in Postgres, keyed by entry id so
// replays of the same save batch are harmless.
type Archive struct {
	db dbtx
}

// NewArchive constructs an Archive over a pgx pool.
func NewArchive(pool *pgxpool.Pool) *Archive {
	return &Archive{db: pool}
}

// Append stores the batch. Entries whose id already exists are
// skipped, so a retried save does not duplicate the trail.
func (a *Archive) Append(ctx context.Context, dataset, recordID string, entries []browse.Entry) error {
	for _, e := range entries {
		_, err := a.db.Exec(ctx, `
			INSERT INTO audit_entries (id, dataset, record_id, at, actor, field, from_value, to_value)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			e.ID, dataset, recordID, e.At, e.User, e.Field, e.From, e.To,
		)
		if err != nil {
			if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23505" {
				continue
			}
			return err
		}
	}
	return nil
}

// List returns the archived trail for a record, newest first.
func (a *Archive) List(ctx context.Context, dataset, recordID string) ([]browse.Entry, error) {
	rows, err := a.db.Query(ctx, `
		SELECT id, at, actor, field, from_value, to_value
		FROM audit_entries
		WHERE dataset = $1 AND record_id = $2
		ORDER BY at DESC, id`,
		dataset, recordID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var entries []browse.Entry
	for rows.Next() {
		var e browse.Entry
		if err := rows.Scan(&e.ID, &e.At, &e.User, &e.Field, &e.From, &e.To); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

var _ browse.AuditStore = (*Archive)(nil)
