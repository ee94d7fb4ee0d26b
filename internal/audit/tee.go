package audit

import (
	"context"
	"log/slog"

	"github.com/meridian-ops/meridian-ops/internal/browse"
)

// Tee serves reads from the fast in-memory trail while mirroring
// writes into the archive. Archive failures are logged, not
// surfaced: a save must not fail because the durable copy lagged.
type Tee struct {
	memory  browse.AuditStore
	archive browse.AuditStore
	logger  *slog.Logger
}

// NewTee wraps memory with a durable mirror.
func NewTee(memory, archive browse.AuditStore, logger *slog.Logger) *Tee {
	if logger == nil {
		logger = slog.Default()
	}
	return &Tee{memory: memory, archive: archive, logger: logger}
}

func (t *Tee) Append(ctx context.Context, dataset, recordID string, entries []browse.Entry) error {
	if err := t.memory.Append(ctx, dataset, recordID, entries); err != nil {
		return err
	}
	if t.archive != nil {
		if err := t.archive.Append(ctx, dataset, recordID, entries); err != nil {
			t.logger.Error("audit archive append failed",
				slog.String("dataset", dataset),
				slog.String("record_id", recordID),
				slog.Any("error", err))
		}
	}
	return nil
}

func (t *Tee) List(ctx context.Context, dataset, recordID string) ([]browse.Entry, error) {
	return t.memory.List(ctx, dataset, recordID)
}

var _ browse.AuditStore = (*Tee)(nil)
