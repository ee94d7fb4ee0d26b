package browse

import (
	"context"
	"fmt"
	"log/slog"
)

// SaveResult reports the outcome of one optimistic save.
type SaveResult struct {
	RecordID string
	Entries  int
	Err      error
}

// Failed reports whether the external sink rejected the save.
func (r SaveResult) Failed() bool { return r.Err != nil }

// Save runs the optimistic mutation for the current selection:
// the draft is merged into the backing record and the audit entries
// are appended immediately, before the sink resolves. The sink call
// runs in the background; the returned channel delivers exactly one
// result when it completes.
//
// On success the selection is cleared and the state returns to idle.
// On failure the state returns to editing with the error surfaced in
// the view; the applied mutation and audit entries stand, and calling
// Save again retries (the re-diff against the merged record produces
// no duplicate entries). A second Save while one is outstanding is
// rejected with ErrSaveInFlight.
func (b *Browser[T]) Save(ctx context.Context, user string) (<-chan SaveResult, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == StateSaving {
		return nil, ErrSaveInFlight
	}
	if b.sel == nil {
		return nil, ErrNoSelection
	}
	idx, ok := b.index[b.sel.ID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, b.sel.ID)
	}

	original := b.records[idx]
	entries := b.schema.DiffEntries(original, b.sel.Draft, user, b.clock())

	// Optimistic: local state first, external call second.
	b.records[idx] = b.sel.Draft
	if len(entries) > 0 {
		if err := b.audit.Append(ctx, b.dataset, b.sel.ID, entries); err != nil {
			b.logger.Error("audit append failed",
				slog.String("dataset", b.dataset),
				slog.String("record", b.sel.ID),
				slog.Any("error", err))
		}
	}

	b.state = StateSaving
	b.saveErr = nil
	b.saveGen++
	gen := b.saveGen
	recordID := b.sel.ID
	snap := Snapshot{
		Dataset:  b.dataset,
		RecordID: recordID,
		Fields:   b.schema.Export(b.sel.Draft),
	}

	done := make(chan SaveResult, 1)
	// Detached from the request context: the save outlives the event
	// that triggered it.
	go func() {
		err := b.sink.Save(context.WithoutCancel(ctx), snap)
		b.completeSave(gen, recordID, err)
		done <- SaveResult{RecordID: recordID, Entries: len(entries), Err: err}
	}()
	return done, nil
}

// completeSave applies the sink outcome unless the selection
// lifecycle has moved on (cleared or reselected), in which case the
// stale completion is discarded and the panel stays closed.
func (b *Browser[T]) completeSave(gen uint64, recordID string, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state != StateSaving || b.saveGen != gen {
		if err != nil {
			b.logger.Warn("discarding stale save failure",
				slog.String("dataset", b.dataset),
				slog.String("record", recordID),
				slog.Any("error", err))
		}
		return
	}
	if err != nil {
		b.logger.Error("save rejected by sink",
			slog.String("dataset", b.dataset),
			slog.String("record", recordID),
			slog.Any("error", err))
		if b.sel == nil {
			// The record dropped out of the filtered set while the
			// save was in flight; there is no draft to return to.
			b.state = StateIdle
			b.saveErr = nil
			return
		}
		b.state = StateEditing
		b.saveErr = fmt.Errorf("save failed: %w", err)
		return
	}
	b.sel = nil
	b.saveErr = nil
	b.state = StateIdle
}
