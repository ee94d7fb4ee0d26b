// Package sink provides persistence sink implementations for the
// record browser's optimistic save.
package sink

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/meridian-ops/meridian-ops/internal/browse"
	"github.com/meridian-ops/meridian-ops/jobs"
)

// DelaySink acknowledges every save after a fixed delay. It stands in
// for a real backend in development and mirrors the mock save the
// console shipped with; it only fails when the context is cancelled
// first.
type DelaySink struct {
	delay  time.Duration
	logger *slog.Logger
}

// NewDelaySink builds a delay sink. A non-positive delay resolves
// immediately.
func NewDelaySink(delay time.Duration, logger *slog.Logger) *DelaySink {
	if logger == nil {
		logger = slog.Default()
	}
	return &DelaySink{delay: delay, logger: logger}
}

// Save implements browse.Sink.
func (s *DelaySink) Save(ctx context.Context, snap browse.Snapshot) error {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return fmt.Errorf("sink: save cancelled: %w", ctx.Err())
		case <-timer.C:
		}
	}
	s.logger.Debug("record saved",
		slog.String("dataset", snap.Dataset),
		slog.String("record", snap.RecordID))
	return nil
}

// QueueSink hands snapshots to the background worker through the task
// queue. An unreachable queue surfaces as a failed save.
type QueueSink struct {
	client *jobs.Client
	logger *slog.Logger
}

// NewQueueSink builds a queue-backed sink.
func NewQueueSink(client *jobs.Client, logger *slog.Logger) *QueueSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &QueueSink{client: client, logger: logger}
}

// Save implements browse.Sink by enqueuing a record:save task.
func (s *QueueSink) Save(ctx context.Context, snap browse.Snapshot) error {
	info, err := s.client.EnqueueRecordSave(ctx, jobs.RecordSavePayload{
		Dataset:  snap.Dataset,
		RecordID: snap.RecordID,
		Fields:   snap.Fields,
	})
	if err != nil {
		return fmt.Errorf("sink: enqueue save for %s/%s: %w", snap.Dataset, snap.RecordID, err)
	}
	s.logger.Debug("record save enqueued",
		slog.String("dataset", snap.Dataset),
		slog.String("record", snap.RecordID),
		slog.String("task", info.ID))
	return nil
}
