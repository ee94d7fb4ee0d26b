// Package jobs defines the background tasks shared by the console
// server and the worker.
package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskRecordSave persists a record snapshot after an optimistic
	// console save.
	TaskRecordSave = "record:save"
)

// RecordSavePayload carries the schema-exported record handed to the
// persistence sink.
type RecordSavePayload struct {
	Dataset  string            `json:"dataset"`
	RecordID string            `json:"record_id"`
	Fields   map[string]string `json:"fields"`
}

// NewRecordSaveTask constructs an Asynq task for the payload.
func NewRecordSaveTask(payload RecordSavePayload) (*asynq.Task, error) {
	if payload.Dataset == "" || payload.RecordID == "" {
		return nil, fmt.Errorf("jobs: record save requires dataset and record id")
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskRecordSave, data, asynq.Queue(QueueDefault)), nil
}

// SnapshotKey is the Redis key holding the latest saved snapshot of a
// record.
func SnapshotKey(dataset, recordID string) string {
	return "record:" + dataset + ":" + recordID
}

// RecordSaveHandler processes TaskRecordSave tasks by writing the
// snapshot into a Redis hash, one field per entry plus a saved_at
// marker.
type RecordSaveHandler struct {
	rdb    *redis.Client
	logger *slog.Logger
	now    func() time.Time
}

// NewRecordSaveHandler wires the handler.
func NewRecordSaveHandler(rdb *redis.Client, logger *slog.Logger) *RecordSaveHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &RecordSaveHandler{rdb: rdb, logger: logger, now: time.Now}
}

// Handle implements the asynq handler contract.
func (h *RecordSaveHandler) Handle(ctx context.Context, t *asynq.Task) error {
	var payload RecordSavePayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		h.logger.Error("record save payload malformed", slog.Any("error", err))
		return fmt.Errorf("jobs: decode record save: %v: %w", err, asynq.SkipRetry)
	}
	key := SnapshotKey(payload.Dataset, payload.RecordID)
	values := make(map[string]any, len(payload.Fields)+1)
	for field, value := range payload.Fields {
		values[field] = value
	}
	values["saved_at"] = h.now().UTC().Format(time.RFC3339)
	if err := h.rdb.HSet(ctx, key, values).Err(); err != nil {
		return fmt.Errorf("jobs: store snapshot %s: %w", key, err)
	}
	h.logger.Info("record snapshot stored",
		slog.String("dataset", payload.Dataset),
		slog.String("record", payload.RecordID),
		slog.Int("fields", len(payload.Fields)))
	return nil
}
