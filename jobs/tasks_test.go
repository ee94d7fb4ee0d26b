package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordSaveHandlerStoresSnapshot(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	handler := NewRecordSaveHandler(rdb, nil)
	handler.now = func() time.Time {
		return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	}

	task, err := NewRecordSaveTask(RecordSavePayload{
		Dataset:  "members",
		RecordID: "emp-0001",
		Fields:   map[string]string{"status": "leave", "name": "Avery Brooks"},
	})
	require.NoError(t, err)

	require.NoError(t, handler.Handle(context.Background(), task))

	got, err := rdb.HGetAll(context.Background(), SnapshotKey("members", "emp-0001")).Result()
	require.NoError(t, err)
	assert.Equal(t, "leave", got["status"])
	assert.Equal(t, "Avery Brooks", got["name"])
	assert.Equal(t, "2024-06-01T12:00:00Z", got["saved_at"])
}

func TestRecordSaveHandlerSkipsMalformedPayload(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	handler := NewRecordSaveHandler(rdb, nil)
	task := asynq.NewTask(TaskRecordSave, []byte("{not json"))

	err := handler.Handle(context.Background(), task)
	require.Error(t, err)
	assert.ErrorIs(t, err, asynq.SkipRetry)
}

func TestNewRecordSaveTaskValidation(t *testing.T) {
	_, err := NewRecordSaveTask(RecordSavePayload{Dataset: "members"})
	assert.Error(t, err)
	_, err = NewRecordSaveTask(RecordSavePayload{RecordID: "emp-0001"})
	assert.Error(t, err)
}
