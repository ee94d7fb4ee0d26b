package sink

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridian-ops/meridian-ops/internal/browse"
)

func TestDelaySinkResolvesAfterDelay(t *testing.T) {
	s := NewDelaySink(10*time.Millisecond, nil)
	start := time.Now()
	err := s.Save(context.Background(), browse.Snapshot{Dataset: "members", RecordID: "e1"})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
}

func TestDelaySinkZeroDelay(t *testing.T) {
	s := NewDelaySink(0, nil)
	assert.NoError(t, s.Save(context.Background(), browse.Snapshot{}))
}

func TestDelaySinkHonoursCancellation(t *testing.T) {
	s := NewDelaySink(time.Minute, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := s.Save(ctx, browse.Snapshot{Dataset: "members", RecordID: "e1"})
	assert.ErrorIs(t, err, context.Canceled)
}
