package browse

import "context"

// Snapshot is the schema-exported form of a record handed to the
// persistence sink on save.
type Snapshot struct {
	Dataset  string            `json:"dataset"`
	RecordID string            `json:"record_id"`
	Fields   map[string]string `json:"fields"`
}

// Sink is the external persistence boundary invoked by the optimistic
// save. The local mutation and audit entries are applied before Save
// resolves; a Save error surfaces as a SaveFailed outcome and is not
// rolled back.
type Sink interface {
	Save(ctx context.Context, snap Snapshot) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(ctx context.Context, snap Snapshot) error

// Save implements Sink.
func (f SinkFunc) Save(ctx context.Context, snap Snapshot) error {
	return f(ctx, snap)
}
