package browse

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Entry is one recorded field-level change. Entries are appended,
// never edited or deleted; From and To are stringified so that empty
// and absent values remain representable.
type Entry struct {
	ID    string    `json:"id"`
	At    time.Time `json:"at"`
	User  string    `json:"user"`
	Field string    `json:"field"`
	From  string    `json:"from"`
	To    string    `json:"to"`
}

// DiffEntries compares a draft against the original it was copied
// from and synthesizes one entry per changed field, in schema
// declaration order. Fields whose stringified values are equal
// produce no entry.
func (s *Schema[T]) DiffEntries(original, draft T, user string, now time.Time) []Entry {
	var entries []Entry
	for _, name := range s.names {
		from := s.ValueString(original, name)
		to := s.ValueString(draft, name)
		if from == to {
			continue
		}
		entries = append(entries, Entry{
			ID:    uuid.NewString(),
			At:    now,
			User:  user,
			Field: name,
			From:  from,
			To:    to,
		})
	}
	return entries
}

// AuditStore holds the append-only trail, keyed by dataset and record
// id. List returns entries newest-first.
type AuditStore interface {
	Append(ctx context.Context, dataset, recordID string, entries []Entry) error
	List(ctx context.Context, dataset, recordID string) ([]Entry, error)
}

// MemoryAudit is the in-process store backing a single console
// session. Prepending on append keeps the exposed log newest-first.
type MemoryAudit struct {
	mu      sync.Mutex
	entries map[string][]Entry
}

// NewMemoryAudit returns an empty in-memory trail.
func NewMemoryAudit() *MemoryAudit {
	return &MemoryAudit{entries: make(map[string][]Entry)}
}

func auditKey(dataset, recordID string) string {
	return dataset + "/" + recordID
}

// Append prepends entries for the record, newest first.
func (m *MemoryAudit) Append(_ context.Context, dataset, recordID string, entries []Entry) error {
	if len(entries) == 0 {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	key := auditKey(dataset, recordID)
	existing := m.entries[key]
	next := make([]Entry, 0, len(entries)+len(existing))
	next = append(next, entries...)
	m.entries[key] = append(next, existing...)
	return nil
}

// List returns the trail for the record, newest first.
func (m *MemoryAudit) List(_ context.Context, dataset, recordID string) ([]Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing := m.entries[auditKey(dataset, recordID)]
	out := make([]Entry, len(existing))
	copy(out, existing)
	return out, nil
}
