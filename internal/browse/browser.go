package browse

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// SaveState is the mutator's lifecycle state.
type SaveState string

const (
	StateIdle    SaveState = "idle"
	StateEditing SaveState = "editing"
	StateSaving  SaveState = "saving"
)

// View is the façade output consumed by the presentation layer.
type View[T Record] struct {
	Data        []T          `json:"pageData"`
	Window      Window       `json:"pageWindow"`
	Selection   string       `json:"selection,omitempty"`
	Draft       *T           `json:"draft,omitempty"`
	State       SaveState    `json:"state"`
	SaveError   string       `json:"saveError,omitempty"`
	AuditLog    []Entry      `json:"auditLog,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// Config wires a browser for one dataset.
type Config[T Record] struct {
	Dataset  string
	Schema   *Schema[T]
	Locks    *LockPolicy
	Sink     Sink
	Audit    AuditStore
	PageSize int
	Logger   *slog.Logger
	Clock    func() time.Time
}

// Browser composes the filter, sort, paginate, selection and
// optimistic save stages over one in-memory collection. The visible page
// is always a pure function of (records, criteria, sort, page,
// pageSize); View recomputes it on every call. A mutex guards the
// state because HTTP serves each console event on its own goroutine.
type Browser[T Record] struct {
	mu sync.Mutex

	dataset     string
	schema      *Schema[T]
	locks       *LockPolicy
	sink        Sink
	audit       AuditStore
	attachments *AttachmentStore
	logger      *slog.Logger
	clock       func() time.Time

	records  []T
	index    map[string]int
	criteria Criteria
	sort     *SortSpec
	page     int
	pageSize int

	sel     *Selection[T]
	state   SaveState
	saveGen uint64
	saveErr error
}

// New builds a browser over the given collection. The collection is
// owned by the browser afterwards and mutated only through Save.
func New[T Record](cfg Config[T], records []T) *Browser[T] {
	if cfg.PageSize <= 0 {
		cfg.PageSize = 20
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.Audit == nil {
		cfg.Audit = NewMemoryAudit()
	}
	owned := make([]T, len(records))
	copy(owned, records)
	index := make(map[string]int, len(owned))
	for i, rec := range owned {
		index[rec.RecordID()] = i
	}
	return &Browser[T]{
		dataset:     cfg.Dataset,
		schema:      cfg.Schema,
		locks:       cfg.Locks,
		sink:        cfg.Sink,
		audit:       cfg.Audit,
		attachments: NewAttachmentStore(),
		logger:      cfg.Logger,
		clock:       cfg.Clock,
		records:     owned,
		index:       index,
		criteria:    Criteria{},
		page:        1,
		pageSize:    cfg.PageSize,
		state:       StateIdle,
	}
}

// Dataset returns the dataset name the browser serves.
func (b *Browser[T]) Dataset() string { return b.dataset }

// Attachments exposes the per-record attachment store.
func (b *Browser[T]) Attachments() *AttachmentStore { return b.attachments }

// SetCriteria replaces the active filter criteria wholesale, the way
// the console rebuilds them on every filter-control change.
func (b *Browser[T]) SetCriteria(criteria Criteria) {
	b.mu.Lock()
	defer b.mu.Unlock()
	next := make(Criteria, len(criteria))
	for name, c := range criteria {
		next[name] = c
	}
	b.criteria = next
}

// ResetCriteria clears every filter.
func (b *Browser[T]) ResetCriteria() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.criteria = Criteria{}
}

// SortBy applies header-click semantics: the same field toggles
// direction, a new field resets to ascending.
func (b *Browser[T]) SortBy(field string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	next := Toggle(b.sort, field)
	b.sort = &next
}

// SetSort sets an explicit sort spec; nil clears sorting.
func (b *Browser[T]) SetSort(spec *SortSpec) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if spec == nil {
		b.sort = nil
		return
	}
	copied := *spec
	b.sort = &copied
}

// SetPage moves to the requested page; View clamps it against the
// filtered set.
func (b *Browser[T]) SetPage(page int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if page < 1 {
		page = 1
	}
	b.page = page
}

// Select opens the detail panel for the record: it binds the
// selection and creates the draft as a shallow copy of the backing
// record as of now.
func (b *Browser[T]) Select(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	idx, ok := b.index[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	b.sel = &Selection[T]{ID: id, Draft: b.records[idx]}
	b.state = StateEditing
	b.saveErr = nil
	return nil
}

// UpdateField writes one draft field on behalf of role. Locked and
// unknown fields are rejected without touching the draft; the backing
// record is never written here.
func (b *Browser[T]) UpdateField(field, value string, role Role) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.sel == nil {
		return ErrNoSelection
	}
	if b.locks.IsLocked(field, role) {
		return fmt.Errorf("%w: %s (%s)", ErrFieldLocked, field, role)
	}
	return b.schema.SetField(&b.sel.Draft, field, value)
}

// Clear closes the detail panel and discards the draft. It is a
// no-op when nothing is selected. Clearing while a save is in flight
// lets the save complete and discards its outcome; the panel stays
// closed.
func (b *Browser[T]) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sel = nil
	b.saveErr = nil
	b.state = StateIdle
}

// Record returns the current backing value for id.
func (b *Browser[T]) Record(id string) (T, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	var zero T
	idx, ok := b.index[id]
	if !ok {
		return zero, false
	}
	return b.records[idx], true
}

// AuditLog returns the newest-first audit trail for a record.
func (b *Browser[T]) AuditLog(ctx context.Context, id string) ([]Entry, error) {
	return b.audit.List(ctx, b.dataset, id)
}

// View recomputes the visible page from the current inputs, clamps
// the page against the filtered total, and clears the selection when
// the selected record has dropped out of the filtered set.
func (b *Browser[T]) View(ctx context.Context) (View[T], error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	filtered := b.schema.Filter(b.records, b.criteria)
	ordered := b.schema.Sort(filtered, b.sort)
	b.page = ClampPage(b.page, len(filtered), b.pageSize)
	pg := Paginate(ordered, b.page, b.pageSize)

	if b.sel != nil && !containsID(filtered, b.sel.ID) {
		b.sel = nil
		b.saveErr = nil
		if b.state == StateEditing {
			b.state = StateIdle
		}
	}

	out := View[T]{
		Data:   pg.Data,
		Window: pg.Window,
		State:  b.state,
	}
	if b.saveErr != nil {
		out.SaveError = b.saveErr.Error()
	}
	if b.sel != nil {
		out.Selection = b.sel.ID
		draft := b.sel.Draft
		out.Draft = &draft
		log, err := b.audit.List(ctx, b.dataset, b.sel.ID)
		if err != nil {
			return View[T]{}, fmt.Errorf("browse: load audit trail: %w", err)
		}
		out.AuditLog = log
		out.Attachments = b.attachments.List(b.sel.ID)
	}
	return out, nil
}

func containsID[T Record](records []T, id string) bool {
	for _, rec := range records {
		if rec.RecordID() == id {
			return true
		}
	}
	return false
}
