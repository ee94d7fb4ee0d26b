package audit

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridian-ops/meridian-ops/internal/browse"
)

type execCall struct {
	sql  string
	args []interface{}
}

type stubDB struct {
	execs    []execCall
	execErr  error
	rows     []browse.Entry
	queryErr error
}

func (s *stubDB) Exec(_ context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	s.execs = append(s.execs, execCall{sql: sql, args: args})
	return pgconn.CommandTag{}, s.execErr
}

func (s *stubDB) Query(_ context.Context, _ string, _ ...interface{}) (pgx.Rows, error) {
	if s.queryErr != nil {
		return nil, s.queryErr
	}
	return &stubRows{entries: s.rows, index: -1}, nil
}

type stubRows struct {
	entries []browse.Entry
	index   int
}

func (r *stubRows) Close()                                       { r.index = len(r.entries) }
func (r *stubRows) Err() error                                   { return nil }
func (r *stubRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *stubRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *stubRows) RawValues() [][]byte                          { return nil }
func (r *stubRows) Conn() *pgx.Conn                              { return nil }

func (r *stubRows) Next() bool {
	if r.index+1 >= len(r.entries) {
		r.index = len(r.entries)
		return false
	}
	r.index++
	return true
}

func (r *stubRows) Scan(dest ...interface{}) error {
	if r.index < 0 || r.index >= len(r.entries) {
		return fmt.Errorf("no row available")
	}
	e := r.entries[r.index]
	if len(dest) != 6 {
		return fmt.Errorf("expected 6 destinations, got %d", len(dest))
	}
	*dest[0].(*string) = e.ID
	*dest[1].(*time.Time) = e.At
	*dest[2].(*string) = e.User
	*dest[3].(*string) = e.Field
	*dest[4].(*string) = e.From
	*dest[5].(*string) = e.To
	return nil
}

func (r *stubRows) Values() ([]interface{}, error) {
	return nil, fmt.Errorf("not implemented")
}

func TestArchiveAppendInsertsEachEntry(t *testing.T) {
	db := &stubDB{}
	a := &Archive{db: db}
	entries := []browse.Entry{
		{ID: "a1", At: time.Now(), User: "hr.lead", Field: "status", From: "active", To: "leave"},
		{ID: "a2", At: time.Now(), User: "hr.lead", Field: "salary", From: "3000", To: "3200"},
	}
	require.NoError(t, a.Append(context.Background(), "members", "e1", entries))
	require.Len(t, db.execs, 2)
	assert.Equal(t, "a1", db.execs[0].args[0])
	assert.Equal(t, "members", db.execs[0].args[1])
	assert.Equal(t, "e1", db.execs[0].args[2])
	assert.Equal(t, "a2", db.execs[1].args[0])
}

func TestArchiveAppendSkipsDuplicates(t *testing.T) {
	db := &stubDB{execErr: &pgconn.PgError{Code: "23505"}}
	a := &Archive{db: db}
	err := a.Append(context.Background(), "members", "e1", []browse.Entry{{ID: "a1"}})
	assert.NoError(t, err)
}

func TestArchiveAppendSurfacesOtherErrors(t *testing.T) {
	db := &stubDB{execErr: &pgconn.PgError{Code: "42P01"}}
	a := &Archive{db: db}
	err := a.Append(context.Background(), "members", "e1", []browse.Entry{{ID: "a1"}})
	assert.Error(t, err)
}

func TestArchiveListScansEntries(t *testing.T) {
	at := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	db := &stubDB{rows: []browse.Entry{
		{ID: "a2", At: at, User: "hr.lead", Field: "salary", From: "3000", To: "3200"},
		{ID: "a1", At: at.Add(-time.Hour), User: "hr.lead", Field: "status", From: "active", To: "leave"},
	}}
	a := &Archive{db: db}
	got, err := a.List(context.Background(), "members", "e1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a2", got[0].ID)
	assert.Equal(t, "salary", got[0].Field)
	assert.Equal(t, "leave", got[1].To)
}

type failingStore struct{ err error }

func (f *failingStore) Append(context.Context, string, string, []browse.Entry) error {
	return f.err
}

func (f *failingStore) List(context.Context, string, string) ([]browse.Entry, error) {
	return nil, f.err
}

func TestTeeArchiveFailureIsNotFatal(t *testing.T) {
	mem := browse.NewMemoryAudit()
	tee := NewTee(mem, &failingStore{err: fmt.Errorf("archive down")}, nil)
	err := tee.Append(context.Background(), "members", "e1", []browse.Entry{{ID: "a1", Field: "status"}})
	require.NoError(t, err)

	got, err := tee.List(context.Background(), "members", "e1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a1", got[0].ID)
}
