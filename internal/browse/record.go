// Package browse implements the record browser engine shared by the
// console's HR views: an in-memory pipeline that filters a collection,
// sorts it deterministically, paginates it, binds a single selected
// record to an editable draft, and applies optimistic saves with a
// per-field audit trail and role-based field locks.
package browse

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Record is any entity with a stable unique identifier.
type Record interface {
	RecordID() string
}

// Kind classifies a field for filtering, sorting and stringification.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindDate
	KindEnum
)

// DateLayout is the wire format for date fields and range bounds.
const DateLayout = "2006-01-02"

// Field describes one named field of a record: how to read it, how to
// write it into a draft, and how it compares. A nil Set marks the
// field read-only at the schema level (ids, derived values). Format,
// when set, replaces the default rendering in exports and audit
// entries; filtering and sorting always use the raw Get value.
type Field[T any] struct {
	Kind   Kind
	Get    func(T) any
	Set    func(*T, string) error
	Format func(T) string
}

// Schema is the ordered field table for one record type. It is built
// once per dataset and never mutated afterwards.
type Schema[T Record] struct {
	fields map[string]Field[T]
	names  []string
}

// NewSchema returns an empty schema.
func NewSchema[T Record]() *Schema[T] {
	return &Schema[T]{fields: make(map[string]Field[T])}
}

// Add registers a field under name. Re-adding a name replaces the
// previous definition but keeps its position.
func (s *Schema[T]) Add(name string, f Field[T]) *Schema[T] {
	if _, ok := s.fields[name]; !ok {
		s.names = append(s.names, name)
	}
	s.fields[name] = f
	return s
}

// Lookup returns the field definition for name.
func (s *Schema[T]) Lookup(name string) (Field[T], bool) {
	f, ok := s.fields[name]
	return f, ok
}

// Names returns field names in declaration order.
func (s *Schema[T]) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// ValueString renders a field value as a string. Unknown fields and
// nil values render as the empty string so that absent and null
// values stay representable in audit entries.
func (s *Schema[T]) ValueString(rec T, name string) string {
	f, ok := s.fields[name]
	if !ok {
		return ""
	}
	if f.Format != nil {
		return f.Format(rec)
	}
	return Stringify(f.Get(rec))
}

// Export renders every field of rec as strings, keyed by field name.
func (s *Schema[T]) Export(rec T) map[string]string {
	out := make(map[string]string, len(s.names))
	for _, name := range s.names {
		out[name] = s.ValueString(rec, name)
	}
	return out
}

// SetField writes a raw string value into the draft through the
// field's setter. Read-only fields report ErrFieldReadOnly.
func (s *Schema[T]) SetField(draft *T, name, value string) error {
	f, ok := s.fields[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	if f.Set == nil {
		return fmt.Errorf("%w: %s", ErrFieldReadOnly, name)
	}
	return f.Set(draft, value)
}

// Stringify renders a scalar field value. Dates use DateLayout, zero
// times and nils render empty, floats drop trailing zeros.
func Stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case time.Time:
		if val.IsZero() {
			return ""
		}
		return val.Format(DateLayout)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// StringField builds a plain string field.
func StringField[T any](get func(T) string, set func(*T, string)) Field[T] {
	f := Field[T]{Kind: KindString, Get: func(rec T) any { return get(rec) }}
	if set != nil {
		f.Set = func(rec *T, v string) error {
			set(rec, v)
			return nil
		}
	}
	return f
}

// EnumField builds an exact-match string field restricted to the
// given values. An empty allowed list accepts anything.
func EnumField[T any](get func(T) string, set func(*T, string), allowed ...string) Field[T] {
	f := Field[T]{Kind: KindEnum, Get: func(rec T) any { return get(rec) }}
	if set != nil {
		f.Set = func(rec *T, v string) error {
			if len(allowed) > 0 {
				ok := false
				for _, a := range allowed {
					if a == v {
						ok = true
						break
					}
				}
				if !ok {
					return fmt.Errorf("%w: %q not in %s", ErrInvalidValue, v, strings.Join(allowed, "|"))
				}
			}
			set(rec, v)
			return nil
		}
	}
	return f
}

// NumberField builds a numeric field stored as float64.
func NumberField[T any](get func(T) float64, set func(*T, float64)) Field[T] {
	f := Field[T]{Kind: KindNumber, Get: func(rec T) any { return get(rec) }}
	if set != nil {
		f.Set = func(rec *T, v string) error {
			parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				return fmt.Errorf("%w: %q is not a number", ErrInvalidValue, v)
			}
			set(rec, parsed)
			return nil
		}
	}
	return f
}

// DateField builds a date field stored as time.Time. Setting an empty
// string clears the date.
func DateField[T any](get func(T) time.Time, set func(*T, time.Time)) Field[T] {
	f := Field[T]{Kind: KindDate, Get: func(rec T) any { return get(rec) }}
	if set != nil {
		f.Set = func(rec *T, v string) error {
			v = strings.TrimSpace(v)
			if v == "" {
				set(rec, time.Time{})
				return nil
			}
			parsed, err := time.Parse(DateLayout, v)
			if err != nil {
				return fmt.Errorf("%w: %q is not a date (%s)", ErrInvalidValue, v, DateLayout)
			}
			set(rec, parsed)
			return nil
		}
	}
	return f
}
