package browse

import (
	"strconv"
	"strings"
	"time"
)

// Criterion is one filter test against one field. Value carries the
// exact or substring match depending on the field kind; From and To
// carry inclusive date-range bounds for date fields. An entirely
// empty criterion is vacuously satisfied.
type Criterion struct {
	Value string
	From  string
	To    string
}

// Empty reports whether the criterion constrains anything.
func (c Criterion) Empty() bool {
	return c.Value == "" && c.From == "" && c.To == ""
}

// Criteria maps field names to their active criterion. All entries
// combine with logical AND; map order is irrelevant.
type Criteria map[string]Criterion

// Filter returns the records passing every non-empty criterion. A
// criterion naming a field outside the schema matches nothing.
// String fields match by case-insensitive substring, enum fields by
// equality, number fields by exact value, date fields by inclusive
// range (or exact day when Value is set). The input slice is never
// mutated.
func (s *Schema[T]) Filter(records []T, criteria Criteria) []T {
	active := make(Criteria, len(criteria))
	for name, c := range criteria {
		if !c.Empty() {
			active[name] = c
		}
	}
	if len(active) == 0 {
		out := make([]T, len(records))
		copy(out, records)
		return out
	}
	out := make([]T, 0, len(records))
	for _, rec := range records {
		if s.matchesAll(rec, active) {
			out = append(out, rec)
		}
	}
	return out
}

func (s *Schema[T]) matchesAll(rec T, criteria Criteria) bool {
	for name, c := range criteria {
		if !s.matches(rec, name, c) {
			return false
		}
	}
	return true
}

func (s *Schema[T]) matches(rec T, name string, c Criterion) bool {
	f, ok := s.fields[name]
	if !ok {
		return false
	}
	switch f.Kind {
	case KindEnum:
		return Stringify(f.Get(rec)) == c.Value
	case KindNumber:
		want, err := strconv.ParseFloat(strings.TrimSpace(c.Value), 64)
		if err != nil {
			return false
		}
		got, ok := f.Get(rec).(float64)
		return ok && got == want
	case KindDate:
		got, ok := f.Get(rec).(time.Time)
		if !ok || got.IsZero() {
			return false
		}
		return matchDate(got, c)
	default:
		hay := strings.ToLower(Stringify(f.Get(rec)))
		return strings.Contains(hay, strings.ToLower(c.Value))
	}
}

func matchDate(got time.Time, c Criterion) bool {
	day := got.Format(DateLayout)
	if c.Value != "" && day != c.Value {
		return false
	}
	if c.From != "" {
		from, err := time.Parse(DateLayout, c.From)
		if err != nil || got.Before(from) {
			return false
		}
	}
	if c.To != "" {
		to, err := time.Parse(DateLayout, c.To)
		if err != nil {
			return false
		}
		// Inclusive upper bound: anything on the To day still passes.
		if got.After(to.AddDate(0, 0, 1).Add(-time.Nanosecond)) {
			return false
		}
	}
	return true
}
