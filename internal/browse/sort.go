package browse

import (
	"cmp"
	"slices"
	"strings"
	"time"
)

// Direction orders ascending or descending.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// SortSpec is the single active sort: one field, one direction.
type SortSpec struct {
	Field     string    `json:"field"`
	Direction Direction `json:"direction"`
}

// Toggle derives the next sort spec for a header click: the same
// field flips direction, a new field starts ascending.
func Toggle(current *SortSpec, field string) SortSpec {
	if current != nil && current.Field == field && current.Direction == Asc {
		return SortSpec{Field: field, Direction: Desc}
	}
	return SortSpec{Field: field, Direction: Asc}
}

// Sort returns a copy of records ordered by spec. A nil spec, an
// empty field or a field outside the schema leaves the input order
// unchanged. Number fields compare numerically, date fields by
// timestamp, everything else by plain string comparison. The sort is
// stable; descending negates the comparator rather than reversing
// the result, so equal keys keep their relative order either way.
func (s *Schema[T]) Sort(records []T, spec *SortSpec) []T {
	out := make([]T, len(records))
	copy(out, records)
	if spec == nil || spec.Field == "" {
		return out
	}
	f, ok := s.fields[spec.Field]
	if !ok {
		return out
	}
	compare := comparatorFor(f)
	if spec.Direction == Desc {
		inner := compare
		compare = func(a, b T) int { return -inner(a, b) }
	}
	slices.SortStableFunc(out, compare)
	return out
}

func comparatorFor[T Record](f Field[T]) func(a, b T) int {
	switch f.Kind {
	case KindNumber:
		return func(a, b T) int {
			av, _ := f.Get(a).(float64)
			bv, _ := f.Get(b).(float64)
			return cmp.Compare(av, bv)
		}
	case KindDate:
		return func(a, b T) int {
			av, _ := f.Get(a).(time.Time)
			bv, _ := f.Get(b).(time.Time)
			return av.Compare(bv)
		}
	default:
		return func(a, b T) int {
			return strings.Compare(Stringify(f.Get(a)), Stringify(f.Get(b)))
		}
	}
}
