package browse

// Selection binds at most one active record to an editable draft.
// The draft starts as a shallow copy of the record at selection time
// and diverges only through UpdateField; the backing record is never
// touched until save.
type Selection[T Record] struct {
	ID    string
	Draft T
}
