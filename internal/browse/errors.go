package browse

import "errors"

var (
	// ErrNotFound indicates the record id is not in the collection.
	ErrNotFound = errors.New("browse: record not found")
	// ErrNoSelection indicates an edit or save without an open selection.
	ErrNoSelection = errors.New("browse: no active selection")
	// ErrFieldLocked indicates the acting role may not edit the field.
	ErrFieldLocked = errors.New("browse: field locked for role")
	// ErrFieldReadOnly indicates the schema defines no setter for the field.
	ErrFieldReadOnly = errors.New("browse: field is read-only")
	// ErrUnknownField indicates the field is not part of the schema.
	ErrUnknownField = errors.New("browse: unknown field")
	// ErrInvalidValue indicates a draft value that does not parse for the field kind.
	ErrInvalidValue = errors.New("browse: invalid value")
	// ErrSaveInFlight indicates a save is already outstanding for the selection.
	ErrSaveInFlight = errors.New("browse: save already in flight")
)
