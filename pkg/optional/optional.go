// Package optional provides a tri-state JSON field for partial updates.
// A field omitted from the payload, a field explicitly set to null, and a
// field carrying a value are three distinct states: omitted fields are left
// untouched, null fields are nulled.
package optional

import "encoding/json"

type Field[T any] struct {
	Present bool // the key appeared in the payload
	Valid   bool // false when the payload carried an explicit null
	Value   T
}

// Set returns a field carrying a value. Intended for building inputs in tests.
func Set[T any](v T) Field[T] {
	return Field[T]{Present: true, Valid: true, Value: v}
}

// Null returns a field carrying an explicit null.
func Null[T any]() Field[T] {
	return Field[T]{Present: true}
}

func (f *Field[T]) UnmarshalJSON(b []byte) error {
	f.Present = true
	if string(b) == "null" {
		f.Valid = false
		var zero T
		f.Value = zero
		return nil
	}
	if err := json.Unmarshal(b, &f.Value); err != nil {
		return err
	}
	f.Valid = true
	return nil
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.Present || !f.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// Ptr returns the value as a nullable pointer: nil for an explicit null.
// Callers must check Present before applying it.
func (f Field[T]) Ptr() *T {
	if !f.Valid {
		return nil
	}
	v := f.Value
	return &v
}
