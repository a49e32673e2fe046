// Package optional provides a JSON-aware wrapper that distinguishes a field
// that was omitted from a request body from one that was explicitly set to
// null. A plain pointer cannot make that distinction, which PATCH semantics
// require for nullable columns.
package optional

import "encoding/json"

// Optional holds a value together with its presence state.
// Set reports whether the field appeared in the JSON document at all;
// Valid reports whether it carried a non-null value.
type Optional[T any] struct {
	Set   bool
	Valid bool
	Value T
}

// Of returns an Optional carrying the given value.
func Of[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Valid: true, Value: v}
}

// Null returns an Optional that was explicitly set to null.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

// UnmarshalJSON is only invoked by encoding/json when the field is present,
// so Set is always true here; the zero Optional means the field was omitted.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		var zero T
		o.Value = zero
		o.Valid = false
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

// MarshalJSON renders null for both omitted and explicit-null states.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// Ptr returns the value as a pointer, or nil when the Optional is null or
// unset. Useful for passing to SQL drivers where nil maps to NULL.
func (o Optional[T]) Ptr() *T {
	if !o.Set || !o.Valid {
		return nil
	}
	v := o.Value
	return &v
}
