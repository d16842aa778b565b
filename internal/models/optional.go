package models

import (
	"bytes"
	"encoding/json"
)

// Optional is a tri-state JSON field for partial updates: a field can be
// absent from the request body, explicitly null, or carry a value. Plain
// pointers conflate the first two states, which matters for profile
// updates where `"bio": null` clears the bio but an absent bio leaves it
// unchanged.
type Optional[T any] struct {
	Set   bool // field was present in the request body
	Valid bool // field carried a non-null value
	Val   T
}

// UnmarshalJSON is only invoked for fields present in the body, so Set
// is always true here; absent fields keep the zero Optional.
func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(b, &o.Val); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

// MarshalJSON round-trips the tri-state: unset and null both encode as
// null (callers should omit unset fields themselves).
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Val)
}

// Some returns a present, non-null Optional.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Valid: true, Val: v}
}

// Null returns a present but explicitly null Optional.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}
