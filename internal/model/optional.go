package model

import "encoding/json"

// Optional is a JSON patch field that distinguishes three states: absent
// (Set false), explicit null (Set true, Valid false) and a value (Set and
// Valid true). encoding/json leaves absent fields untouched, so a field
// that was never unmarshaled keeps its zero value and reads as absent.
type Optional[T any] struct {
	Set   bool
	Valid bool
	Value T
}

// UnmarshalJSON implements json.Unmarshaler. It is only called when the
// field is present in the payload.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Valid = false
		var zero T
		o.Value = zero
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

// MarshalJSON implements json.Marshaler so patch values round-trip in logs
// and tests.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Valid: true, Value: v}
}

// Null returns a present-but-null Optional.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}
