package viewmodel

import (
	"bytes"
	"encoding/json"
)

// Optional holds a value that the data layer may leave out. A missing JSON key
// and an explicit null both decode to the empty Optional; neither becomes the
// zero value of T.
type Optional[T any] struct {
	value T
	valid bool
}

// Some wraps a present value
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, valid: true}
}

// None returns an empty Optional
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it is present
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.valid
}

// IsSome reports whether a value is present
func (o Optional[T]) IsSome() bool {
	return o.valid
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = Optional[T]{}
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}

// TriState is a flag that may not have been checked yet
type TriState int8

const (
	TriUnknown TriState = iota
	TriTrue
	TriFalse
)

// TriFromBool converts a checked boolean
func TriFromBool(b bool) TriState {
	if b {
		return TriTrue
	}
	return TriFalse
}

// Known reports whether the flag has been checked
func (t TriState) Known() bool {
	return t == TriTrue || t == TriFalse
}

// String returns the string representation of the flag
func (t TriState) String() string {
	switch t {
	case TriTrue:
		return "true"
	case TriFalse:
		return "false"
	default:
		return "unknown"
	}
}

func (t TriState) MarshalJSON() ([]byte, error) {
	switch t {
	case TriTrue:
		return []byte("true"), nil
	case TriFalse:
		return []byte("false"), nil
	default:
		return []byte("null"), nil
	}
}

func (t *TriState) UnmarshalJSON(data []byte) error {
	switch string(bytes.TrimSpace(data)) {
	case "null":
		*t = TriUnknown
		return nil
	case "true":
		*t = TriTrue
		return nil
	case "false":
		*t = TriFalse
		return nil
	}

	var b bool
	if err := json.Unmarshal(data, &b); err != nil {
		return err
	}
	*t = TriFromBool(b)
	return nil
}
