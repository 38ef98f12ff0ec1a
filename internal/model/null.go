package model

import (
	"encoding/json"
	"fmt"
)

// NullString is a text column that may be NULL. NULL encodes as JSON null.
type NullString struct {
	String string
	Valid  bool
}

func NewNullString(s string) NullString {
	return NullString{String: s, Valid: true}
}

// Scan implements sql.Scanner.
func (s *NullString) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*s = NullString{}
	case string:
		*s = NullString{String: v, Valid: true}
	case []byte:
		*s = NullString{String: string(v), Valid: true}
	default:
		*s = NullString{String: fmt.Sprint(v), Valid: true}
	}
	return nil
}

func (s NullString) MarshalJSON() ([]byte, error) {
	if !s.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(s.String)
}

// Key is an opaque row identifier. It keeps whatever the driver returned, so
// integer keys encode as JSON numbers and text keys as strings.
type Key struct {
	value interface{}
}

func NewKey(v interface{}) Key {
	return Key{value: v}
}

// Raw returns the scanned value; nil for NULL.
func (k Key) Raw() interface{} {
	return k.value
}

// Scan implements sql.Scanner.
func (k *Key) Scan(value interface{}) error {
	if b, ok := value.([]byte); ok {
		// drivers reuse the buffer after Scan returns
		k.value = string(b)
		return nil
	}
	k.value = value
	return nil
}

func (k Key) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.value)
}
