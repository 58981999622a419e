// Package codec provides generic text encode/decode helpers used alongside
// cssel: a value goes out as canonical JSON or YAML text, and comes back as a
// fresh typed instance. The type parameter on the decode side plays the
// prototype role: parsed fields are combined with T's method set without
// running any of T's constructors.
package codec

import (
	j "github.com/goccy/go-json"
)

// MarshalJSON encodes v as canonical JSON text. Key order follows the
// encoder's standard rules (struct field order for structs).
func MarshalJSON(v any) (string, error) {
	b, err := j.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// UnmarshalJSON parses text as a JSON record into a fresh T. Malformed input
// surfaces the decoder's own error unchanged.
func UnmarshalJSON[T any](text string) (T, error) {
	var out T
	if err := j.Unmarshal([]byte(text), &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}
