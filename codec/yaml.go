package codec

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// MarshalYAML encodes v as YAML text without a trailing document separator.
func MarshalYAML(v any) (string, error) {
	b, err := yaml.Marshal(v)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(string(b), "\n"), nil
}

// UnmarshalYAML parses text as a YAML record into a fresh T. Malformed input
// surfaces the decoder's own error unchanged.
func UnmarshalYAML[T any](text string) (T, error) {
	var out T
	if err := yaml.Unmarshal([]byte(text), &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}
