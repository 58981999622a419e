package cssel

// Simple is one atomic selector fragment. It is immutable once created;
// Value is emitted verbatim with the prefix or wrapping implied by Kind.
type Simple struct {
	Value string
	Kind  Kind
}

// String renders the fragment.
func (s Simple) String() string {
	switch s.Kind {
	case KindID:
		return "#" + s.Value
	case KindClass:
		return "." + s.Value
	case KindAttribute:
		return "[" + s.Value + "]"
	case KindPseudoClass:
		return ":" + s.Value
	case KindPseudoElement:
		return "::" + s.Value
	default:
		return s.Value
	}
}
