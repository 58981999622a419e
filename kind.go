package cssel

import "fmt"

// Kind identifies one class of simple-selector fragment. Declaration order is
// the rank order enforced by Compound appends: element < id < class <
// attribute < pseudo-class < pseudo-element.
type Kind int

const (
	KindElement Kind = iota
	KindID
	KindClass
	KindAttribute
	KindPseudoClass
	KindPseudoElement
)

var kindNames = [...]string{
	KindElement:       "element",
	KindID:            "id",
	KindClass:         "class",
	KindAttribute:     "attribute",
	KindPseudoClass:   "pseudo-class",
	KindPseudoElement: "pseudo-element",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind maps a document name to a Kind. Besides the String() names it
// accepts the short and camel-cased spellings used by selector documents.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "element", "tag":
		return KindElement, true
	case "id":
		return KindID, true
	case "class":
		return KindClass, true
	case "attribute", "attr":
		return KindAttribute, true
	case "pseudo-class", "pseudoClass":
		return KindPseudoClass, true
	case "pseudo-element", "pseudoElement":
		return KindPseudoElement, true
	}
	return 0, false
}
