package cssel

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeOrderViolation = "order_violation"
	CodeDuplicatePart  = "duplicate_part"
)

// Canonical messages for the two builder violations.
const (
	msgOrderViolation = "selector parts must appear in order: element, id, class, attribute, pseudo-class, pseudo-element"
	msgDuplicatePart  = "element, id, and pseudo-element may each occur at most once in a compound selector"
)

// Issue represents a single builder violation.
type Issue struct {
	Path    string // Fragment position as a JSON Pointer (for example: /2).
	Code    string // One of the codes listed above.
	Message string
	// Params carries structured parameters (e.g., {"kind":"id"}) for
	// observability.
	Params map[string]any
}

// Issues is a collection of builder violations that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. order_violation at /2
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// IsOrderViolation reports whether err carries an order_violation issue.
func IsOrderViolation(err error) bool { return hasCode(err, CodeOrderViolation) }

// IsDuplicatePart reports whether err carries a duplicate_part issue.
func IsDuplicatePart(err error) bool { return hasCode(err, CodeDuplicatePart) }

func hasCode(err error, code string) bool {
	iss, ok := AsIssues(err)
	if !ok {
		return false
	}
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}
