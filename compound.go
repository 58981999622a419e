package cssel

import (
	"strconv"
	"strings"
)

// Compound accumulates simple-selector fragments describing a single element.
// Fragments render in insertion order; appends enforce the fixed rank order
// (see Kind) and the at-most-once rule for element, id and pseudo-element
// fragments, with uniqueness checked before ordering.
//
// The zero value is an empty compound ready for appends, though callers
// normally start from one of the package-level constructors. Mutation methods
// return the receiver for chaining. The first violation poisons the chain:
// the offending fragment is not appended, later appends become no-ops, and
// the recorded issues surface from Err, Render or MustRender. A Compound is
// exclusively owned by its caller; it is not safe for concurrent mutation.
type Compound struct {
	parts []Simple

	elementCount       int
	idCount            int
	pseudoElementCount int

	iss Issues
}

// Element appends an element fragment. An element may only ever be the first
// fragment, so on a non-empty compound this always records an issue:
// duplicate_part when an element fragment is already present, otherwise
// order_violation. The method exists to enforce that invariant.
func (c *Compound) Element(v string) *Compound { return c.append(v, KindElement) }

// ID appends an id fragment (`#v`).
func (c *Compound) ID(v string) *Compound { return c.append(v, KindID) }

// Class appends a class fragment (`.v`).
func (c *Compound) Class(v string) *Compound { return c.append(v, KindClass) }

// Attr appends an attribute fragment (`[v]`). The value is emitted verbatim,
// so it may carry an operator and quoted operand, e.g. `href$=".png"`.
func (c *Compound) Attr(v string) *Compound { return c.append(v, KindAttribute) }

// PseudoClass appends a pseudo-class fragment (`:v`).
func (c *Compound) PseudoClass(v string) *Compound { return c.append(v, KindPseudoClass) }

// PseudoElement appends a pseudo-element fragment (`::v`).
func (c *Compound) PseudoElement(v string) *Compound { return c.append(v, KindPseudoElement) }

func (c *Compound) append(v string, k Kind) *Compound {
	if len(c.iss) > 0 {
		return c
	}
	// Uniqueness before ordering: a repeated element or id reports
	// duplicate_part even when it is also out of order.
	switch k {
	case KindElement:
		if c.elementCount > 0 {
			return c.fail(k, CodeDuplicatePart, msgDuplicatePart)
		}
	case KindID:
		if c.idCount > 0 {
			return c.fail(k, CodeDuplicatePart, msgDuplicatePart)
		}
	case KindPseudoElement:
		if c.pseudoElementCount > 0 {
			return c.fail(k, CodeDuplicatePart, msgDuplicatePart)
		}
	}
	if n := len(c.parts); n > 0 && c.parts[n-1].Kind > k {
		return c.fail(k, CodeOrderViolation, msgOrderViolation)
	}
	c.parts = append(c.parts, Simple{Value: v, Kind: k})
	switch k {
	case KindElement:
		c.elementCount++
	case KindID:
		c.idCount++
	case KindPseudoElement:
		c.pseudoElementCount++
	}
	return c
}

func (c *Compound) fail(k Kind, code, msg string) *Compound {
	c.iss = AppendIssues(c.iss, Issue{
		Path:    "/" + strconv.Itoa(len(c.parts)),
		Code:    code,
		Message: msg,
		Params:  map[string]any{"kind": k.String()},
	})
	return c
}

// Err reports the issues recorded by a failed append, or nil.
func (c *Compound) Err() error {
	if len(c.iss) > 0 {
		return c.iss
	}
	return nil
}

// Parts returns a copy of the fragments appended so far.
func (c *Compound) Parts() []Simple {
	out := make([]Simple, len(c.parts))
	copy(out, c.parts)
	return out
}

// Render concatenates the fragments in insertion order with no separator,
// e.g. "div#main.container". It returns the recorded issues when an append
// has failed.
func (c *Compound) Render() (string, error) {
	if len(c.iss) > 0 {
		return "", c.iss
	}
	b := &strings.Builder{}
	for _, p := range c.parts {
		b.WriteString(p.String())
	}
	return b.String(), nil
}

// MustRender is like Render but panics on error.
func (c *Compound) MustRender() string {
	s, err := c.Render()
	if err != nil {
		panic(err)
	}
	return s
}
