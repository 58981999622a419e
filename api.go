package cssel

// Selector is a renderable selector tree: either a *Compound leaf or a
// *Combined node.
type Selector interface {
	// Render returns the selector text, or the issues recorded while the
	// tree was built.
	Render() (string, error)
	// MustRender is like Render but panics on error.
	MustRender() string
}

// ---- Construction entry points ----
//
// Each constructor returns a fresh *Compound seeded with a single fragment;
// the constructors hold no state and may be called from any goroutine.

// Element starts a compound selector with an element fragment.
func Element(v string) *Compound { return seed(v, KindElement) }

// ID starts a compound selector with an id fragment.
func ID(v string) *Compound { return seed(v, KindID) }

// Class starts a compound selector with a class fragment.
func Class(v string) *Compound { return seed(v, KindClass) }

// Attr starts a compound selector with an attribute fragment.
func Attr(v string) *Compound { return seed(v, KindAttribute) }

// PseudoClass starts a compound selector with a pseudo-class fragment.
func PseudoClass(v string) *Compound { return seed(v, KindPseudoClass) }

// PseudoElement starts a compound selector with a pseudo-element fragment.
func PseudoElement(v string) *Compound { return seed(v, KindPseudoElement) }

// Combine pairs two already-built selector trees with a combinator.
func Combine(left Selector, op Combinator, right Selector) *Combined {
	return &Combined{left: left, op: op, right: right}
}

func seed(v string, k Kind) *Compound {
	c := &Compound{}
	return c.append(v, k)
}
