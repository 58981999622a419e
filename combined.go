package cssel

// Combinator joins two selector trees. Any string value is accepted and
// emitted verbatim; the constants cover the CSS combinators.
type Combinator string

const (
	Descendant        Combinator = " "
	Child             Combinator = ">"
	NextSibling       Combinator = "+"
	SubsequentSibling Combinator = "~"
)

// Combined pairs two selector trees with a combinator. It is immutable after
// construction and may nest arbitrarily deep; rendering recurses through the
// tree. Construction only accepts already-built trees, so a node can never
// reference an ancestor.
type Combined struct {
	left  Selector
	op    Combinator
	right Selector
}

// Left returns the left subtree.
func (s *Combined) Left() Selector { return s.left }

// Op returns the combinator.
func (s *Combined) Op() Combinator { return s.op }

// Right returns the right subtree.
func (s *Combined) Right() Selector { return s.right }

// Render joins the rendered subtrees as `left + " " + op + " " + right`.
// Issues recorded on either subtree propagate unchanged.
func (s *Combined) Render() (string, error) {
	l, err := s.left.Render()
	if err != nil {
		return "", err
	}
	r, err := s.right.Render()
	if err != nil {
		return "", err
	}
	return l + " " + string(s.op) + " " + r, nil
}

// MustRender is like Render but panics on error.
func (s *Combined) MustRender() string {
	out, err := s.Render()
	if err != nil {
		panic(err)
	}
	return out
}
