// Package geom holds small plain-data geometry value objects. Fields are
// exported so codec round-trips reconstruct a value whose derived behavior
// (Area) is immediately available again.
package geom

type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

type Rectangle struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// NewRectangle returns a rectangle with the given side lengths.
func NewRectangle(width, height float64) Rectangle {
	return Rectangle{Width: width, Height: height}
}

// Area returns width * height.
func (r Rectangle) Area() float64 {
	return r.Width * r.Height
}
