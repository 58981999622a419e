package geom_test

import (
	"testing"

	"github.com/reoring/cssel/geom"
)

func TestRectangle_Area(t *testing.T) {
	if got := geom.NewRectangle(10, 20).Area(); got != 200 {
		t.Fatalf("Area() = %v, want 200", got)
	}
	if got := geom.NewRectangle(0, 5).Area(); got != 0 {
		t.Fatalf("Area() = %v, want 0", got)
	}
	if got := geom.NewRectangle(2.5, 4).Area(); got != 10 {
		t.Fatalf("Area() = %v, want 10", got)
	}
}
