package cssel_test

import (
	"testing"

	cssel "github.com/reoring/cssel"
)

func TestCompound_OrderViolation(t *testing.T) {
	_, err := cssel.Class("container").ID("main").Render()
	if err == nil {
		t.Fatalf("expected order violation for id after class")
	}
	if !cssel.IsOrderViolation(err) {
		t.Fatalf("expected order_violation, got %v", err)
	}
	iss, ok := cssel.AsIssues(err)
	if !ok || len(iss) != 1 {
		t.Fatalf("expected a single issue, got %v", err)
	}
	if iss[0].Code != cssel.CodeOrderViolation || iss[0].Path != "/1" {
		t.Fatalf("issue = %+v", iss[0])
	}
}

func TestCompound_ElementAfterOtherKind(t *testing.T) {
	// No element fragment present, so this is an ordering failure.
	err := cssel.ID("main").Element("div").Err()
	if !cssel.IsOrderViolation(err) {
		t.Fatalf("expected order_violation, got %v", err)
	}
}

func TestCompound_ElementTwice(t *testing.T) {
	err := cssel.Element("div").Element("span").Err()
	if !cssel.IsDuplicatePart(err) {
		t.Fatalf("expected duplicate_part, got %v", err)
	}
}

func TestCompound_IDTwice(t *testing.T) {
	err := cssel.ID("a").ID("b").Err()
	if !cssel.IsDuplicatePart(err) {
		t.Fatalf("expected duplicate_part, got %v", err)
	}
}

func TestCompound_PseudoElementTwice(t *testing.T) {
	err := cssel.Element("p").PseudoElement("before").PseudoElement("after").Err()
	if !cssel.IsDuplicatePart(err) {
		t.Fatalf("expected duplicate_part, got %v", err)
	}
}

func TestCompound_DuplicateWinsOverOrder(t *testing.T) {
	// A second id after a class is both duplicated and out of order;
	// uniqueness is checked first.
	err := cssel.Element("div").ID("a").Class("row").ID("b").Err()
	if !cssel.IsDuplicatePart(err) {
		t.Fatalf("expected duplicate_part, got %v", err)
	}
	if cssel.IsOrderViolation(err) {
		t.Fatalf("order_violation reported alongside duplicate_part: %v", err)
	}
}

func TestCompound_StickyIssuePoisonsChain(t *testing.T) {
	c := cssel.Class("x").Element("div")
	if c.Err() == nil {
		t.Fatalf("expected recorded issue")
	}
	// Later appends are no-ops: the offending fragment and everything after
	// it stay out of the sequence, and no further issues accumulate.
	c.Class("y").ID("z")
	if got := len(c.Parts()); got != 1 {
		t.Fatalf("parts = %d, want 1", got)
	}
	iss, _ := cssel.AsIssues(c.Err())
	if len(iss) != 1 {
		t.Fatalf("issues = %d, want 1", len(iss))
	}
	if _, err := c.Render(); err == nil {
		t.Fatalf("expected render to surface the recorded issue")
	}
}

func TestCompound_MustRenderPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic")
		}
		err, ok := r.(error)
		if !ok || !cssel.IsDuplicatePart(err) {
			t.Fatalf("panic value = %v, want duplicate_part error", r)
		}
	}()
	cssel.ID("a").ID("b").MustRender()
}
