package cssel_test

import (
	"testing"

	cssel "github.com/reoring/cssel"
)

func TestSimple_String(t *testing.T) {
	cases := []struct {
		frag cssel.Simple
		want string
	}{
		{cssel.Simple{Value: "div", Kind: cssel.KindElement}, "div"},
		{cssel.Simple{Value: "main", Kind: cssel.KindID}, "#main"},
		{cssel.Simple{Value: "active", Kind: cssel.KindClass}, ".active"},
		{cssel.Simple{Value: `href$=".png"`, Kind: cssel.KindAttribute}, `[href$=".png"]`},
		{cssel.Simple{Value: "focus", Kind: cssel.KindPseudoClass}, ":focus"},
		{cssel.Simple{Value: "before", Kind: cssel.KindPseudoElement}, "::before"},
	}
	for _, tc := range cases {
		if got := tc.frag.String(); got != tc.want {
			t.Fatalf("%v.String() = %q, want %q", tc.frag.Kind, got, tc.want)
		}
	}
}

func TestKind_String(t *testing.T) {
	if got := cssel.KindPseudoElement.String(); got != "pseudo-element" {
		t.Fatalf("String() = %q", got)
	}
	if got := cssel.Kind(42).String(); got != "Kind(42)" {
		t.Fatalf("out-of-range String() = %q", got)
	}
}

func TestParseKind(t *testing.T) {
	cases := map[string]cssel.Kind{
		"element":        cssel.KindElement,
		"tag":            cssel.KindElement,
		"id":             cssel.KindID,
		"class":          cssel.KindClass,
		"attribute":      cssel.KindAttribute,
		"attr":           cssel.KindAttribute,
		"pseudo-class":   cssel.KindPseudoClass,
		"pseudoClass":    cssel.KindPseudoClass,
		"pseudo-element": cssel.KindPseudoElement,
		"pseudoElement":  cssel.KindPseudoElement,
	}
	for name, want := range cases {
		got, ok := cssel.ParseKind(name)
		if !ok || got != want {
			t.Fatalf("ParseKind(%q) = %v, %v; want %v", name, got, ok, want)
		}
	}
	if _, ok := cssel.ParseKind("combinator"); ok {
		t.Fatalf("ParseKind should reject unknown names")
	}
}
