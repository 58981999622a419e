package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	cssel "github.com/reoring/cssel"
	"github.com/reoring/cssel/codec"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "render":
		renderCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "cssel CLI\n\nUsage:\n  cssel render -f selector.{json,yaml}\n\nNotes:\n  - A selector document is either a leaf {\"parts\":[{\"kind\":...,\"value\":...}]}\n    or a combined node {\"combinator\":...,\"left\":<doc>,\"right\":<doc>}.")
}

func renderCmd(args []string) {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	var file string
	fs.StringVar(&file, "f", "", "selector document file (.json, .yaml or .yml)")
	_ = fs.Parse(args)
	if file == "" {
		fs.Usage()
		os.Exit(2)
	}
	data, err := os.ReadFile(file)
	if err != nil {
		fatal(err)
	}
	var doc node
	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
		doc, err = codec.UnmarshalYAML[node](string(data))
	default:
		doc, err = codec.UnmarshalJSON[node](string(data))
	}
	if err != nil {
		fatal(err)
	}
	sel, err := build(&doc)
	if err != nil {
		fatal(err)
	}
	out, err := sel.Render()
	if err != nil {
		fatal(err)
	}
	fmt.Println(out)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "cssel:", err)
	os.Exit(1)
}

// node mirrors the selector document format: a leaf listing compound parts,
// or an inner node joining two subtrees with a combinator.
type node struct {
	Parts      []part `json:"parts,omitempty" yaml:"parts,omitempty"`
	Combinator string `json:"combinator,omitempty" yaml:"combinator,omitempty"`
	Left       *node  `json:"left,omitempty" yaml:"left,omitempty"`
	Right      *node  `json:"right,omitempty" yaml:"right,omitempty"`
}

type part struct {
	Kind  string `json:"kind" yaml:"kind"`
	Value string `json:"value" yaml:"value"`
}

func build(n *node) (cssel.Selector, error) {
	if n.Left != nil || n.Right != nil {
		if n.Left == nil || n.Right == nil {
			return nil, fmt.Errorf("combined node needs both left and right")
		}
		l, err := build(n.Left)
		if err != nil {
			return nil, err
		}
		r, err := build(n.Right)
		if err != nil {
			return nil, err
		}
		return cssel.Combine(l, cssel.Combinator(n.Combinator), r), nil
	}
	if len(n.Parts) == 0 {
		return nil, fmt.Errorf("leaf node needs at least one part")
	}
	c := &cssel.Compound{}
	for _, p := range n.Parts {
		k, ok := cssel.ParseKind(p.Kind)
		if !ok {
			return nil, fmt.Errorf("unknown part kind %q", p.Kind)
		}
		switch k {
		case cssel.KindElement:
			c = c.Element(p.Value)
		case cssel.KindID:
			c = c.ID(p.Value)
		case cssel.KindClass:
			c = c.Class(p.Value)
		case cssel.KindAttribute:
			c = c.Attr(p.Value)
		case cssel.KindPseudoClass:
			c = c.PseudoClass(p.Value)
		case cssel.KindPseudoElement:
			c = c.PseudoElement(p.Value)
		}
	}
	if err := c.Err(); err != nil {
		return nil, err
	}
	return c, nil
}
