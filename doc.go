package cssel

// Package cssel provides:
//
// - Fluent construction of CSS-like selector strings (Element/ID/Class/Attr/PseudoClass/PseudoElement)
// - Ordering and uniqueness validation during construction (rank order, at-most-once parts)
// - Composition of selector trees with combinators via Combine
// - A stable error model via Issues (fragment path, code, message)
//
// Design policy:
// - Keep the public API in the root package; put codecs under codec/ and the CLI under cmd/cssel.
// - Appends never validate fragment values, only kind order and uniqueness.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	s := cssel.Element("a").Attr(`href$=".png"`).PseudoClass("focus")
//	text, err := s.Render() // `a[href$=".png"]:focus`
//
//	pair := cssel.Combine(cssel.ID("main"), cssel.NextSibling, cssel.Class("footer"))
//	text = pair.MustRender() // "#main + .footer"
//
// cssel builds selector text only; it does not parse CSS and does not match
// selectors against a document.
