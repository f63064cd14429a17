// Copyright (C) 2026 the Alter-Converter authors. All Rights Reserved.

// Package emit renders converted trees for human and machine consumption:
// the colorized text listing, a YAML encoding that round-trips through the
// object reader's key idiom, an HTML report fragment, a text diff between
// two listings, and an expression-based node filter.
package emit

import (
	"io"

	"github.com/fatih/color"

	"github.com/elkhaliff/Alter-Converter/tree"
)

// A Palette maps listing span classes to color functions, in the shape
// produced by color.New(...).SprintFunc(). A nil entry leaves that span
// uncolored.
type Palette struct {
	Label func(...any) string
	Path  func(...any) string
	Value func(...any) string
	Attr  func(...any) string
}

// DefaultPalette returns the standard listing palette.
func DefaultPalette() *Palette {
	return &Palette{
		Label: color.New(color.Faint).SprintFunc(),
		Path:  color.New(color.FgCyan).SprintFunc(),
		Value: color.New(color.FgGreen).SprintFunc(),
		Attr:  color.New(color.FgYellow).SprintFunc(),
	}
}

// Colorize renders s in the color assigned to the given span class. It is
// pluggable into tree.WithColor.
func (p *Palette) Colorize(span tree.Span, s string) string {
	var f func(...any) string
	switch span {
	case tree.SpanLabel:
		f = p.Label
	case tree.SpanPath:
		f = p.Path
	case tree.SpanValue:
		f = p.Value
	case tree.SpanAttr:
		f = p.Attr
	}
	if f == nil {
		return s
	}
	return f(s)
}

// Listing writes the text listing of the tree rooted at n to w, colorized
// with p. A nil palette produces the plain listing.
func Listing(w io.Writer, n *tree.Node, p *Palette) error {
	if p == nil {
		return tree.Format(w, n)
	}
	return tree.Format(w, n, tree.WithColor(p.Colorize))
}
