// Copyright (C) 2026 the Alter-Converter authors. All Rights Reserved.

package tree

import (
	"fmt"
	"io"
	"strings"
)

// A Span classifies a fragment of listing output, for use by a colorizer.
type Span int

// Constants defining the valid Span values.
const (
	SpanLabel Span = iota // structural labels: "Element:", "path =", ...
	SpanPath              // the path of a node
	SpanValue             // a quoted scalar value or the null marker
	SpanAttr              // an attribute key = "value" line
)

// A FormatOption adjusts the behavior of Format.
type FormatOption func(*formatter)

// WithColor sets a colorizer applied to each output fragment. The function
// receives the span class and the plain text of the fragment, and returns
// the text to emit in its place.
func WithColor(f func(Span, string) string) FormatOption {
	return func(fm *formatter) { fm.color = f }
}

// Format renders the listing of the tree rooted at n to w. Each named node
// contributes a block giving its path, its value ("null" when the node has
// neither value nor children), and its attributes; child blocks follow,
// each preceded by a blank line. An anonymous root contributes no block of
// its own.
func Format(w io.Writer, n *Node, opts ...FormatOption) error {
	fm := &formatter{w: w, color: func(_ Span, s string) string { return s }}
	for _, opt := range opts {
		opt(fm)
	}
	fm.node(n)
	return fm.err
}

// String renders the listing of the tree rooted at n.
func (n *Node) String() string {
	var sb strings.Builder
	Format(&sb, n)
	return sb.String()
}

type formatter struct {
	w     io.Writer
	color func(Span, string) string
	err   error
}

func (fm *formatter) node(n *Node) {
	if n.named {
		fm.print(fm.color(SpanLabel, "Element:"), "\n")
		fm.print(fm.color(SpanLabel, "path ="), " ", fm.color(SpanPath, n.Path()), "\n")

		if !n.hasValue {
			if !n.HasChildren() {
				fm.print(fm.color(SpanLabel, "value ="), " ", fm.color(SpanValue, "null"), "\n")
			}
		} else {
			fm.print(fm.color(SpanLabel, "value ="), " ", fm.color(SpanValue, `"`+n.value+`"`), "\n")
		}

		if len(n.attrs) != 0 {
			fm.print(fm.color(SpanLabel, "attributes:"), "\n")
			for _, a := range n.attrs {
				fm.print(fm.color(SpanAttr, fmt.Sprintf("%s = \"%s\"", a.Key, a.Value)), "\n")
			}
		}
	}

	for _, c := range n.children {
		fm.print("\n")
		fm.node(c)
	}
}

func (fm *formatter) print(ss ...string) {
	if fm.err != nil {
		return
	}
	for _, s := range ss {
		if _, err := io.WriteString(fm.w, s); err != nil {
			fm.err = err
			return
		}
	}
}
