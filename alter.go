// Copyright (C) 2026 the Alter-Converter authors. All Rights Reserved.

package alter

import (
	"fmt"

	"github.com/elkhaliff/Alter-Converter/tree"
)

// A Format identifies the input format recognized by the prefix probes.
type Format int

// Constants defining the valid Format values.
const (
	FormatUnknown Format = iota // neither probe matched
	FormatMarkup                // element-based markup
	FormatObject                // object notation
)

var formatStr = [...]string{
	FormatUnknown: "unknown",
	FormatMarkup:  "markup",
	FormatObject:  "object",
}

func (f Format) String() string {
	v := int(f)
	if v >= len(formatStr) {
		return formatStr[FormatUnknown]
	}
	return formatStr[v]
}

// IsMarkup reports whether src looks like markup: optional whitespace, "<",
// optional whitespace, and the start of a tag name. The probe is anchored
// at the start of src and does not attempt a full parse.
func IsMarkup(src string) bool { return looksLikeMarkup(src, 0) }

// IsObject reports whether src looks like an object: optional whitespace,
// "{", optional whitespace, and either a quotation mark or "}". The probe
// is anchored at the start of src and does not attempt a full parse.
func IsObject(src string) bool { return looksLikeObject(src, 0) }

func looksLikeMarkup(src string, pos int) bool {
	c := cursor{src: src, pos: pos}
	c.skipSpace()
	if !c.lit("<") {
		return false
	}
	c.skipSpace()
	return isIdentStart(c.peek())
}

func looksLikeObject(src string, pos int) bool {
	c := cursor{src: src, pos: pos}
	c.skipSpace()
	if !c.lit("{") {
		return false
	}
	c.skipSpace()
	return c.peek() == '"' || c.peek() == '}'
}

// DetectFormat probes src and reports which reader it belongs to. Markup
// wins when both probes would match, which cannot happen for well-formed
// input of either grammar.
func DetectFormat(src string) Format {
	switch {
	case IsMarkup(src):
		return FormatMarkup
	case IsObject(src):
		return FormatObject
	default:
		return FormatUnknown
	}
}

// Convert probes src, runs the matching reader to completion, and returns
// the resulting tree. The root of a successful parse is an anonymous
// container node. If neither probe matches, Convert returns (nil, nil):
// unrecognized input is a silent no-result, not an error.
func Convert(src string) (*tree.Node, error) {
	switch DetectFormat(src) {
	case FormatMarkup:
		return ParseMarkup(src)
	case FormatObject:
		return ParseObject(src)
	default:
		return nil, nil
	}
}

// MustConvert is Convert, but panics when the input does not parse or is
// not recognized. Intended for static fixtures and tests.
func MustConvert(src string) *tree.Node {
	root, err := Convert(src)
	if err != nil {
		panic(fmt.Sprintf("alter: convert: %v", err))
	} else if root == nil {
		panic("alter: input format not recognized")
	}
	return root
}
