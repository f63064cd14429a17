// Copyright (C) 2026 the Alter-Converter authors. All Rights Reserved.

// Package alter converts a text buffer holding either a markup (XML-like)
// document or an object-notation (JSON-like) document into one generic
// ordered tree, defined by the tree package.
//
// # Dispatch
//
// The IsMarkup and IsObject predicates are cheap anchored prefix probes that
// decide which reader a buffer belongs to without attempting a full parse.
// Convert applies them and runs exactly one reader to completion:
//
//	root, err := alter.Convert(src)
//	if err != nil {
//	   log.Fatalf("Convert failed: %v", err)
//	}
//	if root == nil {
//	   log.Print("Input format not recognized")
//	}
//
// Both probes failing is not an error: Convert reports (nil, nil) and the
// caller decides what a silent no-result means for it. The root of any
// successful parse is an anonymous container node.
//
// # Readers
//
// ParseMarkup accepts element-based input: opening tags with name="value"
// attribute pairs, self-closing tags, nested elements, and text content.
// It is a pragmatic structural reader, not a conforming one: namespaces,
// CDATA, comments, entities, and quote escaping are out of scope, and a
// closing tag is located by the first textual match for it, not by a
// validated tag stack.
//
// ParseObject accepts objects only: string, number, and null scalars, and
// nested objects. Arrays and booleans are rejected. After each nested
// object is read it is reconciled, bottom-up, so that the conventional
// "#name" and "@attr" key idioms collapse back into element text and
// attributes and the result is structurally comparable to what ParseMarkup
// would have produced from an equivalent document.
//
// # Errors
//
// Malformed input aborts the whole read. Errors are reported as a
// *ParseError carrying the byte offset of the failure and wrapping one of
// the sentinels ErrUnterminatedElement, ErrUnterminatedObject, or
// ErrInvalidValue, so callers can test them with errors.Is.
package alter
