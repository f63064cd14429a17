// Copyright (C) 2026 the Alter-Converter authors. All Rights Reserved.

package alter

import "github.com/elkhaliff/Alter-Converter/tree"

// ParseObject parses a buffer of object notation into a tree whose root is
// an anonymous container node. In case of a parse failure the returned
// error has type [*ParseError].
//
// The grammar is objects only: a value is a nested object, a double-quoted
// string (no escape processing), a decimal numeral, or null. Arrays and
// booleans fail to match a value position. Every nested object is passed
// through attribute reconciliation before it is attached, so "#name" and
// "@attr" keyed records collapse into element text and attributes; the
// top-level object is attached as-is.
func ParseObject(src string) (*tree.Node, error) {
	root := tree.NewRoot()
	if _, err := readObject(src, root, 0); err != nil {
		return nil, err
	}
	return root, nil
}

// readObject consumes one object starting at pos, attaching one child per
// key under parent in encounter order. It returns the position just past
// the object's closing brace and optional trailing comma. If no opening
// brace is present, pos is returned unchanged with no error.
func readObject(src string, parent *tree.Node, pos int) (int, error) {
	c := cursor{src: src, pos: pos}
	c.skipSpace()
	if !c.lit("{") {
		return pos, nil
	}

	for {
		save := c.pos
		c.skipSpace()
		key, ok := c.quoted()
		if !ok {
			c.pos = save
			break
		}
		c.skipSpace()
		if !c.lit(":") {
			c.pos = save
			break
		}

		node := tree.New(key)
		if looksLikeObject(src, c.pos) {
			end, err := readObject(src, node, c.pos)
			if err != nil {
				return end, err
			}
			c.pos = end
			reconcile(node)
		} else if err := readScalar(&c, node); err != nil {
			return c.pos, err
		}

		parent.AddChild(node)
	}

	c.skipSpace()
	if !c.lit("}") {
		return c.pos, parseErrAt(c.pos, ErrUnterminatedObject)
	}
	c.skipSpace()
	c.lit(",")
	return c.pos, nil
}

// readScalar consumes one scalar value at the cursor and records it on
// node: a quoted string, a decimal numeral, or null. A null stores an
// absent value, not the empty string. A trailing comma, if it directly
// follows the scalar, is consumed as well.
func readScalar(c *cursor, node *tree.Node) error {
	c.skipSpace()
	switch {
	case c.peek() == '"':
		v, ok := c.quoted()
		if !ok {
			return parseErrAt(c.pos, ErrInvalidValue)
		}
		node.SetValue(v)
	case isDigit(c.peek()):
		v, _ := c.number()
		node.SetValue(v)
	case c.lit("null"):
		node.ClearValue()
	default:
		return parseErrAt(c.pos, ErrInvalidValue)
	}
	c.lit(",")
	return nil
}
