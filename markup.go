// Copyright (C) 2026 the Alter-Converter authors. All Rights Reserved.

package alter

import "github.com/elkhaliff/Alter-Converter/tree"

// ParseMarkup parses a buffer of element-based markup into a tree whose
// root is an anonymous container node. In case of a parse failure the
// returned error has type [*ParseError].
//
// The reader is structural, not conforming: stray text between sibling
// elements is dropped, and the closing tag of an element is located by the
// first textual match for it at or after the cursor, not by a validated tag
// stack. Same-named elements with overlapping extents may therefore
// mis-pair.
func ParseMarkup(src string) (*tree.Node, error) {
	root := tree.NewRoot()
	if _, err := readElements(src, root, 0); err != nil {
		return nil, err
	}
	return root, nil
}

// readElements repeatedly searches forward from pos for the next opening
// tag and attaches each complete element found to parent, until no opening
// tag remains ahead. It returns the final cursor position.
//
// The search deliberately runs past the extent of parent: a recursive call
// keeps consuming sibling and outer elements until the whole tail of the
// buffer is exhausted, and the caller then locates its own closing tag from
// wherever the recursion stopped.
func readElements(src string, parent *tree.Node, pos int) (int, error) {
	i := pos
	for {
		tag, ok := findOpenTag(src, i)
		if !ok {
			return i, nil
		}

		el := parent.Add(tag.name)
		for _, a := range tag.attrs {
			el.SetAttribute(a.Key, a.Value)
		}
		i = tag.end
		if tag.selfClosing {
			continue
		}

		if looksLikeMarkup(src, i) {
			var err error
			i, err = readElements(src, el, i)
			if err != nil {
				return i, err
			}
		}

		start, end, ok := findCloseTag(src, tag.name, i)
		if !ok {
			return i, parseErrAt(i, ErrUnterminatedElement)
		}
		// Children, if any, consumed the element's content already; the
		// value is only the raw text of a childless element.
		if !el.HasChildren() {
			el.SetValue(src[i:start])
		}
		i = end
	}
}

// An openTag is a fully scanned opening tag head.
type openTag struct {
	name        string
	attrs       []tree.Attr
	selfClosing bool
	end         int // offset just past ">" or "/>"
}

// findOpenTag locates the first complete opening tag at or after pos. A "<"
// where a complete tag head cannot be scanned is not a match; the search
// resumes at the next "<".
func findOpenTag(src string, pos int) (openTag, bool) {
	for i := pos; i < len(src); i++ {
		if src[i] != '<' {
			continue
		}
		if tag, ok := scanOpenTag(src, i); ok {
			return tag, true
		}
	}
	return openTag{}, false
}

// scanOpenTag scans one opening tag head at pos: "<", a name, zero or more
// name="value" attribute pairs, and ">" or "/>".
func scanOpenTag(src string, pos int) (openTag, bool) {
	c := cursor{src: src, pos: pos}
	if !c.lit("<") {
		return openTag{}, false
	}
	c.skipSpace()
	name, ok := c.ident()
	if !ok {
		return openTag{}, false
	}

	tag := openTag{name: name}
	for {
		save := c.pos
		c.skipSpace()
		key, ok := c.ident()
		if !ok {
			c.pos = save
			break
		}
		c.skipSpace()
		if !c.lit("=") {
			c.pos = save
			break
		}
		c.skipSpace()
		value, ok := c.quoted()
		if !ok {
			c.pos = save
			break
		}
		tag.attrs = append(tag.attrs, tree.Attr{Key: key, Value: value})
	}

	c.skipSpace()
	switch {
	case c.lit("/>"):
		tag.selfClosing = true
	case c.lit(">"):
	default:
		return openTag{}, false
	}
	tag.end = c.pos
	return tag, true
}

// findCloseTag locates the first closing tag for name at or after pos,
// reporting the offsets of its "<" and of the position just past its ">".
// The name match is exact.
func findCloseTag(src, name string, pos int) (start, end int, ok bool) {
	for i := pos; i < len(src); i++ {
		if src[i] != '<' {
			continue
		}
		c := cursor{src: src, pos: i + 1}
		c.skipSpace()
		if !c.lit("/") || !c.lit(name) {
			continue
		}
		c.skipSpace()
		if !c.lit(">") {
			continue
		}
		return i, c.pos, true
	}
	return 0, 0, false
}
