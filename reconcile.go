// Copyright (C) 2026 the Alter-Converter authors. All Rights Reserved.

package alter

import "github.com/elkhaliff/Alter-Converter/tree"

// reconcile rewrites a freshly parsed nested object so that its shape is
// structurally comparable to the markup reader's output. Object notation
// has no native concept of an attribute or of mixed text and children; the
// conventional "#name" (element text or nested content) and "@attr"
// (attribute) key idioms encode that shape, and reconcile recovers it.
//
// Recursion resolves nested objects first, so the rewrite is bottom-up:
// by the time a node is reconciled, each of its children is already in
// final form.
func reconcile(n *tree.Node) {
	if isRecord(n) {
		reconcileRecord(n)
	} else {
		prunePlain(n)
	}
}

// isRecord reports whether the children of n encode a markup record: a
// value plus attributes. This requires a "#"-prefixed key matching the
// node's own name, every key in attribute form, and no "@" key holding a
// nested structure (an attribute value must be a leaf).
func isRecord(n *tree.Node) bool {
	m := n.ChildrenByName()
	if !m.Has("#" + n.Name()) {
		return false
	}
	for _, key := range m.Keys() {
		if !isAttrKey(key) {
			return false
		}
		if key[0] == '@' && m.Get(key).HasChildren() {
			return false
		}
	}
	return true
}

// reconcileRecord collapses a record-shaped object: "#" children splice
// their content onto n itself, "@" children become attributes of n.
func reconcileRecord(n *tree.Node) {
	m := n.ChildrenByName()
	for _, key := range m.Keys() {
		child := m.Get(key)
		if key[0] == '#' {
			if child.HasChildren() {
				// The key held the element's own nested content: flatten it.
				// Re-parenting goes through the child's name map, so
				// duplicate-named grandchildren collapse, last one wins.
				n.RemoveChild(child)
				gm := child.ChildrenByName()
				for _, gk := range gm.Keys() {
					n.AddChild(gm.Get(gk))
				}
			} else {
				// The key held the element's text.
				n.RemoveChild(child)
				if v, ok := child.Value(); ok {
					n.SetValue(v)
				} else {
					n.ClearValue()
				}
			}
		} else {
			n.RemoveChild(child)
			v, _ := child.Value() // an absent value records as ""
			n.SetAttribute(key[1:], v)
		}
	}
}

// prunePlain applies the best-effort fallback for an ordinary nested
// object: a lone prefixed key is demoted to a plain child, a prefixed key
// shadowed by a plain-named sibling is dropped, and a key that cannot be an
// element name at all is dropped as noise. An object left with no children
// becomes an empty element, with the empty string as its value.
func prunePlain(n *tree.Node) {
	m := n.ChildrenByName()
	for _, key := range m.Keys() {
		child := m.Get(key)
		if isAttrKey(key) {
			if m.Has(key[1:]) {
				n.RemoveChild(child)
			} else {
				child.SetName(key[1:])
			}
		} else if !isIdentKey(key) {
			n.RemoveChild(child)
		}
	}
	if !n.HasChildren() {
		n.SetValue("")
	}
}

// isAttrKey reports whether key is in attribute form: "#" or "@" followed
// by an identifier, in which dots may continue the word.
func isAttrKey(key string) bool {
	if len(key) < 2 || (key[0] != '#' && key[0] != '@') {
		return false
	}
	return isIdentKey(key[1:])
}

// isIdentKey reports whether key is a bare identifier: a letter or
// underscore followed by word characters or dots.
func isIdentKey(key string) bool {
	if key == "" || !isIdentStart(key[0]) {
		return false
	}
	for i := 1; i < len(key); i++ {
		if !isWord(key[i]) && key[i] != '.' {
			return false
		}
	}
	return true
}
