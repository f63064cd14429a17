// Copyright (C) 2026 the Alter-Converter authors. All Rights Reserved.

// Package tree defines the generic ordered tree that both readers of the
// alter package produce, along with a human-readable listing format.
//
// A tree is built of Node values. Each node carries an optional name, an
// optional scalar value, an ordered attribute list, and an ordered sequence
// of children. The root of a parsed document is an anonymous container node
// that contributes nothing to paths or listings.
package tree

import "strings"

// An Attr is a single key/value attribute of a Node.
type Attr struct {
	Key   string
	Value string
}

// A Node is one element of a document tree. The zero value is an anonymous
// node with no value, attributes, or children.
//
// A Node is a passive container: its mutators perform no validation, and the
// caller is responsible for structural correctness. A Node is not safe for
// concurrent mutation, but a fully built tree may be traversed concurrently.
type Node struct {
	name     string
	named    bool
	value    string
	hasValue bool
	attrs    []Attr
	children []*Node
	parent   *Node
}

// New constructs a new detached node with the given name.
func New(name string) *Node { return &Node{name: name, named: true} }

// NewRoot constructs a new anonymous container node, suitable for use as the
// synthetic root of a document tree.
func NewRoot() *Node { return new(Node) }

// Name reports the name of n, or "" if n is anonymous.
func (n *Node) Name() string { return n.name }

// Named reports whether n has a name. Only synthetic roots are anonymous.
func (n *Node) Named() bool { return n.named }

// SetName replaces the name of n.
func (n *Node) SetName(name string) { n.name = name; n.named = true }

// Value reports the scalar value of n, and whether a value is present.
// An empty string with ok == true is distinct from an absent value.
func (n *Node) Value() (_ string, ok bool) { return n.value, n.hasValue }

// SetValue sets the scalar value of n.
func (n *Node) SetValue(value string) { n.value = value; n.hasValue = true }

// ClearValue removes the scalar value of n, if any.
func (n *Node) ClearValue() { n.value = ""; n.hasValue = false }

// SetAttribute records the given key/value attribute on n. Writing a key
// already present overwrites its value in place, keeping its position.
func (n *Node) SetAttribute(key, value string) {
	for i, a := range n.attrs {
		if a.Key == key {
			n.attrs[i].Value = value
			return
		}
	}
	n.attrs = append(n.attrs, Attr{Key: key, Value: value})
}

// Attribute reports the value of the named attribute of n, and whether the
// attribute is present.
func (n *Node) Attribute(key string) (string, bool) {
	for _, a := range n.attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// Attributes returns the attributes of n in insertion order.
// The caller must not modify the returned slice.
func (n *Node) Attributes() []Attr { return n.attrs }

// Parent returns the parent of n, or nil if n is detached or a root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the children of n in order.
// The caller must not modify the returned slice.
func (n *Node) Children() []*Node { return n.children }

// HasChildren reports whether n has any children.
func (n *Node) HasChildren() bool { return len(n.children) != 0 }

// Add constructs a new node with the given name, appends it to the children
// of n, and returns the new node.
func (n *Node) Add(name string) *Node { return n.AddChild(New(name)) }

// AddChild appends c to the children of n, sets its parent to n, and returns
// c. It does not detach c from a previous parent's child list; the caller
// owns that bookkeeping.
func (n *Node) AddChild(c *Node) *Node {
	c.parent = n
	n.children = append(n.children, c)
	return c
}

// RemoveChild detaches c from the children of n and returns it, or returns
// nil without change if c is not a child of n. The match is by identity, not
// by value.
func (n *Node) RemoveChild(c *Node) *Node {
	for i, kid := range n.children {
		if kid == c {
			n.children = append(n.children[:i], n.children[i+1:]...)
			c.parent = nil
			return c
		}
	}
	return nil
}

// Path returns the names on the path from the root to n, root-most first,
// joined by ", ". Anonymous nodes contribute nothing.
func (n *Node) Path() string {
	var names []string
	for cur := n; cur != nil; cur = cur.parent {
		if cur.named {
			names = append(names, cur.name)
		}
	}
	var sb strings.Builder
	for i := len(names) - 1; i >= 0; i-- {
		if sb.Len() != 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(names[i])
	}
	return sb.String()
}

// ChildrenByName returns a name-to-node view of the children of n, built on
// demand. Keys appear in first-seen order; when several children share a
// name, the last one wins but the key keeps its original position. The view
// is a snapshot: later changes to n are not reflected.
func (n *Node) ChildrenByName() *NameMap {
	m := &NameMap{nodes: make(map[string]*Node, len(n.children))}
	for _, c := range n.children {
		if _, ok := m.nodes[c.name]; !ok {
			m.keys = append(m.keys, c.name)
		}
		m.nodes[c.name] = c
	}
	return m
}

// Find descends from n through the given sequence of child names and returns
// the node reached, or nil if any name on the way is missing. Each step
// resolves names the way ChildrenByName does.
func (n *Node) Find(names ...string) *Node {
	cur := n
	for _, name := range names {
		cur = cur.ChildrenByName().Get(name)
		if cur == nil {
			return nil
		}
	}
	return cur
}

// Walk visits n and its descendants in preorder, calling f for each node.
// If f returns false, the children of that node are not visited.
func (n *Node) Walk(f func(*Node) bool) {
	if !f(n) {
		return
	}
	for _, c := range n.children {
		c.Walk(f)
	}
}

// A NameMap is an ordered name-to-node view of the children of a node.
// Construct one with the ChildrenByName method of Node.
type NameMap struct {
	keys  []string
	nodes map[string]*Node
}

// Len reports the number of distinct names in m.
func (m *NameMap) Len() int { return len(m.keys) }

// Has reports whether m contains the given name.
func (m *NameMap) Has(name string) bool { _, ok := m.nodes[name]; return ok }

// Get returns the node recorded under name, or nil.
func (m *NameMap) Get(name string) *Node { return m.nodes[name] }

// Keys returns the names in m in first-seen order.
// The caller must not modify the returned slice.
func (m *NameMap) Keys() []string { return m.keys }
