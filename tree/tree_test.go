// Copyright (C) 2026 the Alter-Converter authors. All Rights Reserved.

package tree_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/elkhaliff/Alter-Converter/tree"
)

func childNames(n *tree.Node) []string {
	var names []string
	for _, c := range n.Children() {
		names = append(names, c.Name())
	}
	return names
}

func TestConstruction(t *testing.T) {
	root := tree.NewRoot()
	if root.Named() {
		t.Error("NewRoot: root should be anonymous")
	}

	a := root.Add("a")
	b := a.Add("b")
	c := a.Add("c")

	if diff := cmp.Diff([]string{"b", "c"}, childNames(a)); diff != "" {
		t.Errorf("Children of a: (-want, +got)\n%s", diff)
	}
	if b.Parent() != a || c.Parent() != a || a.Parent() != root {
		t.Error("Parent links are wrong")
	}
	if got := root.Path(); got != "" {
		t.Errorf("Root path: got %q, want empty", got)
	}
	if got := b.Path(); got != "a, b" {
		t.Errorf("Path of b: got %q, want %q", got, "a, b")
	}

	// Recomputing a path without mutation must not change it.
	if first, second := c.Path(), c.Path(); first != second {
		t.Errorf("Path not stable: %q then %q", first, second)
	}
}

func TestValue(t *testing.T) {
	n := tree.New("x")
	if v, ok := n.Value(); ok {
		t.Errorf("New node has value %q, want absent", v)
	}
	n.SetValue("")
	if v, ok := n.Value(); !ok || v != "" {
		t.Errorf("Value: got (%q, %v), want empty present", v, ok)
	}
	n.SetValue("hello")
	if v, ok := n.Value(); !ok || v != "hello" {
		t.Errorf("Value: got (%q, %v), want %q", v, ok, "hello")
	}
	n.ClearValue()
	if v, ok := n.Value(); ok {
		t.Errorf("Value after clear: got %q, want absent", v)
	}
}

func TestAttributes(t *testing.T) {
	n := tree.New("x")
	n.SetAttribute("a", "1")
	n.SetAttribute("b", "2")
	n.SetAttribute("a", "3") // overwrite keeps position

	want := []tree.Attr{{Key: "a", Value: "3"}, {Key: "b", Value: "2"}}
	if diff := cmp.Diff(want, n.Attributes()); diff != "" {
		t.Errorf("Attributes: (-want, +got)\n%s", diff)
	}
	if v, ok := n.Attribute("b"); !ok || v != "2" {
		t.Errorf(`Attribute("b"): got (%q, %v), want ("2", true)`, v, ok)
	}
	if _, ok := n.Attribute("missing"); ok {
		t.Error(`Attribute("missing"): unexpectedly present`)
	}
}

func TestRemoveChild(t *testing.T) {
	root := tree.NewRoot()
	a := root.Add("kid")
	b := root.Add("kid") // same name, different identity

	if got := root.RemoveChild(tree.New("kid")); got != nil {
		t.Errorf("RemoveChild of non-member: got %v, want nil", got)
	}
	if got := root.RemoveChild(a); got != a {
		t.Errorf("RemoveChild: got %v, want %v", got, a)
	}
	if a.Parent() != nil {
		t.Error("RemoveChild did not clear the parent link")
	}
	if diff := cmp.Diff([]string{"kid"}, childNames(root)); diff != "" {
		t.Errorf("Children after removal: (-want, +got)\n%s", diff)
	}
	if root.Children()[0] != b {
		t.Error("Wrong child removed")
	}
}

func TestChildrenByName(t *testing.T) {
	root := tree.NewRoot()
	first := root.Add("dup")
	root.Add("solo")
	last := root.Add("dup")

	m := root.ChildrenByName()
	if m.Len() != 2 {
		t.Errorf("Len: got %d, want 2", m.Len())
	}
	if diff := cmp.Diff([]string{"dup", "solo"}, m.Keys()); diff != "" {
		t.Errorf("Keys: (-want, +got)\n%s", diff)
	}
	if got := m.Get("dup"); got != last {
		t.Errorf("Get(dup): got %v, want the last child", got)
	}
	if got := m.Get("dup"); got == first {
		t.Error("Get(dup): first child won, want last")
	}
	if m.Has("missing") {
		t.Error("Has(missing): unexpectedly true")
	}
}

func TestFind(t *testing.T) {
	root := tree.NewRoot()
	root.Add("a").Add("b").Add("c").SetValue("deep")

	got := root.Find("a", "b", "c")
	if got == nil {
		t.Fatal("Find(a, b, c): not found")
	}
	if v, ok := got.Value(); !ok || v != "deep" {
		t.Errorf("Found node value: got (%q, %v), want %q", v, ok, "deep")
	}
	if root.Find("a", "nope") != nil {
		t.Error("Find(a, nope): unexpectedly found")
	}
	if root.Find() != root {
		t.Error("Find with no names should return the receiver")
	}
}

func TestWalk(t *testing.T) {
	root := tree.NewRoot()
	a := root.Add("a")
	a.Add("b")
	a.Add("skip").Add("hidden")
	root.Add("c")

	var seen []string
	root.Walk(func(n *tree.Node) bool {
		if n.Named() {
			seen = append(seen, n.Name())
		}
		return n.Name() != "skip"
	})
	if diff := cmp.Diff([]string{"a", "b", "skip", "c"}, seen); diff != "" {
		t.Errorf("Walk order: (-want, +got)\n%s", diff)
	}
}
