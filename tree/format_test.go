// Copyright (C) 2026 the Alter-Converter authors. All Rights Reserved.

package tree_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/elkhaliff/Alter-Converter/tree"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name  string
		build func() *tree.Node
		want  string
	}{
		{"EmptyRoot", tree.NewRoot, ""},

		{"Leaf", func() *tree.Node {
			root := tree.NewRoot()
			root.Add("x").SetValue("hello")
			return root
		}, "\nElement:\npath = x\nvalue = \"hello\"\n"},

		{"NullLeaf", func() *tree.Node {
			root := tree.NewRoot()
			root.Add("x")
			return root
		}, "\nElement:\npath = x\nvalue = null\n"},

		{"Attributes", func() *tree.Node {
			root := tree.NewRoot()
			x := root.Add("x")
			x.SetAttribute("a", "1")
			x.SetAttribute("b", "2")
			return root
		}, "\nElement:\npath = x\nvalue = null\nattributes:\na = \"1\"\nb = \"2\"\n"},

		{"Nested", func() *tree.Node {
			root := tree.NewRoot()
			a := root.Add("a")
			a.Add("b").SetValue("1")
			a.Add("c").SetValue("2")
			return root
		}, "\nElement:\npath = a\n" +
			"\nElement:\npath = a, b\nvalue = \"1\"\n" +
			"\nElement:\npath = a, c\nvalue = \"2\"\n"},

		{"EmptyValueNotNull", func() *tree.Node {
			root := tree.NewRoot()
			root.Add("x").SetValue("")
			return root
		}, "\nElement:\npath = x\nvalue = \"\"\n"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := test.build().String()
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("Listing: (-want, +got)\n%s", diff)
			}
		})
	}
}

func TestFormatNamedSubtree(t *testing.T) {
	root := tree.NewRoot()
	x := root.Add("x")
	x.SetValue("v")

	// Formatting a named node directly lists that node itself.
	var sb strings.Builder
	if err := tree.Format(&sb, x); err != nil {
		t.Fatalf("Format: %v", err)
	}
	want := "Element:\npath = x\nvalue = \"v\"\n"
	if diff := cmp.Diff(want, sb.String()); diff != "" {
		t.Errorf("Listing: (-want, +got)\n%s", diff)
	}
}

func TestWithColor(t *testing.T) {
	root := tree.NewRoot()
	x := root.Add("x")
	x.SetValue("v")
	x.SetAttribute("a", "1")

	var sb strings.Builder
	err := tree.Format(&sb, root, tree.WithColor(func(span tree.Span, s string) string {
		switch span {
		case tree.SpanPath:
			return "P<" + s + ">"
		case tree.SpanValue:
			return "V<" + s + ">"
		case tree.SpanAttr:
			return "A<" + s + ">"
		default:
			return s
		}
	}))
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	want := "\nElement:\npath = P<x>\nvalue = V<\"v\">\nattributes:\nA<a = \"1\">\n"
	if diff := cmp.Diff(want, sb.String()); diff != "" {
		t.Errorf("Colorized listing: (-want, +got)\n%s", diff)
	}
}
