// Copyright (C) 2026 the Alter-Converter authors. All Rights Reserved.

package emit

import (
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/elkhaliff/Alter-Converter/tree"
)

// HTML builds an inspection report fragment for the tree rooted at n: a
// table with one row per named node giving its path, value, and attributes.
// Render the returned node with its Render method.
func HTML(n *tree.Node) g.Node {
	var rows []g.Node
	n.Walk(func(cur *tree.Node) bool {
		if !cur.Named() {
			return true
		}
		rows = append(rows, h.Tr(
			h.Td(h.Class("path"), g.Text(cur.Path())),
			h.Td(h.Class("value"), g.Text(valueText(cur))),
			h.Td(h.Class("attrs"), g.Text(attrText(cur))),
		))
		return true
	})
	return h.Table(h.Class("alter-report"),
		h.THead(h.Tr(
			h.Th(g.Text("Path")),
			h.Th(g.Text("Value")),
			h.Th(g.Text("Attributes")),
		)),
		h.TBody(g.Group(rows)),
	)
}

func valueText(n *tree.Node) string {
	if v, ok := n.Value(); ok {
		return `"` + v + `"`
	}
	if !n.HasChildren() {
		return "null"
	}
	return ""
}

func attrText(n *tree.Node) string {
	attrs := n.Attributes()
	if len(attrs) == 0 {
		return ""
	}
	parts := make([]string, len(attrs))
	for i, a := range attrs {
		parts[i] = a.Key + `="` + a.Value + `"`
	}
	return strings.Join(parts, " ")
}
