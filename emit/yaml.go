// Copyright (C) 2026 the Alter-Converter authors. All Rights Reserved.

package emit

import (
	"github.com/goccy/go-yaml"

	"github.com/elkhaliff/Alter-Converter/tree"
)

// YAML encodes the tree rooted at n as YAML, spelling element text and
// attributes with the same "#name"/"@attr" key idiom the object reader
// consumes. The encoding is a best-effort inverse of reading: a leaf with a
// value becomes a scalar, a childless valueless node becomes null, and a
// node with attributes becomes a record whose "#name" key holds its text or
// nested content. Key order follows the tree.
func YAML(n *tree.Node) ([]byte, error) {
	if n.Named() {
		return yaml.Marshal(yaml.MapSlice{{Key: n.Name(), Value: yamlValue(n)}})
	}
	ms := make(yaml.MapSlice, 0, len(n.Children()))
	for _, c := range n.Children() {
		ms = append(ms, yaml.MapItem{Key: c.Name(), Value: yamlValue(c)})
	}
	return yaml.Marshal(ms)
}

func yamlValue(n *tree.Node) any {
	attrs, kids := n.Attributes(), n.Children()
	if len(attrs) == 0 && len(kids) == 0 {
		if v, ok := n.Value(); ok {
			return v
		}
		return nil
	}

	childMap := func() yaml.MapSlice {
		ms := make(yaml.MapSlice, 0, len(kids))
		for _, c := range kids {
			ms = append(ms, yaml.MapItem{Key: c.Name(), Value: yamlValue(c)})
		}
		return ms
	}

	if len(attrs) == 0 {
		return childMap()
	}

	ms := make(yaml.MapSlice, 0, len(attrs)+1)
	for _, a := range attrs {
		ms = append(ms, yaml.MapItem{Key: "@" + a.Key, Value: a.Value})
	}
	self := yaml.MapItem{Key: "#" + n.Name()}
	if len(kids) != 0 {
		self.Value = childMap()
	} else if v, ok := n.Value(); ok {
		self.Value = v
	}
	return append(ms, self)
}
