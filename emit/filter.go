// Copyright (C) 2026 the Alter-Converter authors. All Rights Reserved.

package emit

import (
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/elkhaliff/Alter-Converter/tree"
)

// Env is the environment a filter expression is evaluated in, built once
// per named node.
type Env struct {
	Name     string            // node name
	Path     string            // full path, root-most first
	Value    string            // scalar value, or "" when absent
	HasValue bool              // whether a value is present
	Attrs    map[string]string // attributes by key
	Children int               // number of children
}

// CompileFilter compiles a boolean filter expression over Env, for example
//
//	Name == "book" && Attrs["lang"] == "en"
//
// The returned program can be reused across trees and goroutines.
func CompileFilter(src string) (*vm.Program, error) {
	return expr.Compile(src, expr.Env(Env{}), expr.AsBool())
}

// Select walks the tree rooted at root in preorder and returns the named
// nodes for which the compiled filter program reports true.
func Select(root *tree.Node, prog *vm.Program) ([]*tree.Node, error) {
	var picked []*tree.Node
	var walkErr error
	root.Walk(func(n *tree.Node) bool {
		if walkErr != nil {
			return false
		}
		if !n.Named() {
			return true
		}
		out, err := expr.Run(prog, envFor(n))
		if err != nil {
			walkErr = err
			return false
		}
		if ok, _ := out.(bool); ok {
			picked = append(picked, n)
		}
		return true
	})
	if walkErr != nil {
		return nil, walkErr
	}
	return picked, nil
}

func envFor(n *tree.Node) Env {
	v, ok := n.Value()
	attrs := make(map[string]string, len(n.Attributes()))
	for _, a := range n.Attributes() {
		attrs[a.Key] = a.Value
	}
	return Env{
		Name:     n.Name(),
		Path:     n.Path(),
		Value:    v,
		HasValue: ok,
		Attrs:    attrs,
		Children: len(n.Children()),
	}
}
