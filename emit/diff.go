// Copyright (C) 2026 the Alter-Converter authors. All Rights Reserved.

package emit

import (
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/elkhaliff/Alter-Converter/tree"
)

// DiffListings renders the listings of a and b and returns a colorized
// character diff between them, or "" when the listings are identical.
func DiffListings(a, b *tree.Node) string {
	as, bs := a.String(), b.String()
	if as == bs {
		return ""
	}
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(as, bs, true)
	diffs = dmp.DiffCleanupSemantic(diffs)
	return dmp.DiffPrettyText(diffs)
}
