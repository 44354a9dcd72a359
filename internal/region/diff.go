package region

import (
	"github.com/pmezard/go-difflib/difflib"
)

// unifiedDiff renders the planned patch of path for dry runs.
func unifiedDiff(path string, before, after []byte) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(before)),
		B:        difflib.SplitLines(string(after)),
		FromFile: path,
		ToFile:   path + " (synthesized)",
		Context:  3,
	})
}
