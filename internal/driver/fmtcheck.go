package driver

import (
	"github.com/pmezard/go-difflib/difflib"
	godiffpatch "github.com/sourcegraph/go-diff-patch"
)

// DiffMode selects how changes are reported instead of being written.
type DiffMode uint8

const (
	DiffNone DiffMode = iota
	// DiffUnified is a plain unified diff with orig/formatted headers.
	DiffUnified
	// DiffPatch is a git-style patch that `git apply` accepts.
	DiffPatch
)

func makeDiff(mode DiffMode, path, before, after string) string {
	switch mode {
	case DiffUnified:
		diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(before),
			B:        difflib.SplitLines(after),
			FromFile: path + ".orig",
			ToFile:   path,
			Context:  3,
		})
		if err != nil {
			return err.Error()
		}
		return diff
	case DiffPatch:
		return godiffpatch.GeneratePatch(path, before, after)
	}
	return ""
}
