package tt

import (
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/assert"
)

// AssertTextEqual compares two multi-line prompt strings and, on mismatch,
// fails with a unified diff instead of testify's single-line dump. Composed
// prompts are long; the diff makes separator and ordering bugs obvious.
func AssertTextEqual(t *testing.T, expected, actual string) bool {
	t.Helper()
	if expected == actual {
		return true
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(expected),
		B:        difflib.SplitLines(actual),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  3,
	})
	if err != nil {
		// Fall back to the plain assertion if diffing itself fails.
		return assert.Equal(t, expected, actual)
	}
	return assert.Fail(t, "prompt text mismatch", "\n%s", diff)
}
