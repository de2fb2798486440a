package testutil

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/pmezard/go-difflib/difflib"
)

var spewConfig = spew.ConfigState{
	Indent:                  "  ",
	DisableMethods:          true,
	DisableCapacities:       true,
	DisablePointerAddresses: true,
	SortKeys:                true,
}

// Dump renders a value for test failure output, with pointer addresses
// and capacities suppressed so that two equal values dump identically.
func Dump(val interface{}) string {
	return spewConfig.Sdump(val)
}

// AssertEqualDump compares two values by their Dump rendering and, on
// mismatch, fails the test with a unified diff of the two renderings.
func AssertEqualDump(t *testing.T, exp, act interface{}) bool {
	t.Helper()

	expStr := Dump(exp)
	actStr := Dump(act)
	if expStr == actStr {
		return true
	}
	diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(expStr),
		B:        difflib.SplitLines(actStr),
		FromFile: "Expected",
		FromDate: "",
		ToFile:   "Actual",
		ToDate:   "",
		Context:  1,
	})
	t.Errorf("Diff:\n%s", diff)
	return false
}
