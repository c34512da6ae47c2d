package testutils

import (
	"DotenvBuildpack/internal/console"
	"strings"
	"testing"
	"text/tabwriter"
)

// TestCase represents a single input/expected/actual comparison.
type TestCase struct {
	Name     string
	Input    string
	Expected string
	Actual   string
	Pass     bool
}

// PrintTestTable logs an aligned table of comparison results and marks the
// test failed if any case has Pass=false. Failing rows are flagged with > <.
func PrintTestTable(t *testing.T, cases []TestCase) {
	t.Helper()

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 3, ' ', 0)
	w.Write([]byte("  Input\tExpected Value\tReturned Value\t\n"))

	anyFailed := false
	for _, tc := range cases {
		leftPtr, rightPtr := " ", " "
		actual := "{{_UnitTestPass_}}" + tc.Actual + "{{|-|}}"
		if !tc.Pass {
			anyFailed = true
			leftPtr, rightPtr = ">", "<"
			actual = "{{_UnitTestFail_}}" + tc.Actual + "{{|-|}}"
		}
		line := leftPtr + " " + tc.Input + "\t" + tc.Expected + "\t" + console.Parse(actual) + "\t" + rightPtr + "\n"
		w.Write([]byte(line))
	}
	w.Flush()

	t.Log("\n" + sb.String())
	if anyFailed {
		t.Fail()
	}
}
