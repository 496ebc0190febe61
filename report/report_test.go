package report_test

import (
	"fmt"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cero-lang/cero/report"
	"github.com/cero-lang/cero/source"
)

func TestReportFormatsPlaceholders(t *testing.T) {
	h := report.NewHandler()
	loc := source.Location{File: "a.cero", Line: 1, Column: 1}

	h.Report(report.SourceInputTooLarge, loc, 16777215)
	h.Report(report.UnexpectedCharacter, loc, 0x1F600)

	want := []string{
		"source input is too large, limit is 16777215 bytes",
		"unexpected character `0x1f600`",
	}
	for i, w := range want {
		got := h.Diagnostics[i].Text
		if got != w {
			diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
				A:        difflib.SplitLines(w),
				B:        difflib.SplitLines(got),
				FromFile: "want",
				ToFile:   "got",
				Context:  1,
			})
			t.Fatalf("diagnostic text mismatch:\n%s", diff)
		}
	}
}

func TestHasErrorsStickyAfterError(t *testing.T) {
	h := report.NewHandler()
	loc := source.Location{}

	h.Report(report.UnnecessarySemicolon, loc)
	require.False(t, h.HasErrors(), "a lone warning must not flip HasErrors")

	h.Report(report.ExpectSemicolon, loc, "`}`")
	require.True(t, h.HasErrors())

	// Once tripped, HasErrors must never go back to false.
	h.Report(report.UnnecessarySemicolon, loc)
	require.True(t, h.HasErrors())

	// Under warnings-as-errors, a warning alone trips HasErrors.
	h2 := report.NewHandler()
	h2.SetWarningsAsErrors(true)
	h2.Report(report.UnnecessarySemicolon, loc)
	assert.True(t, h2.HasErrors(), "warnings-as-errors must upgrade severity")
	assert.Equal(t, report.Error, h2.Diagnostics[0].Severity)
}

func TestWarningsAsErrorsAppliedAtReportTime(t *testing.T) {
	h := report.NewHandler()
	h.Report(report.UnnecessaryColonBeforeBlock, source.Location{})
	// Turning the policy on afterwards does not touch what was already reported.
	h.SetWarningsAsErrors(true)
	require.Equal(t, report.Warning, h.Diagnostics[0].Severity)
	require.False(t, h.HasErrors())
}

func TestArgumentCountMismatchPanics(t *testing.T) {
	h := report.NewHandler()
	assert.Panics(t, func() {
		h.Report(report.ExpectSemicolon, source.Location{}) // needs one arg, given zero
	})
	assert.Panics(t, func() {
		h.Report(report.MissingClosingQuote, source.Location{}, "extra") // needs zero args
	})
}

func TestInvalidKindPanics(t *testing.T) {
	assert.Panics(t, func() {
		_ = report.Kind(255).Format()
	})
}

func ExampleHandler_Report() {
	h := report.NewHandler()
	h.Report(report.ExpectElse, source.Location{File: "x.cero", Line: 2, Column: 3}, "end of file")
	fmt.Println(h.Diagnostics[0].Text)
	// Output: expected `else` after `if` expression, but found end of file
}
