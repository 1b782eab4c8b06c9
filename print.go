package taxonomyedit

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	successAttrs = []color.Attribute{color.FgHiGreen, color.Bold}
	failureAttrs = []color.Attribute{color.FgHiRed, color.Bold}
	warningAttrs = []color.Attribute{color.FgHiYellow, color.Bold}
	detailAttrs  = []color.Attribute{color.FgHiWhite}
	hunkAttrs    = []color.Attribute{color.FgHiCyan}
	addedAttrs   = []color.Attribute{color.FgGreen}
	removedAttrs = []color.Attribute{color.FgRed}
)

// PrintSuccess prints a single green completion line.
func PrintSuccess(w io.Writer, format string, a ...interface{}) {
	color.New(successAttrs...).Fprintln(w, fmt.Sprintf(format, a...))
}

// PrintFailure prints a single red failure line.
func PrintFailure(w io.Writer, format string, a ...interface{}) {
	color.New(failureAttrs...).Fprintln(w, fmt.Sprintf(format, a...))
}

// PrintWarning prints a single yellow warning line.
func PrintWarning(w io.Writer, format string, a ...interface{}) {
	color.New(warningAttrs...).Fprintln(w, fmt.Sprintf(format, a...))
}

// PrintInjectResult pretty-prints the outcome of AddSubjects.
func PrintInjectResult(w io.Writer, res InjectResult, c Change) {
	switch {
	case res.Matched == 0:
		PrintWarning(w, "No topic value lines found in %s", c.Path)
	case c.Written:
		PrintSuccess(w, "Finished processing %s", c.Path)
	case c.Changed():
		PrintSuccess(w, "Finished processing %s (dry run, not written)", c.Path)
	default:
		PrintSuccess(w, "Finished processing %s (already up to date)", c.Path)
	}
}

// PrintInjectDetails prints the match counts behind an InjectResult.
func PrintInjectDetails(w io.Writer, res InjectResult) {
	color.New(detailAttrs...).Fprintf(w, "  matched %d, inserted %d, already present %d\n",
		res.Matched, res.Inserted(), res.Skipped)
}

// PrintSplitResult pretty-prints the outcome of SplitExam.
func PrintSplitResult(w io.Writer, target string, res SplitResult, c Change) {
	var suffix string
	switch {
	case c.Written:
	case c.Changed():
		suffix = " (dry run, not written)"
	default:
		suffix = " (no change)"
	}
	PrintSuccess(w, "Successfully split %s into %s and %s%s", target, res.Names[0], res.Names[1], suffix)
}

// PrintSplitDetails prints the 1-based line range the split replaced.
func PrintSplitDetails(w io.Writer, res SplitResult, path string) {
	color.New(detailAttrs...).Fprintf(w, "  replaced lines %d-%d of %s\n",
		res.Block.Start+1, res.Block.End+1, path)
}

// PrintDiff prints a colored line diff of c with context lines around
// each change.
func PrintDiff(w io.Writer, c Change, context int) {
	hunks := Hunks(LineDiff(c.Original, c.Modified), context)
	if len(hunks) == 0 {
		return
	}
	color.New(detailAttrs...).Fprintf(w, "--- %s\n+++ %s\n", c.Path, c.Path)
	for _, h := range hunks {
		color.New(hunkAttrs...).Fprintf(w, "@@ -%d +%d @@\n", h.OldStart, h.NewStart)
		for _, l := range h.Lines {
			switch l.Op {
			case DiffAdded:
				color.New(addedAttrs...).Fprintln(w, "+"+l.Text)
			case DiffRemoved:
				color.New(removedAttrs...).Fprintln(w, "-"+l.Text)
			default:
				fmt.Fprintln(w, " "+l.Text)
			}
		}
	}
}
