package taxonomyedit

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// DiffOp is the kind of a DiffLine.
type DiffOp int

const (
	DiffContext DiffOp = iota // unchanged line
	DiffAdded                 // line only in the modified text
	DiffRemoved               // line only in the original text
)

// DiffLine is one line of a line-level diff. OldLine and NewLine are
// 1-based; a zero means the line does not exist on that side.
type DiffLine struct {
	Op      DiffOp
	OldLine int
	NewLine int
	Text    string
}

// LineDiff computes a line-level diff between original and modified.
func LineDiff(original, modified string) []DiffLine {
	dmp := diffmatchpatch.New()
	a, b, lineArray := dmp.DiffLinesToRunes(original, modified)
	diffs := dmp.DiffCharsToLines(dmp.DiffMainRunes(a, b, false), lineArray)

	var out []DiffLine
	oldNo, newNo := 1, 1
	for _, d := range diffs {
		for _, text := range diffTextLines(d.Text) {
			switch d.Type {
			case diffmatchpatch.DiffEqual:
				out = append(out, DiffLine{Op: DiffContext, OldLine: oldNo, NewLine: newNo, Text: text})
				oldNo++
				newNo++
			case diffmatchpatch.DiffDelete:
				out = append(out, DiffLine{Op: DiffRemoved, OldLine: oldNo, Text: text})
				oldNo++
			case diffmatchpatch.DiffInsert:
				out = append(out, DiffLine{Op: DiffAdded, NewLine: newNo, Text: text})
				newNo++
			}
		}
	}
	return out
}

// diffTextLines splits a chunk of diff text into lines without
// producing a spurious empty line for the final newline.
func diffTextLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

// Hunk is a run of diff lines printed together. OldStart and NewStart
// are the first line numbers the hunk covers on each side; when a side has
// no lines in the hunk they name the line just before the change, or 0 at
// the top of the file.
type Hunk struct {
	OldStart int
	NewStart int
	Lines    []DiffLine
}

// Hunks groups changed lines with up to context unchanged lines around them.
// Changes closer than 2*context lines share a hunk.
func Hunks(lines []DiffLine, context int) []Hunk {
	var spans [][2]int // [from, to) indices into lines
	for i, l := range lines {
		if l.Op == DiffContext {
			continue
		}
		from, to := i-context, i+1+context
		if from < 0 {
			from = 0
		}
		if to > len(lines) {
			to = len(lines)
		}
		if n := len(spans); n > 0 && from <= spans[n-1][1] {
			spans[n-1][1] = to
			continue
		}
		spans = append(spans, [2]int{from, to})
	}
	if len(spans) == 0 {
		return nil
	}
	hunks := make([]Hunk, 0, len(spans))
	for _, sp := range spans {
		hunks = append(hunks, newHunk(lines, sp[0], sp[1]))
	}
	return hunks
}

func newHunk(lines []DiffLine, from, to int) Hunk {
	h := Hunk{Lines: lines[from:to]}
	for _, l := range h.Lines {
		if h.OldStart == 0 && l.OldLine != 0 {
			h.OldStart = l.OldLine
		}
		if h.NewStart == 0 && l.NewLine != 0 {
			h.NewStart = l.NewLine
		}
	}
	// one side is absent: anchor on the last line of that side before the hunk
	for i := from - 1; i >= 0 && (h.OldStart == 0 || h.NewStart == 0); i-- {
		if h.OldStart == 0 {
			h.OldStart = lines[i].OldLine
		}
		if h.NewStart == 0 {
			h.NewStart = lines[i].NewLine
		}
	}
	return h
}
