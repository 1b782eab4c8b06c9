// Package taxonomyedit rewrites the exam taxonomy document, a TypeScript
// source file holding exam, topic and subtopic literals.
//
// It performs two line-oriented edits without parsing TypeScript:
// injecting a subject property into every topic, and splitting one exam
// entry into two renamed copies located by brace counting.
package taxonomyedit

import (
	"errors"
	"regexp"
	"strings"
)

// DefaultTaxonomyPath is where the taxonomy lives relative to the repository root.
const DefaultTaxonomyPath string = "packages/shared/src/lib/taxonomy.ts"

// DefaultAlgebraThreshold is the line index below which "algebra" belongs to CAT.
const DefaultAlgebraThreshold int = 200

const algebraID string = "algebra"

// Topic properties sit at exactly sixteen spaces; exam properties sit at
// eight and subtopics are written inline.
var topicValueRe = regexp.MustCompile(`^( {16})value: '([^']+)',`)

// ErrBlockNotFound is returned when the target entry cannot be located.
var ErrBlockNotFound = errors.New("block not found")

// InjectParams configures InjectSubjects.
//
// A nil Table means DefaultSubjectTable(). AlgebraThreshold is used as
// given, so 0 never picks Quantitative Aptitude; start from
// DefaultInjectParams() for the usual threshold.
//
// If SectionAware = true, "algebra" is Quantitative Aptitude while inside the
// CAT exam entry instead of below AlgebraThreshold.
type InjectParams struct {
	Table            *SubjectTable
	AlgebraThreshold int
	SectionAware     bool
}

// DefaultInjectParams returns the parameters the migration runs with.
func DefaultInjectParams() InjectParams {
	return InjectParams{AlgebraThreshold: DefaultAlgebraThreshold}
}

// Insertion records one subject line added by InjectSubjects.
type Insertion struct {
	Line    int // index of the value line in the input
	ID      string
	Subject string
}

// InjectResult summarises an InjectSubjects run.
type InjectResult struct {
	Matched    int
	Skipped    int
	Insertions []Insertion
}

// Inserted returns the number of subject lines added.
func (r InjectResult) Inserted() int {
	return len(r.Insertions)
}

// aptitudeSection tracks whether the scan is inside the CAT exam entry.
type aptitudeSection struct {
	inside bool
}

func (s *aptitudeSection) observe(line string) {
	if strings.Contains(line, "value: 'cat'") {
		s.inside = true
	}
	if strings.Contains(line, "value: 'jee_main'") || strings.Contains(line, "value: 'eamcet'") {
		s.inside = false
	}
}

// InjectSubjects inserts `subject: '<subject>',` after every topic value line
// whose next line has no subject yet. Running it on its own output is a no-op.
func InjectSubjects(text string, p InjectParams) (string, InjectResult) {
	table := p.Table
	if table == nil {
		table = DefaultSubjectTable()
	}

	var (
		res     InjectResult
		section aptitudeSection
	)
	lines := splitLines(text)
	out := make([]string, 0, len(lines))
	for i, line := range lines {
		out = append(out, line)
		if p.SectionAware {
			section.observe(line)
		}

		m := topicValueRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		res.Matched++
		indent, id := m[1], m[2]

		if i+1 < len(lines) && strings.Contains(lines[i+1], "subject:") {
			res.Skipped++
			continue
		}

		subject := table.Get(id)
		if id == algebraID {
			var aptitude bool
			if p.SectionAware {
				aptitude = section.inside
			} else {
				aptitude = i < p.AlgebraThreshold
			}
			if aptitude {
				subject = QuantitativeAptitude
			} else {
				subject = Mathematics
			}
		}
		out = append(out, indent+"subject: '"+subject+"',")
		res.Insertions = append(res.Insertions, Insertion{Line: i, ID: id, Subject: subject})
	}
	return joinLines(out), res
}

// CountMode selects how braces are counted when locating a block.
type CountMode int

// CountNaive counts every brace character on a line.
// CountOutsideStrings ignores braces inside string literals and line comments.
const (
	CountNaive CountMode = iota
	CountOutsideStrings
)

func (m CountMode) balance(line string) int {
	if m == CountOutsideStrings {
		return braceBalanceOutsideStrings(line)
	}
	return braceBalance(line)
}

// Block is an inclusive line range of a brace-delimited entry.
type Block struct {
	Start, End int
}

// FindBlock locates the entry whose value property is target.
//
// The first line containing `value: '<target>',` must be preceded by a line
// holding only "{". The block ends at the first line where the brace
// balance, starting at 1 on the "{" line, returns to 0.
func FindBlock(lines []string, target string, mode CountMode) (Block, error) {
	needle := "value: '" + target + "',"
	for i, line := range lines {
		if !strings.Contains(line, needle) {
			continue
		}
		if i == 0 || fastTrim(lines[i-1]) != "{" {
			return Block{}, ErrBlockNotFound
		}
		balance := 1
		for j := i; j < len(lines); j++ {
			balance += mode.balance(lines[j])
			if balance == 0 {
				return Block{Start: i - 1, End: j}, nil
			}
		}
		return Block{}, ErrBlockNotFound
	}
	return Block{}, ErrBlockNotFound
}

// Replacement is a literal substring substitution.
type Replacement struct {
	Old, New string
}

// Variant is a named list of replacements applied in order to a copy of a block.
type Variant struct {
	Name         string
	Replacements []Replacement
}

// Apply returns block with every replacement applied in order.
func (v Variant) Apply(block string) string {
	for _, r := range v.Replacements {
		block = strings.ReplaceAll(block, r.Old, r.New)
	}
	return block
}

// RenameVariant builds a Variant renaming an entry's value and label properties.
func RenameVariant(oldValue, oldLabel, newValue, newLabel string) Variant {
	return Variant{
		Name: newValue,
		Replacements: []Replacement{
			{Old: "value: '" + oldValue + "',", New: "value: '" + newValue + "',"},
			{Old: "label: '" + oldLabel + "',", New: "label: '" + newLabel + "',"},
		},
	}
}

// SplitParams configures SplitBlock.
//
// Target is the value of the entry to split. Variants[0] is written first.
type SplitParams struct {
	Target   string
	Variants [2]Variant
	Mode     CountMode
}

// DefaultSplitParams splits the combined EAMCET entry into AP and TS entries.
func DefaultSplitParams() SplitParams {
	return SplitParams{
		Target: "eamcet",
		Variants: [2]Variant{
			RenameVariant("eamcet", "AP/TS EAMCET", "ap_eapcet", "AP EAPCET"),
			RenameVariant("eamcet", "AP/TS EAMCET", "ts_eapcet", "TG EAPCET"),
		},
	}
}

// SplitResult describes the block replaced by SplitBlock.
type SplitResult struct {
	Block Block
	Names [2]string
}

// SplitBlock replaces the Target entry with both variants joined by a comma.
//
// The comma is not doubled when the entry already ends with one. If the
// entry is not found, text is returned unchanged with ErrBlockNotFound.
func SplitBlock(text string, p SplitParams) (string, SplitResult, error) {
	lines := splitLines(text)
	block, err := FindBlock(lines, p.Target, p.Mode)
	if err != nil {
		return text, SplitResult{}, err
	}

	original := joinLines(lines[block.Start : block.End+1])
	first := trimTrailingComma(p.Variants[0].Apply(original))
	second := p.Variants[1].Apply(original)

	var sb strings.Builder
	if block.Start > 0 {
		sb.WriteString(joinLines(lines[:block.Start]))
		sb.WriteByte('\n')
	}
	sb.WriteString(first)
	sb.WriteString(",\n")
	sb.WriteString(second)
	if block.End+1 < len(lines) {
		sb.WriteByte('\n')
		sb.WriteString(joinLines(lines[block.End+1:]))
	}
	return sb.String(), SplitResult{
		Block: block,
		Names: [2]string{p.Variants[0].Name, p.Variants[1].Name},
	}, nil
}

// splitLines splits text on "\n". A trailing newline yields a final empty line
// so joinLines restores the input exactly.
func splitLines(text string) []string {
	return strings.Split(text, "\n")
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
