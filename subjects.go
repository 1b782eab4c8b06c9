package taxonomyedit

import (
	"bytes"
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/afero"
	"github.com/tidwall/hashmap"
	"gopkg.in/yaml.v3"
)

// Subject names used by the built-in table.
const (
	QuantitativeAptitude = "Quantitative Aptitude"
	Mathematics          = "Mathematics"
	Physics              = "Physics"
	Chemistry            = "Chemistry"
)

// DefaultSubject is assigned to topic identifiers missing from a SubjectTable.
const DefaultSubject = Mathematics

// SubjectTable maps topic identifiers to subject names.
//
// Identifiers that are not in the table resolve to the fallback subject.
type SubjectTable struct {
	subjects hashmap.Map[string, string]
	fallback string
}

// NewSubjectTable creates an empty SubjectTable. An empty fallback
// means DefaultSubject.
func NewSubjectTable(fallback string) *SubjectTable {
	if fallback == "" {
		fallback = DefaultSubject
	}
	return &SubjectTable{fallback: fallback}
}

// Set assigns subject to the topic identifier id.
func (t *SubjectTable) Set(id, subject string) {
	t.subjects.Set(id, subject)
}

// Get returns the subject of id, or the fallback subject.
func (t *SubjectTable) Get(id string) string {
	if subject, ok := t.subjects.Get(id); ok {
		return subject
	}
	return t.fallback
}

// Lookup returns the subject of id and whether id is in the table.
func (t *SubjectTable) Lookup(id string) (string, bool) {
	return t.subjects.Get(id)
}

// Fallback returns the subject used for unknown identifiers.
func (t *SubjectTable) Fallback() string {
	return t.fallback
}

// Len returns the number of identifiers in the table.
func (t *SubjectTable) Len() int {
	return t.subjects.Len()
}

// IDs returns the identifiers in the table, sorted.
func (t *SubjectTable) IDs() []string {
	ids := make([]string, 0, t.subjects.Len())
	t.subjects.Scan(func(key string, _ string) bool {
		ids = append(ids, key)
		return true
	})
	sort.Strings(ids)
	return ids
}

// defaultSubjects is the table the taxonomy was first migrated with.
//
// "algebra" is listed as Mathematics; InjectSubjects overrides it inside
// the CAT section.
var defaultSubjects = map[string][]string{
	QuantitativeAptitude: {
		"percentages-profit-loss",
		"ratios-averages-mixtures",
		"time-speed-distance-work",
		"simple-compound-interest",
		"number-systems",
		"geometry-mensuration",
		"modern-math",
	},
	Mathematics: {
		"sets-relations-functions",
		"quadratic-equations",
		"complex-numbers",
		"sequences-and-series",
		"permutations-combinations",
		"binomial-theorem",
		"straight-lines",
		"conic-sections",
		"trigonometry",
		"matrices-determinants",
		"limits-continuity-differentiability",
		"application-of-derivatives",
		"integrals",
		"differential-equations",
		"vectors",
		"3d-geometry",
		"probability",
		"vector-algebra",
		"calculus",
		"coordinate-geometry",
		"trigonometry-ii",
		"circles",
		"integration",
		"differentiation",
		"class-12-math",
		"algebra",
	},
	Physics: {
		"units-measurements",
		"kinematics",
		"laws-of-motion",
		"work-energy-power",
		"rotational-motion",
		"gravitation",
		"oscillations-waves",
		"electrostatics",
		"current-electricity",
		"magnetism",
		"electromagnetic-induction",
		"optics",
		"modern-physics",
		"thermodynamics-phy",
		"solids-fluids",
		"motion-in-a-plane",
	},
	Chemistry: {
		"atomic-structure",
		"chemical-bonding",
		"states-of-matter",
		"thermodynamics-chem",
		"equilibrium",
		"electrochemistry",
		"chemical-kinetics",
		"organic-chemistry",
		"coordination-compounds",
		"physical-chemistry",
		"inorganic-chemistry",
	},
}

// DefaultSubjectTable returns the built-in subject table.
func DefaultSubjectTable() *SubjectTable {
	t := NewSubjectTable(DefaultSubject)
	for subject, ids := range defaultSubjects {
		for _, id := range ids {
			t.Set(id, subject)
		}
	}
	return t
}

// SubjectsFile is the YAML layout accepted by LoadSubjectTable.
type SubjectsFile struct {
	Fallback         string              `yaml:"fallback"`
	AlgebraThreshold *int                `yaml:"algebra_threshold"`
	Subjects         map[string][]string `yaml:"subjects"`
}

// LoadSubjectTable reads a SubjectsFile from path on fs.
//
// The returned threshold is nil when the file does not set one; an explicit
// 0 is kept.
func LoadSubjectTable(fs afero.Fs, path string) (*SubjectTable, *int, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, nil, fmt.Errorf("read subjects file: %w", err)
	}
	var file SubjectsFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, nil, fmt.Errorf("parse subjects file %s: %w", path, err)
	}
	if file.AlgebraThreshold != nil && *file.AlgebraThreshold < 0 {
		return nil, nil, errors.New("algebra_threshold must not be negative")
	}
	t := NewSubjectTable(file.Fallback)
	for subject, ids := range file.Subjects {
		if subject == "" {
			return nil, nil, errors.New("empty subject name in subjects file")
		}
		for _, id := range ids {
			if prev, ok := t.Lookup(id); ok && prev != subject {
				return nil, nil, fmt.Errorf("topic %q listed under both %q and %q", id, prev, subject)
			}
			t.Set(id, subject)
		}
	}
	return t, file.AlgebraThreshold, nil
}
