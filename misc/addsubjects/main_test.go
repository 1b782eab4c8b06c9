package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	taxonomyedit "github.com/elliotwutingfeng/go-taxonomyedit"
	"github.com/elliotwutingfeng/go-taxonomyedit/internal/cli"
)

const fixture = "../../test/taxonomy.ts"

func setup(t *testing.T) (afero.Fs, string) {
	t.Helper()
	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = noColor })

	data, err := os.ReadFile(fixture)
	require.NoError(t, err)
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, taxonomyedit.DefaultTaxonomyPath, data, 0644))
	return fs, string(data)
}

func run(fs afero.Fs, args ...string) (int, string) {
	var out bytes.Buffer
	cmd := newRootCmd(fs, &out)
	// a nil slice would make cobra fall back to os.Args
	cmd.SetArgs(append([]string{}, args...))
	return cli.Execute(cmd), out.String()
}

func TestAddSubjectsDefaultPath(t *testing.T) {
	fs, original := setup(t)

	code, out := run(fs)
	assert.Equal(t, 0, code)
	assert.Equal(t, "Finished processing "+taxonomyedit.DefaultTaxonomyPath+"\n", out)

	data, err := afero.ReadFile(fs, taxonomyedit.DefaultTaxonomyPath)
	require.NoError(t, err)
	expected, _ := taxonomyedit.InjectSubjects(original, taxonomyedit.DefaultInjectParams())
	assert.Equal(t, expected, string(data))

	code, out = run(fs)
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "already up to date")
}

func TestAddSubjectsVerbose(t *testing.T) {
	fs, _ := setup(t)

	code, out := run(fs, "-v")
	assert.Equal(t, 0, code)
	assert.Equal(t, "Finished processing "+taxonomyedit.DefaultTaxonomyPath+"\n"+
		"  matched 5, inserted 5, already present 0\n", out)
}

func TestAddSubjectsDryRun(t *testing.T) {
	fs, original := setup(t)

	code, out := run(fs, "--dry-run")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "+                subject: 'Quantitative Aptitude',")
	assert.Contains(t, out, "dry run, not written")

	data, err := afero.ReadFile(fs, taxonomyedit.DefaultTaxonomyPath)
	require.NoError(t, err)
	assert.Equal(t, original, string(data))
}

func TestAddSubjectsCustomFileAndTable(t *testing.T) {
	fs, original := setup(t)
	require.NoError(t, afero.WriteFile(fs, "/tmp/other.ts", []byte(original), 0644))
	require.NoError(t, afero.WriteFile(fs, "/tmp/subjects.yaml",
		[]byte("fallback: General\nsubjects:\n  Mechanics: [kinematics]\n"), 0644))

	code, _ := run(fs, "--file", "/tmp/other.ts", "--subjects", "/tmp/subjects.yaml")
	require.Equal(t, 0, code)

	data, err := afero.ReadFile(fs, "/tmp/other.ts")
	require.NoError(t, err)
	assert.Contains(t, string(data), "                value: 'kinematics',\n                subject: 'Mechanics',")
	assert.Contains(t, string(data), "                value: 'chemical-bonding',\n                subject: 'General',")
	assert.Contains(t, string(data), "                value: 'algebra',\n                subject: 'Quantitative Aptitude',")

	untouched, err := afero.ReadFile(fs, taxonomyedit.DefaultTaxonomyPath)
	require.NoError(t, err)
	assert.Equal(t, original, string(untouched))
}

func TestAddSubjectsThreshold(t *testing.T) {
	fs, _ := setup(t)

	// the fixture's algebra topic sits on line index 37
	code, _ := run(fs, "--threshold", "10")
	require.Equal(t, 0, code)

	data, err := afero.ReadFile(fs, taxonomyedit.DefaultTaxonomyPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "                value: 'algebra',\n                subject: 'Mathematics',")
}

func TestAddSubjectsZeroThreshold(t *testing.T) {
	fs, _ := setup(t)

	code, _ := run(fs, "--threshold", "0")
	require.Equal(t, 0, code)

	data, err := afero.ReadFile(fs, taxonomyedit.DefaultTaxonomyPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "                value: 'algebra',\n                subject: 'Mathematics',")
	assert.NotContains(t, string(data), "                value: 'algebra',\n                subject: 'Quantitative Aptitude',")
}

func TestAddSubjectsZeroThresholdFromFile(t *testing.T) {
	fs, _ := setup(t)
	require.NoError(t, afero.WriteFile(fs, "/tmp/subjects.yaml",
		[]byte("algebra_threshold: 0\nsubjects:\n  Physics: [kinematics]\n"), 0644))

	code, _ := run(fs, "--subjects", "/tmp/subjects.yaml")
	require.Equal(t, 0, code)

	data, err := afero.ReadFile(fs, taxonomyedit.DefaultTaxonomyPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "                value: 'algebra',\n                subject: 'Mathematics',")

	// an explicit flag still wins over the file
	fs, _ = setup(t)
	require.NoError(t, afero.WriteFile(fs, "/tmp/subjects.yaml",
		[]byte("algebra_threshold: 0\n"), 0644))
	code, _ = run(fs, "--subjects", "/tmp/subjects.yaml", "--threshold", "200")
	require.Equal(t, 0, code)
	data, err = afero.ReadFile(fs, taxonomyedit.DefaultTaxonomyPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "                value: 'algebra',\n                subject: 'Quantitative Aptitude',")
}

func TestAddSubjectsNoMatches(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, taxonomyedit.DefaultTaxonomyPath, []byte("export {};\n"), 0644))

	code, out := run(fs)
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "No topic value lines found")

	code, _ = run(fs, "--strict")
	assert.Equal(t, 1, code)
}

func TestAddSubjectsErrors(t *testing.T) {
	fs, _ := setup(t)

	code, out := run(fs, "--file", "/missing.ts")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "Error: stat /missing.ts")

	code, out = run(fs, "--subjects", "/missing.yaml")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "read subjects file")

	code, _ = run(fs, "--threshold", "-5")
	assert.Equal(t, 1, code)

	code, _ = run(fs, "unexpected-argument")
	assert.Equal(t, 1, code)
}
