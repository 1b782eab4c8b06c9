package taxonomyedit

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// EditorParams specifies the taxonomy file to edit.
//
// A nil Fs means the operating system filesystem, an empty Path means
// DefaultTaxonomyPath and a nil Logger discards log output.
//
// If DryRun = true, edits are computed but never written.
type EditorParams struct {
	Fs     afero.Fs
	Path   string
	Logger *zap.Logger
	DryRun bool
}

// Editor reads the taxonomy file, applies one edit and overwrites it.
type Editor struct {
	fs     afero.Fs
	path   string
	logger *zap.Logger
	dryRun bool
}

// Change holds the file content before and after an edit.
type Change struct {
	Path     string
	Original string
	Modified string
	Written  bool
}

// Changed reports whether the edit altered the content.
func (c Change) Changed() bool {
	return c.Original != c.Modified
}

// New creates an *Editor from n.
func New(n EditorParams) *Editor {
	if n.Fs == nil {
		n.Fs = afero.NewOsFs()
	}
	if n.Path == "" {
		n.Path = DefaultTaxonomyPath
	}
	if n.Logger == nil {
		n.Logger = zap.NewNop()
	}
	return &Editor{fs: n.Fs, path: n.Path, logger: n.Logger, dryRun: n.DryRun}
}

// Path returns the file the editor works on.
func (e *Editor) Path() string {
	return e.path
}

// read loads the whole file.
func (e *Editor) read() (string, os.FileMode, error) {
	info, err := e.fs.Stat(e.path)
	if err != nil {
		return "", 0, fmt.Errorf("stat %s: %w", e.path, err)
	}
	if info.IsDir() {
		return "", 0, fmt.Errorf("%s is a directory", e.path)
	}
	data, err := afero.ReadFile(e.fs, e.path)
	if err != nil {
		return "", 0, fmt.Errorf("read %s: %w", e.path, err)
	}
	e.logger.Debug("read taxonomy", zap.String("path", e.path), zap.Int("bytes", len(data)))
	return string(data), info.Mode().Perm(), nil
}

// commit overwrites the file with c.Modified unless nothing changed or
// the editor is in dry-run mode.
func (e *Editor) commit(c *Change, perm os.FileMode) error {
	if !c.Changed() {
		e.logger.Debug("taxonomy unchanged, skipping write", zap.String("path", e.path))
		return nil
	}
	if e.dryRun {
		e.logger.Debug("dry run, skipping write", zap.String("path", e.path))
		return nil
	}
	if err := afero.WriteFile(e.fs, e.path, []byte(c.Modified), perm); err != nil {
		return fmt.Errorf("write %s: %w", e.path, err)
	}
	c.Written = true
	e.logger.Info("wrote taxonomy", zap.String("path", e.path), zap.Int("bytes", len(c.Modified)))
	return nil
}

// AddSubjects runs InjectSubjects over the file.
func (e *Editor) AddSubjects(p InjectParams) (InjectResult, Change, error) {
	text, perm, err := e.read()
	if err != nil {
		return InjectResult{}, Change{Path: e.path}, err
	}
	modified, res := InjectSubjects(text, p)
	for _, ins := range res.Insertions {
		e.logger.Debug("inserted subject",
			zap.Int("line", ins.Line+1),
			zap.String("topic", ins.ID),
			zap.String("subject", ins.Subject))
	}
	if res.Matched == 0 {
		e.logger.Warn("no topic value lines matched", zap.String("path", e.path))
	}

	c := Change{Path: e.path, Original: text, Modified: modified}
	if err := e.commit(&c, perm); err != nil {
		return res, c, err
	}
	return res, c, nil
}

// SplitExam runs SplitBlock over the file. When the target entry is missing
// the file is left untouched and the error wraps ErrBlockNotFound.
func (e *Editor) SplitExam(p SplitParams) (SplitResult, Change, error) {
	text, perm, err := e.read()
	if err != nil {
		return SplitResult{}, Change{Path: e.path}, err
	}
	c := Change{Path: e.path, Original: text, Modified: text}
	modified, res, err := SplitBlock(text, p)
	if err != nil {
		if errors.Is(err, ErrBlockNotFound) {
			e.logger.Warn("exam entry not found", zap.String("path", e.path), zap.String("target", p.Target))
		}
		return res, c, fmt.Errorf("split %q: %w", p.Target, err)
	}
	e.logger.Debug("located exam entry",
		zap.String("target", p.Target),
		zap.Int("start", res.Block.Start+1),
		zap.Int("end", res.Block.End+1))

	c.Modified = modified
	if err := e.commit(&c, perm); err != nil {
		return res, c, err
	}
	return res, c, nil
}
