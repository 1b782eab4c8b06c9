// Package cli holds the flag and logger plumbing shared by the taxonomy
// maintenance commands.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	taxonomyedit "github.com/elliotwutingfeng/go-taxonomyedit"
)

// diffContext is the number of unchanged lines shown around each dry-run change.
const diffContext = 3

// ErrFailed is returned by a command that already printed its failure
// message and should exit non-zero.
var ErrFailed = errors.New("command failed")

// Options are the flags every command accepts.
type Options struct {
	File    string
	DryRun  bool
	Strict  bool
	Verbose bool
}

// Bind registers the shared flags on cmd.
func (o *Options) Bind(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&o.File, "file", taxonomyedit.DefaultTaxonomyPath, "taxonomy file to rewrite")
	flags.BoolVar(&o.DryRun, "dry-run", false, "print the changes as a diff without writing the file")
	flags.BoolVar(&o.Strict, "strict", false, "exit with a non-zero status when nothing could be edited")
	flags.BoolVarP(&o.Verbose, "verbose", "v", false, "print match details and enable debug logging")
}

// Fail returns ErrFailed in strict mode and nil otherwise, so a logical
// failure only changes the exit status when asked to.
func (o *Options) Fail() error {
	if o.Strict {
		return ErrFailed
	}
	return nil
}

// Editor builds a taxonomy editor for the parsed flags.
func (o *Options) Editor(fs afero.Fs, logger *zap.Logger) *taxonomyedit.Editor {
	return taxonomyedit.New(taxonomyedit.EditorParams{
		Fs:     fs,
		Path:   o.File,
		Logger: logger,
		DryRun: o.DryRun,
	})
}

// Report prints the dry-run diff of c, if any.
func (o *Options) Report(w io.Writer, c taxonomyedit.Change) {
	if o.DryRun {
		taxonomyedit.PrintDiff(w, c, diffContext)
	}
}

// NewLogger builds a production zap logger writing to stderr at warn level,
// or debug level when verbose.
func NewLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	config.Sampling = nil
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// Execute runs cmd and maps its outcome to a process exit status.
//
// Errors other than ErrFailed are printed as failure lines to the command's
// output before returning 1.
func Execute(cmd *cobra.Command) int {
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, ErrFailed) {
			taxonomyedit.PrintFailure(cmd.OutOrStdout(), "Error: %v", err)
		}
		return 1
	}
	return 0
}
