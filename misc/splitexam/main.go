// Command splitexam replaces the combined AP/TS EAMCET exam in the taxonomy
// with separate AP EAPCET and TG EAPCET entries.
//
// The file is only written when the EAMCET entry is found.
package main

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	taxonomyedit "github.com/elliotwutingfeng/go-taxonomyedit"
	"github.com/elliotwutingfeng/go-taxonomyedit/internal/cli"
)

func main() {
	os.Exit(cli.Execute(newRootCmd(afero.NewOsFs(), os.Stdout)))
}

func newRootCmd(fs afero.Fs, out io.Writer) *cobra.Command {
	var (
		opts           cli.Options
		respectStrings bool
		logger         *zap.Logger
	)

	cmd := &cobra.Command{
		Use:   "splitexam",
		Short: "Split the EAMCET exam entry into AP and TS variants",
		Long: `Split the EAMCET exam entry into AP and TS variants.

The entry whose value is 'eamcet' is located by counting braces from the
"{" line right above it, and replaced by two copies:

  value: 'ap_eapcet', label: 'AP EAPCET'
  value: 'ts_eapcet', label: 'TG EAPCET'

If the entry cannot be found the file is left untouched.`,
		Args: cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			logger, err = cli.NewLogger(opts.Verbose)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			params := taxonomyedit.DefaultSplitParams()
			if respectStrings {
				params.Mode = taxonomyedit.CountOutsideStrings
			}

			res, change, err := opts.Editor(fs, logger).SplitExam(params)
			if errors.Is(err, taxonomyedit.ErrBlockNotFound) {
				taxonomyedit.PrintFailure(out, "Could not find %s block.", params.Target)
				return opts.Fail()
			}
			if err != nil {
				return err
			}
			opts.Report(out, change)
			taxonomyedit.PrintSplitResult(out, params.Target, res, change)
			if opts.Verbose {
				taxonomyedit.PrintSplitDetails(out, res, change.Path)
			}
			return nil
		},
	}
	cmd.SetOut(out)

	opts.Bind(cmd)
	cmd.Flags().BoolVar(&respectStrings, "respect-strings", false,
		"ignore braces inside string literals and comments when matching the entry")

	return cmd
}
