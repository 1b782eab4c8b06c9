// Command addsubjects adds a subject property to every topic in the exam
// taxonomy that does not have one yet.
//
// It is a one-off migration: run it once from the repository root. Running
// it again changes nothing.
package main

import (
	"fmt"
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
		opts         cli.Options
		subjectsFile string
		threshold    int
		sectionAware bool
		logger       *zap.Logger
	)

	cmd := &cobra.Command{
		Use:   "addsubjects",
		Short: "Add a subject field to every taxonomy topic",
		Long: `Add a subject field to every taxonomy topic.

Every topic line of the form

                value: '<topic>',

gets a following line

                subject: '<Subject>',

unless the next line already holds a subject. Subjects come from the built-in
table (or --subjects); unknown topics default to Mathematics. "algebra" is
Quantitative Aptitude in the CAT section at the top of the file.`,
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
			params := taxonomyedit.DefaultInjectParams()
			params.AlgebraThreshold = threshold
			params.SectionAware = sectionAware
			if subjectsFile != "" {
				table, fileThreshold, err := taxonomyedit.LoadSubjectTable(fs, subjectsFile)
				if err != nil {
					return err
				}
				params.Table = table
				if !cmd.Flags().Changed("threshold") && fileThreshold != nil {
					params.AlgebraThreshold = *fileThreshold
				}
			}
			if params.AlgebraThreshold < 0 {
				return fmt.Errorf("--threshold must not be negative, got %d", params.AlgebraThreshold)
			}

			res, change, err := opts.Editor(fs, logger).AddSubjects(params)
			if err != nil {
				return err
			}
			opts.Report(out, change)
			taxonomyedit.PrintInjectResult(out, res, change)
			if opts.Verbose {
				taxonomyedit.PrintInjectDetails(out, res)
			}
			if res.Matched == 0 {
				return opts.Fail()
			}
			return nil
		},
	}
	cmd.SetOut(out)

	opts.Bind(cmd)
	flags := cmd.Flags()
	flags.StringVar(&subjectsFile, "subjects", "", "YAML file replacing the built-in subject table")
	flags.IntVar(&threshold, "threshold", taxonomyedit.DefaultAlgebraThreshold,
		"line index below which algebra counts as Quantitative Aptitude (0: never)")
	flags.BoolVar(&sectionAware, "section-aware", false,
		"decide algebra's subject from the enclosing exam instead of the line index")

	return cmd
}
