package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oloc-go/oloc/pkg/oloc"
)

var (
	randomChoice     int
	pauseIfException bool
)

var testsetCmd = &cobra.Command{
	Use:   "testset <file> <key>",
	Short: "Run a named fixture set against the calculator",
	Long: `Load the named fixture set from a JSON file and report how many of its
expression/expected pairs Calculate reproduces exactly.`,
	Args: cobra.ExactArgs(2),
	RunE: runTestset,
}

func init() {
	rootCmd.AddCommand(testsetCmd)

	testsetCmd.Flags().IntVar(&randomChoice, "random-choice", 0, "sample this many fixtures at random instead of running all of them")
	testsetCmd.Flags().BoolVar(&pauseIfException, "pause-if-exception", false, "stop at the first fixture whose evaluation itself errors")
}

func runTestset(_ *cobra.Command, args []string) error {
	path, key := args[0], args[1]

	var opts []oloc.TestRunOption
	if randomChoice > 0 {
		opts = append(opts, oloc.WithRandomChoice(randomChoice))
	}
	if pauseIfException {
		opts = append(opts, oloc.WithPauseIfException(true))
	}

	report, err := oloc.RunTest(path, key, opts...)
	if err != nil {
		return err
	}

	fmt.Printf("%d/%d passed\n", report.Passed, report.Total)
	for _, f := range report.Failures {
		if f.Err != nil {
			fmt.Printf("  %s: error: %v\n", f.Case.Expression, f.Err)
			continue
		}
		fmt.Printf("  %s: expected %q, got %q\n", f.Case.Expression, f.Case.Expected, f.Got)
	}
	if len(report.Failures) > 0 {
		return fmt.Errorf("%d fixture(s) failed", len(report.Failures))
	}
	return nil
}
