package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xyproto/env/v2"

	"github.com/oloc-go/oloc/pkg/oloc"
)

var (
	timeout    float64
	showSteps  bool
)

var calcCmd = &cobra.Command{
	Use:   "calc [expression]",
	Short: "Evaluate an arithmetic expression exactly",
	Long: `Evaluate a rational/irrational arithmetic expression and print its exact
result, optionally showing every simplification step.

Examples:
  oloc calc "1/3 + 1/6"
  oloc calc --steps "2^10 - 1"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCalc,
}

func init() {
	rootCmd.AddCommand(calcCmd)
	rootCmd.Args = cobra.ArbitraryArgs
	rootCmd.RunE = func(c *cobra.Command, args []string) error {
		if len(args) == 0 {
			return c.Help()
		}
		return runCalc(c, args)
	}

	calcCmd.Flags().Float64VarP(&timeout, "timeout", "t", env.Float64("OLOC_TIMEOUT", 5.0), "calculation time limit in seconds; negative disables it (env: OLOC_TIMEOUT)")
	calcCmd.Flags().BoolVarP(&showSteps, "steps", "s", false, "print every simplification step")
}

func runCalc(_ *cobra.Command, args []string) error {
	expression := strings.Join(args, " ")

	result, err := oloc.Calculate(expression, timeout)
	if err != nil {
		return err
	}

	if showSteps {
		for i, step := range result.Steps {
			fmt.Printf("%d: %s\n", i, step)
		}
	}
	fmt.Println(result.ToString())

	if verbose {
		fmt.Fprintf(os.Stderr, "preprocess=%s lex=%s parse=%s eval=%s\n",
			result.Timings.Preprocess, result.Timings.Lex, result.Timings.Parse, result.Timings.Eval)
	}
	return nil
}
