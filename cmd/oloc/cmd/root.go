package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xyproto/env/v2"
)

var (
	// Version is set by -ldflags at build time.
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "oloc",
	Short: "Exact symbolic arithmetic calculator",
	Long: `oloc evaluates rational and irrational arithmetic expressions exactly,
reducing them to a canonical fraction and showing every simplification
step along the way instead of rounding to a float.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", env.Bool("OLOC_VERBOSE"), "verbose output (env: OLOC_VERBOSE)")
}
