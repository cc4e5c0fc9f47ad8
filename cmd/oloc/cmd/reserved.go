package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oloc-go/oloc/pkg/oloc"
)

var reservedCmd = &cobra.Command{
	Use:   "reserved [symbol]",
	Short: "Check whether a symbol is reserved",
	Long: `Report whether the given symbol collides with a function name or symbol
alias from the configured tables.`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		fmt.Println(oloc.IsReserved(args[0]))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reservedCmd)
}
