package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oloc-go/oloc/internal/config"
)

var (
	configFile string
	configShow bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the symbol/function alias and output-option tables",
	Long: `With --file, load and validate a tables JSON file against the schema
instead of the built-in defaults. --show prints the resolved tables.`,
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.Flags().StringVar(&configFile, "file", "", "path to a tables JSON file (default: built-in tables)")
	configCmd.Flags().BoolVar(&configShow, "show", true, "print the resolved tables as JSON")
}

func runConfig(_ *cobra.Command, _ []string) error {
	tables := config.Default()
	if configFile != "" {
		loaded, err := config.LoadFile(configFile)
		if err != nil {
			return fmt.Errorf("loading %s: %w", configFile, err)
		}
		tables = loaded
	}

	if !configShow {
		return nil
	}
	encoded, err := json.MarshalIndent(tables, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(encoded))
	return nil
}
