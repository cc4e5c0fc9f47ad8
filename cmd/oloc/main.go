// Command oloc is the CLI front end for the oloc symbolic calculator.
package main

import (
	"fmt"
	"os"

	"github.com/oloc-go/oloc/cmd/oloc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
