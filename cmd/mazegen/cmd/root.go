package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "mazegen",
	Short: "Generate hierarchical maze SVGs",
	Long: `mazegen builds a square-grid maze using a zone-then-meta spanning
forest construction, solves a random start/end pair, and renders the result
to SVG.`,
}

// Execute runs the root command. Called once from main.main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "disable the spinner and print a plain progress line instead")
	rootCmd.AddCommand(generateCmd)
}
