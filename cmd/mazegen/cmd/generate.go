package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dshills/mazeforge/pkg/maze"
	"github.com/dshills/mazeforge/pkg/mazeui"
)

var (
	genSeed   uint64
	genWidth  int
	genHeight int
	genScale  float64
	genOut    string
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate a maze and write its SVG to a file",
	Example: `  mazegen generate --seed 42 --width 60 --height 40 --scale 16 --out maze.svg`,
	RunE: func(cmd *cobra.Command, args []string) error {
		seed := genSeed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}

		var sp *mazeui.Spinner
		if !verbose {
			sp = mazeui.NewSpinner(fmt.Sprintf("generating %dx%d maze (seed=%d)...", genWidth, genHeight, seed))
			sp.Start()
			defer sp.Stop()
		} else {
			fmt.Printf("generating %dx%d maze (seed=%d)...\n", genWidth, genHeight, seed)
		}

		result, err := maze.BuildSquare(seed, genWidth, genHeight, genScale)
		if err != nil {
			return fmt.Errorf("generation failed: %w", err)
		}

		if err := os.WriteFile(genOut, result.SVG, 0644); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}

		if sp != nil {
			sp.Stop()
		}
		fmt.Printf("wrote %s\n", genOut)
		fmt.Printf("solution: %d edges across %d zones\n", result.SolutionLength, result.SolutionZones)
		return nil
	},
}

func init() {
	generateCmd.Flags().Uint64VarP(&genSeed, "seed", "s", 0, "master seed (0 = time-based)")
	generateCmd.Flags().IntVarP(&genWidth, "width", "W", 40, "grid width in cells")
	generateCmd.Flags().IntVarP(&genHeight, "height", "H", 30, "grid height in cells")
	generateCmd.Flags().Float64Var(&genScale, "scale", 24, "pixels per grid unit")
	generateCmd.Flags().StringVarP(&genOut, "out", "o", "maze.svg", "output SVG path")
}
