package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.New()

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "sudomines",
	Short: "Solve and generate Sudoku-Mines puzzles",
	Long: `Sudoku-Mines overlays Minesweeper clues on a 9x9 Sudoku layout: every
row, column, and 3x3 block holds exactly three mines, and every numbered
cell counts the mines among its up-to-8 neighbors.

The solver models the puzzle as a constraint-satisfaction problem and runs
backtracking search with MRV variable ordering and forward checking.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetOutput(os.Stderr)
		if verbose {
			log.SetLevel(logrus.InfoLevel)
		} else {
			log.SetLevel(logrus.WarnLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log search progress to stderr")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
