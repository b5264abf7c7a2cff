package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/uriel-olayinka/sudomines/internal/generator"
)

var (
	genSeed         int64
	genExtraBlanks  int
	genOutput       string
	genShowSolution bool
	genPretty       bool
)

func init() {
	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a Sudoku-Mines puzzle",
		Long: `Generate a Sudoku-Mines puzzle in the flat input format.

The puzzle is derived from a random mine layout with exactly three mines in
every row, column, and block: mine cells become blanks, safe cells carry
their adjacent-mine count as a clue.

Examples:
  sudomines gen
  sudomines gen --seed 42 -o puzzle.txt
  sudomines gen --extra-blanks 6 --solution`,
		Args: cobra.NoArgs,
		RunE: runGen,
	}

	genCmd.Flags().Int64Var(&genSeed, "seed", 0, "Seed for reproducible puzzles (0 = random)")
	genCmd.Flags().IntVar(&genExtraBlanks, "extra-blanks", 0, "Blank out this many extra safe cells")
	genCmd.Flags().StringVarP(&genOutput, "output", "o", "", "Output file (default stdout)")
	genCmd.Flags().BoolVar(&genShowSolution, "solution", false, "Also emit the mine layout")
	genCmd.Flags().BoolVar(&genPretty, "pretty", false, "Also print human-readable grids")

	rootCmd.AddCommand(genCmd)
}

func runGen(cmd *cobra.Command, args []string) error {
	gen := generator.New(&generator.Options{
		Seed:        genSeed,
		ExtraBlanks: genExtraBlanks,
	})

	puzzle, layout, err := gen.Generate()
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}
	log.Infof("generated puzzle: %d clue cells, %d blanks", puzzle.ClueCount(), puzzle.BlankCount())

	w := io.Writer(os.Stdout)
	if genOutput != "" {
		f, err := os.Create(genOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	if _, err := io.WriteString(w, puzzle.Flat()); err != nil {
		return fmt.Errorf("failed to write puzzle: %w", err)
	}
	if genShowSolution {
		if _, err := io.WriteString(w, layout.String()); err != nil {
			return fmt.Errorf("failed to write solution: %w", err)
		}
	}

	if genPretty {
		fmt.Print(puzzle.Format())
		if genShowSolution {
			fmt.Print(layout.Format())
		}
	}

	return nil
}
