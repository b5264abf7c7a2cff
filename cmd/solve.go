package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/uriel-olayinka/sudomines/internal/grid"
	"github.com/uriel-olayinka/sudomines/internal/solver"
)

var (
	solveOutput string
	solvePretty bool
)

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve <input>",
		Short: "Solve a Sudoku-Mines puzzle",
		Long: `Solve a Sudoku-Mines puzzle read from a file, or from stdin with "-".

The input is 9 lines of 9 whitespace-separated integers: 0 marks a blank
cell, 1-8 a clue counting the mines among its neighbors. The output is the
goal depth, the number of nodes generated, and the 9x9 mine placement.

Examples:
  sudomines solve puzzle.txt
  sudomines solve puzzle.txt -o solution.txt
  cat puzzle.txt | sudomines solve - --pretty`,
		Args: cobra.ExactArgs(1),
		RunE: runSolve,
	}

	solveCmd.Flags().StringVarP(&solveOutput, "output", "o", "", "Output file (default stdout)")
	solveCmd.Flags().BoolVar(&solvePretty, "pretty", false, "Also print a human-readable solution grid")

	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	g, err := readGrid(args[0])
	if err != nil {
		return err
	}

	s := solver.New(g)
	log.Infof("parsed puzzle: %d clue cells, %d variables", g.ClueCount(), s.Variables())
	log.Info("starting backtracking search")

	out := s.Solve()
	if !out.Solved {
		// An exhausted search is a normal solver outcome; for the CLI it
		// still means no output can be written.
		return fmt.Errorf("no solution found (%d nodes generated)", out.Nodes)
	}
	log.Infof("solution found at depth %d (%d nodes generated)", out.GoalDepth, out.Nodes)

	w := io.Writer(os.Stdout)
	if solveOutput != "" {
		f, err := os.Create(solveOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	if err := writeResult(w, out); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}

	if solvePretty {
		fmt.Print(out.Solution.Format())
	}

	return nil
}

// readGrid parses a puzzle from the named file, or stdin for "-".
func readGrid(path string) (*grid.Grid, error) {
	if path == "-" {
		return grid.Parse(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := grid.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// writeResult emits the flat output format: goal depth, nodes generated,
// then the 9x9 mine placement.
func writeResult(w io.Writer, out solver.Outcome) error {
	if _, err := fmt.Fprintf(w, "%d\n%d\n", out.GoalDepth, out.Nodes); err != nil {
		return err
	}
	_, err := io.WriteString(w, out.Solution.String())
	return err
}
