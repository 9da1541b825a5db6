package main

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"svw.info/gridsolver/internal/domain"
	"svw.info/gridsolver/internal/gridio"
	"svw.info/gridsolver/internal/solver"
)

func newSolveCmd() *cobra.Command {
	var (
		size  int
		sep   string
		pprof bool
	)
	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Solve a Sudoku puzzle from a text file",
		Long: `Solve reads a puzzle (one row per line, cells separated by a
delimiter, 0 for unknown), fills it by backtracking search, and prints
the solution. With no file argument it prompts for a path.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if pprof {
				defer profile.Start(profile.ProfilePath(".")).Stop()
			}
			path, err := puzzlePath(args)
			if err != nil {
				return err
			}
			geo, err := domain.NewGeometry(size)
			if err != nil {
				return err
			}
			g, err := gridio.ReadFile(path, geo, sep)
			if err != nil {
				return err
			}

			fmt.Println("Starting Sudoku grid:")
			if err := gridio.Write(os.Stdout, g, sep); err != nil {
				return err
			}

			out, st, err := solver.NewBacktrackingSolver().Solve(cmd.Context(), g)
			switch {
			case errors.Is(err, solver.ErrNoSolution), errors.Is(err, solver.ErrInvalidPuzzle):
				// Not a fault: report and print the unchanged grid.
				fmt.Println()
				fmt.Println("No solution found.")
				return gridio.Write(os.Stdout, g, sep)
			case err != nil:
				return err
			}
			slog.Debug("solved", "nodes", st.Nodes, "dur", st.Duration)
			fmt.Println()
			fmt.Println("Solution:")
			return gridio.Write(os.Stdout, out, sep)
		},
	}
	cmd.Flags().IntVar(&size, "size", 9, "grid edge length (must be a perfect square)")
	cmd.Flags().StringVar(&sep, "sep", gridio.DefaultSeparator, "cell delimiter in the puzzle file")
	cmd.Flags().BoolVar(&pprof, "pprof", false, "write a CPU profile to the current directory")
	return cmd
}

// puzzlePath returns the file argument, prompting on stdin when absent.
func puzzlePath(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	fmt.Print("Sudoku file: ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", err
	}
	path := strings.TrimSpace(line)
	if path == "" {
		return "", errors.New("no puzzle file given")
	}
	return path, nil
}
