package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"svw.info/gridsolver/internal/domain"
	"svw.info/gridsolver/internal/gridio"
	"svw.info/gridsolver/internal/validator"
)

func newCheckCmd() *cobra.Command {
	var (
		size int
		sep  string
	)
	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Check a puzzle file for rule violations among its givens",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			geo, err := domain.NewGeometry(size)
			if err != nil {
				return err
			}
			g, err := gridio.ReadFile(args[0], geo, sep)
			if err != nil {
				return err
			}
			ok, conflicts, err := validator.New().Validate(cmd.Context(), g)
			if err != nil {
				return err
			}
			if ok {
				fmt.Println("OK: no conflicts")
				return nil
			}
			for _, c := range conflicts {
				fmt.Printf("conflict at row %d, col %d\n", c.Row+1, c.Col+1)
			}
			return fmt.Errorf("%d conflicting cells", len(conflicts))
		},
	}
	cmd.Flags().IntVar(&size, "size", 9, "grid edge length (must be a perfect square)")
	cmd.Flags().StringVar(&sep, "sep", gridio.DefaultSeparator, "cell delimiter in the puzzle file")
	return cmd
}
