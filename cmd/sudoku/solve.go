package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/wqueree/sudoku/internal/domain"
)

func solveCmd() *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a single puzzle",
		Long: `Solve one puzzle read from a file or stdin.

The puzzle is 81 digits in reading order, or nine rows of nine;
'0' and '.' mark unknown cells.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var data []byte
			var err error
			if input == "" || input == "-" {
				data, err = io.ReadAll(os.Stdin)
			} else {
				data, err = os.ReadFile(input)
			}
			if err != nil {
				return err
			}
			grid, err := domain.ParseGrid(string(data))
			if err != nil {
				return err
			}
			s, err := newSolver()
			if err != nil {
				return err
			}
			out, st, err := s.Solve(cmd.Context(), grid)
			if err != nil {
				return err
			}
			if out.IsUnsolvable() {
				log.WithField("nodes", st.Nodes).Warn("no solution exists")
				fmt.Fprintln(cmd.OutOrStdout(), "unsolvable")
				return nil
			}
			log.WithFields(logrus.Fields{"nodes": st.Nodes, "dur": st.Duration}).Debug("solved")
			fmt.Fprintln(cmd.OutOrStdout(), out.String())
			return nil
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "-", "puzzle file, or - for stdin")
	return cmd
}
