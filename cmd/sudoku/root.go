package main

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/wqueree/sudoku/internal/ports"
	"github.com/wqueree/sudoku/internal/search"
	"github.com/wqueree/sudoku/internal/solver"
)

var (
	logLevel       string
	solverKind     string
	randomFallback bool
	seed           int64
)

var log = logrus.New()

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "sudoku",
		Short:         "Solve 9x9 Sudoku puzzles by constraint propagation and search",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := logrus.ParseLevel(logLevel)
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", logLevel, err)
			}
			log.SetLevel(lvl)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug|info|warn|error")
	root.PersistentFlags().StringVar(&solverKind, "solver", "propagation", "solver backend: propagation|sat")
	root.PersistentFlags().BoolVar(&randomFallback, "random-fallback", false, "use a seeded random choice in the degenerate MRV fallback")
	root.PersistentFlags().Int64Var(&seed, "seed", 1, "seed for --random-fallback")

	root.AddCommand(solveCmd(), batchCmd(), serveCmd())
	return root
}

func newSolver() (ports.Solver, error) {
	switch strings.ToLower(strings.TrimSpace(solverKind)) {
	case "sat":
		return solver.NewSATSolver(), nil
	case "propagation", "":
		var opts []search.Option
		if randomFallback {
			opts = append(opts, search.WithRandomFallback(seed))
		}
		return solver.NewPropagationSolver(opts...), nil
	default:
		return nil, fmt.Errorf("unknown solver %q", solverKind)
	}
}
