// Package solver adapts the solving backends to the ports.Solver
// interface. The propagation solver is the primary backend; the SAT
// solver is an independent cross-check built on gini.
package solver

import (
	"context"
	"time"

	"github.com/wqueree/sudoku/internal/domain"
	"github.com/wqueree/sudoku/internal/ports"
	"github.com/wqueree/sudoku/internal/search"
)

// PropagationSolver solves by constraint propagation (naked and hidden
// singles) with a backtracking MRV search for whatever propagation
// cannot finish.
type PropagationSolver struct {
	driver *search.Driver
}

// NewPropagationSolver returns the propagation-based solver. Options
// are passed through to the search driver.
func NewPropagationSolver(opts ...search.Option) *PropagationSolver {
	return &PropagationSolver{driver: search.New(opts...)}
}

func (s *PropagationSolver) Solve(ctx context.Context, g domain.Grid) (domain.Grid, ports.Stats, error) {
	start := time.Now()
	out, nodes, err := s.driver.Solve(ctx, g)
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if err != nil {
		return domain.Grid{}, st, err
	}
	return out, st, nil
}
