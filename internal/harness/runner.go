// Package harness runs a solver over per-tier puzzle datasets, timing
// each solve and tallying how many results match the expected solution
// exactly.
package harness

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/wqueree/sudoku/internal/domain"
	"github.com/wqueree/sudoku/internal/ports"
)

// Result is the outcome of one puzzle in a batch.
type Result struct {
	Index    int
	Solved   bool
	Correct  bool
	Nodes    int
	Duration time.Duration
}

// Summary tallies one tier.
type Summary struct {
	Tier    domain.Difficulty
	Total   int
	Correct int
	Results []Result
}

// Runner drives a solver over datasets.
type Runner struct {
	Solver ports.Solver
	Log    *logrus.Logger
}

func New(s ports.Solver, log *logrus.Logger) *Runner {
	if log == nil {
		log = logrus.New()
	}
	return &Runner{Solver: s, Log: log}
}

// RunSet solves every pair in the set and compares each result against
// the expected solution.
func (r *Runner) RunSet(ctx context.Context, tier domain.Difficulty, pairs []Pair) (Summary, error) {
	sum := Summary{Tier: tier, Total: len(pairs), Results: make([]Result, 0, len(pairs))}
	for i, pair := range pairs {
		out, st, err := r.Solver.Solve(ctx, pair.Puzzle)
		if err != nil {
			return sum, err
		}
		res := Result{
			Index:    i,
			Solved:   !out.IsUnsolvable(),
			Correct:  out == pair.Solution,
			Nodes:    st.Nodes,
			Duration: st.Duration,
		}
		if res.Correct {
			sum.Correct++
		}
		r.Log.WithFields(logrus.Fields{
			"tier":    tier.String(),
			"puzzle":  i + 1,
			"solved":  res.Solved,
			"correct": res.Correct,
			"nodes":   res.Nodes,
			"dur":     res.Duration.Round(time.Microsecond),
		}).Info("solved puzzle")
		sum.Results = append(sum.Results, res)
	}
	return sum, nil
}

// RunDir runs the tiers in ascending difficulty from {dir}/{tier}.json
// files. Matching the original batch behavior, it stops descending the
// ladder after the first tier that is not fully correct.
func (r *Runner) RunDir(ctx context.Context, dir string) ([]Summary, error) {
	var out []Summary
	for _, tier := range domain.Tiers() {
		pairs, err := LoadTier(dir, tier)
		if err != nil {
			return out, err
		}
		r.Log.WithField("tier", tier.String()).Infof("testing %d puzzles", len(pairs))
		sum, err := r.RunSet(ctx, tier, pairs)
		if err != nil {
			return out, err
		}
		out = append(out, sum)
		r.Log.WithFields(logrus.Fields{
			"tier":    tier.String(),
			"correct": sum.Correct,
			"total":   sum.Total,
		}).Info("tier complete")
		if sum.Correct < sum.Total {
			break
		}
	}
	return out, nil
}
