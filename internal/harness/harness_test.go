package harness

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/wqueree/sudoku/internal/domain"
	"github.com/wqueree/sudoku/internal/solver"
)

// A classic, solvable Sudoku (0 = empty) with a unique solution.
var sample = domain.Grid{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

var sampleSolution = domain.Grid{
	{5, 3, 4, 6, 7, 8, 9, 1, 2},
	{6, 7, 2, 1, 9, 5, 3, 4, 8},
	{1, 9, 8, 3, 4, 2, 5, 6, 7},
	{8, 5, 9, 7, 6, 1, 4, 2, 3},
	{4, 2, 6, 8, 5, 3, 7, 9, 1},
	{7, 1, 3, 9, 2, 4, 8, 5, 6},
	{9, 6, 1, 5, 3, 7, 2, 8, 4},
	{2, 8, 7, 4, 1, 9, 6, 3, 5},
	{3, 4, 5, 2, 8, 6, 1, 7, 9},
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func writeTier(t *testing.T, dir string, tier domain.Difficulty, pairs []Pair) {
	t.Helper()
	data, err := json.Marshal(pairs)
	if err != nil {
		t.Fatalf("marshal dataset: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, tier.String()+".json"), data, 0o644); err != nil {
		t.Fatalf("write dataset: %v", err)
	}
}

func TestRunSetTally(t *testing.T) {
	wrong := sampleSolution
	wrong[0][0], wrong[0][1] = wrong[0][1], wrong[0][0]

	pairs := []Pair{
		{Puzzle: sample, Solution: sampleSolution},
		{Puzzle: sample, Solution: wrong},
	}
	r := New(solver.NewPropagationSolver(), quietLogger())
	sum, err := r.RunSet(context.Background(), domain.Easy, pairs)
	if err != nil {
		t.Fatalf("RunSet failed: %v", err)
	}
	if sum.Total != 2 || sum.Correct != 1 {
		t.Fatalf("tally %d/%d, want 1/2", sum.Correct, sum.Total)
	}
	if !sum.Results[0].Correct || sum.Results[1].Correct {
		t.Fatalf("per-puzzle results wrong: %+v", sum.Results)
	}
	if !sum.Results[1].Solved {
		t.Fatal("solvable puzzle marked unsolved")
	}
}

func TestRunDirStopsAfterImperfectTier(t *testing.T) {
	dir := t.TempDir()
	wrong := sampleSolution
	wrong[8][8] = 1

	writeTier(t, dir, domain.VeryEasy, []Pair{{Puzzle: sample, Solution: sampleSolution}})
	writeTier(t, dir, domain.Easy, []Pair{{Puzzle: sample, Solution: wrong}})
	// medium and hard deliberately absent: the run must stop at easy.

	r := New(solver.NewPropagationSolver(), quietLogger())
	summaries, err := r.RunDir(context.Background(), dir)
	if err != nil {
		t.Fatalf("RunDir failed: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("ran %d tiers, want 2", len(summaries))
	}
	if summaries[0].Correct != 1 || summaries[1].Correct != 0 {
		t.Fatalf("tallies wrong: %+v", summaries)
	}
}

func TestLoadTierRoundTrip(t *testing.T) {
	dir := t.TempDir()
	writeTier(t, dir, domain.Medium, []Pair{{Puzzle: sample, Solution: sampleSolution}})

	pairs, err := LoadTier(dir, domain.Medium)
	if err != nil {
		t.Fatalf("LoadTier failed: %v", err)
	}
	if len(pairs) != 1 || pairs[0].Puzzle != sample || pairs[0].Solution != sampleSolution {
		t.Fatalf("dataset round trip changed the pairs")
	}
}

func TestLoadTierMissingFile(t *testing.T) {
	if _, err := LoadTier(t.TempDir(), domain.Hard); err == nil {
		t.Fatal("expected an error for a missing dataset file")
	}
}
