package harness

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/wqueree/sudoku/internal/domain"
)

// Pair couples a puzzle with its expected solution.
type Pair struct {
	Puzzle   domain.Grid `json:"puzzle"`
	Solution domain.Grid `json:"solution"`
}

// LoadTier reads {dir}/{tier}.json, a JSON array of puzzle/solution
// pairs for one difficulty tier.
func LoadTier(dir string, tier domain.Difficulty) ([]Pair, error) {
	path := filepath.Join(dir, tier.String()+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load %s dataset: %w", tier, err)
	}
	var pairs []Pair
	if err := json.Unmarshal(data, &pairs); err != nil {
		return nil, fmt.Errorf("load %s dataset: %w", tier, err)
	}
	return pairs, nil
}
