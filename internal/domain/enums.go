package domain

// Difficulty labels the dataset tier a puzzle came from.
type Difficulty int

const (
	VeryEasy Difficulty = iota
	Easy
	Medium
	Hard
)

// Tiers returns the difficulties in ascending order.
func Tiers() []Difficulty {
	return []Difficulty{VeryEasy, Easy, Medium, Hard}
}

func (d Difficulty) String() string {
	switch d {
	case VeryEasy:
		return "very_easy"
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	default:
		return "medium"
	}
}

// ParseDifficulty maps a tier name to its Difficulty, defaulting to Medium.
func ParseDifficulty(s string) Difficulty {
	switch s {
	case "very_easy":
		return VeryEasy
	case "easy":
		return Easy
	case "hard":
		return Hard
	default:
		return Medium
	}
}

// StrategyTier limits hinting/logic complexity used.
type StrategyTier int

const (
	StrategyNakedSingle  StrategyTier = iota // cells with one remaining candidate
	StrategyHiddenSingle                     // sole appearance of a digit within a unit
)
