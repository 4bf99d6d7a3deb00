package domain

import "strings"

// Difficulty labels target puzzle generation & grading.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

// TargetGivens maps a difficulty to the number of non-empty cells the
// generator carves toward. The mapping is fixed; carving treats it as a
// ceiling on removals, so a produced puzzle may keep more givens when no
// further cell can be blanked without losing uniqueness.
func (d Difficulty) TargetGivens() int {
	switch d {
	case Easy:
		return 40
	case Medium:
		return 32
	case Hard:
		return 26
	default:
		return 22 // Expert
	}
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	case Expert:
		return "expert"
	default:
		return "medium"
	}
}

// ParseDifficulty maps a label to a Difficulty, defaulting to Medium.
func ParseDifficulty(s string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy
	case "hard":
		return Hard
	case "expert":
		return Expert
	default:
		return Medium
	}
}

// StrategyTier limits hinting/logic complexity used.
type StrategyTier int

const (
	StrategySingles StrategyTier = iota // singles / sole candidates
	StrategyPairs                       // naked/hidden pairs
	StrategyAdvanced                    // pointing/claiming, triples, etc.
	StrategyXWing                       // advanced fish (placeholder for cap)
)
