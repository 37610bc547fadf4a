package solver

import (
	"fmt"
	"strings"
)

// Strategy selects how SelectGuess chooses among plausible words.
// The zero value is unset and rejected.
type Strategy int

const (
	StrategyUnset Strategy = iota
	StrategyRandom
	StrategyBestScored
)

func (s Strategy) String() string {
	switch s {
	case StrategyRandom:
		return "random"
	case StrategyBestScored:
		return "best"
	}
	return "unset"
}

// Valid reports whether s names exactly one strategy.
func (s Strategy) Valid() bool {
	return s == StrategyRandom || s == StrategyBestScored
}

// ParseStrategy maps "random" or "best" (case-insensitive) to a Strategy.
func ParseStrategy(v string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "random":
		return StrategyRandom, nil
	case "best", "best_scored", "bestscored":
		return StrategyBestScored, nil
	}
	return StrategyUnset, fmt.Errorf("%w: %q", ErrInvalidStrategy, v)
}
