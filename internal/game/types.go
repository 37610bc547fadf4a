// internal/game/types.go
//
// Core type definitions for the Wrdl game engine.
// Defines:
//   - Verdict: per-letter result of a guess (exact/present/absent).
//   - Result:  ordered verdicts for one guess.
//   - State:   coarse lifecycle of a Session (playing/won/lost).
//   - Lexicon, Tracker: collaborators a Session is wired to.

package game

import "strings"

// Verdict represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "exact":   letter is correct and in the correct position.
//   - "present": letter occurs elsewhere in the secret and an unconsumed copy remains.
//   - "absent":  letter contributes no further matches.
type Verdict string

const (
	VerdictExact   Verdict = "exact"
	VerdictPresent Verdict = "present"
	VerdictAbsent  Verdict = "absent"
)

// Rank orders verdicts so that Exact > Present > Absent.
// The zero Verdict ranks below Absent.
func (v Verdict) Rank() int {
	switch v {
	case VerdictExact:
		return 3
	case VerdictPresent:
		return 2
	case VerdictAbsent:
		return 1
	}
	return 0
}

// Result is the ordered sequence of verdicts for one guess, aligned by position.
type Result []Verdict

// Solved reports whether every position is Exact.
func (r Result) Solved() bool {
	if len(r) == 0 {
		return false
	}
	for _, v := range r {
		if v != VerdictExact {
			return false
		}
	}
	return true
}

// Score renders the result as digits: 2 exact, 1 present, 0 absent.
func (r Result) Score() string {
	var b strings.Builder
	for _, v := range r {
		switch v {
		case VerdictExact:
			b.WriteByte('2')
		case VerdictPresent:
			b.WriteByte('1')
		default:
			b.WriteByte('0')
		}
	}
	return b.String()
}

// Count returns how many positions carry verdict v.
func (r Result) Count(v Verdict) int {
	n := 0
	for _, x := range r {
		if x == v {
			n++
		}
	}
	return n
}

// Guess pairs a submitted word with its evaluation.
type Guess struct {
	Word   string `json:"word"`
	Result Result `json:"verdicts"`
}

// State is the lifecycle of a Session.
type State string

const (
	StateInProgress State = "playing"
	StateWon        State = "won"
	StateLost       State = "lost"
)

// Terminal reports whether no further guesses are accepted.
func (s State) Terminal() bool { return s == StateWon || s == StateLost }

// Lexicon is the word list a Session validates guesses against and draws
// secrets from. Implementations hold uppercase words of a single length.
type Lexicon interface {
	Length() int
	Words() []string
	Contains(word string) bool
	// Validate normalizes raw input and returns the canonical word, or a
	// *Error of kind InvalidGuessLength, InvalidGuessChars or UnknownWord.
	Validate(raw string) (string, error)
}

// Tracker receives every evaluated guess. The auto-solver's constraint model
// implements it.
type Tracker interface {
	ApplyGuess(guess string, res Result)
	Reset()
}
