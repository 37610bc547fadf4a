// internal/solver/model.go
//
// Constraint-propagation model behind the auto-solver.
// Responsibilities:
//   - Hold, per board position, the set of letters still plausible there.
//   - Narrow those sets from evaluated guesses (one guess = one atomic batch).
//   - Enumerate lexicon words consistent with everything learned so far.
//   - Pick the next guess (uniform random, or highest letter-frequency score).
//
// Notes:
//   - Sets only ever shrink between Resets.
//   - Letters known to be in the secret somewhere are passed in by the caller
//     (the session derives them from its best-verdict map).
package solver

import (
	"errors"
	"math/rand"
	"strings"
	"time"

	"github.com/bits-and-blooms/bitset"

	"github.com/robalobadob/wrdl/internal/game"
)

const alphabet = 26

// ErrInvalidStrategy is returned when SelectGuess gets neither or an unknown strategy.
var ErrInvalidStrategy = errors.New("solver: strategy must be exactly one of random or best")

// Model tracks plausible letters per position for one game.
type Model struct {
	length    int
	lexicon   []string
	freq      [alphabet]int
	positions []*bitset.BitSet
	rng       *rand.Rand
}

// New builds a model for words of the given length over lexicon.
// Letter frequencies for BestScored are counted once here.
func New(length int, lexicon []string) *Model {
	m := &Model{
		length:  length,
		lexicon: lexicon,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, w := range lexicon {
		for i := 0; i < len(w); i++ {
			m.freq[w[i]-'A']++
		}
	}
	m.Reset()
	return m
}

// WithRand replaces the random source used by StrategyRandom.
func (m *Model) WithRand(r *rand.Rand) *Model {
	m.rng = r
	return m
}

// Reset restores every position to the full alphabet.
func (m *Model) Reset() {
	m.positions = make([]*bitset.BitSet, m.length)
	for i := range m.positions {
		b := bitset.New(alphabet)
		for c := uint(0); c < alphabet; c++ {
			b.Set(c)
		}
		m.positions[i] = b
	}
}

// Length is the board width.
func (m *Model) Length() int { return m.length }

// Apply folds a single verdict into the model:
//   - Exact:   position keeps only letter.
//   - Present: letter is removed at position.
//   - Absent:  letter is removed everywhere.
//
// Use ApplyGuess for a whole guess so repeated letters are handled together.
func (m *Model) Apply(position int, letter byte, v game.Verdict) {
	c := uint(letter - 'A')
	switch v {
	case game.VerdictExact:
		m.keepOnly(position, c)
	case game.VerdictPresent:
		m.positions[position].Clear(c)
	case game.VerdictAbsent:
		for _, b := range m.positions {
			b.Clear(c)
		}
	}
}

// ApplyGuess folds all verdicts of one guess into the model as a single batch.
// A letter is removed globally only if it is Absent at every position it
// occupies in guess; where it is Absent next to an Exact or Present copy it
// is only ruled out at the Absent position.
func (m *Model) ApplyGuess(guess string, res game.Result) {
	seen := bitset.New(alphabet)
	for i, v := range res {
		if v != game.VerdictAbsent {
			seen.Set(uint(guess[i] - 'A'))
		}
	}
	for i, v := range res {
		c := guess[i]
		if v == game.VerdictAbsent && seen.Test(uint(c-'A')) {
			m.positions[i].Clear(uint(c - 'A'))
			continue
		}
		m.Apply(i, c, v)
	}
}

// keepOnly intersects a position with {c}; an already excluded c stays excluded.
func (m *Model) keepOnly(position int, c uint) {
	only := bitset.New(alphabet).Set(c)
	m.positions[position].InPlaceIntersection(only)
}

// Plausible returns the letters still allowed at position, A..Z.
func (m *Model) Plausible(position int) string {
	var b strings.Builder
	for c, ok := m.positions[position].NextSet(0); ok; c, ok = m.positions[position].NextSet(c + 1) {
		b.WriteByte(byte('A' + c))
	}
	return b.String()
}

// Allows reports whether letter is still plausible at position.
func (m *Model) Allows(position int, letter byte) bool {
	return m.positions[position].Test(uint(letter - 'A'))
}

// PlausibleWords returns, in lexicon order, every word that fits each
// position's set and contains every required letter.
// It fails with NoPlausibleWords if nothing fits.
func (m *Model) PlausibleWords(required []byte) ([]string, error) {
	var out []string
	for _, w := range m.lexicon {
		if m.fits(w, required) {
			out = append(out, w)
		}
	}
	if len(out) == 0 {
		return nil, &game.Error{Kind: game.KindNoPlausibleWords, Length: m.length}
	}
	return out, nil
}

func (m *Model) fits(w string, required []byte) bool {
	if len(w) != m.length {
		return false
	}
	for i := 0; i < len(w); i++ {
		if !m.Allows(i, w[i]) {
			return false
		}
	}
	for _, c := range required {
		if strings.IndexByte(w, c) < 0 {
			return false
		}
	}
	return true
}

// Score sums the lexicon-wide frequency of each letter of word.
func (m *Model) Score(word string) int {
	s := 0
	for i := 0; i < len(word); i++ {
		s += m.freq[word[i]-'A']
	}
	return s
}

// SelectGuess picks the next guess among the plausible words.
func (m *Model) SelectGuess(required []byte, strategy Strategy) (string, error) {
	if !strategy.Valid() {
		return "", ErrInvalidStrategy
	}
	words, err := m.PlausibleWords(required)
	if err != nil {
		return "", err
	}
	if strategy == StrategyRandom {
		return words[m.rng.Intn(len(words))], nil
	}
	best, bestScore := words[0], m.Score(words[0])
	for _, w := range words[1:] {
		if s := m.Score(w); s > bestScore {
			best, bestScore = w, s
		}
	}
	return best, nil
}
