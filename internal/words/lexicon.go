package words

import (
	"sort"
	"strings"

	"github.com/robalobadob/wrdl/internal/game"
)

// Lexicon is an immutable set of uppercase words of one length.
// It satisfies game.Lexicon.
type Lexicon struct {
	length int
	list   []string
	set    map[string]struct{}
}

// NewLexicon builds a lexicon from list, keeping only normalized words of
// the given length. Order is sorted and duplicates are dropped.
func NewLexicon(length int, list []string) *Lexicon {
	l := &Lexicon{length: length, set: make(map[string]struct{}, len(list))}
	for _, raw := range list {
		w, ok := normalize(raw)
		if !ok || len(w) != length {
			continue
		}
		if _, dup := l.set[w]; dup {
			continue
		}
		l.set[w] = struct{}{}
		l.list = append(l.list, w)
	}
	sort.Strings(l.list)
	return l
}

// Length is the word length.
func (l *Lexicon) Length() int { return l.length }

// Words returns the words in sorted order. Callers must not modify it.
func (l *Lexicon) Words() []string { return l.list }

// Size is the number of words.
func (l *Lexicon) Size() int { return len(l.list) }

// Contains reports membership of an already normalized word.
func (l *Lexicon) Contains(w string) bool {
	_, ok := l.set[w]
	return ok
}

// Validate upper-cases and trims raw, then checks length, characters and
// membership, in that order.
func (l *Lexicon) Validate(raw string) (string, error) {
	w := strings.ToUpper(strings.TrimSpace(raw))
	if len(w) != l.length {
		return "", &game.Error{Kind: game.KindInvalidGuessLength, Guess: w, Length: len(w), Want: l.length}
	}
	if !isAlpha(w) {
		return "", &game.Error{Kind: game.KindInvalidGuessChars, Guess: w}
	}
	if !l.Contains(w) {
		return "", &game.Error{Kind: game.KindUnknownWord, Guess: w}
	}
	return w, nil
}
