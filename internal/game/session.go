// internal/game/session.go
//
// A single Wrdl session.
// Responsibilities:
//   - Choose the secret (random, or forced for deterministic play).
//   - Validate guesses (lexicon rules, duplicates, terminal state) before any mutation.
//   - Grade guesses with Evaluate and hand the result to the Tracker.
//   - Track state transitions: playing → won/lost.
//
// Notes:
//   - The lexicon and tracker are interfaces; the words and solver packages
//     provide the production implementations.
//   - A Session is not safe for concurrent use; callers serialise access.
package game

import (
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

const defaultMaxGuesses = 6

// Session owns the secret word, guess history and best-verdict-per-letter map.
type Session struct {
	id         string
	lex        Lexicon
	tracker    Tracker
	rng        *rand.Rand
	maxGuesses int

	secret  string
	guesses []Guess
	letters map[byte]Verdict
	state   State
}

// Option configures a Session.
type Option func(*Session)

// WithMaxGuesses sets the guess budget. Values below 1 are raised to 1.
func WithMaxGuesses(n int) Option {
	return func(s *Session) {
		if n < 1 {
			n = 1
		}
		s.maxGuesses = n
	}
}

// WithTracker wires a constraint tracker that sees every evaluated guess.
func WithTracker(t Tracker) Option {
	return func(s *Session) { s.tracker = t }
}

// WithRand sets the source used for random secret selection.
func WithRand(r *rand.Rand) Option {
	return func(s *Session) { s.rng = r }
}

// WithSecret forces the secret word. The override is case-insensitive and is
// silently ignored if it is not a lexicon word of the right length.
func WithSecret(word string) Option {
	return func(s *Session) { s.secret = word }
}

// NewSession constructs a session over lex and picks its secret.
func NewSession(lex Lexicon, opts ...Option) *Session {
	s := &Session{lex: lex, maxGuesses: defaultMaxGuesses}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s.Reset(s.secret)
	return s
}

// Reset starts a new game: new secret (forced if valid, otherwise random),
// empty history, fresh tracker state.
func (s *Session) Reset(force string) {
	s.id = uuid.NewString()
	s.secret = ""
	if force != "" {
		if w := strings.ToUpper(strings.TrimSpace(force)); s.lex.Contains(w) {
			s.secret = w
		}
	}
	if s.secret == "" {
		words := s.lex.Words()
		s.secret = words[s.rng.Intn(len(words))]
	}
	s.guesses = nil
	s.letters = make(map[byte]Verdict)
	s.state = StateInProgress
	if s.tracker != nil {
		s.tracker.Reset()
	}
}

// SubmitGuess validates, grades and records a guess.
//
// Checks run in order and reject without touching state:
//   - session already won (GameOver) or lost (OutOfGuesses);
//   - lexicon validation (length, letters only, known word);
//   - duplicate of an earlier guess (AlreadyGuessed).
//
// The guess that uses up the budget without solving returns its result and a
// nil error; the session is then Lost.
func (s *Session) SubmitGuess(raw string) (Result, error) {
	switch s.state {
	case StateWon:
		return nil, &Error{Kind: KindGameOver, Guess: raw}
	case StateLost:
		return nil, &Error{Kind: KindOutOfGuesses, Guess: raw}
	}
	guess, err := s.lex.Validate(raw)
	if err != nil {
		return nil, err
	}
	for _, g := range s.guesses {
		if g.Word == guess {
			return nil, &Error{Kind: KindAlreadyGuessed, Guess: guess}
		}
	}

	res := Evaluate(s.secret, guess)
	if s.tracker != nil {
		s.tracker.ApplyGuess(guess, res)
	}
	s.guesses = append(s.guesses, Guess{Word: guess, Result: res})
	for i, v := range res {
		c := guess[i]
		if v.Rank() > s.letters[c].Rank() {
			s.letters[c] = v
		}
	}

	if res.Solved() {
		s.state = StateWon
	} else if len(s.guesses) >= s.maxGuesses {
		s.state = StateLost
	}
	return res, nil
}

// ID identifies the current game; it changes on Reset.
func (s *Session) ID() string { return s.id }

// State reports the lifecycle state.
func (s *Session) State() State { return s.state }

// Solved is true iff the latest guess evaluated to all Exact.
func (s *Session) Solved() bool {
	if len(s.guesses) == 0 {
		return false
	}
	return s.guesses[len(s.guesses)-1].Result.Solved()
}

// Secret reveals the answer.
func (s *Session) Secret() string { return s.secret }

// Length is the word length for this session.
func (s *Session) Length() int { return s.lex.Length() }

// MaxGuesses is the guess budget.
func (s *Session) MaxGuesses() int { return s.maxGuesses }

// Remaining is the number of guesses left in the budget.
func (s *Session) Remaining() int { return s.maxGuesses - len(s.guesses) }

// Guesses returns a copy of the guess history.
func (s *Session) Guesses() []Guess {
	out := make([]Guess, len(s.guesses))
	copy(out, s.guesses)
	return out
}

// GuessedLetters returns the best verdict seen so far for each guessed letter.
func (s *Session) GuessedLetters() map[byte]Verdict {
	out := make(map[byte]Verdict, len(s.letters))
	for c, v := range s.letters {
		out[c] = v
	}
	return out
}

// RequiredLetters lists, A..Z, the letters known to occur in the secret.
func (s *Session) RequiredLetters() []byte {
	var out []byte
	for c := byte('A'); c <= 'Z'; c++ {
		if v := s.letters[c]; v == VerdictPresent || v == VerdictExact {
			out = append(out, c)
		}
	}
	return out
}
