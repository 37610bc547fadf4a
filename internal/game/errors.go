package game

import (
	"errors"
	"fmt"
)

// Kind classifies a game error.
type Kind string

const (
	KindInvalidGuessLength Kind = "invalid_guess_length"
	KindInvalidGuessChars  Kind = "invalid_guess_chars"
	KindUnknownWord        Kind = "unknown_word"
	KindAlreadyGuessed     Kind = "already_guessed"
	KindOutOfGuesses       Kind = "out_of_guesses"
	KindGameOver           Kind = "game_over"
	KindNoPlausibleWords   Kind = "no_plausible_words"
	KindNoSuchDictionary   Kind = "no_such_dictionary"
)

var defaultMessages = map[Kind]string{
	KindInvalidGuessLength: "Wrong length for a guess!",
	KindInvalidGuessChars:  "Guesses must be letters only.",
	KindUnknownWord:        "Unrecognized word.",
	KindAlreadyGuessed:     "Already guessed!",
	KindOutOfGuesses:       "Better luck next time!",
	KindGameOver:           "The puzzle is already solved.",
	KindNoPlausibleWords:   "No plausible words remain but the puzzle is unsolved.",
	KindNoSuchDictionary:   "No dictionary loaded for this word length.",
}

// Error is the tagged error type returned by the game, solver and words
// packages. Fields are structured so callers can format them as they like.
type Error struct {
	Kind   Kind
	Guess  string // offending guess, if any
	Length int    // length of the offending guess or requested dictionary
	Want   int    // expected length, for InvalidGuessLength
	Err    error  // underlying cause, e.g. a dictionary read failure
}

// Sentinels for errors.Is. Matching is by Kind only.
var (
	ErrInvalidGuessLength = &Error{Kind: KindInvalidGuessLength}
	ErrInvalidGuessChars  = &Error{Kind: KindInvalidGuessChars}
	ErrUnknownWord        = &Error{Kind: KindUnknownWord}
	ErrAlreadyGuessed     = &Error{Kind: KindAlreadyGuessed}
	ErrOutOfGuesses       = &Error{Kind: KindOutOfGuesses}
	ErrGameOver           = &Error{Kind: KindGameOver}
	ErrNoPlausibleWords   = &Error{Kind: KindNoPlausibleWords}
	ErrNoSuchDictionary   = &Error{Kind: KindNoSuchDictionary}
)

// Error implements the error interface
func (e *Error) Error() string {
	msg := defaultMessages[e.Kind]
	switch e.Kind {
	case KindInvalidGuessLength:
		if e.Want > 0 {
			msg = fmt.Sprintf("%s (%q has %d letters, want %d)", msg, e.Guess, e.Length, e.Want)
		}
	case KindNoSuchDictionary:
		if e.Length > 0 {
			msg = fmt.Sprintf("No dictionary loaded for %d-letter words.", e.Length)
		}
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

// Message returns the human-readable default message for the kind.
func (e *Error) Message() string { return defaultMessages[e.Kind] }

// Unwrap supports error unwrapping
func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// KindOf extracts the Kind from err, or "" if err is not a game error.
func KindOf(err error) Kind {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Kind
	}
	return ""
}

// IsInvalidGuess reports whether err rejects the guess itself
// (wrong length, non-letters, or not in the lexicon).
func IsInvalidGuess(err error) bool {
	switch KindOf(err) {
	case KindInvalidGuessLength, KindInvalidGuessChars, KindUnknownWord:
		return true
	}
	return false
}
