package game_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/robalobadob/wrdl/internal/game"
	"github.com/robalobadob/wrdl/internal/words"
)

var fiveLetter = []string{"bloom", "cheat", "crane", "ozone", "spilt", "thick", "throw", "split"}

// recordingTracker captures what a Session feeds its tracker.
type recordingTracker struct {
	applied []string
	resets  int
}

func (r *recordingTracker) ApplyGuess(guess string, _ game.Result) { r.applied = append(r.applied, guess) }
func (r *recordingTracker) Reset()                                 { r.resets++ }

type SessionSuite struct {
	suite.Suite
	lex     *words.Lexicon
	tracker *recordingTracker
	s       *game.Session
}

func (ts *SessionSuite) SetupTest() {
	ts.lex = words.NewLexicon(5, fiveLetter)
	ts.tracker = &recordingTracker{}
	ts.s = game.NewSession(ts.lex,
		game.WithSecret("spilt"),
		game.WithTracker(ts.tracker),
		game.WithRand(rand.New(rand.NewSource(1))),
	)
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionSuite))
}

func (ts *SessionSuite) TestFreshSession() {
	ts.Equal("SPILT", ts.s.Secret())
	ts.Equal(game.StateInProgress, ts.s.State())
	ts.Equal(5, ts.s.Length())
	ts.Equal(6, ts.s.MaxGuesses())
	ts.Equal(6, ts.s.Remaining())
	ts.Empty(ts.s.Guesses())
	ts.False(ts.s.Solved())
	ts.NotEmpty(ts.s.ID())
	ts.Equal(1, ts.tracker.resets)
}

func (ts *SessionSuite) TestSubmitRecordsAndTracks() {
	res, err := ts.s.SubmitGuess(" thick ")
	ts.Require().NoError(err)
	ts.Equal(game.Result{game.VerdictPresent, game.VerdictAbsent, game.VerdictExact, game.VerdictAbsent, game.VerdictAbsent}, res)

	ts.Equal([]string{"THICK"}, ts.tracker.applied)
	ts.Require().Len(ts.s.Guesses(), 1)
	ts.Equal("THICK", ts.s.Guesses()[0].Word)
	ts.Equal(5, ts.s.Remaining())
	ts.Equal(game.StateInProgress, ts.s.State())

	letters := ts.s.GuessedLetters()
	ts.Equal(game.VerdictPresent, letters['T'])
	ts.Equal(game.VerdictExact, letters['I'])
	ts.Equal(game.VerdictAbsent, letters['H'])
	ts.Equal([]byte("IT"), ts.s.RequiredLetters())
}

func (ts *SessionSuite) TestBestVerdictNeverDowngrades() {
	// SPLIT puts T and I exact; THICK afterwards reports T present, I exact.
	_, err := ts.s.SubmitGuess("split")
	ts.Require().NoError(err)
	ts.Equal(game.VerdictExact, ts.s.GuessedLetters()['T'])

	_, err = ts.s.SubmitGuess("thick")
	ts.Require().NoError(err)
	ts.Equal(game.VerdictExact, ts.s.GuessedLetters()['T'])
}

func (ts *SessionSuite) TestAlreadyGuessed() {
	_, err := ts.s.SubmitGuess("thick")
	ts.Require().NoError(err)

	_, err = ts.s.SubmitGuess("THICK")
	ts.ErrorIs(err, game.ErrAlreadyGuessed)
	ts.Len(ts.s.Guesses(), 1)
	ts.Len(ts.tracker.applied, 1)
}

func (ts *SessionSuite) TestInvalidGuessLeavesStateUntouched() {
	for raw, want := range map[string]error{
		"spil":   game.ErrInvalidGuessLength,
		"spilts": game.ErrInvalidGuessLength,
		"sp1lt":  game.ErrInvalidGuessChars,
		"aaaaa":  game.ErrUnknownWord,
	} {
		_, err := ts.s.SubmitGuess(raw)
		ts.ErrorIs(err, want, raw)
		ts.True(game.IsInvalidGuess(err), raw)
	}
	ts.Empty(ts.s.Guesses())
	ts.Empty(ts.s.GuessedLetters())
	ts.Empty(ts.tracker.applied)
	ts.Equal(game.StateInProgress, ts.s.State())
}

func (ts *SessionSuite) TestWinThenGameOver() {
	res, err := ts.s.SubmitGuess("spilt")
	ts.Require().NoError(err)
	ts.True(res.Solved())
	ts.True(ts.s.Solved())
	ts.Equal(game.StateWon, ts.s.State())

	_, err = ts.s.SubmitGuess("thick")
	ts.ErrorIs(err, game.ErrGameOver)
	ts.Len(ts.s.Guesses(), 1)
}

func (ts *SessionSuite) TestLossAfterBudget() {
	s := game.NewSession(ts.lex, game.WithSecret("SPILT"), game.WithMaxGuesses(2))

	_, err := s.SubmitGuess("thick")
	ts.Require().NoError(err)
	res, err := s.SubmitGuess("bloom")
	ts.Require().NoError(err, "the exhausting guess still returns its result")
	ts.Len(res, 5)
	ts.Equal(game.StateLost, s.State())
	ts.Equal(0, s.Remaining())

	_, err = s.SubmitGuess("crane")
	ts.ErrorIs(err, game.ErrOutOfGuesses)
	ts.Len(s.Guesses(), 2)
}

func (ts *SessionSuite) TestResetClearsEverything() {
	_, err := ts.s.SubmitGuess("thick")
	ts.Require().NoError(err)
	oldID := ts.s.ID()

	ts.s.Reset("BLOOM")
	ts.Equal("BLOOM", ts.s.Secret())
	ts.NotEqual(oldID, ts.s.ID())
	ts.Empty(ts.s.Guesses())
	ts.Empty(ts.s.GuessedLetters())
	ts.Equal(game.StateInProgress, ts.s.State())
	ts.Equal(2, ts.tracker.resets)
}

func (ts *SessionSuite) TestForcedSecretFallsBackSilently() {
	ts.s.Reset("zzzzz")
	ts.Contains(ts.lex.Words(), ts.s.Secret())

	ts.s.Reset("toolong")
	ts.Contains(ts.lex.Words(), ts.s.Secret())
}

func TestMaxGuessesFloor(t *testing.T) {
	lex := words.NewLexicon(5, fiveLetter)
	s := game.NewSession(lex, game.WithMaxGuesses(0))
	assert.Equal(t, 1, s.MaxGuesses())
}

func TestRandomSecretIsSeeded(t *testing.T) {
	lex := words.NewLexicon(5, fiveLetter)
	a := game.NewSession(lex, game.WithRand(rand.New(rand.NewSource(42))))
	b := game.NewSession(lex, game.WithRand(rand.New(rand.NewSource(42))))
	require.Contains(t, lex.Words(), a.Secret())
	assert.Equal(t, a.Secret(), b.Secret())
}

func TestErrorKinds(t *testing.T) {
	err := &game.Error{Kind: game.KindInvalidGuessLength, Guess: "AB", Length: 2, Want: 5}
	assert.True(t, errors.Is(err, game.ErrInvalidGuessLength))
	assert.False(t, errors.Is(err, game.ErrUnknownWord))
	assert.Equal(t, game.KindInvalidGuessLength, game.KindOf(err))
	assert.Contains(t, err.Error(), `"AB" has 2 letters, want 5`)
	assert.Equal(t, "Wrong length for a guess!", err.Message())

	cause := errors.New("disk on fire")
	wrapped := &game.Error{Kind: game.KindNoSuchDictionary, Length: 7, Err: cause}
	assert.ErrorIs(t, wrapped, cause)
	assert.Equal(t, "No dictionary loaded for 7-letter words.: disk on fire", wrapped.Error())

	assert.Equal(t, game.Kind(""), game.KindOf(cause))
	assert.False(t, game.IsInvalidGuess(game.ErrAlreadyGuessed))
}
