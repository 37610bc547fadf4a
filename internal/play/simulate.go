package play

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wrdl/internal/game"
	"github.com/robalobadob/wrdl/internal/solver"
)

// Summary totals a batch of solver-played games.
type Summary struct {
	Games      int
	Wins       int
	Losses     int
	Stuck      int // games aborted with NoPlausibleWords
	WinGuesses int // guesses summed over won games
	Scores     map[int]int
}

// AverageGuesses is the mean number of guesses over won games.
func (s Summary) AverageGuesses() float64 {
	if s.Wins == 0 {
		return 0
	}
	return float64(s.WinGuesses) / float64(s.Wins)
}

// Simulate autoplays n games on one board, resetting between games.
// A NoPlausibleWords failure is counted and the batch continues; any other
// error stops it.
func Simulate(ctx context.Context, g *Game, n int, strategy solver.Strategy) (Summary, error) {
	sum := Summary{Scores: make(map[int]int)}
	for i := 0; i < n; i++ {
		if i > 0 {
			g.Reset(g.cfg.Secret)
		}
		state, err := g.Autoplay(ctx, strategy)
		sum.Games++
		switch {
		case errors.Is(err, game.ErrNoPlausibleWords):
			sum.Stuck++
			log.Warn().Str("gameId", g.session.ID()).Str("secret", g.session.Secret()).Msg("solver ran out of plausible words")
			continue
		case err != nil:
			return sum, err
		}
		if state == game.StateWon {
			used := len(g.session.Guesses())
			sum.Wins++
			sum.WinGuesses += used
			sum.Scores[used]++
		} else {
			sum.Losses++
		}
	}
	return sum, nil
}
