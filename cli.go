package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wrdl/internal/game"
	"github.com/robalobadob/wrdl/internal/play"
	"github.com/robalobadob/wrdl/internal/render"
	"github.com/robalobadob/wrdl/internal/solver"
	"github.com/robalobadob/wrdl/internal/stats"
)

// cli drives a game from a terminal.
type cli struct {
	game    *play.Game
	printer *render.Printer
	in      io.Reader
	out     io.Writer
	verbose bool
	stats   *stats.Store // nil when statistics are disabled
	player  string
}

// interactive reads guesses line by line until the player declines another
// round or input ends.
func (c *cli) interactive(ctx context.Context) error {
	sc := bufio.NewScanner(c.in)
	for {
		s := c.game.Session()
		c.printer.Board(s)
		for !s.State().Terminal() {
			fmt.Fprintf(c.out, "Enter a %d-letter guess: ", s.Length())
			if !sc.Scan() {
				fmt.Fprintln(c.out)
				fmt.Fprintln(c.out, "Game ended prematurely. Thanks for playing!")
				return sc.Err()
			}
			fmt.Fprintln(c.out)
			if _, err := c.game.Submit(ctx, sc.Text()); err != nil {
				c.printer.Problem(err)
				continue
			}
			c.printer.Board(s)
			if c.verbose {
				c.printer.Model(c.game.Model())
			}
		}
		c.finish(ctx)

		fmt.Fprint(c.out, "Play again? (Y/n) - ")
		if !sc.Scan() || strings.EqualFold(strings.TrimSpace(sc.Text()), "n") {
			fmt.Fprintln(c.out, "Thanks for playing Wrdl!")
			return sc.Err()
		}
		c.game.Reset("")
	}
}

// demo lets the solver play. A single game is drawn guess by guess; more
// than one is simulated and summarised.
func (c *cli) demo(ctx context.Context, strategy solver.Strategy, simulations int, delay time.Duration) error {
	if simulations > 1 {
		sum, err := play.Simulate(ctx, c.game, simulations, strategy)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.out, "Simulated %d games with the %s strategy.\n", sum.Games, strategy)
		fmt.Fprintf(c.out, "Won %d, lost %d, stuck %d. Average guesses per win: %.2f\n",
			sum.Wins, sum.Losses, sum.Stuck, sum.AverageGuesses())
		return nil
	}

	s := c.game.Session()
	c.printer.Board(s)
	for !s.State().Terminal() {
		if delay > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
		guess, _, err := c.game.AutoGuess(ctx, strategy)
		if err != nil {
			return err
		}
		log.Debug().Str("guess", guess).Msg("solver guess")
		c.printer.Board(s)
		if c.verbose {
			c.printer.Model(c.game.Model())
		}
	}
	c.finish(ctx)
	return nil
}

// finish prints the outcome and, when available, the running statistics.
func (c *cli) finish(ctx context.Context) {
	s := c.game.Session()
	if s.State() == game.StateWon {
		c.printer.Win(len(s.Guesses()))
	} else {
		c.printer.Problem(game.ErrOutOfGuesses)
		c.printer.Answer(s.Secret())
	}
	if c.stats == nil {
		return
	}
	sum, err := c.stats.Summary(ctx, c.player)
	if err != nil {
		log.Warn().Err(err).Msg("read statistics")
		return
	}
	c.printer.Stats(sum)
}
