// internal/play/game.go
//
// Game wires a session, its lexicon and the auto-solver together.
// Responsibilities:
//   - Clamp board dimensions and load the lexicon for the word length.
//   - Choose the secret: forced word, daily word, or random.
//   - Submit player guesses and solver guesses through one path.
//   - On a terminal state, record the game (best effort) and update metrics.
package play

import (
	"context"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wrdl/internal/daily"
	"github.com/robalobadob/wrdl/internal/game"
	"github.com/robalobadob/wrdl/internal/metrics"
	"github.com/robalobadob/wrdl/internal/solver"
	"github.com/robalobadob/wrdl/internal/stats"
	"github.com/robalobadob/wrdl/internal/words"
)

const (
	MinLength         = 2
	MaxLength         = 15
	DefaultLength     = 5
	DefaultMaxGuesses = 6
)

// Config describes one game.
type Config struct {
	Length     int
	MaxGuesses int
	Secret     string // forced secret; ignored unless a lexicon word
	Daily      bool   // use the word of the day for Date (or today)
	DailySalt  string
	Date       time.Time
	PlayerID   string
	Handle     string // caller's id for the game, recorded with every round
	Seed       int64  // 0 seeds from the clock
}

// Recorder persists finished games. *stats.Store implements it.
type Recorder interface {
	RecordGame(ctx context.Context, r stats.Record) error
}

// Option configures a Game.
type Option func(*Game)

func WithRecorder(r Recorder) Option { return func(g *Game) { g.recorder = r } }

func WithMetrics(m *metrics.Metrics) Option { return func(g *Game) { g.metrics = m } }

// WithLexicon bypasses words.Load; the lexicon's length wins over Config.Length.
func WithLexicon(l *words.Lexicon) Option { return func(g *Game) { g.lex = l } }

// Game is a single player's board plus solver.
type Game struct {
	cfg      Config
	lex      *words.Lexicon
	session  *game.Session
	model    *solver.Model
	recorder Recorder
	metrics  *metrics.Metrics

	dailyIndex int
	auto       bool
	recorded   bool
}

// New builds a game. It fails with NoSuchDictionary if no words exist for
// the (clamped) length, including an empty WithLexicon.
func New(cfg Config, opts ...Option) (*Game, error) {
	cfg.Length = clamp(cfg.Length, MinLength, MaxLength, DefaultLength)
	if cfg.MaxGuesses == 0 {
		cfg.MaxGuesses = DefaultMaxGuesses
	}
	if cfg.MaxGuesses < 1 {
		cfg.MaxGuesses = 1
	}
	g := &Game{cfg: cfg}
	for _, opt := range opts {
		opt(g)
	}
	if g.lex == nil {
		lex, err := words.Load(cfg.Length)
		if err != nil {
			return nil, err
		}
		g.lex = lex
	}
	if g.lex.Size() == 0 {
		return nil, &game.Error{Kind: game.KindNoSuchDictionary, Length: g.lex.Length()}
	}
	g.cfg.Length = g.lex.Length()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	g.model = solver.New(g.lex.Length(), g.lex.Words()).WithRand(rng)
	g.session = game.NewSession(g.lex,
		game.WithMaxGuesses(cfg.MaxGuesses),
		game.WithTracker(g.model),
		game.WithRand(rng),
		game.WithSecret(g.secretOverride(cfg.Secret)),
	)
	log.Debug().Str("gameId", g.session.ID()).Int("length", g.cfg.Length).
		Int("maxGuesses", g.cfg.MaxGuesses).Bool("daily", g.cfg.Daily).Msg("new game")
	return g, nil
}

// clamp bounds v to [lo, hi]; zero means def.
func clamp(v, lo, hi, def int) int {
	if v == 0 {
		return def
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// secretOverride resolves the forced or daily secret, "" for random.
func (g *Game) secretOverride(force string) string {
	if !g.cfg.Daily {
		return force
	}
	date := g.cfg.Date
	if date.IsZero() {
		date = time.Now()
	}
	w, i := daily.Word(date, g.cfg.DailySalt, g.lex.Words())
	g.dailyIndex = i
	return w
}

// Session exposes the underlying session for read access.
func (g *Game) Session() *game.Session { return g.session }

// Model exposes the solver's constraint model for read access.
func (g *Game) Model() *solver.Model { return g.model }

// Lexicon is the word list for this game.
func (g *Game) Lexicon() *words.Lexicon { return g.lex }

// Config returns the effective (clamped) configuration.
func (g *Game) Config() Config { return g.cfg }

// DailyIndex is the lexicon index of the daily word, when Daily is set.
func (g *Game) DailyIndex() int { return g.dailyIndex }

// Submit plays a raw guess.
func (g *Game) Submit(ctx context.Context, raw string) (game.Result, error) {
	res, err := g.session.SubmitGuess(raw)
	if err != nil {
		g.metrics.ObserveGuess(string(game.KindOf(err)))
		log.Debug().Err(err).Str("gameId", g.session.ID()).Str("guess", raw).Msg("guess rejected")
		return nil, err
	}
	g.metrics.ObserveGuess("accepted")
	log.Debug().Str("gameId", g.session.ID()).Str("guess", raw).Str("score", res.Score()).
		Str("state", string(g.session.State())).Msg("guess")
	if g.session.State().Terminal() {
		g.finish(ctx)
	}
	return res, nil
}

// Plausible lists the words still consistent with every guess so far.
func (g *Game) Plausible() ([]string, error) {
	return g.model.PlausibleWords(g.session.RequiredLetters())
}

// AutoGuess lets the solver choose and submit the next guess.
func (g *Game) AutoGuess(ctx context.Context, strategy solver.Strategy) (string, game.Result, error) {
	guess, err := g.model.SelectGuess(g.session.RequiredLetters(), strategy)
	if err != nil {
		return "", nil, err
	}
	g.auto = true
	g.metrics.ObserveAutoGuess(strategy.String())
	res, err := g.Submit(ctx, guess)
	return guess, res, err
}

// Autoplay runs the solver until the game is won or lost.
// The loop is bounded by the guess budget.
func (g *Game) Autoplay(ctx context.Context, strategy solver.Strategy) (game.State, error) {
	for !g.session.State().Terminal() {
		if err := ctx.Err(); err != nil {
			return g.session.State(), err
		}
		if _, _, err := g.AutoGuess(ctx, strategy); err != nil {
			return g.session.State(), err
		}
	}
	return g.session.State(), nil
}

// Reset starts a new game on the same board; force behaves like Config.Secret.
func (g *Game) Reset(force string) {
	g.session.Reset(g.secretOverride(force))
	g.auto = false
	g.recorded = false
}

func (g *Game) mode() string {
	switch {
	case g.cfg.Daily:
		return "daily"
	case g.auto:
		return "auto"
	}
	return "interactive"
}

// finish records a terminal game once.
func (g *Game) finish(ctx context.Context) {
	if g.recorded {
		return
	}
	g.recorded = true
	s := g.session
	won := s.State() == game.StateWon
	n := len(s.Guesses())
	g.metrics.ObserveFinish(won, n)
	log.Info().Str("gameId", s.ID()).Str("state", string(s.State())).Int("guesses", n).
		Str("mode", g.mode()).Msg("game finished")

	if g.recorder == nil {
		return
	}
	err := g.recorder.RecordGame(ctx, stats.Record{
		GameID:     s.ID(),
		Handle:     g.cfg.Handle,
		PlayerID:   g.cfg.PlayerID,
		Length:     s.Length(),
		MaxGuesses: s.MaxGuesses(),
		Secret:     s.Secret(),
		Guesses:    n,
		Won:        won,
		Mode:       g.mode(),
		FinishedAt: time.Now(),
	})
	if err != nil {
		log.Warn().Err(err).Str("gameId", s.ID()).Msg("record game")
	}
}
