package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wrdl/internal/config"
	"github.com/robalobadob/wrdl/internal/httpserver"
	"github.com/robalobadob/wrdl/internal/metrics"
	"github.com/robalobadob/wrdl/internal/play"
	"github.com/robalobadob/wrdl/internal/render"
	"github.com/robalobadob/wrdl/internal/solver"
	"github.com/robalobadob/wrdl/internal/stats"
	"github.com/robalobadob/wrdl/internal/store"
	"github.com/robalobadob/wrdl/internal/words"
)

type options struct {
	length      int
	maxGuesses  int
	demo        bool
	simulations int
	delay       time.Duration
	strategy    string
	word        string
	daily       bool
	serve       bool
	showStats   bool
	verbose     bool
	noRecord    bool
}

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()

	var o options
	flag.IntVar(&o.length, "l", cfg.Length, "word length (2-15)")
	flag.IntVar(&o.length, "length", cfg.Length, "word length (2-15)")
	flag.IntVar(&o.maxGuesses, "m", cfg.MaxGuesses, "maximum number of guesses")
	flag.IntVar(&o.maxGuesses, "max-guesses", cfg.MaxGuesses, "maximum number of guesses")
	flag.BoolVar(&o.demo, "d", false, "let the auto-solver play")
	flag.BoolVar(&o.demo, "demo", false, "let the auto-solver play")
	flag.IntVar(&o.simulations, "s", 1, "number of games to simulate in demo mode")
	flag.IntVar(&o.simulations, "simulations", 1, "number of games to simulate in demo mode")
	flag.DurationVar(&o.delay, "delay", 0, "pause between solver guesses in a single demo game")
	flag.StringVar(&o.strategy, "strategy", cfg.Strategy, "solver strategy: random or best")
	flag.StringVar(&o.word, "word", "", "force the secret word (ignored if not in the dictionary)")
	flag.BoolVar(&o.daily, "daily", false, "play the word of the day")
	flag.BoolVar(&o.serve, "serve", false, "run the HTTP API instead of the terminal game")
	flag.BoolVar(&o.showStats, "stats", false, "print statistics and exit")
	flag.BoolVar(&o.verbose, "v", false, "show the solver's plausible letters after each guess")
	flag.BoolVar(&o.noRecord, "no-record", false, "do not record games in the statistics database")
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "Wrdl: a small Wordle clone that can vary the board size somewhat.")
		flag.PrintDefaults()
		fmt.Fprintln(flag.CommandLine.Output(), "Enjoy Wrdl! :)")
	}
	flag.Parse()

	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if !o.serve {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}

	if err := words.Init(); err != nil {
		log.Fatal().Err(err).Msg("failed to load dictionary")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	if o.serve {
		db := mustOpenDB(cfg.DBPath)
		defer db.Close()
		srv := httpserver.New(httpserver.Deps{
			Config:   cfg,
			Store:    store.NewMemoryStore(),
			DB:       db,
			Metrics:  m,
			Gatherer: reg,
		})
		log.Info().Str("port", cfg.Port).Msg("starting wrdl server")
		if err := srv.Start(":" + cfg.Port); err != nil {
			log.Fatal().Err(err).Msg("server exited")
		}
		return
	}

	var st *stats.Store
	if !o.noRecord || o.showStats {
		db, err := openDB(cfg.DBPath)
		if err != nil {
			log.Warn().Err(err).Str("db", cfg.DBPath).Msg("statistics disabled")
		} else {
			defer db.Close()
			st = stats.NewStore(db)
		}
	}
	p := render.Stdout()

	if o.showStats {
		if st == nil {
			log.Fatal().Msg("statistics database unavailable")
		}
		sum, err := st.Summary(ctx, cfg.Player)
		if err != nil {
			log.Fatal().Err(err).Msg("read statistics")
		}
		p.Stats(sum)
		return
	}

	strategy, err := solver.ParseStrategy(o.strategy)
	if err != nil {
		log.Fatal().Err(err).Msg("bad strategy")
	}

	gameOpts := []play.Option{play.WithMetrics(m)}
	if st != nil && !o.noRecord {
		gameOpts = append(gameOpts, play.WithRecorder(st))
	}
	g, err := play.New(play.Config{
		Length:     o.length,
		MaxGuesses: o.maxGuesses,
		Secret:     o.word,
		Daily:      o.daily,
		DailySalt:  cfg.DailySalt,
		PlayerID:   cfg.Player,
	}, gameOpts...)
	if err != nil {
		log.Fatal().Err(err).Msg("start game")
	}

	c := &cli{game: g, printer: p, in: os.Stdin, out: os.Stdout, verbose: o.verbose, stats: st, player: cfg.Player}
	if o.demo {
		err = c.demo(ctx, strategy, o.simulations, o.delay)
	} else {
		err = c.interactive(ctx)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}
}

func openDB(path string) (*sql.DB, error) {
	db, err := stats.OpenDB(path)
	if err != nil {
		return nil, err
	}
	if err := stats.Migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func mustOpenDB(path string) *sql.DB {
	db, err := openDB(path)
	if err != nil {
		log.Fatal().Err(err).Str("db", path).Msg("open database")
	}
	return db
}
