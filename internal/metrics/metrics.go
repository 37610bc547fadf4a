package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the game.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	Guesses       *prometheus.CounterVec
	GamesFinished *prometheus.CounterVec
	AutoGuesses   *prometheus.CounterVec
	GuessesToWin  prometheus.Histogram
}

// New creates the metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Guesses: f.NewCounterVec(prometheus.CounterOpts{
			Name: "wrdl_guesses_total",
			Help: "Guesses submitted, by outcome (accepted or the rejection kind)",
		}, []string{"outcome"}),
		GamesFinished: f.NewCounterVec(prometheus.CounterOpts{
			Name: "wrdl_games_finished_total",
			Help: "Games that reached a terminal state, by result",
		}, []string{"result"}),
		AutoGuesses: f.NewCounterVec(prometheus.CounterOpts{
			Name: "wrdl_auto_guesses_total",
			Help: "Guesses chosen by the auto-solver, by strategy",
		}, []string{"strategy"}),
		GuessesToWin: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "wrdl_guesses_to_win",
			Help:    "Number of guesses taken in won games",
			Buckets: prometheus.LinearBuckets(1, 1, 10),
		}),
	}
}

// ObserveGuess counts a submission; outcome is "accepted" or an error kind.
func (m *Metrics) ObserveGuess(outcome string) {
	if m == nil {
		return
	}
	m.Guesses.WithLabelValues(outcome).Inc()
}

// ObserveFinish counts a finished game.
func (m *Metrics) ObserveFinish(won bool, guesses int) {
	if m == nil {
		return
	}
	if won {
		m.GamesFinished.WithLabelValues("won").Inc()
		m.GuessesToWin.Observe(float64(guesses))
		return
	}
	m.GamesFinished.WithLabelValues("lost").Inc()
}

// ObserveAutoGuess counts a solver-chosen guess.
func (m *Metrics) ObserveAutoGuess(strategy string) {
	if m == nil {
		return
	}
	m.AutoGuesses.WithLabelValues(strategy).Inc()
}
