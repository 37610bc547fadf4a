// internal/httpserver/routes_games.go
//
// Game endpoints, all under /games:
//   - POST /games                  → start a game (length, maxGuesses, optional forced answer)
//   - GET  /games/mine             → the player's finished games
//   - GET  /games/{id}             → board, keyboard letters and state
//   - POST /games/{id}/guesses     → submit a guess
//   - POST /games/{id}/auto        → let the solver guess (strategy random|best)
//   - GET  /games/{id}/plausible   → words still consistent with the board
//   - POST /games/{id}/reset       → new secret on the same board
//   - DELETE /games/{id}           → abandon the game
//
// Games live in the in-memory store; finished games are recorded in sqlite.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wrdl/internal/daily"
	"github.com/robalobadob/wrdl/internal/game"
	"github.com/robalobadob/wrdl/internal/play"
	"github.com/robalobadob/wrdl/internal/solver"
	"github.com/robalobadob/wrdl/internal/store"
)

func (s *Server) mountGames(r chi.Router) {
	r.Route("/games", func(r chi.Router) {
		r.Post("/", s.handleNewGame)
		r.Get("/mine", s.handleMyGames)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.withEntry(s.handleGetGame))
			r.Delete("/", s.withEntry(s.handleDeleteGame))
			r.Post("/guesses", s.withEntry(s.handleGuess))
			r.Post("/auto", s.withEntry(s.handleAuto))
			r.Get("/plausible", s.withEntry(s.handlePlausible))
			r.Post("/reset", s.withEntry(s.handleReset))
		})
	})
}

// newGameReq is the payload for POST /games.
type newGameReq struct {
	Length     int    `json:"length"`
	MaxGuesses int    `json:"maxGuesses"`
	Answer     string `json:"answer"` // optional fixed answer (testing)
}

// gameView is the read model for a game.
type gameView struct {
	GameID     string                  `json:"gameId"`
	Length     int                     `json:"length"`
	MaxGuesses int                     `json:"maxGuesses"`
	State      game.State              `json:"state"`
	Remaining  int                     `json:"remaining"`
	Guesses    []game.Guess            `json:"guesses"`
	Letters    map[string]game.Verdict `json:"letters"`
	Words      int                     `json:"words"` // lexicon size for this length
	Daily      bool                    `json:"daily,omitempty"`
	Answer     string                  `json:"answer,omitempty"` // only once finished
}

func view(id string, g *play.Game) gameView {
	s := g.Session()
	v := gameView{
		GameID:     id,
		Length:     s.Length(),
		MaxGuesses: s.MaxGuesses(),
		State:      s.State(),
		Remaining:  s.Remaining(),
		Guesses:    s.Guesses(),
		Letters:    make(map[string]game.Verdict),
		Words:      g.Lexicon().Size(),
		Daily:      g.Config().Daily,
	}
	for c, verdict := range s.GuessedLetters() {
		v.Letters[string(c)] = verdict
	}
	if s.State().Terminal() {
		v.Answer = s.Secret()
	}
	return v
}

// handleNewGame creates a game owned by the caller.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_json", err.Error())
			return
		}
	}
	s.startGame(w, r, play.Config{
		Length:     req.Length,
		MaxGuesses: req.MaxGuesses,
		Secret:     req.Answer,
	})
}

// startGame builds, stores and returns a new game for the calling player.
// It returns the game handle, or "" once an error response was written.
func (s *Server) startGame(w http.ResponseWriter, r *http.Request, cfg play.Config) string {
	owner := s.playerID(w, r)
	cfg.PlayerID = owner
	cfg.Handle = uuid.NewString()
	g, err := play.New(cfg, play.WithRecorder(s.stats), play.WithMetrics(s.metrics))
	if err != nil {
		writeGameError(w, err)
		return ""
	}
	if err := s.store.Save(r.Context(), cfg.Handle, &store.Entry{Owner: owner, Game: g, Started: time.Now()}); err != nil {
		log.Error().Err(err).Msg("save game")
		writeError(w, http.StatusInternalServerError, "save_failed", "")
		return ""
	}
	writeJSON(w, http.StatusCreated, view(cfg.Handle, g))
	return cfg.Handle
}

// entryHandler runs with the requested game locked.
type entryHandler func(w http.ResponseWriter, r *http.Request, id string, e *store.Entry)

// withEntry loads the game for {id}, checks ownership and serialises access.
func (s *Server) withEntry(h entryHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		e, err := s.store.Get(r.Context(), id)
		if err != nil || e.Owner != s.playerID(w, r) {
			writeError(w, http.StatusNotFound, "not_found", "no such game")
			return
		}
		e.Lock()
		defer e.Unlock()
		h(w, r, id, e)
	}
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request, id string, e *store.Entry) {
	writeJSON(w, http.StatusOK, view(id, e.Game))
}

// guessReq is the payload for POST /games/{id}/guesses.
type guessReq struct {
	Guess string `json:"guess"`
}

// guessRes is returned for player and solver guesses.
type guessRes struct {
	Guess     string      `json:"guess"`
	Verdicts  game.Result `json:"verdicts"`
	Score     string      `json:"score"` // per letter: 2 exact, 1 present, 0 absent
	State     game.State  `json:"state"`
	Remaining int         `json:"remaining"`
	Answer    string      `json:"answer,omitempty"`
}

func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request, id string, e *store.Entry) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", err.Error())
		return
	}
	res, err := e.Game.Submit(r.Context(), req.Guess)
	if err != nil {
		writeGameError(w, err)
		return
	}
	s.afterGuess(r, e)
	writeJSON(w, http.StatusOK, guessResult(e.Game, lastWord(e.Game), res))
}

// autoReq is the payload for POST /games/{id}/auto.
type autoReq struct {
	Strategy string `json:"strategy"`
}

func (s *Server) handleAuto(w http.ResponseWriter, r *http.Request, id string, e *store.Entry) {
	req := autoReq{Strategy: "random"}
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_json", err.Error())
			return
		}
	}
	strategy, err := solver.ParseStrategy(req.Strategy)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_strategy", err.Error())
		return
	}
	guess, res, err := e.Game.AutoGuess(r.Context(), strategy)
	if err != nil {
		writeGameError(w, err)
		return
	}
	s.afterGuess(r, e)
	writeJSON(w, http.StatusOK, guessResult(e.Game, guess, res))
}

func (s *Server) handlePlausible(w http.ResponseWriter, r *http.Request, id string, e *store.Entry) {
	limit := 50
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		limit = v
	}
	list, err := e.Game.Plausible()
	if err != nil {
		writeGameError(w, err)
		return
	}
	count := len(list)
	if len(list) > limit {
		list = list[:limit]
	}
	writeJSON(w, http.StatusOK, map[string]any{"count": count, "words": list})
}

// handleDeleteGame drops a live game. Finished games stay in the statistics.
// An unfinished daily game cannot be abandoned.
func (s *Server) handleDeleteGame(w http.ResponseWriter, r *http.Request, id string, e *store.Entry) {
	if e.Game.Config().Daily && !e.Game.Session().State().Terminal() {
		writeError(w, http.StatusConflict, "daily_locked", "the daily game must be finished")
		return
	}
	if err := s.store.Delete(r.Context(), id); err != nil {
		log.Error().Err(err).Msg("delete game")
		writeError(w, http.StatusInternalServerError, "delete_failed", "")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleReset draws a new secret on the same board. Daily games are one round only.
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request, id string, e *store.Entry) {
	if e.Game.Config().Daily {
		writeError(w, http.StatusConflict, "daily_locked", "daily games cannot be reset")
		return
	}
	e.Game.Reset("")
	e.Started = time.Now()
	writeJSON(w, http.StatusOK, view(id, e.Game))
}

// handleMyGames lists the caller's recorded games.
func (s *Server) handleMyGames(w http.ResponseWriter, r *http.Request) {
	recs, err := s.stats.Recent(r.Context(), s.playerID(w, r), 50)
	if err != nil {
		log.Error().Err(err).Msg("recent games")
		writeError(w, http.StatusInternalServerError, "db_error", "")
		return
	}
	type row struct {
		ID         string    `json:"id"`    // handle for GET /games/{id} when played over HTTP
		Round      string    `json:"round"` // changes on every reset
		Length     int       `json:"length"`
		Guesses    int       `json:"guesses"`
		Won        bool      `json:"won"`
		Mode       string    `json:"mode"`
		FinishedAt time.Time `json:"finishedAt"`
	}
	out := make([]row, 0, len(recs))
	for _, rec := range recs {
		id := rec.Handle
		if id == "" {
			id = rec.GameID
		}
		out = append(out, row{id, rec.GameID, rec.Length, rec.Guesses, rec.Won, rec.Mode, rec.FinishedAt})
	}
	writeJSON(w, http.StatusOK, out)
}

// handleStats returns the caller's aggregate statistics.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	sum, err := s.stats.Summary(r.Context(), s.playerID(w, r))
	if err != nil {
		log.Error().Err(err).Msg("stats summary")
		writeError(w, http.StatusInternalServerError, "db_error", "")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"completed":     sum.Completed,
		"wins":          sum.Wins,
		"streak":        sum.Streak,
		"longestStreak": sum.LongestStreak,
		"winRate":       sum.WinRate(),
		"scores":        sum.Scores,
	})
}

// afterGuess persists a daily result once a daily game is won or lost.
func (s *Server) afterGuess(r *http.Request, e *store.Entry) {
	g := e.Game
	if !g.Config().Daily || !g.Session().State().Terminal() {
		return
	}
	date := g.Config().Date
	if date.IsZero() {
		date = time.Now()
	}
	err := s.daily.InsertResult(r.Context(), daily.Result{
		PlayerID:  e.Owner,
		Date:      daily.DateKey(date),
		Length:    g.Session().Length(),
		WordIndex: g.DailyIndex(),
		Guesses:   len(g.Session().Guesses()),
		ElapsedMs: int(time.Since(e.Started).Milliseconds()),
		Won:       g.Session().State() == game.StateWon,
	})
	if err != nil {
		log.Warn().Err(err).Str("player", e.Owner).Msg("insert daily result")
	}
}

func lastWord(g *play.Game) string {
	gs := g.Session().Guesses()
	if len(gs) == 0 {
		return ""
	}
	return gs[len(gs)-1].Word
}

func guessResult(g *play.Game, guess string, res game.Result) guessRes {
	s := g.Session()
	out := guessRes{
		Guess:     guess,
		Verdicts:  res,
		Score:     res.Score(),
		State:     s.State(),
		Remaining: s.Remaining(),
	}
	if s.State().Terminal() {
		out.Answer = s.Secret()
	}
	return out
}

// writeGameError maps game error kinds to HTTP statuses.
func writeGameError(w http.ResponseWriter, err error) {
	var ge *game.Error
	if !errors.As(err, &ge) {
		log.Error().Err(err).Msg("game error")
		writeError(w, http.StatusInternalServerError, "internal", "")
		return
	}
	status := http.StatusInternalServerError
	switch {
	case game.IsInvalidGuess(ge):
		status = http.StatusUnprocessableEntity
	case ge.Kind == game.KindAlreadyGuessed, ge.Kind == game.KindOutOfGuesses, ge.Kind == game.KindGameOver:
		status = http.StatusConflict
	case ge.Kind == game.KindNoSuchDictionary:
		status = http.StatusBadRequest
	case ge.Kind == game.KindNoPlausibleWords:
		log.Error().Err(err).Msg("solver inconsistent with lexicon")
	}
	writeError(w, status, string(ge.Kind), ge.Message())
}
