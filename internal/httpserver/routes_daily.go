// internal/httpserver/routes_daily.go
//
// HTTP routes for the "Daily" mode.
// Exposes two endpoints under /daily:
//   - POST /daily/new         → start today's game for a word length
//   - GET  /daily/leaderboard → top 20 results for today (or a given date)
//
// Guesses go through the regular /games/{id}/guesses route. Each player gets
// one daily game per date and length: /daily/new hands back the live game
// while it is unfinished, and the recorded result (won or lost) locks the day.
// Deterministic word selection is based on date + salt.

package httpserver

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wrdl/internal/daily"
	"github.com/robalobadob/wrdl/internal/play"
)

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	r.Route("/daily", func(r chi.Router) {
		r.Post("/new", s.handleDailyNew)
		r.Get("/leaderboard", s.handleLeaderboard)
	})
}

type dailyNewReq struct {
	Length int `json:"length"`
}

// handleDailyNew starts today's game, or returns the one already in progress,
// unless the player already has a result.
func (s *Server) handleDailyNew(w http.ResponseWriter, r *http.Request) {
	req := dailyNewReq{Length: play.DefaultLength}
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_json", err.Error())
			return
		}
	}
	if req.Length < play.MinLength || req.Length > play.MaxLength {
		req.Length = play.DefaultLength
	}
	now := time.Now().UTC()
	date := daily.DateKey(now)
	player := s.playerID(w, r)

	played, err := s.daily.AlreadyPlayed(r.Context(), player, date, req.Length)
	if err != nil {
		log.Error().Err(err).Msg("daily already played")
		writeError(w, http.StatusInternalServerError, "db_error", "")
		return
	}
	if played {
		writeJSON(w, http.StatusOK, map[string]any{"date": date, "played": true})
		return
	}

	key := player + "|" + date + "|" + strconv.Itoa(req.Length)
	s.dailyMu.Lock()
	defer s.dailyMu.Unlock()
	if id, ok := s.dailyLive[key]; ok {
		if e, err := s.store.Get(r.Context(), id); err == nil && e.Owner == player {
			e.Lock()
			v := view(id, e.Game)
			e.Unlock()
			writeJSON(w, http.StatusOK, v)
			return
		}
		delete(s.dailyLive, key)
	}
	s.pruneDaily(date)
	id := s.startGame(w, r, play.Config{
		Length:    req.Length,
		Daily:     true,
		DailySalt: s.cfg.DailySalt,
		Date:      now,
	})
	if id != "" {
		s.dailyLive[key] = id
	}
}

// pruneDaily forgets live daily games from other dates. Callers hold dailyMu.
func (s *Server) pruneDaily(date string) {
	for key := range s.dailyLive {
		if !strings.Contains(key, "|"+date+"|") {
			delete(s.dailyLive, key)
		}
	}
}

// lbRes is returned by /daily/leaderboard.
type lbRes struct {
	Date   string        `json:"date"`
	Length int           `json:"length"`
	Top    []daily.LBRow `json:"top"`
}

// handleLeaderboard returns the leaderboard for ?date= (default today) and ?length=.
func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = daily.DateKey(time.Now())
	}
	length := play.DefaultLength
	if v, err := strconv.Atoi(r.URL.Query().Get("length")); err == nil {
		length = v
	}
	rows, err := s.daily.Leaderboard(r.Context(), date, length, 20)
	if err != nil {
		log.Error().Err(err).Msg("daily leaderboard")
		writeError(w, http.StatusInternalServerError, "db_error", "")
		return
	}
	writeJSON(w, http.StatusOK, lbRes{Date: date, Length: length, Top: rows})
}
