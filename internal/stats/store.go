package stats

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// timeLayout is fixed-width so finished_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// Record is one finished game.
type Record struct {
	GameID     string // one round; a reset starts a new one
	Handle     string // live-game id from the HTTP API, empty elsewhere
	PlayerID   string
	Length     int
	MaxGuesses int
	Secret     string
	Guesses    int
	Won        bool
	Mode       string // interactive | auto | daily
	FinishedAt time.Time
}

// Summary aggregates a player's finished games.
type Summary struct {
	Completed     int         `json:"completed"`
	Wins          int         `json:"wins"`
	Streak        int         `json:"streak"`
	LongestStreak int         `json:"longestStreak"`
	Scores        map[int]int `json:"scores"` // guesses taken → number of wins
}

// WinRate is wins over completed games in percent, 0 when nothing was played.
func (s Summary) WinRate() float64 {
	if s.Completed == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Completed) * 100
}

// Store persists finished games in the games table.
type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// RecordGame inserts a finished game. Recording the same game ID twice is a no-op.
func (s *Store) RecordGame(ctx context.Context, r Record) error {
	if r.Mode == "" {
		r.Mode = "interactive"
	}
	if r.FinishedAt.IsZero() {
		r.FinishedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx, `
        INSERT OR IGNORE INTO games
            (id, handle, player_id, length, max_guesses, secret, guesses, won, mode, finished_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.GameID, r.Handle, r.PlayerID, r.Length, r.MaxGuesses, r.Secret, r.Guesses, r.Won, r.Mode,
		r.FinishedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("record game %s: %w", r.GameID, err)
	}
	return nil
}

// Summary walks a player's games oldest first and derives the streaks.
func (s *Store) Summary(ctx context.Context, playerID string) (Summary, error) {
	out := Summary{Scores: make(map[int]int)}
	rows, err := s.db.QueryContext(ctx, `
        SELECT guesses, won
        FROM games
        WHERE player_id=?
        ORDER BY finished_at ASC, rowid ASC`, playerID)
	if err != nil {
		return out, fmt.Errorf("query games: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var guesses int
		var won bool
		if err := rows.Scan(&guesses, &won); err != nil {
			return out, err
		}
		out.Completed++
		if won {
			out.Wins++
			out.Streak++
			out.Scores[guesses]++
			if out.Streak > out.LongestStreak {
				out.LongestStreak = out.Streak
			}
		} else {
			out.Streak = 0
		}
	}
	return out, rows.Err()
}

// Recent lists a player's latest games, newest first.
func (s *Store) Recent(ctx context.Context, playerID string, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, handle, length, max_guesses, secret, guesses, won, mode, finished_at
        FROM games
        WHERE player_id=?
        ORDER BY finished_at DESC
        LIMIT ?`, playerID, limit)
	if err != nil {
		return nil, fmt.Errorf("query games: %w", err)
	}
	defer rows.Close()

	out := make([]Record, 0, limit)
	for rows.Next() {
		r := Record{PlayerID: playerID}
		var finished string
		if err := rows.Scan(&r.GameID, &r.Handle, &r.Length, &r.MaxGuesses, &r.Secret, &r.Guesses, &r.Won, &r.Mode, &finished); err != nil {
			return nil, err
		}
		r.FinishedAt, _ = time.Parse(timeLayout, finished)
		out = append(out, r)
	}
	return out, rows.Err()
}

// ClaimPlayer moves games recorded under one player ID to another, used when
// an anonymous player signs in.
func (s *Store) ClaimPlayer(ctx context.Context, from, to string) error {
	if from == "" || to == "" || from == to {
		return nil
	}
	_, err := s.db.ExecContext(ctx, `UPDATE games SET player_id=? WHERE player_id=?`, to, from)
	return err
}
