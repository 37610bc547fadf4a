package daily

import (
	"context"
	"database/sql"
)

type Result struct {
	PlayerID  string `json:"playerId"`
	Date      string `json:"date"`
	Length    int    `json:"length"`
	WordIndex int    `json:"wordIndex"`
	Guesses   int    `json:"guesses"`
	ElapsedMs int    `json:"elapsedMs"`
	Won       bool   `json:"won"`
}

type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

func (s *Store) AlreadyPlayed(ctx context.Context, playerID, date string, length int) (bool, error) {
	var cnt int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM daily_results WHERE player_id=? AND date=? AND length=?",
		playerID, date, length,
	).Scan(&cnt)
	return cnt > 0, err
}

// InsertResult ignores a second result for the same player, date and length.
// Losses are stored too; they lock the day but stay off the leaderboard.
func (s *Store) InsertResult(ctx context.Context, r Result) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO daily_results(player_id, date, length, word_index, guesses, elapsed_ms, won)
		VALUES(?,?,?,?,?,?,?)`, r.PlayerID, r.Date, r.Length, r.WordIndex, r.Guesses, r.ElapsedMs, r.Won,
	)
	return err
}

type LBRow struct {
	PlayerID  string `json:"playerId"`
	Guesses   int    `json:"guesses"`
	ElapsedMs int    `json:"elapsedMs"`
}

func (s *Store) Leaderboard(ctx context.Context, date string, length, limit int) ([]LBRow, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT player_id, guesses, elapsed_ms
		FROM daily_results
		WHERE date=? AND length=? AND won=1
		ORDER BY guesses ASC, elapsed_ms ASC, created_at ASC
		LIMIT ?`, date, length, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []LBRow{}
	for rows.Next() {
		var r LBRow
		if err := rows.Scan(&r.PlayerID, &r.Guesses, &r.ElapsedMs); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
