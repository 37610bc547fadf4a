package stats

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type StoreSuite struct {
	suite.Suite
	db    *sql.DB
	store *Store
	ctx   context.Context
	t0    time.Time
}

func (s *StoreSuite) SetupTest() {
	db, err := OpenDB(filepath.Join(s.T().TempDir(), "nested", "wrdl.db"))
	s.Require().NoError(err)
	s.Require().NoError(Migrate(db))
	s.db = db
	s.store = NewStore(db)
	s.ctx = context.Background()
	s.t0 = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
}

func (s *StoreSuite) TearDownTest() {
	s.Require().NoError(s.db.Close())
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) record(id, player string, guesses int, won bool, at time.Duration) {
	s.Require().NoError(s.store.RecordGame(s.ctx, Record{
		GameID:     id,
		PlayerID:   player,
		Length:     5,
		MaxGuesses: 6,
		Secret:     "SPILT",
		Guesses:    guesses,
		Won:        won,
		FinishedAt: s.t0.Add(at),
	}))
}

func (s *StoreSuite) TestMigrateIsIdempotent() {
	s.Require().NoError(Migrate(s.db))
	var n int
	s.Require().NoError(s.db.QueryRow(`SELECT COUNT(*) FROM _migrations`).Scan(&n))
	s.Equal(4, n)
}

func (s *StoreSuite) TestEmptySummary() {
	sum, err := s.store.Summary(s.ctx, "nobody")
	s.Require().NoError(err)
	s.Zero(sum.Completed)
	s.Zero(sum.WinRate())
	s.Empty(sum.Scores)
}

func (s *StoreSuite) TestSummaryStreaks() {
	// Inserted out of order; streaks follow finish time.
	s.record("g3", "p1", 6, false, 3*time.Hour)
	s.record("g1", "p1", 3, true, 1*time.Hour)
	s.record("g2", "p1", 4, true, 2*time.Hour)
	s.record("g4", "p1", 2, true, 4*time.Hour)
	s.record("g5", "p1", 3, true, 5*time.Hour)
	s.record("g6", "p1", 5, true, 6*time.Hour)
	s.record("x1", "p2", 1, true, 1*time.Hour)

	sum, err := s.store.Summary(s.ctx, "p1")
	s.Require().NoError(err)
	s.Equal(6, sum.Completed)
	s.Equal(5, sum.Wins)
	s.Equal(3, sum.Streak)
	s.Equal(3, sum.LongestStreak)
	s.Equal(map[int]int{2: 1, 3: 2, 4: 1, 5: 1}, sum.Scores)
	s.InDelta(83.33, sum.WinRate(), 0.01)
}

func (s *StoreSuite) TestRecordGameTwiceIsNoop() {
	s.record("g1", "p1", 3, true, 0)
	s.record("g1", "p1", 6, false, time.Hour)

	sum, err := s.store.Summary(s.ctx, "p1")
	s.Require().NoError(err)
	s.Equal(1, sum.Completed)
	s.Equal(1, sum.Wins)
}

func (s *StoreSuite) TestRecentNewestFirst() {
	s.record("g1", "p1", 3, true, 1*time.Hour)
	s.record("g2", "p1", 6, false, 2*time.Hour)
	s.record("g3", "p1", 4, true, 3*time.Hour)

	recs, err := s.store.Recent(s.ctx, "p1", 2)
	s.Require().NoError(err)
	s.Require().Len(recs, 2)
	s.Equal("g3", recs[0].GameID)
	s.Equal("g2", recs[1].GameID)
	s.False(recs[1].Won)
	s.Equal("interactive", recs[0].Mode)
	s.True(recs[0].FinishedAt.Equal(s.t0.Add(3 * time.Hour)))
}

func (s *StoreSuite) TestRecentKeepsHandle() {
	for i, id := range []string{"round-1", "round-2"} {
		s.Require().NoError(s.store.RecordGame(s.ctx, Record{
			GameID: id, Handle: "live-1", PlayerID: "p1", Length: 5, MaxGuesses: 6,
			Secret: "SPILT", Guesses: 3, Won: true, FinishedAt: s.t0.Add(time.Duration(i) * time.Hour),
		}))
	}
	s.record("cli-1", "p1", 2, true, 2*time.Hour)

	recs, err := s.store.Recent(s.ctx, "p1", 0)
	s.Require().NoError(err)
	s.Require().Len(recs, 3)
	s.Equal("", recs[0].Handle)
	s.Equal([]string{"round-2", "round-1"}, []string{recs[1].GameID, recs[2].GameID})
	s.Equal("live-1", recs[1].Handle)
	s.Equal("live-1", recs[2].Handle)
}

func (s *StoreSuite) TestClaimPlayer() {
	s.record("g1", "anon-1", 3, true, 0)
	s.record("g2", "user-1", 4, true, time.Hour)

	s.Require().NoError(s.store.ClaimPlayer(s.ctx, "anon-1", "user-1"))
	s.Require().NoError(s.store.ClaimPlayer(s.ctx, "", "user-1"))

	sum, err := s.store.Summary(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Equal(2, sum.Completed)

	sum, err = s.store.Summary(s.ctx, "anon-1")
	s.Require().NoError(err)
	s.Zero(sum.Completed)
}
