package game_day

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/KirkDiggler/gameday/internal/models"
	"github.com/stretchr/testify/suite"
)

type SQLiteRepositoryTestSuite struct {
	suite.Suite
	repo    Repository
	ctx     context.Context
	testNow time.Time
}

func (s *SQLiteRepositoryTestSuite) SetupTest() {
	db, err := OpenSQLite(":memory:")
	s.Require().NoError(err)

	repo, err := NewSQLite(&SQLiteConfig{DB: db})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
	s.testNow = time.Date(2025, 10, 12, 10, 0, 0, 0, time.UTC)
}

func TestSQLiteRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SQLiteRepositoryTestSuite))
}

func (s *SQLiteRepositoryTestSuite) TestDailyStateUpsert() {
	state := &models.DailyGameState{
		UserID:        "test-user-id",
		Date:          "2025-10-12",
		Intake:        map[models.Category]int{models.CategoryFluids: 300},
		FieldPosition: 44,
		Down:          3,
		YardsToGo:     2,
		UpdatedAt:     s.testNow,
	}
	s.Require().NoError(s.repo.SaveDailyState(s.ctx, &SaveDailyStateInput{State: state}))

	state.Intake[models.CategoryFluids] = 600
	state.Down = 1
	s.Require().NoError(s.repo.SaveDailyState(s.ctx, &SaveDailyStateInput{State: state}))

	got, err := s.repo.GetDailyState(s.ctx, &GetDailyStateInput{UserID: "test-user-id", Date: "2025-10-12"})
	s.Require().NoError(err)
	s.Equal(600, got.Intake[models.CategoryFluids])
	s.Equal(1, got.Down)
	s.Equal(44.0, got.FieldPosition)
}

func (s *SQLiteRepositoryTestSuite) TestGetLatestDailyState() {
	for _, date := range []string{"2025-10-11", "2025-10-13", "2025-10-12"} {
		state := &models.DailyGameState{UserID: "test-user-id", Date: date, Down: 1}
		s.Require().NoError(s.repo.SaveDailyState(s.ctx, &SaveDailyStateInput{State: state}))
	}

	latest, err := s.repo.GetLatestDailyState(s.ctx, &GetLatestDailyStateInput{UserID: "test-user-id"})
	s.Require().NoError(err)
	s.Equal("2025-10-13", latest.Date)
	s.NotNil(latest.Intake)

	_, err = s.repo.GetLatestDailyState(s.ctx, &GetLatestDailyStateInput{UserID: "nobody"})
	s.ErrorIs(err, ErrDailyStateNotFound)
}

func (s *SQLiteRepositoryTestSuite) TestSeasonHistory() {
	_, err := s.repo.GetSeasonHistory(s.ctx, &GetSeasonHistoryInput{UserID: "test-user-id"})
	s.ErrorIs(err, ErrSeasonHistoryNotFound)

	history := &models.SeasonHistory{
		UserID:  "test-user-id",
		Records: []*models.GameRecord{{Date: "2025-10-11", OffenseScore: 21, Winner: models.TeamOffense}},
	}
	s.Require().NoError(s.repo.SaveSeasonHistory(s.ctx, &SaveSeasonHistoryInput{History: history}))

	history.Records = append(history.Records, &models.GameRecord{Date: "2025-10-12", DefenseScore: 7, Winner: models.TeamDefense})
	s.Require().NoError(s.repo.SaveSeasonHistory(s.ctx, &SaveSeasonHistoryInput{History: history}))

	got, err := s.repo.GetSeasonHistory(s.ctx, &GetSeasonHistoryInput{UserID: "test-user-id"})
	s.Require().NoError(err)
	s.Len(got.Records, 2)
}

func TestOpenSQLiteCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "cache.db")

	db, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	if _, err := NewSQLite(&SQLiteConfig{DB: db}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
}
