package game_day

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/gameday/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	ctx     context.Context
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
	s.testNow = time.Date(2025, 10, 12, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) newState(date string) *models.DailyGameState {
	return &models.DailyGameState{
		UserID:         "test-user-id",
		Date:           date,
		Intake:         map[models.Category]int{models.CategoryFluids: 500, models.CategoryAntacid: 1},
		OffenseScore:   14,
		GoalsCompleted: []models.Category{models.CategoryAntacid},
		FieldPosition:  42.5,
		Down:           2,
		YardsToGo:      3.5,
		TotalYards:     45,
		Plays: []*models.Play{
			{ID: "test-play-id", Category: models.CategoryFluids, YardsGained: 40, IsTouchdown: true, PaceModifier: 1.2, Timestamp: s.testNow},
		},
		UpdatedAt: s.testNow,
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetDailyState() {
	err := s.repo.SaveDailyState(s.ctx, &SaveDailyStateInput{State: s.newState("2025-10-12")})
	s.Require().NoError(err)

	state, err := s.repo.GetDailyState(s.ctx, &GetDailyStateInput{UserID: "test-user-id", Date: "2025-10-12"})
	s.Require().NoError(err)

	s.Equal("2025-10-12", state.Date)
	s.Equal(500, state.Intake[models.CategoryFluids])
	s.Equal(14, state.OffenseScore)
	s.Equal([]models.Category{models.CategoryAntacid}, state.GoalsCompleted)
	s.Equal(42.5, state.FieldPosition)
	s.Equal(2, state.Down)
	s.Equal(3.5, state.YardsToGo)
	s.Require().Len(state.Plays, 1)
	s.True(state.Plays[0].IsTouchdown)
	s.Equal(s.testNow.Unix(), state.Plays[0].Timestamp.Unix())
}

func (s *RedisRepositoryTestSuite) TestSaveOverwritesSameDay() {
	state := s.newState("2025-10-12")
	s.Require().NoError(s.repo.SaveDailyState(s.ctx, &SaveDailyStateInput{State: state}))

	state.OffenseScore = 21
	s.Require().NoError(s.repo.SaveDailyState(s.ctx, &SaveDailyStateInput{State: state}))

	got, err := s.repo.GetDailyState(s.ctx, &GetDailyStateInput{UserID: "test-user-id", Date: "2025-10-12"})
	s.Require().NoError(err)
	s.Equal(21, got.OffenseScore)
}

func (s *RedisRepositoryTestSuite) TestGetDailyStateNotFound() {
	_, err := s.repo.GetDailyState(s.ctx, &GetDailyStateInput{UserID: "test-user-id", Date: "2025-10-12"})
	s.ErrorIs(err, ErrDailyStateNotFound)
}

func (s *RedisRepositoryTestSuite) TestGetLatestDailyState() {
	for _, date := range []string{"2025-10-10", "2025-10-12", "2025-10-11"} {
		s.Require().NoError(s.repo.SaveDailyState(s.ctx, &SaveDailyStateInput{State: s.newState(date)}))
	}

	latest, err := s.repo.GetLatestDailyState(s.ctx, &GetLatestDailyStateInput{UserID: "test-user-id"})
	s.Require().NoError(err)
	s.Equal("2025-10-12", latest.Date)

	_, err = s.repo.GetLatestDailyState(s.ctx, &GetLatestDailyStateInput{UserID: "someone-else"})
	s.ErrorIs(err, ErrDailyStateNotFound)
}

func (s *RedisRepositoryTestSuite) TestSeasonHistoryRoundTrip() {
	_, err := s.repo.GetSeasonHistory(s.ctx, &GetSeasonHistoryInput{UserID: "test-user-id"})
	s.ErrorIs(err, ErrSeasonHistoryNotFound)

	history := &models.SeasonHistory{
		UserID: "test-user-id",
		Records: []*models.GameRecord{
			{Date: "2025-10-10", OffenseScore: 14, DefenseScore: 7, Winner: models.TeamOffense, TotalYards: 80, PlayCount: 6},
			{Date: "2025-10-11", OffenseScore: 0, DefenseScore: 7, Winner: models.TeamDefense},
		},
		UpdatedAt: s.testNow,
	}
	s.Require().NoError(s.repo.SaveSeasonHistory(s.ctx, &SaveSeasonHistoryInput{History: history}))

	got, err := s.repo.GetSeasonHistory(s.ctx, &GetSeasonHistoryInput{UserID: "test-user-id"})
	s.Require().NoError(err)
	s.Require().Len(got.Records, 2)
	s.Equal(models.TeamDefense, got.Records[1].Winner)

	// a reset writes an empty history
	s.Require().NoError(s.repo.SaveSeasonHistory(s.ctx, &SaveSeasonHistoryInput{History: &models.SeasonHistory{UserID: "test-user-id"}}))
	got, err = s.repo.GetSeasonHistory(s.ctx, &GetSeasonHistoryInput{UserID: "test-user-id"})
	s.Require().NoError(err)
	s.Empty(got.Records)
}

func (s *RedisRepositoryTestSuite) TestValidation() {
	s.Error(s.repo.SaveDailyState(s.ctx, nil))
	s.Error(s.repo.SaveDailyState(s.ctx, &SaveDailyStateInput{State: &models.DailyGameState{Date: "2025-10-12"}}))
	s.Error(s.repo.SaveDailyState(s.ctx, &SaveDailyStateInput{State: &models.DailyGameState{UserID: "test-user-id"}}))
	s.Error(s.repo.SaveSeasonHistory(s.ctx, &SaveSeasonHistoryInput{}))

	_, err := s.repo.GetDailyState(s.ctx, &GetDailyStateInput{UserID: "test-user-id"})
	s.Error(err)
}

func (s *RedisRepositoryTestSuite) TestNewRedisValidation() {
	_, err := NewRedis(nil)
	s.Error(err)

	_, err = NewRedis(&Config{})
	s.Error(err)
}
