package gameday

import (
	"testing"
	"time"

	"github.com/KirkDiggler/gameday/internal/drive"
	"github.com/KirkDiggler/gameday/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateKey(t *testing.T) {
	la, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)

	// 03:30 UTC is still the previous evening on the west coast
	ts := time.Date(2025, 10, 13, 3, 30, 0, 0, time.UTC)
	assert.Equal(t, "2025-10-13", DateKey(ts, time.UTC))
	assert.Equal(t, "2025-10-12", DateKey(ts, la))
	assert.Equal(t, "2025-10-13", DateKey(ts, nil))
}

func TestNewDay(t *testing.T) {
	state := NewDay("test-user-id", "2025-10-12", *drive.DefaultRules())

	assert.Equal(t, "test-user-id", state.UserID)
	assert.Equal(t, "2025-10-12", state.Date)
	assert.Equal(t, 20.0, state.FieldPosition)
	assert.Equal(t, 1, state.Down)
	assert.Equal(t, 10.0, state.YardsToGo)
	assert.Zero(t, state.OffenseScore)
	assert.NotNil(t, state.Intake)
	assert.Empty(t, state.Plays)
}

func TestCheckRolloverSameDayIsNoop(t *testing.T) {
	rules := *drive.DefaultRules()
	state := NewDay("test-user-id", "2025-10-12", rules)
	state.OffenseScore = 14

	record, first := CheckRollover(state, "2025-10-12", rules)
	assert.Nil(t, record)
	assert.Same(t, state, first)

	record, second := CheckRollover(first, "2025-10-12", rules)
	assert.Nil(t, record)
	assert.Equal(t, first, second)
}

func TestCheckRolloverArchivesScoredDay(t *testing.T) {
	rules := *drive.DefaultRules()
	state := NewDay("test-user-id", "2025-10-11", rules)
	state.OffenseScore = 7
	state.DefenseScore = 14
	state.TotalYards = 42.5
	state.Intake[models.CategoryFluids] = 800
	state.Plays = []*models.Play{{ID: "a"}, {ID: "b"}}

	record, fresh := CheckRollover(state, "2025-10-12", rules)
	require.NotNil(t, record)

	assert.Equal(t, "2025-10-11", record.Date)
	assert.Equal(t, models.TeamDefense, record.Winner)
	assert.Equal(t, 800, record.Intake[models.CategoryFluids])
	assert.Equal(t, 42.5, record.TotalYards)
	assert.Equal(t, 2, record.PlayCount)

	assert.Equal(t, "2025-10-12", fresh.Date)
	assert.Equal(t, "test-user-id", fresh.UserID)
	assert.Zero(t, fresh.OffenseScore)
	assert.Empty(t, fresh.Intake)

	// rollover from the fresh day again is a no-op
	again, same := CheckRollover(fresh, "2025-10-12", rules)
	assert.Nil(t, again)
	assert.Same(t, fresh, same)
}

func TestCheckRolloverSkipsScorelessDay(t *testing.T) {
	rules := *drive.DefaultRules()
	state := NewDay("test-user-id", "2025-10-11", rules)
	state.Intake[models.CategoryFluids] = 300

	record, fresh := CheckRollover(state, "2025-10-12", rules)
	assert.Nil(t, record)
	assert.Equal(t, "2025-10-12", fresh.Date)
}

func TestArchiveRecordTieGoesToOffense(t *testing.T) {
	state := &models.DailyGameState{Date: "2025-10-11", OffenseScore: 7, DefenseScore: 7}
	assert.Equal(t, models.TeamOffense, ArchiveRecord(state).Winner)
}

func TestAppendRecord(t *testing.T) {
	history := &models.SeasonHistory{UserID: "test-user-id"}

	next, ok := AppendRecord(history, &models.GameRecord{Date: "2025-10-11"})
	require.True(t, ok)
	assert.Len(t, next.Records, 1)
	assert.Empty(t, history.Records)

	dup, ok := AppendRecord(next, &models.GameRecord{Date: "2025-10-11"})
	assert.False(t, ok)
	assert.Same(t, next, dup)

	same, ok := AppendRecord(next, nil)
	assert.False(t, ok)
	assert.Same(t, next, same)
}

func TestSummarize(t *testing.T) {
	history := &models.SeasonHistory{}
	results := []models.Team{
		models.TeamOffense, models.TeamDefense, models.TeamOffense, models.TeamOffense,
		models.TeamDefense, models.TeamOffense, models.TeamOffense, models.TeamOffense, models.TeamOffense,
	}
	for i, winner := range results {
		record := &models.GameRecord{
			Date:         time.Date(2025, 10, i+1, 0, 0, 0, 0, time.UTC).Format(DateLayout),
			OffenseScore: 14,
			DefenseScore: 7,
			Winner:       winner,
			TotalYards:   10,
		}
		if winner == models.TeamDefense {
			record.OffenseScore, record.DefenseScore = 0, 7
		}
		history.Records = append(history.Records, record)
	}

	summary := Summarize(history)

	assert.Equal(t, 9, summary.GamesPlayed)
	assert.Equal(t, 7, summary.Wins)
	assert.Equal(t, 2, summary.Losses)
	assert.Equal(t, 98, summary.PointsFor)
	assert.Equal(t, 63, summary.PointsAgainst)
	assert.Equal(t, 90.0, summary.TotalYards)
	assert.Equal(t, 4, summary.WinStreak)
	assert.Equal(t, StandingWinning, summary.Standing)
	require.Len(t, summary.Recent, RecentGames)
	assert.Equal(t, "2025-10-09", summary.Recent[0].Date)
	assert.Equal(t, "2025-10-03", summary.Recent[6].Date)
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(&models.SeasonHistory{})
	assert.Zero(t, summary.GamesPlayed)
	assert.Equal(t, StandingTied, summary.Standing)
	assert.Empty(t, summary.Recent)

	assert.Equal(t, StandingTied, Summarize(nil).Standing)
}

func TestSummarizeLosing(t *testing.T) {
	history := &models.SeasonHistory{Records: []*models.GameRecord{
		{Date: "2025-10-01", Winner: models.TeamDefense},
		{Date: "2025-10-02", Winner: models.TeamDefense},
		{Date: "2025-10-03", Winner: models.TeamOffense},
	}}

	summary := Summarize(history)
	assert.Equal(t, StandingLosing, summary.Standing)
	assert.Equal(t, 1, summary.WinStreak)
}
