package gameday

import (
	"time"

	"github.com/KirkDiggler/gameday/internal/drive"
	"github.com/KirkDiggler/gameday/internal/models"
)

// DateLayout is the calendar day key format
const DateLayout = "2006-01-02"

// RecentGames is how many archived days a summary carries
const RecentGames = 7

// DateKey returns the calendar day of t in loc, or in t's own location when loc is nil
func DateKey(t time.Time, loc *time.Location) string {
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format(DateLayout)
}

// NewDay returns a zero-valued day with the ball at the start position
func NewDay(userID, date string, rules drive.Rules) *models.DailyGameState {
	return &models.DailyGameState{
		UserID:         userID,
		Date:           date,
		Intake:         map[models.Category]int{},
		GoalsCompleted: []models.Category{},
		FieldPosition:  rules.StartPosition,
		Down:           1,
		YardsToGo:      rules.FirstDownDistance,
		Plays:          []*models.Play{},
	}
}

// CheckRollover guards every read of a day's state. When the state belongs to today it is
// returned as is. Otherwise the stale day is archived if anyone scored and a fresh day
// keyed to today replaces it.
func CheckRollover(state *models.DailyGameState, today string, rules drive.Rules) (*models.GameRecord, *models.DailyGameState) {
	if state.Date == today {
		return nil, state
	}

	var record *models.GameRecord
	if state.HasScore() {
		record = ArchiveRecord(state)
	}

	return record, NewDay(state.UserID, today, rules)
}

// ArchiveRecord summarizes a finished day, ties go to the offense
func ArchiveRecord(state *models.DailyGameState) *models.GameRecord {
	winner := models.TeamOffense
	if state.DefenseScore > state.OffenseScore {
		winner = models.TeamDefense
	}

	intake := make(map[models.Category]int, len(state.Intake))
	for k, v := range state.Intake {
		intake[k] = v
	}

	return &models.GameRecord{
		Date:         state.Date,
		OffenseScore: state.OffenseScore,
		DefenseScore: state.DefenseScore,
		Winner:       winner,
		Intake:       intake,
		TotalYards:   state.TotalYards,
		PlayCount:    len(state.Plays),
	}
}

// AppendRecord returns a copy of history with record appended.
// A nil record or a date already archived leaves history unchanged and reports false.
func AppendRecord(history *models.SeasonHistory, record *models.GameRecord) (*models.SeasonHistory, bool) {
	if record == nil || history.HasDate(record.Date) {
		return history, false
	}

	next := *history
	next.Records = append(append([]*models.GameRecord(nil), history.Records...), record)
	return &next, true
}
