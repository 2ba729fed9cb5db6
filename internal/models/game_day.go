package models

import (
	"time"
)

// Team identifies a side of the scoreboard
type Team string

const (
	// TeamOffense is the tracked person's team
	TeamOffense Team = "offense"

	// TeamDefense is the opponent
	TeamDefense Team = "defense"
)

// DailyGameState is one user's game for one calendar day
type DailyGameState struct {
	// UserID is the owner of the tracked day
	UserID string `json:"user_id" firestore:"user_id"`

	// Date is the calendar day key, YYYY-MM-DD in the configured zone
	Date string `json:"date" firestore:"date"`

	// Intake is the cumulative amount logged per category
	Intake map[Category]int `json:"intake" firestore:"intake"`

	// OffenseScore and DefenseScore only ever grow in touchdown steps
	OffenseScore int `json:"offense_score" firestore:"offense_score"`
	DefenseScore int `json:"defense_score" firestore:"defense_score"`

	// GoalsCompleted lists the categories already credited with a goal bonus
	GoalsCompleted []Category `json:"goals_completed" firestore:"goals_completed"`

	// FieldPosition is the ball spot in yards, the offense drives toward 100
	FieldPosition float64 `json:"field_position" firestore:"field_position"`

	// Down is the current down, 1 through 4
	Down int `json:"down" firestore:"down"`

	// YardsToGo is the distance still needed for a first down
	YardsToGo float64 `json:"yards_to_go" firestore:"yards_to_go"`

	// TotalYards is the sum of every play's yardage today
	TotalYards float64 `json:"total_yards" firestore:"total_yards"`

	// Plays is the chronological play ledger
	Plays []*Play `json:"plays" firestore:"plays"`

	// UpdatedAt is when the state last changed
	UpdatedAt time.Time `json:"updated_at" firestore:"updated_at"`
}

// HasGoal reports whether a category has already been credited today
func (s *DailyGameState) HasGoal(category Category) bool {
	for _, c := range s.GoalsCompleted {
		if c == category {
			return true
		}
	}
	return false
}

// HasScore reports whether either side has put points on the board
func (s *DailyGameState) HasScore() bool {
	return s.OffenseScore > 0 || s.DefenseScore > 0
}

// Clone returns a deep copy so transitions never alias caller state.
// Plays are immutable receipts and are shared.
func (s *DailyGameState) Clone() *DailyGameState {
	if s == nil {
		return nil
	}

	out := *s
	out.Intake = make(map[Category]int, len(s.Intake))
	for k, v := range s.Intake {
		out.Intake[k] = v
	}
	out.GoalsCompleted = append([]Category(nil), s.GoalsCompleted...)
	out.Plays = append([]*Play(nil), s.Plays...)
	return &out
}

// Play is the receipt of one drive transition. It is never mutated once created.
type Play struct {
	// ID is the unique identifier for the play
	ID string `json:"id" firestore:"id"`

	// Category is the intake that produced the play
	Category Category `json:"category" firestore:"category"`

	// YardsGained is the yardage applied
	YardsGained float64 `json:"yards_gained" firestore:"yards_gained"`

	// FieldPosition, Down and YardsToGo are the state after the play
	FieldPosition float64 `json:"field_position" firestore:"field_position"`
	Down          int     `json:"down" firestore:"down"`
	YardsToGo     float64 `json:"yards_to_go" firestore:"yards_to_go"`

	// IsFirstDown indicates the play moved the chains
	IsFirstDown bool `json:"is_first_down" firestore:"is_first_down"`

	// IsTouchdown indicates the play crossed the scoring line
	IsTouchdown bool `json:"is_touchdown" firestore:"is_touchdown"`

	// IsTurnover indicates a turnover on downs, only possible with auto-convert disabled
	IsTurnover bool `json:"is_turnover,omitempty" firestore:"is_turnover,omitempty"`

	// PaceModifier is the multiplier used when computing the yardage
	PaceModifier float64 `json:"pace_modifier" firestore:"pace_modifier"`

	// Timestamp is when the play was committed
	Timestamp time.Time `json:"timestamp" firestore:"timestamp"`
}

// GameRecord is one archived day in the season
type GameRecord struct {
	// Date is the archived day key
	Date string `json:"date" firestore:"date"`

	OffenseScore int `json:"offense_score" firestore:"offense_score"`
	DefenseScore int `json:"defense_score" firestore:"defense_score"`

	// Winner is the side with the higher score, ties go to the offense
	Winner Team `json:"winner" firestore:"winner"`

	// Intake holds the category totals for the day
	Intake map[Category]int `json:"intake" firestore:"intake"`

	// TotalYards is the day's total yardage
	TotalYards float64 `json:"total_yards" firestore:"total_yards"`

	// PlayCount is the number of plays run that day
	PlayCount int `json:"play_count" firestore:"play_count"`
}

// SeasonHistory is the append-only list of archived days for a user
type SeasonHistory struct {
	// UserID is the owner of the season
	UserID string `json:"user_id" firestore:"user_id"`

	// Records are ordered oldest first
	Records []*GameRecord `json:"records" firestore:"records"`

	// UpdatedAt is when the history was last written
	UpdatedAt time.Time `json:"updated_at" firestore:"updated_at"`
}

// HasDate reports whether a day has already been archived
func (h *SeasonHistory) HasDate(date string) bool {
	for _, r := range h.Records {
		if r.Date == date {
			return true
		}
	}
	return false
}
