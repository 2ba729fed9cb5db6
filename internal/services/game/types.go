package game

import (
	"time"

	"github.com/KirkDiggler/gameday/internal/common/clock"
	"github.com/KirkDiggler/gameday/internal/common/uuid"
	"github.com/KirkDiggler/gameday/internal/drive"
	"github.com/KirkDiggler/gameday/internal/gameday"
	"github.com/KirkDiggler/gameday/internal/metrics"
	"github.com/KirkDiggler/gameday/internal/models"
	"github.com/KirkDiggler/gameday/internal/pacing"
	gameDayRepo "github.com/KirkDiggler/gameday/internal/repositories/game_day"
)

// Config holds configuration for the game service
type Config struct {
	// Categories is the intake table, defaults are not assumed
	Categories models.Categories

	// Pacing computes the pace used to scale yardage
	Pacing *pacing.Calculator

	// Drive applies plays and bonuses
	Drive *drive.Machine

	// Repository persists daily state and season history
	Repository gameDayRepo.Repository

	// Clock reports time in the tracked person's zone
	Clock clock.Clock

	// UUIDGenerator assigns play IDs
	UUIDGenerator uuid.UUID

	// Metrics is optional
	Metrics *metrics.Recorder

	// PersistTimeout bounds each store write, defaults to 5 seconds
	PersistTimeout time.Duration
}

// PaceReport is the pace snapshot for a moment of the day
type PaceReport struct {
	HourOfDay float64       `json:"hour_of_day"`
	Expected  float64       `json:"expected"`
	Actual    float64       `json:"actual"`
	Status    pacing.Status `json:"status"`

	// Quarter is nil outside the tracking window
	Quarter              *pacing.Quarter `json:"quarter,omitempty"`
	QuarterTimeRemaining time.Duration   `json:"quarter_time_remaining"`
}

type GetGameDayInput struct {
	PlayerID string
}

type GetGameDayOutput struct {
	State *models.DailyGameState
	Pace  *PaceReport
}

type LogIntakeInput struct {
	PlayerID string
	Category models.Category
	Amount   int
}

type LogIntakeOutput struct {
	// Play is the receipt of the yardage play
	Play *models.Play

	// State is the day after the play and any goal bonus
	State *models.DailyGameState

	// Pace is the pace that scaled the play
	Pace *PaceReport

	// GoalsAwarded lists categories whose goal bonus this intake earned
	GoalsAwarded []models.Category
}

type RemoveIntakeInput struct {
	PlayerID string
	Category models.Category

	// Amount to subtract, zero means the category increment
	Amount int
}

type RemoveIntakeOutput struct {
	State *models.DailyGameState

	// Removed is the amount actually subtracted after flooring at zero
	Removed int
}

type ClaimGoalBonusesInput struct {
	PlayerID string
}

type ClaimGoalBonusesOutput struct {
	State        *models.DailyGameState
	GoalsAwarded []models.Category
}

type GetPaceInput struct {
	PlayerID string
}

type GetPaceOutput struct {
	Pace *PaceReport
}

type GetSeasonInput struct {
	PlayerID string
}

type GetSeasonOutput struct {
	History *models.SeasonHistory
	Summary *gameday.Summary
}

type ResetDayInput struct {
	PlayerID string
}

type ResetDayOutput struct {
	State *models.DailyGameState
}

type ResetSeasonInput struct {
	PlayerID string
}

type ResetSeasonOutput struct {
	History *models.SeasonHistory
}
