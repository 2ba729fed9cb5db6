package game

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/gameday/internal/services/game Service

import "context"

// Service defines the interface for game day operations
type Service interface {
	// GetGameDay returns today's state for a player, rolling over a stale day first
	GetGameDay(ctx context.Context, input *GetGameDayInput) (*GetGameDayOutput, error)

	// LogIntake records intake and runs the resulting play
	LogIntake(ctx context.Context, input *LogIntakeInput) (*LogIntakeOutput, error)

	// RemoveIntake corrects an over-logged amount without running a play
	RemoveIntake(ctx context.Context, input *RemoveIntakeInput) (*RemoveIntakeOutput, error)

	// ClaimGoalBonuses awards any goal bonuses earned but not yet credited
	ClaimGoalBonuses(ctx context.Context, input *ClaimGoalBonusesInput) (*ClaimGoalBonusesOutput, error)

	// GetPace reports expected against actual progress for right now
	GetPace(ctx context.Context, input *GetPaceInput) (*GetPaceOutput, error)

	// GetSeason returns the archived days and their summary
	GetSeason(ctx context.Context, input *GetSeasonInput) (*GetSeasonOutput, error)

	// ResetDay replaces today's state with a fresh day
	ResetDay(ctx context.Context, input *ResetDayInput) (*ResetDayOutput, error)

	// ResetSeason clears the season history
	ResetSeason(ctx context.Context, input *ResetSeasonInput) (*ResetSeasonOutput, error)
}
