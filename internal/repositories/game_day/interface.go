package game_day

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/gameday/internal/repositories/game_day Repository

import (
	"context"

	"github.com/KirkDiggler/gameday/internal/models"
)

// Repository defines the interface for daily state and season history persistence
type Repository interface {
	// SaveDailyState persists a day's state, replacing any previous copy for the same date
	SaveDailyState(ctx context.Context, input *SaveDailyStateInput) error

	// GetDailyState retrieves a user's state for one date
	GetDailyState(ctx context.Context, input *GetDailyStateInput) (*models.DailyGameState, error)

	// GetLatestDailyState retrieves the most recent day stored for a user
	GetLatestDailyState(ctx context.Context, input *GetLatestDailyStateInput) (*models.DailyGameState, error)

	// SaveSeasonHistory replaces a user's whole season history
	SaveSeasonHistory(ctx context.Context, input *SaveSeasonHistoryInput) error

	// GetSeasonHistory retrieves a user's season history
	GetSeasonHistory(ctx context.Context, input *GetSeasonHistoryInput) (*models.SeasonHistory, error)
}
