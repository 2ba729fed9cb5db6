package game_day

import "github.com/KirkDiggler/gameday/internal/models"

type SaveDailyStateInput struct {
	State *models.DailyGameState
}

type GetDailyStateInput struct {
	UserID string
	Date   string
}

type GetLatestDailyStateInput struct {
	UserID string
}

type SaveSeasonHistoryInput struct {
	History *models.SeasonHistory
}

type GetSeasonHistoryInput struct {
	UserID string
}
