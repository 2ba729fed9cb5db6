package gameday

import (
	"github.com/KirkDiggler/gameday/internal/models"
)

// Standing is the season record in one word
type Standing string

const (
	StandingWinning Standing = "winning"
	StandingTied    Standing = "tied"
	StandingLosing  Standing = "losing"
)

// Summary aggregates a season history
type Summary struct {
	GamesPlayed   int                  `json:"games_played"`
	Wins          int                  `json:"wins"`
	Losses        int                  `json:"losses"`
	PointsFor     int                  `json:"points_for"`
	PointsAgainst int                  `json:"points_against"`
	TotalYards    float64              `json:"total_yards"`
	WinStreak     int                  `json:"win_streak"`
	Standing      Standing             `json:"standing"`
	Recent        []*models.GameRecord `json:"recent"`
}

// Summarize computes the season aggregates, Recent is newest first
func Summarize(history *models.SeasonHistory) *Summary {
	summary := &Summary{Recent: []*models.GameRecord{}}
	if history == nil {
		summary.Standing = StandingTied
		return summary
	}

	for _, r := range history.Records {
		summary.GamesPlayed++
		if r.Winner == models.TeamDefense {
			summary.Losses++
		} else {
			summary.Wins++
		}
		summary.PointsFor += r.OffenseScore
		summary.PointsAgainst += r.DefenseScore
		summary.TotalYards += r.TotalYards
	}

	for i := len(history.Records) - 1; i >= 0; i-- {
		if history.Records[i].Winner == models.TeamDefense {
			break
		}
		summary.WinStreak++
	}

	for i := len(history.Records) - 1; i >= 0 && len(summary.Recent) < RecentGames; i-- {
		summary.Recent = append(summary.Recent, history.Records[i])
	}

	switch {
	case summary.Wins > summary.Losses:
		summary.Standing = StandingWinning
	case summary.Wins == summary.Losses:
		summary.Standing = StandingTied
	default:
		summary.Standing = StandingLosing
	}

	return summary
}
