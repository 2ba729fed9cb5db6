package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/KirkDiggler/gameday/internal/gameday"
	"github.com/KirkDiggler/gameday/internal/models"
	"github.com/KirkDiggler/gameday/internal/pacing"
)

// service implements the Service interface
type service struct {
	mu   sync.Mutex
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (*service, error) {
	seed := time.Now().UnixNano()
	if config != nil && config.Seed != 0 {
		seed = config.Seed
	}

	return &service{
		rand: rand.New(rand.NewSource(seed)),
	}, nil
}

// pick returns one line at random
func (s *service) pick(lines []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lines[s.rand.Intn(len(lines))]
}

// categoryEmoji returns the badge used next to a category's plays
func categoryEmoji(category models.Category) string {
	switch category {
	case models.CategoryFluids:
		return "💧"
	case models.CategoryCalories:
		return "🍽️"
	case models.CategoryAntacid:
		return "🧂"
	default:
		return "🏈"
	}
}

// GetPlayMessage returns the headline and a cheer for a committed play
func (s *service) GetPlayMessage(ctx context.Context, input *GetPlayMessageInput) (*GetPlayMessageOutput, error) {
	if input == nil || input.Play == nil {
		return nil, errors.New("input and play cannot be nil")
	}

	play := input.Play
	gain := fmt.Sprintf("%s +%.1f yards", categoryEmoji(play.Category), play.YardsGained)
	if input.CategoryTitle != "" {
		gain = fmt.Sprintf("%s on %s", gain, input.CategoryTitle)
	}

	var title string
	var messages []string

	switch {
	case play.IsTouchdown:
		title = "🏈 TOUCHDOWN! 🏈"
		messages = []string{
			"Into the end zone! Seven points on the board.",
			"Nobody laid a finger on you. Six plus the extra point!",
			"Spike it! That drive was a thing of beauty.",
			"The crowd is on its feet. TOUCHDOWN!",
		}
	case play.IsTurnover:
		title = "Turnover on downs"
		messages = []string{
			"The defense held this time. New drive, same fight.",
			"Ball goes back to the twenty. Shake it off.",
		}
	case play.IsFirstDown:
		title = "FIRST DOWN! →"
		messages = []string{
			"Move the chains!",
			"Fresh set of downs. Keep it rolling.",
			"That's a first down and the offense is cooking.",
			"Chains are moving. Stay on schedule.",
		}
	case play.YardsGained <= 0:
		title = "No gain"
		messages = []string{
			"Stuffed at the line. Next play.",
			"Nothing there. Regroup and go again.",
		}
	default:
		title = fmt.Sprintf("%s down", ordinal(play.Down))
		messages = []string{
			"Positive yards. Every bit counts.",
			"Chipping away at it.",
			"Good push up the middle.",
			"Grinding out the drive.",
		}
	}

	return &GetPlayMessageOutput{
		Title:   title,
		Message: fmt.Sprintf("%s. %s", gain, s.pick(messages)),
	}, nil
}

// GetGoalMessage returns the announcement for a goal completion touchdown
func (s *service) GetGoalMessage(ctx context.Context, input *GetGoalMessageInput) (*GetGoalMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	title := input.CategoryTitle
	if title == "" {
		title = string(input.Category)
	}

	cheers := []string{
		"That's how you finish a goal.",
		"Goal crushed. The sideline is going wild.",
		"Daily target complete, take a bow.",
		"One more box checked for the day.",
	}

	return &GetGoalMessageOutput{
		Title:   "🏆 TOUCHDOWN!",
		Message: fmt.Sprintf("%s %s goal complete! +%d points! %s", categoryEmoji(input.Category), title, input.Points, s.pick(cheers)),
	}, nil
}

// GetPaceMessage returns a line matching the current pace
func (s *service) GetPaceMessage(ctx context.Context, input *GetPaceMessageInput) (*GetPaceMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var messages []string
	switch input.Classification {
	case pacing.ClassificationAhead:
		messages = []string{
			"Ahead of schedule. Bonus yards are yours.",
			"You're out in front. Keep that tempo.",
			"Running the hurry-up and it's working.",
		}
	case pacing.ClassificationOnPace:
		messages = []string{
			"Right on pace. Steady wins the game.",
			"Right where you need to be. Keep going.",
			"Solid rhythm. Don't let up now.",
		}
	case pacing.ClassificationBehind:
		messages = []string{
			"A little behind, plenty of clock left. Let's catch up!",
			"Time for a two-minute drill. You've got this.",
			"Down but not out. One sip at a time.",
		}
	default:
		return &GetPaceMessageOutput{Message: "Keep going!"}, nil
	}

	return &GetPaceMessageOutput{Message: s.pick(messages)}, nil
}

// GetSeasonMessage returns a line matching the season standing
func (s *service) GetSeasonMessage(ctx context.Context, input *GetSeasonMessageInput) (*GetSeasonMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var messages []string
	switch input.Standing {
	case gameday.StandingWinning:
		messages = []string{
			"Winning season! Playoff bound.",
			"The record speaks for itself.",
			"Top of the division and climbing.",
		}
	case gameday.StandingLosing:
		messages = []string{
			"Rough stretch, but every season has a comeback story.",
			"Tomorrow is a new game. Let's get back in the win column.",
			"Champions are made in the tough weeks.",
		}
	default:
		messages = []string{
			"Dead even. Today breaks the tie.",
			"Season's wide open. Go take it.",
		}
	}

	message := s.pick(messages)
	if input.WinStreak >= 3 {
		message = fmt.Sprintf("%s 🔥 %d game win streak!", message, input.WinStreak)
	}

	return &GetSeasonMessageOutput{Message: message}, nil
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var title string
	var messages []string

	switch input.ErrorType {
	case ErrorTypePlayInProgress:
		title = "Play in progress"
		messages = []string{
			"Hold up, the last play is still being run. Try again in a moment.",
			"One snap at a time! Wait for the whistle.",
		}
	case ErrorTypeInvalidAmount:
		title = "Flag on the play"
		messages = []string{
			"That amount doesn't look right. Use a positive number.",
			"Illegal formation! Amounts need to be above zero.",
		}
	case ErrorTypeStoreUnavailable:
		title = "Rain delay"
		messages = []string{
			"Can't reach the scoreboard right now. Try again shortly.",
			"The stadium lights flickered. Give it a minute and retry.",
		}
	case ErrorTypeNotAllowed:
		title = "Not allowed"
		messages = []string{
			"Only the coaching staff can make that call.",
			"That's above your pay grade, rookie.",
		}
	case ErrorTypeRateLimited:
		title = "Slow down"
		messages = []string{
			"Easy there! Give it a few seconds before posting again.",
			"Too many cheers too fast. Take a breath.",
		}
	default:
		title = "Something went wrong"
		messages = []string{
			"Fumble! Something went wrong, please try again.",
			"The ref lost the ball. Try that again.",
		}
	}

	return &GetErrorMessageOutput{
		Title:   title,
		Message: s.pick(messages),
	}, nil
}

func ordinal(down int) string {
	switch down {
	case 1:
		return "1st"
	case 2:
		return "2nd"
	case 3:
		return "3rd"
	default:
		return fmt.Sprintf("%dth", down)
	}
}
