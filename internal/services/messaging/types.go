package messaging

import (
	"github.com/KirkDiggler/gameday/internal/gameday"
	"github.com/KirkDiggler/gameday/internal/models"
	"github.com/KirkDiggler/gameday/internal/pacing"
)

// ErrorType names the failure a user-facing error message describes
type ErrorType string

const (
	ErrorTypePlayInProgress   ErrorType = "play_in_progress"
	ErrorTypeInvalidAmount    ErrorType = "invalid_amount"
	ErrorTypeStoreUnavailable ErrorType = "store_unavailable"
	ErrorTypeNotAllowed       ErrorType = "not_allowed"
	ErrorTypeRateLimited      ErrorType = "rate_limited"
)

// GetPlayMessageInput contains the input for GetPlayMessage
type GetPlayMessageInput struct {
	Play *models.Play

	// CategoryTitle is the display name of the intake behind the play
	CategoryTitle string
}

// GetPlayMessageOutput contains the output for GetPlayMessage
type GetPlayMessageOutput struct {
	// Title is the headline, e.g. "FIRST DOWN!"
	Title string

	// Message is the cheer that goes with it
	Message string
}

// GetGoalMessageInput contains the input for GetGoalMessage
type GetGoalMessageInput struct {
	Category      models.Category
	CategoryTitle string
	Points        int
}

// GetGoalMessageOutput contains the output for GetGoalMessage
type GetGoalMessageOutput struct {
	Title   string
	Message string
}

// GetPaceMessageInput contains the input for GetPaceMessage
type GetPaceMessageInput struct {
	Classification pacing.Classification
}

// GetPaceMessageOutput contains the output for GetPaceMessage
type GetPaceMessageOutput struct {
	Message string
}

// GetSeasonMessageInput contains the input for GetSeasonMessage
type GetSeasonMessageInput struct {
	Standing  gameday.Standing
	WinStreak int
}

// GetSeasonMessageOutput contains the output for GetSeasonMessage
type GetSeasonMessageOutput struct {
	Message string
}

// GetErrorMessageInput contains parameters for getting an error message
type GetErrorMessageInput struct {
	ErrorType ErrorType
}

// GetErrorMessageOutput contains the result of getting an error message
type GetErrorMessageOutput struct {
	Title   string
	Message string
}

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct {
	// Seed fixes the line selection; zero seeds from the current time
	Seed int64
}
