package messaging

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/gameday/internal/services/messaging Service

// Service is the interface for the messaging service
type Service interface {
	// GetPlayMessage returns the headline and a cheer for a committed play
	GetPlayMessage(ctx context.Context, input *GetPlayMessageInput) (*GetPlayMessageOutput, error)

	// GetGoalMessage returns the announcement for a goal completion touchdown
	GetGoalMessage(ctx context.Context, input *GetGoalMessageInput) (*GetGoalMessageOutput, error)

	// GetPaceMessage returns a line matching the current pace
	GetPaceMessage(ctx context.Context, input *GetPaceMessageInput) (*GetPaceMessageOutput, error)

	// GetSeasonMessage returns a line matching the season standing
	GetSeasonMessage(ctx context.Context, input *GetSeasonMessageInput) (*GetSeasonMessageOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
