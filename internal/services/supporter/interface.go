package supporter

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/gameday/internal/services/supporter Service

// Service defines the supporter board operations
type Service interface {
	// PostMessage validates and stores a new message
	PostMessage(ctx context.Context, input *PostMessageInput) (*PostMessageOutput, error)

	// ListMessages returns the most recent messages, newest first
	ListMessages(ctx context.Context, input *ListMessagesInput) (*ListMessagesOutput, error)

	// DeleteMessage removes a message, only its author or an admin may do so
	DeleteMessage(ctx context.Context, input *DeleteMessageInput) error
}
