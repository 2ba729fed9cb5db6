package supporter

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/gameday/internal/repositories/supporter Repository

import (
	"context"

	"github.com/KirkDiggler/gameday/internal/models"
)

// Repository defines the interface for supporter board persistence
type Repository interface {
	// AddMessage stores a new message on the board
	AddMessage(ctx context.Context, input *AddMessageInput) error

	// GetMessage retrieves a message by ID
	GetMessage(ctx context.Context, input *GetMessageInput) (*models.SupporterMessage, error)

	// ListMessages retrieves the most recent messages, newest first
	ListMessages(ctx context.Context, input *ListMessagesInput) (*ListMessagesOutput, error)

	// DeleteMessage removes a message from the board
	DeleteMessage(ctx context.Context, input *DeleteMessageInput) error
}
