package supporter

import (
	"errors"

	"github.com/KirkDiggler/gameday/internal/models"
)

// ErrMessageNotFound is returned when a supporter message is not found
var ErrMessageNotFound = errors.New("supporter message not found")

type AddMessageInput struct {
	Message *models.SupporterMessage
}

type GetMessageInput struct {
	MessageID string
}

type ListMessagesInput struct {
	Limit int
}

type ListMessagesOutput struct {
	Messages []*models.SupporterMessage
}

type DeleteMessageInput struct {
	MessageID string
}
