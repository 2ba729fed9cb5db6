package supporter

import (
	"time"

	"github.com/KirkDiggler/gameday/internal/common/clock"
	"github.com/KirkDiggler/gameday/internal/common/uuid"
	"github.com/KirkDiggler/gameday/internal/metrics"
	"github.com/KirkDiggler/gameday/internal/models"
	supporterRepo "github.com/KirkDiggler/gameday/internal/repositories/supporter"
)

const (
	// MaxNameLength is the longest accepted signature, in runes
	MaxNameLength = 20

	// MaxMessageLength is the longest accepted message, in runes
	MaxMessageLength = 140

	// DefaultListLimit is both the default and the maximum page size
	DefaultListLimit = 50

	defaultPostInterval = 10 * time.Second
	defaultPostBurst    = 3
)

// Config holds configuration for the supporter service
type Config struct {
	Repository    supporterRepo.Repository
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// Metrics is optional
	Metrics *metrics.Recorder

	// PostInterval is the sustained time between posts per author
	PostInterval time.Duration

	// PostBurst is how many posts an author may make back to back
	PostBurst int
}

type PostMessageInput struct {
	Name     string
	Message  string
	AuthorID string
}

type PostMessageOutput struct {
	Message *models.SupporterMessage
}

type ListMessagesInput struct {
	// Limit defaults to DefaultListLimit and is capped there
	Limit int
}

type ListMessagesOutput struct {
	Messages []*models.SupporterMessage
}

type DeleteMessageInput struct {
	MessageID   string
	RequesterID string
	IsAdmin     bool
}
