package models

import (
	"time"
)

// SupporterMessage is a note left on the supporter board
type SupporterMessage struct {
	// ID is the unique identifier for the message
	ID string `json:"id" firestore:"id"`

	// Name is the display name the supporter signed with
	Name string `json:"name" firestore:"name"`

	// Message is the note itself
	Message string `json:"message" firestore:"message"`

	// AuthorID identifies who may delete the message
	AuthorID string `json:"author_id,omitempty" firestore:"author_id"`

	// Timestamp is the server time the message was accepted
	Timestamp time.Time `json:"timestamp" firestore:"timestamp"`
}
