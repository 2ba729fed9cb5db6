package supporter

// SupporterError represents errors that can occur on the supporter board
type SupporterError string

func (e SupporterError) Error() string {
	return string(e)
}

const (
	// ErrEmptyName is returned when the supporter did not sign the message
	ErrEmptyName SupporterError = "name cannot be empty"

	// ErrNameTooLong is returned when the name exceeds MaxNameLength runes
	ErrNameTooLong SupporterError = "name is too long"

	// ErrEmptyMessage is returned when the message is blank
	ErrEmptyMessage SupporterError = "message cannot be empty"

	// ErrMessageTooLong is returned when the message exceeds MaxMessageLength runes
	ErrMessageTooLong SupporterError = "message is too long"

	// ErrEmptyAuthorID is returned when a post or delete has no author
	ErrEmptyAuthorID SupporterError = "author ID cannot be empty"

	// ErrEmptyMessageID is returned when a delete names no message
	ErrEmptyMessageID SupporterError = "message ID cannot be empty"

	// ErrRateLimited is returned when an author posts faster than allowed
	ErrRateLimited SupporterError = "posting too fast, try again shortly"

	// ErrMessageNotFound is returned when the message does not exist
	ErrMessageNotFound SupporterError = "message not found"

	// ErrNotAuthor is returned when someone other than the author or an admin deletes a message
	ErrNotAuthor SupporterError = "only the author or an admin can delete this message"

	// ErrNilConfig is returned when the config is nil
	ErrNilConfig SupporterError = "config cannot be nil"

	// ErrNilRepository is returned when the repository is nil
	ErrNilRepository SupporterError = "repository cannot be nil"

	// ErrNilClock is returned when the clock is nil
	ErrNilClock SupporterError = "clock cannot be nil"

	// ErrNilUUIDGenerator is returned when the UUID generator is nil
	ErrNilUUIDGenerator SupporterError = "UUID generator cannot be nil"
)
