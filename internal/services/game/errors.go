package game

// GameError is a custom error type for game day errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrEmptyPlayerID    GameError = "player ID cannot be empty"
	ErrInvalidAmount    GameError = "amount must be a positive whole number"
	ErrUnknownCategory  GameError = "unknown intake category"
	ErrPlayInProgress   GameError = "a play is already in progress"
	ErrStoreUnavailable GameError = "game day store unavailable"
	ErrNilConfig        GameError = "config cannot be nil"
	ErrNilRepository    GameError = "game day repository cannot be nil"
	ErrNilPacing        GameError = "pace calculator cannot be nil"
	ErrNilDrive         GameError = "drive machine cannot be nil"
	ErrNoCategories     GameError = "at least one category is required"
	ErrNilClock         GameError = "clock cannot be nil"
	ErrNilUUIDGenerator GameError = "UUID generator cannot be nil"
)
