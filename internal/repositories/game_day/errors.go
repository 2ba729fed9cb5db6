package game_day

import "errors"

var (
	// ErrDailyStateNotFound is returned when no state is stored for the requested day
	ErrDailyStateNotFound = errors.New("daily state not found")

	// ErrSeasonHistoryNotFound is returned when a user has no stored season history
	ErrSeasonHistoryNotFound = errors.New("season history not found")

	errNilConfig    = errors.New("config cannot be nil")
	errNilState     = errors.New("input and state cannot be nil")
	errNilHistory   = errors.New("input and history cannot be nil")
	errEmptyUserID  = errors.New("input and user ID cannot be empty")
	errEmptyDateKey = errors.New("input and date cannot be empty")
)

func validateState(input *SaveDailyStateInput) error {
	if input == nil || input.State == nil {
		return errNilState
	}
	if input.State.UserID == "" {
		return errEmptyUserID
	}
	if input.State.Date == "" {
		return errEmptyDateKey
	}
	return nil
}

func validateHistory(input *SaveSeasonHistoryInput) error {
	if input == nil || input.History == nil {
		return errNilHistory
	}
	if input.History.UserID == "" {
		return errEmptyUserID
	}
	return nil
}
