package pacing

// PacingError is a custom error type for pacing configuration errors
type PacingError string

// Error implements the error interface
func (e PacingError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidWindow     PacingError = "tracking window must end after it starts and fit within one day"
	ErrInvalidThresholds PacingError = "on-pace threshold must be positive and not above the ahead threshold"
	ErrPunitiveModifier  PacingError = "behind modifier cannot be below the on-pace modifier"
	ErrInvalidModifier   PacingError = "pace modifiers must be positive"
)
