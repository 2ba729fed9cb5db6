package drive

// DriveError is a custom error type for drive rule errors
type DriveError string

// Error implements the error interface
func (e DriveError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilState          DriveError = "state cannot be nil"
	ErrNilPlay           DriveError = "play input cannot be nil"
	ErrInvalidField      DriveError = "touchdown line must lie between the start position and the end of the field"
	ErrInvalidDownRules  DriveError = "first down distance and max downs must be positive"
	ErrInvalidPointRules DriveError = "point values must be positive"
)
