package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/KirkDiggler/gameday/internal/common/clock Clock
type Clock interface {
	Now() time.Time
}

// DefaultClock implements the Clock interface using the system clock.
// Times are reported in Location so game days follow the tracked person's calendar.
type DefaultClock struct {
	Location *time.Location
}

// New returns a system clock reporting in loc, or the process local zone when loc is nil
func New(loc *time.Location) *DefaultClock {
	if loc == nil {
		loc = time.Local
	}
	return &DefaultClock{Location: loc}
}

// Now returns the current time
func (c *DefaultClock) Now() time.Time {
	if c.Location == nil {
		return time.Now()
	}
	return time.Now().In(c.Location)
}
