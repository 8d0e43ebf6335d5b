package cycle

import "time"

// Clock abstracts time.Now() to allow deterministic testing.
// Everything that needs to know "today" (current-period detection,
// forecasting, advice cache keys) goes through it.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the standard time package.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}
