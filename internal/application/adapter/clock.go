package adapter

import "time"

// Clock supplies the current time. The calendar projector and the bill
// reminder scanner take it as a dependency so tests can pin "today".
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock backed by the wall clock.
type SystemClock struct{}

// Now returns the current UTC time.
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
