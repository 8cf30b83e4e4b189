package ratelimit

import "time"

// Clock supplies the current time so bucket refill is testable.
type Clock interface {
	Now() time.Time
}

// RealClock reads the wall clock.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }
