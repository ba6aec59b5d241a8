package interfaces

import "time"

// Clock abstracts wall-clock reads so SLA classification and rate-status
// derivation stay testable with a fixed instant.
type Clock interface {
	Now() time.Time
}

// RealClock reads time.Now in UTC.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now().UTC() }
