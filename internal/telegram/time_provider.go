package telegram

import "time"

type timeProvider interface {
	Now() time.Time
}

// stdTime is wall clock time shifted to the users' zone.
type stdTime struct {
	utcDiff time.Duration
}

func (s stdTime) Now() time.Time {
	return time.Now().UTC().Add(s.utcDiff)
}
