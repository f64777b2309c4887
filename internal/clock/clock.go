// Package clock provides time to the application.
// Services take a Clock instead of calling time.Now directly, which makes
// ID generation and statistics windowing deterministic in tests.
package clock

import "time"

// Clock is the single capability services need from the system time.
type Clock interface {
	Now() time.Time
}

// System returns the current wall-clock time in UTC.
type System struct{}

func NewSystem() System { return System{} }

func (System) Now() time.Time { return time.Now().UTC() }

// Fixed always returns the same instant. Intended for tests.
type Fixed struct {
	Time time.Time
}

func NewFixed(t time.Time) Fixed { return Fixed{Time: t} }

func (f Fixed) Now() time.Time { return f.Time }
