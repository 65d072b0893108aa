// Package clock stamps calculation results with the time they were produced.
package clock

import "time"

// Clock reports the current time. Results carry a generation timestamp, and
// tests substitute a fixed clock to keep output stable.
type Clock interface {
	Now() time.Time
}

// System reads the wall clock in UTC.
type System struct{}

// Now returns the current UTC time truncated to the second.
func (System) Now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

// Fixed always reports the same instant.
type Fixed struct {
	At time.Time
}

// NewFixed returns a Fixed clock set to t.
func NewFixed(t time.Time) *Fixed {
	return &Fixed{At: t}
}

// Now returns the fixed instant.
func (f *Fixed) Now() time.Time {
	return f.At
}

// Stamp formats t the way plan summaries print it.
func Stamp(t time.Time) string {
	return t.Format("2006-01-02 15:04:05 MST")
}
