package domain

import (
	"fmt"
	"time"
)

// ClosedPayload fills the second token of a closed status line.
const ClosedPayload = "TIMESTAMP"

// SessionState is either Open(startedAt) or Closed. The zero value is Closed.
type SessionState struct {
	open      bool
	startedAt time.Time
}

func OpenAt(startedAt time.Time) SessionState {
	return SessionState{open: true, startedAt: startedAt}
}

func Closed() SessionState {
	return SessionState{}
}

func (s SessionState) IsOpen() bool { return s.open }

// StartedAt is the zero time for a closed state.
func (s SessionState) StartedAt() time.Time { return s.startedAt }

func (s SessionState) Equal(other SessionState) bool {
	if s.open != other.open {
		return false
	}
	return !s.open || s.startedAt.Equal(other.startedAt)
}

func (s SessionState) String() string {
	if !s.open {
		return "closed"
	}
	return fmt.Sprintf("open since %s", s.startedAt.Format(time.DateTime))
}

// Date is a civil calendar day, comparable with ==.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf takes the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func (d Date) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// CompletedSession is one finished block, keyed by the day it was closed.
type CompletedSession struct {
	Date            Date
	DurationMinutes int
}

// Policy holds the two thresholds the state machine decides on.
type Policy struct {
	MinimumBlockMinutes int
	DailyGoalMinutes    int
}
