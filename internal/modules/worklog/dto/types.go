package dto

import "time"

const (
	EventSessionOpened         = "session_opened"
	EventStaleSessionDiscarded = "stale_session_discarded"
	EventBlockTooShort         = "block_too_short"
	EventSessionClosed         = "session_closed"
)

type StepOutput struct {
	Event          string
	ElapsedMinutes int
	At             time.Time
}

type ForceCloseInput struct {
	ElapsedMinutes int
}

type StatusOutput struct {
	Open           bool
	StartedAt      time.Time
	ElapsedMinutes int
}

// ProgressInput selects the day to report; the zero Date means today.
type ProgressInput struct {
	Date time.Time
}

type ProgressOutput struct {
	Date          time.Time
	WorkedMinutes int
	GoalMinutes   int
	Bar           string
}

type InitOutput struct {
	StatusCreated  bool
	HistoryCreated bool
}
