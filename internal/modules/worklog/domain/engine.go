package domain

import "time"

type EventKind string

const (
	EventSessionOpened         EventKind = "session_opened"
	EventStaleSessionDiscarded EventKind = "stale_session_discarded"
	EventBlockTooShort         EventKind = "block_too_short"
	EventSessionClosed         EventKind = "session_closed"
)

// Event is what one engine step reports. Elapsed is zero for SessionOpened.
type Event struct {
	Kind    EventKind
	Elapsed int
	At      time.Time
}

type Action int

const (
	ActionNone Action = iota
	// ActionOpen overwrites the status with Open(now).
	ActionOpen
	// ActionClose overwrites the status with Closed and appends Record.
	ActionClose
)

type Decision struct {
	Event  Event
	Action Action
	Record CompletedSession
}

// ElapsedMinutes truncates to whole minutes. A start in the future counts as 0.
func ElapsedMinutes(startedAt, now time.Time) int {
	minutes := int(now.Sub(startedAt) / time.Minute)
	if minutes < 0 {
		return 0
	}
	return minutes
}

// Decide is the whole transition table. Branch order for an open session:
// stale, too short, close.
func Decide(state SessionState, now time.Time, policy Policy) Decision {
	if !state.IsOpen() {
		return Decision{Event: Event{Kind: EventSessionOpened, At: now}, Action: ActionOpen}
	}
	elapsed := ElapsedMinutes(state.StartedAt(), now)
	switch {
	case elapsed >= policy.DailyGoalMinutes:
		return Decision{Event: Event{Kind: EventStaleSessionDiscarded, Elapsed: elapsed, At: now}, Action: ActionOpen}
	case elapsed < policy.MinimumBlockMinutes:
		return Decision{Event: Event{Kind: EventBlockTooShort, Elapsed: elapsed, At: now}, Action: ActionNone}
	default:
		return CloseDecision(elapsed, now)
	}
}

// CloseDecision attributes the block to now's calendar day, not the day it opened.
func CloseDecision(elapsed int, now time.Time) Decision {
	if elapsed < 0 {
		elapsed = 0
	}
	return Decision{
		Event:  Event{Kind: EventSessionClosed, Elapsed: elapsed, At: now},
		Action: ActionClose,
		Record: CompletedSession{Date: DateOf(now), DurationMinutes: elapsed},
	}
}
