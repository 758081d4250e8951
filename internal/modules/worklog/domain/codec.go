package domain

import (
	"strconv"
	"strings"
	"time"
)

// StatusCodec maps the single status line to a SessionState.
type StatusCodec struct {
	OpenKeyword    string
	ClosedKeyword  string
	DateTimeLayout string
	Location       *time.Location
}

func (c StatusCodec) Decode(line string) (SessionState, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return SessionState{}, corrupt(KindUnknownStatus, line, nil)
	}
	switch fields[0] {
	case c.OpenKeyword:
		startedAt, err := time.ParseInLocation(c.DateTimeLayout, fields[1], location(c.Location))
		if err != nil {
			return SessionState{}, corrupt(KindBadTimestamp, line, err)
		}
		return OpenAt(startedAt), nil
	case c.ClosedKeyword:
		return Closed(), nil
	default:
		return SessionState{}, corrupt(KindUnknownStatus, line, nil)
	}
}

func (c StatusCodec) EncodeOpen(now time.Time) string {
	return c.OpenKeyword + " " + now.In(location(c.Location)).Format(c.DateTimeLayout)
}

func (c StatusCodec) EncodeClosed() string {
	return c.ClosedKeyword + " " + ClosedPayload
}

// Encode dispatches on the state variant.
func (c StatusCodec) Encode(state SessionState) string {
	if state.IsOpen() {
		return c.EncodeOpen(state.StartedAt())
	}
	return c.EncodeClosed()
}

// HistoryCodec maps one history line to a CompletedSession.
type HistoryCodec struct {
	DateLayout string
}

func (c HistoryCodec) Decode(line string) (CompletedSession, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return CompletedSession{}, corrupt(KindBadRecord, line, nil)
	}
	day, err := time.Parse(c.DateLayout, fields[0])
	if err != nil {
		return CompletedSession{}, corrupt(KindBadDate, line, err)
	}
	minutes, err := strconv.Atoi(fields[1])
	if err != nil {
		return CompletedSession{}, corrupt(KindBadDuration, line, err)
	}
	if minutes < 0 {
		return CompletedSession{}, corrupt(KindBadDuration, line, nil)
	}
	return CompletedSession{Date: DateOf(day), DurationMinutes: minutes}, nil
}

func (c HistoryCodec) Encode(session CompletedSession) string {
	return session.Date.Time(time.UTC).Format(c.DateLayout) + " " + strconv.Itoa(session.DurationMinutes)
}

func location(loc *time.Location) *time.Location {
	if loc == nil {
		return time.Local
	}
	return loc
}
