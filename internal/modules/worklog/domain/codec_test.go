package domain

import (
	"errors"
	"testing"
	"time"

	apperrors "rodomopo/internal/platform/errors"
)

func testStatusCodec() StatusCodec {
	return StatusCodec{OpenKeyword: "OPEN", ClosedKeyword: "CLOSED", DateTimeLayout: "02/01/2006--15:04:05", Location: time.UTC}
}

func TestStatusCodecDecodesOpenLine(t *testing.T) {
	t.Parallel()
	state, err := testStatusCodec().Decode("OPEN 14/03/2024--10:28:01")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := time.Date(2024, 3, 14, 10, 28, 1, 0, time.UTC)
	if !state.IsOpen() || !state.StartedAt().Equal(want) {
		t.Fatalf("expected open at %s, got %s", want, state)
	}
}

func TestStatusCodecDecodesClosedLineIgnoringPayload(t *testing.T) {
	t.Parallel()
	for _, line := range []string{"CLOSED TIMESTAMP", "CLOSED anything", "  CLOSED\tTIMESTAMP  "} {
		state, err := testStatusCodec().Decode(line)
		if err != nil {
			t.Fatalf("decode %q: %v", line, err)
		}
		if state.IsOpen() {
			t.Fatalf("expected closed for %q", line)
		}
	}
}

func TestStatusCodecRoundTrip(t *testing.T) {
	t.Parallel()
	codec := testStatusCodec()
	for _, state := range []SessionState{
		Closed(),
		OpenAt(time.Date(2024, 3, 14, 10, 28, 1, 0, time.UTC)),
		OpenAt(time.Date(1999, 12, 31, 23, 59, 59, 0, time.UTC)),
	} {
		got, err := codec.Decode(codec.Encode(state))
		if err != nil {
			t.Fatalf("decode %s: %v", state, err)
		}
		if !got.Equal(state) {
			t.Fatalf("round trip mismatch: %s vs %s", got, state)
		}
	}
}

func TestStatusCodecEncodesLines(t *testing.T) {
	t.Parallel()
	codec := testStatusCodec()
	if got := codec.EncodeOpen(time.Date(2024, 3, 14, 10, 28, 1, 0, time.UTC)); got != "OPEN 14/03/2024--10:28:01" {
		t.Fatalf("unexpected open line %q", got)
	}
	if got := codec.EncodeClosed(); got != "CLOSED TIMESTAMP" {
		t.Fatalf("unexpected closed line %q", got)
	}
}

func TestStatusCodecRejectsCorruptLines(t *testing.T) {
	t.Parallel()
	cases := []struct {
		line string
		kind CorruptionKind
	}{
		{"", KindUnknownStatus},
		{"OPEN", KindUnknownStatus},
		{"CLOSED", KindUnknownStatus},
		{"PAUSED TIMESTAMP", KindUnknownStatus},
		{"open 14/03/2024--10:28:01", KindUnknownStatus},
		{"OPEN 14/03/2024--10:28:01 extra", KindUnknownStatus},
		{"OPEN yesterday", KindBadTimestamp},
		{"OPEN 2024-03-14T10:28:01", KindBadTimestamp},
	}
	for _, tc := range cases {
		_, err := testStatusCodec().Decode(tc.line)
		if err == nil {
			t.Fatalf("expected corruption for %q", tc.line)
		}
		var corruption *CorruptionError
		if !errors.As(err, &corruption) || corruption.Kind != tc.kind {
			t.Fatalf("expected %s for %q, got %v", tc.kind, tc.line, err)
		}
		if !errors.Is(err, apperrors.ErrCorrupt) {
			t.Fatalf("expected ErrCorrupt for %q", tc.line)
		}
	}
}

func TestHistoryCodecDecodesLine(t *testing.T) {
	t.Parallel()
	record, err := HistoryCodec{DateLayout: "02/01/2006"}.Decode("21/02/2024 67")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if record.Date != (Date{Year: 2024, Month: time.February, Day: 21}) || record.DurationMinutes != 67 {
		t.Fatalf("unexpected record %+v", record)
	}
}

func TestHistoryCodecRoundTrip(t *testing.T) {
	t.Parallel()
	codec := HistoryCodec{DateLayout: "02/01/2006"}
	for _, record := range []CompletedSession{
		{Date: Date{Year: 2024, Month: time.February, Day: 21}, DurationMinutes: 67},
		{Date: Date{Year: 2024, Month: time.December, Day: 1}, DurationMinutes: 0},
		{Date: Date{Year: 2025, Month: time.January, Day: 31}, DurationMinutes: 179},
	} {
		line := codec.Encode(record)
		got, err := codec.Decode(line)
		if err != nil {
			t.Fatalf("decode %q: %v", line, err)
		}
		if got != record {
			t.Fatalf("round trip mismatch: %+v vs %+v", got, record)
		}
	}
	if line := codec.Encode(CompletedSession{Date: Date{Year: 2024, Month: time.March, Day: 4}, DurationMinutes: 30}); line != "04/03/2024 30" {
		t.Fatalf("unexpected history line %q", line)
	}
}

func TestHistoryCodecRejectsCorruptLines(t *testing.T) {
	t.Parallel()
	cases := []struct {
		line string
		kind CorruptionKind
	}{
		{"21/02/2024", KindBadRecord},
		{"21/02/2024 30 extra", KindBadRecord},
		{"2024-02-21 30", KindBadDate},
		{"31/02/2024 30", KindBadDate},
		{"21/02/2024 thirty", KindBadDuration},
		{"21/02/2024 -5", KindBadDuration},
		{"21/02/2024 2.5", KindBadDuration},
	}
	for _, tc := range cases {
		_, err := HistoryCodec{DateLayout: "02/01/2006"}.Decode(tc.line)
		var corruption *CorruptionError
		if !errors.As(err, &corruption) || corruption.Kind != tc.kind {
			t.Fatalf("expected %s for %q, got %v", tc.kind, tc.line, err)
		}
		if !errors.Is(err, apperrors.ErrCorrupt) {
			t.Fatalf("expected ErrCorrupt for %q", tc.line)
		}
	}
}
