package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"rodomopo/internal/modules/worklog/domain"
	"rodomopo/internal/modules/worklog/service"
	apperrors "rodomopo/internal/platform/errors"
)

func TestTotalMinutesForDateSumsMatchingRecordsInAnyOrder(t *testing.T) {
	t.Parallel()
	history := &memHistory{lines: []string{
		"14/03/2024 30",
		"13/03/2024 120",
		"14/03/2024 45",
		"",
		"15/03/2024 10",
		"14/03/2024 5",
	}}
	aggregator := service.NewAggregator(history, historyCodec, nil)
	total, err := aggregator.TotalMinutesForDate(context.Background(), domain.Date{Year: 2024, Month: time.March, Day: 14})
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	if total != 80 {
		t.Fatalf("expected 80, got %d", total)
	}
	none, err := aggregator.TotalMinutesForDate(context.Background(), domain.Date{Year: 2024, Month: time.March, Day: 1})
	if err != nil {
		t.Fatalf("aggregate unmatched: %v", err)
	}
	if none != 0 {
		t.Fatalf("expected 0, got %d", none)
	}
}

func TestTotalMinutesForDateFailsOnCorruptLine(t *testing.T) {
	t.Parallel()
	history := &memHistory{lines: []string{"14/03/2024 30", "14/03/2024 oops", "14/03/2024 -1"}}
	_, err := service.NewAggregator(history, historyCodec, nil).TotalMinutesForDate(context.Background(), domain.Date{Year: 2024, Month: time.March, Day: 14})
	if !errors.Is(err, apperrors.ErrCorrupt) {
		t.Fatalf("expected corruption, got %v", err)
	}
	if !strings.Contains(err.Error(), "history line 2") {
		t.Fatalf("expected first bad line number in error, got %v", err)
	}
	var corruption *domain.CorruptionError
	if !errors.As(err, &corruption) || corruption.Kind != domain.KindBadDuration {
		t.Fatalf("expected bad duration, got %v", err)
	}
}

func TestRecordsAfterEngineClose(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 3, 14, 10, 30, 0, 0, time.UTC)
	status := &memStatus{line: "OPEN 14/03/2024--10:00:00"}
	history := &memHistory{}
	if _, err := newEngine(now, status, history).Step(context.Background()); err != nil {
		t.Fatalf("step: %v", err)
	}
	records, err := service.NewAggregator(history, historyCodec, nil).Records(context.Background())
	if err != nil {
		t.Fatalf("records: %v", err)
	}
	want := domain.CompletedSession{Date: domain.DateOf(now), DurationMinutes: 30}
	if len(records) != 1 || records[0] != want {
		t.Fatalf("expected %+v, got %+v", want, records)
	}
}
