package service

import (
	"context"
	"fmt"
	"strings"

	hclog "github.com/hashicorp/go-hclog"

	"rodomopo/internal/modules/worklog/domain"
	worklogout "rodomopo/internal/modules/worklog/port/out"
	"rodomopo/internal/platform/logging"
)

type Aggregator struct {
	history worklogout.HistoryStore
	codec   domain.HistoryCodec
	logger  hclog.Logger
}

func NewAggregator(history worklogout.HistoryStore, codec domain.HistoryCodec, logger hclog.Logger) *Aggregator {
	return &Aggregator{history: history, codec: codec, logger: logging.OrNull(logger).Named("aggregator")}
}

// Records decodes the whole history. The first corrupt line aborts the scan;
// blank lines are not records and are skipped.
func (a *Aggregator) Records(ctx context.Context) ([]domain.CompletedSession, error) {
	lines, err := a.history.ReadLines(ctx)
	if err != nil {
		return nil, err
	}
	records := make([]domain.CompletedSession, 0, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		record, err := a.codec.Decode(line)
		if err != nil {
			return nil, fmt.Errorf("history line %d: %w", i+1, err)
		}
		records = append(records, record)
	}
	return records, nil
}

func (a *Aggregator) TotalMinutesForDate(ctx context.Context, day domain.Date) (int, error) {
	records, err := a.Records(ctx)
	if err != nil {
		return 0, err
	}
	total := domain.TotalMinutes(records, day)
	a.logger.Debug("aggregated history", "date", day.String(), "records", len(records), "minutes", total)
	return total, nil
}
