package service

import (
	"context"
	"fmt"

	hclog "github.com/hashicorp/go-hclog"

	"rodomopo/internal/modules/worklog/domain"
	worklogout "rodomopo/internal/modules/worklog/port/out"
	"rodomopo/internal/platform/clock"
	"rodomopo/internal/platform/logging"
)

// SessionEngine applies domain.Decide to the stored status. Each Step does
// one status read, at most one status write and at most one history append.
type SessionEngine struct {
	clock        clock.Clock
	status       worklogout.StatusStore
	history      worklogout.HistoryStore
	statusCodec  domain.StatusCodec
	historyCodec domain.HistoryCodec
	policy       domain.Policy
	logger       hclog.Logger
}

func NewSessionEngine(
	clock clock.Clock,
	status worklogout.StatusStore,
	history worklogout.HistoryStore,
	statusCodec domain.StatusCodec,
	historyCodec domain.HistoryCodec,
	policy domain.Policy,
	logger hclog.Logger,
) *SessionEngine {
	return &SessionEngine{
		clock:        clock,
		status:       status,
		history:      history,
		statusCodec:  statusCodec,
		historyCodec: historyCodec,
		policy:       policy,
		logger:       logging.OrNull(logger).Named("engine"),
	}
}

func (e *SessionEngine) Current(ctx context.Context) (domain.SessionState, error) {
	line, err := e.status.ReadFirstLine(ctx)
	if err != nil {
		return domain.SessionState{}, err
	}
	state, err := e.statusCodec.Decode(line)
	if err != nil {
		return domain.SessionState{}, fmt.Errorf("decode status: %w", err)
	}
	return state, nil
}

func (e *SessionEngine) Step(ctx context.Context) (domain.Event, error) {
	state, err := e.Current(ctx)
	if err != nil {
		return domain.Event{}, err
	}
	now := e.clock.Now()
	decision := domain.Decide(state, now, e.policy)
	e.logger.Debug("decided transition", "state", state.String(), "event", decision.Event.Kind, "elapsed", decision.Event.Elapsed)
	if err := e.apply(ctx, decision); err != nil {
		return domain.Event{}, err
	}
	return decision.Event, nil
}

// ForceClose closes the open session as if it had met the minimum block.
// Callers invoke it after the user agreed to override BlockTooShort.
func (e *SessionEngine) ForceClose(ctx context.Context, elapsed int) (domain.Event, error) {
	now := e.clock.Now()
	decision := domain.CloseDecision(elapsed, now)
	e.logger.Info("forcing close", "elapsed", decision.Event.Elapsed)
	if err := e.apply(ctx, decision); err != nil {
		return domain.Event{}, err
	}
	return decision.Event, nil
}

func (e *SessionEngine) apply(ctx context.Context, decision domain.Decision) error {
	switch decision.Action {
	case domain.ActionOpen:
		if err := e.status.Overwrite(ctx, e.statusCodec.EncodeOpen(decision.Event.At)); err != nil {
			return fmt.Errorf("open session: %w", err)
		}
	case domain.ActionClose:
		if err := e.status.Overwrite(ctx, e.statusCodec.EncodeClosed()); err != nil {
			return fmt.Errorf("close session: %w", err)
		}
		if err := e.history.AppendLine(ctx, e.historyCodec.Encode(decision.Record)); err != nil {
			return fmt.Errorf("record session: %w", err)
		}
	}
	return nil
}
