package usecase

import (
	"context"
	"fmt"

	"rodomopo/internal/modules/worklog/domain"
	worklogdto "rodomopo/internal/modules/worklog/dto"
	worklogin "rodomopo/internal/modules/worklog/port/in"
	worklogout "rodomopo/internal/modules/worklog/port/out"
	"rodomopo/internal/modules/worklog/service"
	"rodomopo/internal/platform/clock"
	apperrors "rodomopo/internal/platform/errors"
)

type Options struct {
	DailyGoalMinutes int
	BarWidth         int
	// ClosedStatus seeds the status file on Init.
	ClosedStatus string
}

type Interactor struct {
	engine     *service.SessionEngine
	aggregator *service.Aggregator
	clock      clock.Clock
	status     worklogout.Initializer
	history    worklogout.Initializer
	opts       Options
}

func NewInteractor(
	engine *service.SessionEngine,
	aggregator *service.Aggregator,
	clock clock.Clock,
	status worklogout.Initializer,
	history worklogout.Initializer,
	opts Options,
) worklogin.Usecase {
	return &Interactor{engine: engine, aggregator: aggregator, clock: clock, status: status, history: history, opts: opts}
}

func (i *Interactor) Step(ctx context.Context) (worklogdto.StepOutput, error) {
	event, err := i.engine.Step(ctx)
	if err != nil {
		return worklogdto.StepOutput{}, err
	}
	return stepOutput(event), nil
}

func (i *Interactor) ForceClose(ctx context.Context, input worklogdto.ForceCloseInput) (worklogdto.StepOutput, error) {
	if input.ElapsedMinutes < 0 {
		return worklogdto.StepOutput{}, fmt.Errorf("%w: elapsed minutes must be non-negative", apperrors.ErrInvalidInput)
	}
	state, err := i.engine.Current(ctx)
	if err != nil {
		return worklogdto.StepOutput{}, err
	}
	if !state.IsOpen() {
		return worklogdto.StepOutput{}, fmt.Errorf("%w: no open session to close", apperrors.ErrInvalidInput)
	}
	event, err := i.engine.ForceClose(ctx, input.ElapsedMinutes)
	if err != nil {
		return worklogdto.StepOutput{}, err
	}
	return stepOutput(event), nil
}

func (i *Interactor) Status(ctx context.Context) (worklogdto.StatusOutput, error) {
	state, err := i.engine.Current(ctx)
	if err != nil {
		return worklogdto.StatusOutput{}, err
	}
	if !state.IsOpen() {
		return worklogdto.StatusOutput{}, nil
	}
	return worklogdto.StatusOutput{
		Open:           true,
		StartedAt:      state.StartedAt(),
		ElapsedMinutes: domain.ElapsedMinutes(state.StartedAt(), i.clock.Now()),
	}, nil
}

func (i *Interactor) Progress(ctx context.Context, input worklogdto.ProgressInput) (worklogdto.ProgressOutput, error) {
	day := input.Date
	if day.IsZero() {
		day = i.clock.Now()
	}
	worked, err := i.aggregator.TotalMinutesForDate(ctx, domain.DateOf(day))
	if err != nil {
		return worklogdto.ProgressOutput{}, err
	}
	bar, err := domain.RenderProgress(float64(worked), float64(i.opts.DailyGoalMinutes), i.opts.BarWidth)
	if err != nil {
		return worklogdto.ProgressOutput{}, err
	}
	return worklogdto.ProgressOutput{
		Date:          day,
		WorkedMinutes: worked,
		GoalMinutes:   i.opts.DailyGoalMinutes,
		Bar:           bar,
	}, nil
}

func (i *Interactor) Init(ctx context.Context) (worklogdto.InitOutput, error) {
	statusCreated, err := i.status.Ensure(ctx, i.opts.ClosedStatus)
	if err != nil {
		return worklogdto.InitOutput{}, err
	}
	historyCreated, err := i.history.Ensure(ctx, "")
	if err != nil {
		return worklogdto.InitOutput{}, err
	}
	return worklogdto.InitOutput{StatusCreated: statusCreated, HistoryCreated: historyCreated}, nil
}

func stepOutput(event domain.Event) worklogdto.StepOutput {
	return worklogdto.StepOutput{Event: string(event.Kind), ElapsedMinutes: event.Elapsed, At: event.At}
}
