package in

import (
	"context"
	"time"

	worklogdto "rodomopo/internal/modules/worklog/dto"
	worklogin "rodomopo/internal/modules/worklog/port/in"
)

type CLIHandler struct {
	usecase worklogin.Usecase
}

func NewCLIHandler(usecase worklogin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Step(ctx context.Context) (worklogdto.StepOutput, error) {
	return h.usecase.Step(ctx)
}

func (h CLIHandler) ForceClose(ctx context.Context, elapsed int) (worklogdto.StepOutput, error) {
	return h.usecase.ForceClose(ctx, worklogdto.ForceCloseInput{ElapsedMinutes: elapsed})
}

func (h CLIHandler) Status(ctx context.Context) (worklogdto.StatusOutput, error) {
	return h.usecase.Status(ctx)
}

func (h CLIHandler) Today(ctx context.Context) (worklogdto.ProgressOutput, error) {
	return h.usecase.Progress(ctx, worklogdto.ProgressInput{})
}

func (h CLIHandler) ProgressOn(ctx context.Context, day time.Time) (worklogdto.ProgressOutput, error) {
	return h.usecase.Progress(ctx, worklogdto.ProgressInput{Date: day})
}

func (h CLIHandler) Init(ctx context.Context) (worklogdto.InitOutput, error) {
	return h.usecase.Init(ctx)
}
