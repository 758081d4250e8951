package in

import (
	"context"

	"rodomopo/internal/modules/worklog/dto"
)

type Usecase interface {
	Step(ctx context.Context) (dto.StepOutput, error)
	ForceClose(ctx context.Context, input dto.ForceCloseInput) (dto.StepOutput, error)
	Status(ctx context.Context) (dto.StatusOutput, error)
	Progress(ctx context.Context, input dto.ProgressInput) (dto.ProgressOutput, error)
	Init(ctx context.Context) (dto.InitOutput, error)
}
