package bootstrap

import (
	"time"

	hclog "github.com/hashicorp/go-hclog"

	worklogin "rodomopo/internal/modules/worklog/adapter/in"
	worklogout "rodomopo/internal/modules/worklog/adapter/out"
	"rodomopo/internal/modules/worklog/domain"
	"rodomopo/internal/modules/worklog/service"
	"rodomopo/internal/modules/worklog/usecase"
	"rodomopo/internal/platform/clock"
	"rodomopo/internal/platform/config"
	"rodomopo/internal/platform/logging"
)

type App struct {
	Config     config.Config
	WorklogCLI worklogin.CLIHandler
}

type Options struct {
	Clock    clock.Clock
	Location *time.Location
	Logger   hclog.Logger
}

func New(cfg config.Config, opts Options) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	clk := opts.Clock
	if clk == nil {
		clk = clock.SystemClock{}
	}
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	logger := logging.OrNull(opts.Logger)

	statusCodec := domain.StatusCodec{
		OpenKeyword:    cfg.OpenKeyword,
		ClosedKeyword:  cfg.ClosedKeyword,
		DateTimeLayout: cfg.DateTimeLayout,
		Location:       loc,
	}
	historyCodec := domain.HistoryCodec{DateLayout: cfg.DateLayout}
	policy := domain.Policy{MinimumBlockMinutes: cfg.MinimumBlockMinutes, DailyGoalMinutes: cfg.DailyGoalMinutes}

	statusStore := worklogout.NewFileStatusStore(cfg.StatusPath)
	historyStore := worklogout.NewFileHistoryStore(cfg.HistoryPath)

	engine := service.NewSessionEngine(clk, statusStore, historyStore, statusCodec, historyCodec, policy, logger)
	aggregator := service.NewAggregator(historyStore, historyCodec, logger)
	worklogUC := usecase.NewInteractor(engine, aggregator, clk, statusStore, historyStore, usecase.Options{
		DailyGoalMinutes: cfg.DailyGoalMinutes,
		BarWidth:         cfg.BarWidth,
		ClosedStatus:     statusCodec.EncodeClosed(),
	})

	logger.Debug("wired worklog", "status", cfg.StatusPath, "history", cfg.HistoryPath)
	return &App{
		Config:     cfg,
		WorklogCLI: worklogin.NewCLIHandler(worklogUC),
	}, nil
}
