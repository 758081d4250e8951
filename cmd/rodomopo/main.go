package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"rodomopo/internal/bootstrap"
	worklogdto "rodomopo/internal/modules/worklog/dto"
	"rodomopo/internal/platform/config"
	"rodomopo/internal/platform/logging"
	"rodomopo/internal/ui/components"
	"rodomopo/internal/ui/report"
)

const forceQuestion = "Do you want to betray your principles? [y]es or [n]o."

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootFlags struct {
	configPath string
	logLevel   string
}

// asker is swapped in tests; the default runs the bubbletea prompt.
type asker func(ctx context.Context, in io.Reader, out io.Writer, question string) (bool, error)

func newRootCmd() *cobra.Command {
	return newRootCmdWith(config.FromEnvironment, components.Ask)
}

func newRootCmdWith(base func() (config.Config, error), ask asker) *cobra.Command {
	flags := &rootFlags{}
	var force, noPrompt bool

	root := &cobra.Command{
		Use:           "rodomopo",
		Short:         "Track focused work blocks toward a daily goal",
		Long:          "Each run opens a work session, or closes the open one and reports today's progress.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd, flags, base)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			step, err := app.WorklogCLI.Step(ctx)
			if err != nil {
				return withInitHint(err)
			}
			_, _ = fmt.Fprintln(out, report.Event(step))

			if step.Event == worklogdto.EventBlockTooShort && !noPrompt {
				agreed := force
				if !agreed {
					agreed, err = ask(ctx, cmd.InOrStdin(), out, forceQuestion)
					if err != nil {
						return err
					}
				}
				if agreed {
					if _, err := app.WorklogCLI.ForceClose(ctx, step.ElapsedMinutes); err != nil {
						return err
					}
					_, _ = fmt.Fprintln(out, report.ForcedClose())
				} else {
					_, _ = fmt.Fprintln(out, report.KeptOpen())
				}
			}

			progress, err := app.WorklogCLI.Today(ctx)
			if err != nil {
				return withInitHint(err)
			}
			_, _ = fmt.Fprintf(out, "\n%s\n", report.Progress(progress, true))
			return nil
		},
	}
	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "path to config.yaml (default: user config dir)")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", logging.DefaultLevel, "log level: trace|debug|info|warn|error|off")
	root.Flags().BoolVar(&force, "force", false, "close a too-short block without asking")
	root.Flags().BoolVar(&noPrompt, "no-prompt", false, "never ask to close a too-short block")
	root.MarkFlagsMutuallyExclusive("force", "no-prompt")

	root.AddCommand(newStatusCmd(flags, base))
	root.AddCommand(newProgressCmd(flags, base))
	root.AddCommand(newInitCmd(flags, base))
	return root
}

func newStatusCmd(flags *rootFlags, base func() (config.Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current session and today's progress without changing anything",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd, flags, base)
			if err != nil {
				return err
			}
			status, err := app.WorklogCLI.Status(cmd.Context())
			if err != nil {
				return withInitHint(err)
			}
			progress, err := app.WorklogCLI.Today(cmd.Context())
			if err != nil {
				return withInitHint(err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n\n%s\n", report.Status(status), report.Progress(progress, true))
			return nil
		},
	}
}

func newProgressCmd(flags *rootFlags, base func() (config.Config, error)) *cobra.Command {
	var date string
	progress := &cobra.Command{
		Use:   "progress [--date dd/mm/yyyy]",
		Short: "Show worked minutes for a day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd, flags, base)
			if err != nil {
				return err
			}
			if strings.TrimSpace(date) == "" {
				out, err := app.WorklogCLI.Today(cmd.Context())
				if err != nil {
					return withInitHint(err)
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), report.Progress(out, true))
				return nil
			}
			day, err := time.ParseInLocation(app.Config.DateLayout, strings.TrimSpace(date), time.Local)
			if err != nil {
				return fmt.Errorf("--date: %w", err)
			}
			out, err := app.WorklogCLI.ProgressOn(cmd.Context(), day)
			if err != nil {
				return withInitHint(err)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), report.Progress(out, false))
			return nil
		},
	}
	progress.Flags().StringVar(&date, "date", "", "day to report, same format as the history file")
	return progress
}

func newInitCmd(flags *rootFlags, base func() (config.Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the status, history and config files if they are missing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd, flags, base)
			if err != nil {
				return err
			}
			out, err := app.WorklogCLI.Init(cmd.Context())
			if err != nil {
				return err
			}
			written, err := writeDefaultConfig(app.Config.ConfigPath)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), report.Init(out, app.Config.StatusPath, app.Config.HistoryPath, written, app.Config.ConfigPath))
			return nil
		},
	}
}

func loadApp(cmd *cobra.Command, flags *rootFlags, base func() (config.Config, error)) (*bootstrap.App, error) {
	logger, err := logging.New(cmd.ErrOrStderr(), flags.logLevel)
	if err != nil {
		return nil, err
	}
	cfg, err := base()
	if err != nil {
		return nil, err
	}
	if flags.configPath != "" {
		cfg.ConfigPath = flags.configPath
	}
	cfg, err = config.Load(cfg)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded config", "path", cfg.ConfigPath, "goal", cfg.DailyGoalMinutes, "minimum", cfg.MinimumBlockMinutes)
	return bootstrap.New(cfg, bootstrap.Options{Logger: logger.With("cmd", cmd.Name())})
}

func writeDefaultConfig(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	raw, err := config.DefaultUserFile()
	if err != nil {
		return false, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return false, fmt.Errorf("write config: %w", err)
	}
	return true, nil
}

func withInitHint(err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w (run `rodomopo init` first)", err)
	}
	return err
}
