package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	apperrors "rodomopo/internal/platform/errors"
)

const (
	DefaultMinimumBlockMinutes = 25
	DefaultDailyGoalMinutes    = 180
	DefaultBarWidth            = 20
	DefaultDateTimeLayout      = "02/01/2006--15:04:05"
	DefaultDateLayout          = "02/01/2006"
	DefaultOpenKeyword         = "OPEN"
	DefaultClosedKeyword       = "CLOSED"

	appDirName      = ".rodomopo"
	configDirName   = "rodomopo"
	statusFilename  = "status.txt"
	historyFilename = "timestamps.dat"
	configFilename  = "config.yaml"
)

// Config is built once per process and handed to every component that needs it.
type Config struct {
	AppDir      string
	StatusPath  string
	HistoryPath string
	ConfigPath  string

	DateTimeLayout string
	DateLayout     string
	OpenKeyword    string
	ClosedKeyword  string

	MinimumBlockMinutes int
	DailyGoalMinutes    int
	BarWidth            int
}

// UserFile mirrors config.yaml. Nil and empty fields keep their defaults.
type UserFile struct {
	MinimumBlockMinutes *int   `yaml:"minimum_work_block_duration_in_minutes"`
	DailyGoalMinutes    *int   `yaml:"daily_work_goal_in_minutes"`
	BarWidth            *int   `yaml:"bar_width,omitempty"`
	StatusFile          string `yaml:"status_file,omitempty"`
	HistoryFile         string `yaml:"history_file,omitempty"`
}

func New(homeDir, configDir string) (Config, error) {
	if homeDir == "" {
		return Config{}, fmt.Errorf("%w: home directory is required", apperrors.ErrInvalidConfig)
	}
	if configDir == "" {
		return Config{}, fmt.Errorf("%w: config directory is required", apperrors.ErrInvalidConfig)
	}
	appDir := filepath.Join(homeDir, appDirName)
	return Config{
		AppDir:              appDir,
		StatusPath:          filepath.Join(appDir, statusFilename),
		HistoryPath:         filepath.Join(appDir, historyFilename),
		ConfigPath:          filepath.Join(configDir, configDirName, configFilename),
		DateTimeLayout:      DefaultDateTimeLayout,
		DateLayout:          DefaultDateLayout,
		OpenKeyword:         DefaultOpenKeyword,
		ClosedKeyword:       DefaultClosedKeyword,
		MinimumBlockMinutes: DefaultMinimumBlockMinutes,
		DailyGoalMinutes:    DefaultDailyGoalMinutes,
		BarWidth:            DefaultBarWidth,
	}, nil
}

// FromEnvironment resolves the default locations for the current user.
func FromEnvironment() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve config directory: %w", err)
	}
	return New(home, configDir)
}

// Load overlays the user file at cfg.ConfigPath onto cfg. A missing file is
// not an error; the result is always validated.
func Load(cfg Config) (Config, error) {
	raw, err := os.ReadFile(cfg.ConfigPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, cfg.Validate()
		}
		return Config{}, fmt.Errorf("%w: read config: %w", apperrors.ErrStorage, err)
	}
	user, err := ParseUserFile(raw)
	if err != nil {
		return Config{}, err
	}
	cfg = cfg.Apply(user)
	return cfg, cfg.Validate()
}

func ParseUserFile(raw []byte) (UserFile, error) {
	user := UserFile{}
	decoder := yaml.NewDecoder(bytes.NewReader(raw))
	decoder.KnownFields(true)
	if err := decoder.Decode(&user); err != nil {
		if errors.Is(err, io.EOF) {
			return UserFile{}, nil
		}
		return UserFile{}, fmt.Errorf("%w: decode config: %w", apperrors.ErrInvalidConfig, err)
	}
	return user, nil
}

// Apply returns a copy of c with the user overrides set. Relative file
// paths are resolved against AppDir.
func (c Config) Apply(user UserFile) Config {
	if user.MinimumBlockMinutes != nil {
		c.MinimumBlockMinutes = *user.MinimumBlockMinutes
	}
	if user.DailyGoalMinutes != nil {
		c.DailyGoalMinutes = *user.DailyGoalMinutes
	}
	if user.BarWidth != nil {
		c.BarWidth = *user.BarWidth
	}
	if user.StatusFile != "" {
		c.StatusPath = c.resolve(user.StatusFile)
	}
	if user.HistoryFile != "" {
		c.HistoryPath = c.resolve(user.HistoryFile)
	}
	return c
}

func (c Config) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.AppDir, path)
}

func (c Config) Validate() error {
	if c.DailyGoalMinutes <= 0 {
		return fmt.Errorf("%w: daily goal must be positive, got %d", apperrors.ErrInvalidConfig, c.DailyGoalMinutes)
	}
	if c.MinimumBlockMinutes < 0 {
		return fmt.Errorf("%w: minimum block must not be negative, got %d", apperrors.ErrInvalidConfig, c.MinimumBlockMinutes)
	}
	if c.BarWidth < 1 {
		return fmt.Errorf("%w: bar width must be at least 1, got %d", apperrors.ErrInvalidConfig, c.BarWidth)
	}
	for name, kw := range map[string]string{"open keyword": c.OpenKeyword, "closed keyword": c.ClosedKeyword} {
		if kw == "" || strings.ContainsAny(kw, " \t\r\n") {
			return fmt.Errorf("%w: %s must be a single non-empty token, got %q", apperrors.ErrInvalidConfig, name, kw)
		}
	}
	if c.OpenKeyword == c.ClosedKeyword {
		return fmt.Errorf("%w: open and closed keywords must differ", apperrors.ErrInvalidConfig)
	}
	if c.DateTimeLayout == "" || c.DateLayout == "" {
		return fmt.Errorf("%w: date layouts are required", apperrors.ErrInvalidConfig)
	}
	if c.StatusPath == "" || c.HistoryPath == "" {
		return fmt.Errorf("%w: status and history paths are required", apperrors.ErrInvalidConfig)
	}
	return nil
}

// DefaultUserFile renders the config.yaml written on first run.
func DefaultUserFile() ([]byte, error) {
	minimum, goal := DefaultMinimumBlockMinutes, DefaultDailyGoalMinutes
	raw, err := yaml.Marshal(UserFile{MinimumBlockMinutes: &minimum, DailyGoalMinutes: &goal})
	if err != nil {
		return nil, fmt.Errorf("marshal default config: %w", err)
	}
	return raw, nil
}
