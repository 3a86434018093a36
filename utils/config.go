package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/sparse-gol/model"
)

// ErrInvalidConfig is wrapped by every Config.Validate failure
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the configuration for the game
type Config struct {
	BoundaryMin         model.Coordinate `json:"boundary_min"`
	BoundaryMax         model.Coordinate `json:"boundary_max"`
	FrameRate           time.Duration    `json:"frame_rate"`
	MaxGenerations      int              `json:"max_generations"`
	AutoRestart         bool             `json:"auto_restart"`
	StagnationThreshold int              `json:"stagnation_threshold"`
	HistoryDepth        int              `json:"history_depth"`
	InjectionCount      int              `json:"injection_count"`
	RefreshInterval     int              `json:"refresh_interval"`
	RandomDensity       float64          `json:"random_density"`
	Seed                int64            `json:"seed"`
	Pattern             string           `json:"pattern"`
	ShowStatus          bool             `json:"show_status"`
	FitTerminal         bool             `json:"fit_terminal"`
	LogLevel            string           `json:"log_level"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		BoundaryMin:         model.Coordinate{Row: 0, Col: 0},
		BoundaryMax:         model.Coordinate{Row: 1000, Col: 1000},
		FrameRate:           100 * time.Millisecond,
		MaxGenerations:      0, // run until interrupted
		AutoRestart:         false,
		StagnationThreshold: 5,
		HistoryDepth:        model.DefaultHistoryDepth,
		InjectionCount:      3,
		RefreshInterval:     200,
		RandomDensity:       0.15,
		Seed:                0, // 0 seeds from the clock
		Pattern:             "interesting",
		ShowStatus:          false,
		FitTerminal:         true,
		LogLevel:            LevelInfo,
	}
}

// Boundary returns the configured renderable region
func (c Config) Boundary() model.Boundary {
	return model.Boundary{Min: c.BoundaryMin, Max: c.BoundaryMax}
}

// Validate rejects configurations the game cannot run with
func (c Config) Validate() error {
	if err := c.Boundary().Validate(); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "[Config.Validate] %v", err)
	}
	if c.FrameRate < 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Config.Validate] negative frame_rate: %v", c.FrameRate)
	}
	if c.MaxGenerations < 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Config.Validate] negative max_generations: %d", c.MaxGenerations)
	}
	if c.InjectionCount < 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Config.Validate] negative injection_count: %d", c.InjectionCount)
	}
	if c.RefreshInterval < 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Config.Validate] negative refresh_interval: %d", c.RefreshInterval)
	}
	if c.RandomDensity < 0 || c.RandomDensity > 1 {
		return errors.Wrapf(ErrInvalidConfig, "[Config.Validate] random_density out of [0,1]: %v", c.RandomDensity)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "[Config.Validate] %v", err)
	}
	return nil
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}
