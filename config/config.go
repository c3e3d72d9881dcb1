// Package config holds engine-wide settings. Everything can be overridden
// through the environment with a MATADOR_ prefix, e.g.
// MATADOR_SEARCH_BUDGET=800ms.
package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	// StrategyParamsPath is the directory holding YAML weight presets.
	StrategyParamsPath string
	// StrategyPreset names the preset to load; empty means built-in
	// defaults.
	StrategyPreset string

	// SearchBudget is the wall-clock limit for one hard-mode search.
	SearchBudget time.Duration
	// BranchingCap limits how many candidates expand at each search level.
	BranchingCap int
	// BoneyardDepthThreshold: search depth is 2 while more tiles than this
	// remain undrawn, 3 otherwise.
	BoneyardDepthThreshold int

	// ThinkDelayBase is the artificial deliberation delay the AI player
	// waits before answering; the actual delay is jittered around it.
	ThinkDelayBase time.Duration

	LogLevel string
}

// DefaultConfig returns the stock settings.
func DefaultConfig() *Config {
	return &Config{
		StrategyParamsPath:     "./data/strategy",
		StrategyPreset:         "",
		SearchBudget:           1500 * time.Millisecond,
		BranchingCap:           4,
		BoneyardDepthThreshold: 4,
		ThinkDelayBase:         900 * time.Millisecond,
		LogLevel:               "info",
	}
}

// Load reads settings from the environment on top of the defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("matador")
	v.AutomaticEnv()

	def := DefaultConfig()
	v.SetDefault("strategy_params_path", def.StrategyParamsPath)
	v.SetDefault("strategy_preset", def.StrategyPreset)
	v.SetDefault("search_budget", def.SearchBudget)
	v.SetDefault("branching_cap", def.BranchingCap)
	v.SetDefault("boneyard_depth_threshold", def.BoneyardDepthThreshold)
	v.SetDefault("think_delay_base", def.ThinkDelayBase)
	v.SetDefault("log_level", def.LogLevel)

	return &Config{
		StrategyParamsPath:     v.GetString("strategy_params_path"),
		StrategyPreset:         v.GetString("strategy_preset"),
		SearchBudget:           v.GetDuration("search_budget"),
		BranchingCap:           v.GetInt("branching_cap"),
		BoneyardDepthThreshold: v.GetInt("boneyard_depth_threshold"),
		ThinkDelayBase:         v.GetDuration("think_delay_base"),
		LogLevel:               v.GetString("log_level"),
	}, nil
}
