// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/pdiddy/seedmatch/pkg/types"
)

const envPrefix = "SEEDMATCH"

// loadConfig merges defaults, the config file already read into v, and
// SEEDMATCH_* environment variables (SEEDMATCH_MATCH_MIN_SCORE sets
// match.min_score) into an AppConfig.
func loadConfig(v *viper.Viper) (types.AppConfig, error) {
	def := types.DefaultAppConfig()
	v.SetDefault("store.data_dir", def.Store.DataDir)
	v.SetDefault("match.min_score", def.Match.MinScore)
	v.SetDefault("match.convergence_factor", def.Match.ConvergenceFactor)
	v.SetDefault("match.max_results", def.Match.MaxResults)
	v.SetDefault("log.json", def.Log.JSON)
	v.SetDefault("log.debug", def.Log.Debug)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg types.AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return types.AppConfig{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := validateConfig(cfg); err != nil {
		return types.AppConfig{}, err
	}
	return cfg, nil
}

func validateConfig(cfg types.AppConfig) error {
	if cfg.Match.MinScore < 0 || cfg.Match.MinScore > 100 {
		return fmt.Errorf("match.min_score must be between 0 and 100, got %d", cfg.Match.MinScore)
	}
	if err := checkConvergence(cfg.Match.ConvergenceFactor); err != nil {
		return fmt.Errorf("match.convergence_factor: %w", err)
	}
	if cfg.Match.MaxResults < 0 {
		return fmt.Errorf("match.max_results must not be negative, got %d", cfg.Match.MaxResults)
	}
	return nil
}

func checkConvergence(v int) error {
	if v < 0 || v > 100 {
		return fmt.Errorf("convergence factor must be between 0 and 100, got %d", v)
	}
	return nil
}
