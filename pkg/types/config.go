// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// StoreConfig holds settings for the local proposal database.
type StoreConfig struct {
	// DataDir is the directory containing seedmatch.db.
	DataDir string `json:"data_dir" yaml:"data_dir" mapstructure:"data_dir"`
}

// MatchConfig holds settings for the match command.
type MatchConfig struct {
	// MinScore is the lowest score a candidate needs to be reported (default 50).
	MinScore int `json:"min_score" yaml:"min_score" mapstructure:"min_score"`

	// ConvergenceFactor is the default 0-100 slider value: low favours
	// similar research, high favours cross-field combinations (default 50).
	ConvergenceFactor int `json:"convergence_factor" yaml:"convergence_factor" mapstructure:"convergence_factor"`

	// MaxResults caps the number of reported matches. Zero means no cap.
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results"`
}

// LogConfig selects the log encoding and level.
type LogConfig struct {
	JSON  bool `json:"json" yaml:"json" mapstructure:"json"`
	Debug bool `json:"debug" yaml:"debug" mapstructure:"debug"`
}

// AppConfig groups all configuration sections.
type AppConfig struct {
	Store StoreConfig `json:"store" yaml:"store" mapstructure:"store"`
	Match MatchConfig `json:"match" yaml:"match" mapstructure:"match"`
	Log   LogConfig   `json:"log" yaml:"log" mapstructure:"log"`
}

// DefaultAppConfig returns the configuration used when no file or flag
// overrides a value.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		Store: StoreConfig{DataDir: "data"},
		Match: MatchConfig{MinScore: 50, ConvergenceFactor: 50},
	}
}
