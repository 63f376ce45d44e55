// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the seedmatch CLI. It manages research
// proposals in a local database, ranks published proposals against a
// target, and searches the researcher directory.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/seedmatch/internal/logging"
	"github.com/pdiddy/seedmatch/internal/store"
	"github.com/pdiddy/seedmatch/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	// appCfg is the merged configuration, loaded before each command runs.
	appCfg = types.DefaultAppConfig()

	logger = zap.NewNop()
)

// rootCmd is the base command for the seedmatch CLI.
var rootCmd = &cobra.Command{
	Use:   "seedmatch",
	Short: "Match research seed proposals across fields",
	Long: `seedmatch stores research seed proposals, publishes them for matching,
and ranks published proposals against a target by field, keyword, approach,
and objective similarity. It also searches a local researcher directory.

Data lives in a SQLite database under --data-dir (default ./data).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(viper.GetViper())
		if err != nil {
			return err
		}
		appCfg = cfg

		l, err := logging.New(cfg.Log.JSON, cfg.Log.Debug)
		if err != nil {
			return err
		}
		logger = l.With(logging.Command(cmd.CommandPath()))
		if used := viper.ConfigFileUsed(); used != "" {
			logger.Debug("using config file", zap.String("path", used))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./seedmatch.yaml or ~/.config/seedmatch/seedmatch.yaml)")
	rootCmd.PersistentFlags().String("data-dir", "data", "directory containing seedmatch.db")
	rootCmd.PersistentFlags().Bool("debug", false, "verbose/debug logging")
	rootCmd.PersistentFlags().Bool("json-log", false, "JSON format for logging")

	viper.BindPFlag("store.data_dir", rootCmd.PersistentFlags().Lookup("data-dir"))
	viper.BindPFlag("log.debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("log.json", rootCmd.PersistentFlags().Lookup("json-log"))
}

func initConfig() {
	// A missing .env is not an error.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "warning: reading .env: %v\n", err)
	}

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("seedmatch")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "seedmatch"))
		}
	}

	_ = viper.ReadInConfig()
}

// openStore opens the proposal database named by the loaded config.
func openStore() (*store.Store, error) {
	return store.Open(appCfg.Store, logger)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
