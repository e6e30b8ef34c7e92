package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/verdanthealth/trackrules/internal/core/config"
)

var (
	configFile string
	dbURL      string
	logLevel   string
	logFormat  string
	locale     string
)

var rootCmd = &cobra.Command{
	Use:   "trackrules",
	Short: "Program rule translation tooling",
	Long:  `trackrules translates persisted program rule metadata into the engine-neutral rule representation consumed by the evaluation engine.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogger(logLevel, logFormat)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&dbURL, "db-url", "", "database connection URL (sqlite://path or postgres://...)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "json", "log format (json, console)")
	rootCmd.PersistentFlags().StringVar(&locale, "locale", "", "locale for item store descriptions")
}

func Execute() error {
	return rootCmd.Execute()
}

// loadConfig merges config file, environment and persistent flag overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if dbURL != "" {
		cfg.DatabaseURL = dbURL
	}
	if locale != "" {
		cfg.Locale = locale
	}

	return cfg, nil
}

// initLogger installs the global zap logger for all commands.
func initLogger(level, format string) error {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	zapCfg := zap.NewProductionConfig()
	if format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := zapCfg.Build()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}

	zap.ReplaceGlobals(logger)
	return nil
}
