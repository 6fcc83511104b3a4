package main

import (
	"os"

	"lito/internal/config"
	"lito/internal/logging"
	"lito/internal/version"

	"github.com/spf13/cobra"
)

var (
	// verboseFlag enables debug logging for all commands
	verboseFlag bool
	// quietFlag suppresses everything below error level
	quietFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "lito",
	Short: "lito - litematica light optimizer",
	Long: `lito analyzes litematica structures by flooding light from an origin cell
through the gaps between partially occupied blocks. It can strip every block the
light never reaches (turning a build into a light-tight shell with one opening),
detect and backtrace light leaks into a protected interior, and produce material
reports.`,
	Version: version.Version,
}

func init() {
	rootCmd.SetVersionTemplate("lito version {{.Version}}\n")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false,
		"Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false,
		"Only log errors")
}

// resolveLogLevel determines the effective log level from CLI flags, env var,
// and config. Precedence: CLI flag > LITO_LOG env var > config.json > info
func resolveLogLevel(cfg *config.Config) logging.LogLevel {
	// 1. CLI flags (highest priority)
	if verboseFlag {
		return logging.DebugLevel
	}
	if quietFlag {
		return logging.ErrorLevel
	}

	// 2. Environment variable
	if env := os.Getenv("LITO_LOG"); env != "" {
		return logging.ParseLevel(env)
	}

	// 3. Config file default
	if cfg != nil && cfg.Logging.Level != "" {
		return logging.ParseLevel(cfg.Logging.Level)
	}

	return logging.InfoLevel
}
