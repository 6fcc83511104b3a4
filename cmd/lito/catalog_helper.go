package main

import (
	"context"
	"fmt"
	"os"
	"sync"

	"lito/internal/config"
	"lito/internal/errors"
	"lito/internal/logging"
	"lito/internal/schem"
	"lito/internal/shape"
)

var (
	configOnce   sync.Once
	sharedConfig *config.Config
)

// getConfig returns the configuration loaded from the working directory,
// falling back to defaults when no config file exists. Loaded once.
func getConfig(logger *logging.Logger) *config.Config {
	configOnce.Do(func() {
		if logger == nil {
			logger = logging.NewLogger(logging.Config{
				Format: logging.HumanFormat,
				Level:  logging.WarnLevel,
			})
		}
		cwd, err := os.Getwd()
		if err != nil {
			sharedConfig = config.DefaultConfig()
			return
		}
		cfg, err := config.LoadConfig(cwd)
		if err != nil {
			logger.Warn("Failed to load config, using defaults", map[string]interface{}{
				"error": err.Error(),
			})
			cfg = config.DefaultConfig()
		}
		sharedConfig = cfg
	})
	return sharedConfig
}

// getCatalog builds the shape catalog, merging the occupancy file from the
// config or the --shapes flag when one is set.
func getCatalog(cfg *config.Config, catalogPath string, logger *logging.Logger) (*shape.Catalog, error) {
	catalog := shape.NewCatalog(logger)

	path := cfg.Shapes.CatalogPath
	if catalogPath != "" {
		path = catalogPath
	}
	if path != "" {
		if err := catalog.LoadFile(path); err != nil {
			return nil, err
		}
	}
	return catalog, nil
}

// newLogger creates a logger with the specified format.
func newLogger(format string, cfg *config.Config) *logging.Logger {
	logFormat := logging.HumanFormat
	if format == "json" {
		logFormat = logging.JSONFormat
	}
	return logging.NewLogger(logging.Config{
		Format: logFormat,
		Level:  resolveLogLevel(cfg),
	})
}

// nameOutput names the output structure after its target file, with
// the .litematic suffix stripped.
func nameOutput(s *schem.Structure, path string) {
	s.Name = schem.BaseName(path)
}

// newContext creates a new context for command execution.
func newContext() context.Context {
	return context.Background()
}

// exitError prints err on stderr, with its code and hint when it carries
// them, and exits non-zero.
func exitError(err error) {
	var coded *errors.Error
	if errors.As(err, &coded) {
		fmt.Fprintf(os.Stderr, "Error [%s]: %s\n", coded.Code, coded.Message)
		if coded.Hint != "" {
			fmt.Fprintf(os.Stderr, "Hint: %s\n", coded.Hint)
		}
	} else {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(1)
}
