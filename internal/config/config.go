package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the complete lito configuration
type Config struct {
	Logging  LoggingConfig  `json:"logging" mapstructure:"logging"`
	Optimize OptimizeConfig `json:"optimize" mapstructure:"optimize"`
	Replace  ReplaceConfig  `json:"replace" mapstructure:"replace"`
	Shapes   ShapesConfig   `json:"shapes" mapstructure:"shapes"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Format string `json:"format" mapstructure:"format"`
	Level  string `json:"level" mapstructure:"level"`
}

// OptimizeConfig contains defaults for the optimize command
type OptimizeConfig struct {
	OriginBlock  string `json:"originBlock" mapstructure:"originBlock"`
	KeepBoundary bool   `json:"keepBoundary" mapstructure:"keepBoundary"`
}

// ReplaceConfig contains defaults for the replace command. The
// out-of-the-box substitution clears lime wool scaffolding.
type ReplaceConfig struct {
	From string `json:"from" mapstructure:"from"`
	To   string `json:"to" mapstructure:"to"`
}

// ShapesConfig points at an optional occupancy catalog file
type ShapesConfig struct {
	CatalogPath string `json:"catalogPath" mapstructure:"catalogPath"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Format: "human",
			Level:  "info",
		},
		Optimize: OptimizeConfig{
			OriginBlock:  "minecraft:blue_wool",
			KeepBoundary: false,
		},
		Replace: ReplaceConfig{
			From: "minecraft:lime_wool",
			To:   "minecraft:air",
		},
		Shapes: ShapesConfig{
			CatalogPath: "",
		},
	}
}

// LoadConfig loads configuration from .lito/config.json under dir
func LoadConfig(dir string) (*Config, error) {
	v := viper.New()

	v.SetDefault("logging.format", "human")
	v.SetDefault("logging.level", "info")
	v.SetDefault("optimize.originBlock", "minecraft:blue_wool")
	v.SetDefault("optimize.keepBoundary", false)
	v.SetDefault("replace.from", "minecraft:lime_wool")
	v.SetDefault("replace.to", "minecraft:air")

	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(dir, ".lito"))

	if err := v.ReadInConfig(); err != nil {
		// If config doesn't exist, return default config
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the configuration to .lito/config.json under dir
func (c *Config) Save(dir string) error {
	configDir := filepath.Join(dir, ".lito")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(configDir, "config.json"), data, 0644)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	switch c.Logging.Format {
	case "", "human", "json":
	default:
		return &ConfigError{Field: "logging.format", Message: "must be \"human\" or \"json\""}
	}
	if c.Optimize.OriginBlock == "" {
		return &ConfigError{Field: "optimize.originBlock", Message: "must not be empty"}
	}
	if c.Replace.From == "" {
		return &ConfigError{Field: "replace.from", Message: "must not be empty"}
	}
	if c.Replace.To == "" {
		return &ConfigError{Field: "replace.to", Message: "must not be empty"}
	}
	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
