package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"lito/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage lito configuration",
	Long:  "View and manage lito configuration stored in .lito/config.json",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long: `Display the current lito configuration as JSON, merged from the
config file and the built-in defaults.

Examples:
  lito config show`,
	Run: runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Long: `Write the default configuration to .lito/config.json in the current
directory, refusing to overwrite an existing file.

Examples:
  lito config init`,
	Run: runConfigInit,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) {
	cfg := getConfig(nil)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		exitError(err)
	}
	fmt.Println(string(data))
}

func runConfigInit(cmd *cobra.Command, args []string) {
	cwd, err := os.Getwd()
	if err != nil {
		exitError(err)
	}

	path := filepath.Join(cwd, ".lito", "config.json")
	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(os.Stderr, "Error: %s already exists\n", path)
		os.Exit(1)
	}

	if err := config.DefaultConfig().Save(cwd); err != nil {
		exitError(err)
	}
	fmt.Printf("Wrote %s\n", path)
}
