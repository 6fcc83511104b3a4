package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"lito/internal/materials"
	"lito/internal/schem"
)

var materialsFormat string

var materialsCmd = &cobra.Command{
	Use:   "materials <file>",
	Short: "Count the blocks a structure is built from",
	Long: `Count the blocks a structure is built from.

Reads a .litematic file and prints each block type with how many times it
occurs, most frequent first. Wall signs are counted as their item form.

Examples:
  lito materials castle.litematic
  lito materials --format=json farm.litematic`,
	Args: cobra.ExactArgs(1),
	Run:  runMaterials,
}

func init() {
	materialsCmd.Flags().StringVar(&materialsFormat, "format", "human", "Output format (json, human)")
	rootCmd.AddCommand(materialsCmd)
}

func runMaterials(cmd *cobra.Command, args []string) {
	start := time.Now()
	cfg := getConfig(nil)
	logger := newLogger(materialsFormat, cfg)

	s, err := schem.Read(args[0])
	if err != nil {
		exitError(err)
	}

	report := materials.Count(s)

	resp := &MaterialsResponseCLI{
		File:    args[0],
		Name:    s.Name,
		Entries: report.Entries,
		Total:   report.Total,
	}

	output, err := FormatResponse(resp, OutputFormat(materialsFormat))
	if err != nil {
		exitError(err)
	}
	fmt.Println(output)

	logger.Debug("Materials report completed", map[string]interface{}{
		"file":     args[0],
		"types":    len(report.Entries),
		"total":    report.Total,
		"duration": time.Since(start).Milliseconds(),
	})
}

// MaterialsResponseCLI contains a material report for CLI output
type MaterialsResponseCLI struct {
	File    string            `json:"file"`
	Name    string            `json:"name"`
	Entries []materials.Entry `json:"entries"`
	Total   int               `json:"total"`
}
