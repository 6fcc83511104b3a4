package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"lito/internal/config"
	"lito/internal/schem"
	"lito/internal/transform"
)

var (
	replaceFrom   string
	replaceTo     string
	replaceFormat string
)

var replaceCmd = &cobra.Command{
	Use:   "replace <in> <out>",
	Short: "Replace every block of one type with another",
	Long: `Replace every block of one type with another.

Reads a .litematic file, swaps every cell whose block name matches --from for
the --to block, and writes the result to a new file. Defaults come from the
replace section of the config, so a bare invocation clears lime wool
scaffolding to air.

Examples:
  lito replace farm.litematic farm-out.litematic
  lito replace --from minecraft:glass --to minecraft:air farm.litematic open.litematic`,
	Args: cobra.ExactArgs(2),
	Run:  runReplace,
}

func init() {
	replaceCmd.Flags().StringVar(&replaceFrom, "from", "", "Block name to replace (default from config)")
	replaceCmd.Flags().StringVar(&replaceTo, "to", "", "Replacement block name (default from config)")
	replaceCmd.Flags().StringVar(&replaceFormat, "format", "human", "Output format (json, human)")
	rootCmd.AddCommand(replaceCmd)
}

func runReplace(cmd *cobra.Command, args []string) {
	start := time.Now()
	cfg := getConfig(nil)
	logger := newLogger(replaceFormat, cfg)

	from, to := replaceDefaults(cfg, replaceFrom, replaceTo)

	s, err := schem.Read(args[0])
	if err != nil {
		exitError(err)
	}

	replaced, count := transform.Replace(s, from, schem.Block{Name: to})
	nameOutput(replaced, args[1])

	if err := schem.Write(replaced, args[1]); err != nil {
		exitError(err)
	}

	resp := &ReplaceResponseCLI{
		Input:    args[0],
		Output:   args[1],
		From:     from,
		To:       to,
		Replaced: count,
	}

	output, err := FormatResponse(resp, OutputFormat(replaceFormat))
	if err != nil {
		exitError(err)
	}
	fmt.Println(output)

	logger.Debug("Replace completed", map[string]interface{}{
		"replaced": count,
		"duration": time.Since(start).Milliseconds(),
	})
}

// replaceDefaults fills unset from/to flags with the config's
// substitution, lime wool to air out of the box.
func replaceDefaults(cfg *config.Config, from, to string) (string, string) {
	if from == "" {
		from = cfg.Replace.From
	}
	if to == "" {
		to = cfg.Replace.To
	}
	return from, to
}

// ReplaceResponseCLI contains replace results for CLI output
type ReplaceResponseCLI struct {
	Input    string `json:"input"`
	Output   string `json:"output"`
	From     string `json:"from"`
	To       string `json:"to"`
	Replaced int    `json:"replaced"`
}
