package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"lito/internal/errors"
	"lito/internal/geom"
	"lito/internal/light"
	"lito/internal/schem"
)

var (
	optimizeOrigin       string
	optimizeRainbow      bool
	optimizeInside       string
	optimizeKeepBoundary bool
	optimizeShapes       string
	optimizeFormat       string
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize <in> <out>",
	Short: "Strip every block light cannot reach from the origin",
	Long: `Strip every block light cannot reach from the origin.

Floods light from the origin cell through every gap the block shapes leave
open, including the one-cell layer around the build. Blocks the light never
illuminates are replaced with air, leaving a light-tight shell with exactly
one opening at the origin marker. Each region is searched for the origin
block type; regions without one pass through unchanged.

With --inside the run becomes a leak check instead: if light reaches the
given cell the path it took is marked in the output.

Examples:
  lito optimize farm.litematic farm-out.litematic
  lito optimize --origin minecraft:gold_block farm.litematic out.litematic
  lito optimize --rainbow farm.litematic colored.litematic
  lito optimize --inside 4,2,4 farm.litematic leak.litematic`,
	Args: cobra.ExactArgs(2),
	Run:  runOptimize,
}

func init() {
	optimizeCmd.Flags().StringVar(&optimizeOrigin, "origin", "", "Origin block type (default from config)")
	optimizeCmd.Flags().BoolVar(&optimizeRainbow, "rainbow", false, "Recolor air cells by traversal generation")
	optimizeCmd.Flags().StringVar(&optimizeInside, "inside", "", "Protected cell X,Y,Z; switches to leak detection")
	optimizeCmd.Flags().BoolVar(&optimizeKeepBoundary, "keep-boundary", false, "Never prune cells on the region boundary")
	optimizeCmd.Flags().StringVar(&optimizeShapes, "shapes", "", "Path to an occupancy catalog file")
	optimizeCmd.Flags().StringVar(&optimizeFormat, "format", "human", "Output format (json, human)")
	rootCmd.AddCommand(optimizeCmd)
}

func runOptimize(cmd *cobra.Command, args []string) {
	start := time.Now()
	cfg := getConfig(nil)
	logger := newLogger(optimizeFormat, cfg)

	originBlock := optimizeOrigin
	if originBlock == "" {
		originBlock = cfg.Optimize.OriginBlock
	}
	keepBoundary := optimizeKeepBoundary
	if !cmd.Flags().Changed("keep-boundary") {
		keepBoundary = cfg.Optimize.KeepBoundary
	}

	var target *geom.Position
	if optimizeInside != "" {
		pos, err := parsePosition(optimizeInside)
		if err != nil {
			exitError(err)
		}
		target = &pos
	}

	s, err := schem.Read(args[0])
	if err != nil {
		exitError(err)
	}

	catalog, err := getCatalog(cfg, optimizeShapes, logger)
	if err != nil {
		exitError(err)
	}
	engine := light.NewEngine(catalog, logger)
	ctx := newContext()

	out := schem.NewStructure(s.Name, s.Description, s.Author)
	nameOutput(out, args[1])
	resp := &OptimizeResponseCLI{
		Input:  args[0],
		Output: args[1],
		Name:   out.Name,
	}

	originFound := false
	for _, region := range s.Regions {
		origin, ok := findOrigin(region, originBlock)
		if !ok {
			logger.Warn("Region has no origin block, passing through", map[string]interface{}{
				"region": region.Name,
				"origin": originBlock,
			})
			out.Regions = append(out.Regions, region.Clone())
			resp.Regions = append(resp.Regions, RegionResultCLI{Region: region.Name, Skipped: true})
			continue
		}
		originFound = true

		opts := light.Options{
			Origin:       origin,
			Rainbow:      optimizeRainbow,
			KeepBoundary: keepBoundary,
		}
		if target != nil && region.Contains(*target) {
			opts.Target = target
		}

		result, err := engine.Run(ctx, region, opts)
		if err != nil {
			exitError(err)
		}

		out.Regions = append(out.Regions, result.Output)
		rr := RegionResultCLI{
			Region:      region.Name,
			Origin:      origin.String(),
			Visited:     result.Visited.Len(),
			Reachable:   result.Reachable.Len(),
			Pruned:      result.Pruned,
			Generations: result.MaxGeneration,
			LeakChecked: opts.Target != nil,
			LeakFound:   result.LeakFound,
		}
		rr.LeakPath = leakPathStrings(region, result.LeakPath)
		resp.Regions = append(resp.Regions, rr)
	}

	if !originFound {
		exitError(errors.New(errors.OriginNotFound,
			fmt.Sprintf("no region contains origin block %q", originBlock), nil).
			WithHint("place one origin block where the light should enter, or pass --origin"))
	}

	if err := schem.Write(out, args[1]); err != nil {
		exitError(err)
	}

	output, err := FormatResponse(resp, OutputFormat(optimizeFormat))
	if err != nil {
		exitError(err)
	}
	fmt.Println(output)

	logger.Debug("Optimize completed", map[string]interface{}{
		"regions":  len(s.Regions),
		"duration": time.Since(start).Milliseconds(),
	})
}

// findOrigin scans the region in storage order for the first cell holding
// the origin block type.
func findOrigin(region *schem.Region, name string) (geom.Position, bool) {
	var found geom.Position
	ok := false
	region.ForEach(func(pos geom.Position, b schem.Block) {
		if !ok && b.Name == name {
			found = pos
			ok = true
		}
	})
	return found, ok
}

// leakPathStrings renders a leak path for reporting, flagging the
// positions that lie outside the region, in the padding layer the
// light escaped through.
func leakPathStrings(region *schem.Region, path []geom.Position) []string {
	out := make([]string, 0, len(path))
	for _, p := range path {
		s := p.String()
		if !region.Contains(p) {
			s += " (outside)"
		}
		out = append(out, s)
	}
	return out
}

// parsePosition parses "X,Y,Z" into a position.
func parsePosition(s string) (geom.Position, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return geom.Position{}, fmt.Errorf("invalid position %q, want X,Y,Z", s)
	}
	coords := [3]int{}
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return geom.Position{}, fmt.Errorf("invalid position %q: %w", s, err)
		}
		coords[i] = n
	}
	return geom.Position{X: coords[0], Y: coords[1], Z: coords[2]}, nil
}

// OptimizeResponseCLI contains optimize results for CLI output
type OptimizeResponseCLI struct {
	Input   string            `json:"input"`
	Output  string            `json:"output"`
	Name    string            `json:"name"`
	Regions []RegionResultCLI `json:"regions"`
}

// RegionResultCLI contains one region's traversal results
type RegionResultCLI struct {
	Region      string   `json:"region"`
	Skipped     bool     `json:"skipped,omitempty"`
	Origin      string   `json:"origin,omitempty"`
	Visited     int      `json:"visited,omitempty"`
	Reachable   int      `json:"reachable,omitempty"`
	Pruned      int      `json:"pruned,omitempty"`
	Generations int      `json:"generations,omitempty"`
	LeakChecked bool     `json:"leakChecked,omitempty"`
	LeakFound   bool     `json:"leakFound,omitempty"`
	LeakPath    []string `json:"leakPath,omitempty"`
}
