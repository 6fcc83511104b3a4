package main

import (
	"encoding/json"
	"fmt"
	"strings"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatJSON  OutputFormat = "json"
	FormatHuman OutputFormat = "human"
)

// FormatResponse formats a response according to the specified format
func FormatResponse(resp interface{}, format OutputFormat) (string, error) {
	switch format {
	case FormatJSON:
		return formatJSON(resp)
	case FormatHuman:
		return formatHuman(resp)
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// formatJSON formats the response as JSON
func formatJSON(resp interface{}) (string, error) {
	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(data), nil
}

// formatHuman formats the response in human-readable format
func formatHuman(resp interface{}) (string, error) {
	switch v := resp.(type) {
	case *MaterialsResponseCLI:
		return formatMaterialsHuman(v)
	case *ReplaceResponseCLI:
		return formatReplaceHuman(v)
	case *OptimizeResponseCLI:
		return formatOptimizeHuman(v)
	default:
		// For unknown types, fall back to JSON
		return formatJSON(resp)
	}
}

func formatMaterialsHuman(resp *MaterialsResponseCLI) (string, error) {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Materials for %s\n", resp.Name))
	b.WriteString(strings.Repeat("=", 40) + "\n")

	width := 0
	for _, e := range resp.Entries {
		if len(e.Block) > width {
			width = len(e.Block)
		}
	}
	for _, e := range resp.Entries {
		b.WriteString(fmt.Sprintf("  %-*s %6d\n", width, e.Block, e.Count))
	}

	b.WriteString(strings.Repeat("-", 40) + "\n")
	b.WriteString(fmt.Sprintf("  %-*s %6d\n", width, "total", resp.Total))
	return b.String(), nil
}

func formatReplaceHuman(resp *ReplaceResponseCLI) (string, error) {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Replaced %d block(s)\n", resp.Replaced))
	b.WriteString(fmt.Sprintf("  %s -> %s\n", resp.From, resp.To))
	b.WriteString(fmt.Sprintf("  wrote %s\n", resp.Output))
	return b.String(), nil
}

func formatOptimizeHuman(resp *OptimizeResponseCLI) (string, error) {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Optimized %s\n", resp.Name))
	b.WriteString(strings.Repeat("=", 40) + "\n")

	for _, r := range resp.Regions {
		b.WriteString(fmt.Sprintf("Region %q\n", r.Region))
		if r.Skipped {
			b.WriteString("  skipped: no origin block\n")
			continue
		}
		b.WriteString(fmt.Sprintf("  origin:      %s\n", r.Origin))
		b.WriteString(fmt.Sprintf("  visited:     %d\n", r.Visited))
		b.WriteString(fmt.Sprintf("  reachable:   %d\n", r.Reachable))
		b.WriteString(fmt.Sprintf("  generations: %d\n", r.Generations))
		if r.LeakFound {
			b.WriteString(fmt.Sprintf("  LEAK: light reached the protected cell in %d step(s)\n", len(r.LeakPath)-1))
			for _, p := range r.LeakPath {
				b.WriteString(fmt.Sprintf("    %s\n", p))
			}
		} else if r.LeakChecked {
			b.WriteString("  no leak found\n")
		} else {
			b.WriteString(fmt.Sprintf("  pruned:      %d\n", r.Pruned))
		}
	}

	b.WriteString(strings.Repeat("-", 40) + "\n")
	b.WriteString(fmt.Sprintf("wrote %s\n", resp.Output))
	return b.String(), nil
}
