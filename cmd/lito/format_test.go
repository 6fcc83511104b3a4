package main

import (
	"path/filepath"
	"strings"
	"testing"

	"lito/internal/materials"
	"lito/internal/testutil"
)

func TestFormatResponse_JSON(t *testing.T) {
	resp := &MaterialsResponseCLI{
		File: "demo.litematic",
		Name: "demo",
		Entries: []materials.Entry{
			{Block: "minecraft:stone", Count: 10},
		},
		Total: 10,
	}

	result, err := FormatResponse(resp, FormatJSON)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(result, `"file": "demo.litematic"`) {
		t.Error("JSON output missing file field")
	}
	if !strings.Contains(result, `"minecraft:stone"`) {
		t.Error("JSON output missing entry block")
	}
}

func TestFormatResponse_UnsupportedFormat(t *testing.T) {
	resp := map[string]string{"key": "value"}

	_, err := FormatResponse(resp, "xml")
	if err == nil {
		t.Error("expected error for unsupported format")
	}
	if !strings.Contains(err.Error(), "unsupported format") {
		t.Errorf("error should mention unsupported format, got: %v", err)
	}
}

func TestFormatMaterialsHuman(t *testing.T) {
	resp := &MaterialsResponseCLI{
		File: "demo.litematic",
		Name: "demo",
		Entries: []materials.Entry{
			{Block: "minecraft:stone", Count: 64},
			{Block: "minecraft:oak_sign", Count: 3},
		},
		Total: 67,
	}

	result, err := FormatResponse(resp, FormatHuman)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(result, "Materials for demo") {
		t.Error("human output missing header")
	}
	if !strings.Contains(result, "minecraft:stone") || !strings.Contains(result, "64") {
		t.Error("human output missing stone entry")
	}
	if !strings.Contains(result, "total") || !strings.Contains(result, "67") {
		t.Error("human output missing total line")
	}
}

func TestGoldenMaterialsHuman(t *testing.T) {
	resp := &MaterialsResponseCLI{
		File: "demo.litematic",
		Name: "demo",
		Entries: []materials.Entry{
			{Block: "minecraft:stone", Count: 64},
			{Block: "minecraft:oak_sign", Count: 3},
		},
		Total: 67,
	}

	result, err := FormatResponse(resp, FormatHuman)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.CompareGolden(t, filepath.Join("testdata", "materials_human.golden"), []byte(result))
}

func TestFormatOptimizeHuman_Leak(t *testing.T) {
	resp := &OptimizeResponseCLI{
		Name:   "demo",
		Output: "out.litematic",
		Regions: []RegionResultCLI{
			{
				Region:      "main",
				Origin:      "(0, 0, 0)",
				Visited:     12,
				Reachable:   4,
				LeakChecked: true,
				LeakFound:   true,
				LeakPath:    []string{"(2, 1, 1)", "(1, 1, 1)", "(0, 1, 1)"},
			},
		},
	}

	result, err := FormatResponse(resp, FormatHuman)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(result, "LEAK") {
		t.Error("human output should flag the leak")
	}
	if !strings.Contains(result, "(2, 1, 1)") {
		t.Error("human output should list the leak path")
	}
}

func TestFormatOptimizeHuman_Skipped(t *testing.T) {
	resp := &OptimizeResponseCLI{
		Name:   "demo",
		Output: "out.litematic",
		Regions: []RegionResultCLI{
			{Region: "annex", Skipped: true},
		},
	}

	result, err := FormatResponse(resp, FormatHuman)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(result, "skipped") {
		t.Error("human output should mention the skipped region")
	}
}

func TestFormatResponse_UnknownTypeFallsBackToJSON(t *testing.T) {
	resp := struct {
		Name string `json:"name"`
	}{Name: "test"}

	result, err := FormatResponse(resp, FormatHuman)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(result, `"name": "test"`) {
		t.Error("unknown types should fall back to JSON")
	}
}
