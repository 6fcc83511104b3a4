package materials

import (
	"testing"

	"lito/internal/geom"
	"lito/internal/schem"
)

func TestCount(t *testing.T) {
	r := schem.NewRegion("main", geom.Position{}, geom.Position{X: 4, Y: 0, Z: 0})
	r.Set(geom.Position{X: 0}, schem.Block{Name: "minecraft:stone"})
	r.Set(geom.Position{X: 1}, schem.Block{Name: "minecraft:stone"})
	r.Set(geom.Position{X: 2}, schem.Block{Name: "minecraft:dirt"})
	r.Set(geom.Position{X: 3}, schem.Block{Name: "minecraft:spruce_wall_sign"})
	// X: 4 stays air and must not be counted.

	s := schem.NewStructure("test", "", "")
	s.Regions = []*schem.Region{r}

	report := Count(s)
	if report.Total != 4 {
		t.Errorf("Total = %d, want 4", report.Total)
	}
	if len(report.Entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(report.Entries))
	}

	// Sorted by count descending, then name.
	if report.Entries[0].Block != "minecraft:stone" || report.Entries[0].Count != 2 {
		t.Errorf("first entry = %+v, want stone x2", report.Entries[0])
	}

	// Wall signs are normalized to their item form.
	found := false
	for _, e := range report.Entries {
		if e.Block == "minecraft:spruce_sign" {
			found = true
		}
		if e.Block == "minecraft:spruce_wall_sign" {
			t.Errorf("wall sign not normalized: %+v", e)
		}
	}
	if !found {
		t.Errorf("normalized sign entry missing: %+v", report.Entries)
	}
}

func TestCountTieBreaksByName(t *testing.T) {
	r := schem.NewRegion("main", geom.Position{}, geom.Position{X: 1, Y: 0, Z: 0})
	r.Set(geom.Position{X: 0}, schem.Block{Name: "minecraft:tuff"})
	r.Set(geom.Position{X: 1}, schem.Block{Name: "minecraft:andesite"})

	s := schem.NewStructure("test", "", "")
	s.Regions = []*schem.Region{r}

	report := Count(s)
	if report.Entries[0].Block != "minecraft:andesite" {
		t.Errorf("tie not broken alphabetically: %+v", report.Entries)
	}
}
