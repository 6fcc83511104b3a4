package schem

import (
	"testing"

	"lito/internal/geom"
)

func TestRegionGetSet(t *testing.T) {
	r := NewRegion("main", geom.Position{X: -2, Y: 0, Z: -2}, geom.Position{X: 2, Y: 3, Z: 2})

	pos := geom.Position{X: -1, Y: 2, Z: 1}
	if got := r.Get(pos); !got.IsAir() {
		t.Fatalf("fresh region Get(%v) = %v, want air", pos, got)
	}

	stone := Block{Name: "minecraft:stone"}
	r.Set(pos, stone)
	if got := r.Get(pos); got.Name != stone.Name {
		t.Errorf("Get(%v) = %v, want stone", pos, got)
	}

	// Outside bounds reads as air rather than failing.
	outside := geom.Position{X: 100, Y: 0, Z: 0}
	if got := r.Get(outside); !got.IsAir() {
		t.Errorf("Get(outside) = %v, want air", got)
	}
	if r.Contains(outside) {
		t.Errorf("Contains(%v) = true, want false", outside)
	}
}

func TestRegionSetOutsidePanics(t *testing.T) {
	r := NewRegion("main", geom.Position{}, geom.Position{X: 1, Y: 1, Z: 1})

	defer func() {
		if recover() == nil {
			t.Errorf("Set outside bounds did not panic")
		}
	}()
	r.Set(geom.Position{X: 5, Y: 0, Z: 0}, Air())
}

func TestRegionPaletteDedup(t *testing.T) {
	r := NewRegion("main", geom.Position{}, geom.Position{X: 3, Y: 0, Z: 0})

	slab := Block{Name: "minecraft:stone_slab", Properties: map[string]string{"type": "bottom"}}
	r.Set(geom.Position{X: 0}, slab)
	r.Set(geom.Position{X: 1}, slab)
	r.Set(geom.Position{X: 2}, Block{Name: "minecraft:stone_slab", Properties: map[string]string{"type": "top"}})

	// air + bottom slab + top slab
	if got := len(r.Palette()); got != 3 {
		t.Errorf("palette size = %d, want 3", got)
	}
	if got := r.CountBlocks(); got != 3 {
		t.Errorf("CountBlocks() = %d, want 3", got)
	}
}

func TestRegionCloneIsIndependent(t *testing.T) {
	r := NewRegion("main", geom.Position{}, geom.Position{X: 2, Y: 2, Z: 2})
	pos := geom.Position{X: 1, Y: 1, Z: 1}
	r.Set(pos, Block{Name: "minecraft:stone"})

	clone := r.Clone()
	clone.Set(pos, Air())
	clone.Set(geom.Position{X: 0, Y: 0, Z: 0}, Block{Name: "minecraft:dirt"})

	if got := r.Get(pos); got.IsAir() {
		t.Errorf("mutating clone changed the original at %v", pos)
	}
	if got := r.Get(geom.Position{X: 0, Y: 0, Z: 0}); !got.IsAir() {
		t.Errorf("mutating clone changed the original at origin: %v", got)
	}
}

func TestRegionForEachOrder(t *testing.T) {
	r := NewRegion("main", geom.Position{X: 0, Y: 0, Z: 0}, geom.Position{X: 1, Y: 1, Z: 0})

	var visited []geom.Position
	r.ForEach(func(pos geom.Position, _ Block) {
		visited = append(visited, pos)
	})

	want := []geom.Position{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0}, {X: 1, Y: 1, Z: 0},
	}
	if len(visited) != len(want) {
		t.Fatalf("visited %d cells, want %d", len(visited), len(want))
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Errorf("visit %d = %v, want %v (x fastest, then z, then y)", i, visited[i], want[i])
		}
	}
}

func TestBlockKey(t *testing.T) {
	a := Block{Name: "minecraft:oak_stairs", Properties: map[string]string{"facing": "north", "half": "bottom"}}
	b := Block{Name: "minecraft:oak_stairs", Properties: map[string]string{"half": "bottom", "facing": "north"}}
	if a.Key() != b.Key() {
		t.Errorf("Key() not canonical: %q vs %q", a.Key(), b.Key())
	}

	c := Block{Name: "minecraft:oak_stairs", Properties: map[string]string{"facing": "south", "half": "bottom"}}
	if a.Key() == c.Key() {
		t.Errorf("distinct properties share key %q", a.Key())
	}
}
