package shape

import (
	"math/bits"
	"testing"

	"lito/internal/geom"
)

func TestFaceHasFourOctants(t *testing.T) {
	var union Shape
	for _, dir := range geom.Directions {
		f := Face(dir)
		if n := bits.OnesCount8(uint8(f)); n != 4 {
			t.Errorf("Face(%v) has %d octants, want 4", dir, n)
		}
		if overlap := f & Face(dir.Opposite()); overlap != 0 {
			t.Errorf("Face(%v) overlaps its opposite: %08b", dir, overlap)
		}
		union |= f
	}
	if union != Solid {
		t.Errorf("union of all faces = %08b, want all octants", union)
	}
}

func TestEdge(t *testing.T) {
	// Perpendicular faces share exactly one edge column of 2 octants.
	if n := bits.OnesCount8(uint8(Edge(geom.North, geom.East))); n != 2 {
		t.Errorf("Edge(North, East) has %d octants, want 2", n)
	}
	// A face and itself share the whole face.
	if Edge(geom.Up, geom.Up) != Face(geom.Up) {
		t.Errorf("Edge(Up, Up) != Face(Up)")
	}
	// Opposite faces share nothing.
	if Edge(geom.Up, geom.Down) != 0 {
		t.Errorf("Edge(Up, Down) = %08b, want empty", Edge(geom.Up, geom.Down))
	}
}

func TestFaceBitsPairing(t *testing.T) {
	// The east face of one block and the west face of its neighbor
	// project onto the same plane mask, octant for octant.
	for _, dir := range geom.Directions {
		if faceBits(Solid, dir) != faceBits(Solid, dir.Opposite()) {
			t.Errorf("full faces of %v and %v do not align", dir, dir.Opposite())
		}
	}

	// A bottom slab's up-face projection must be empty while its
	// down-face projection is full.
	slab := Face(geom.Down)
	if faceBits(slab, geom.Up) != 0 {
		t.Errorf("bottom slab occupies its top face: %04b", faceBits(slab, geom.Up))
	}
	if faceBits(slab, geom.Down) != faceBits(Solid, geom.Down) {
		t.Errorf("bottom slab does not fill its bottom face")
	}
}
