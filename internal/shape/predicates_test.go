package shape

import (
	"testing"

	"lito/internal/geom"
)

func TestSolidBlocksEverything(t *testing.T) {
	for _, dir := range geom.Directions {
		if CanSee(Solid, dir) {
			t.Errorf("CanSee(Solid, %v) = true, want false", dir)
		}
		if CanMove(Solid, Empty, dir) {
			t.Errorf("CanMove(Solid, Empty, %v) = true, want false", dir)
		}
		if CanMove(Empty, Solid, dir) {
			t.Errorf("CanMove(Empty, Solid, %v) = true, want false", dir)
		}
	}
}

func TestEmptyPassesEverything(t *testing.T) {
	shapes := []Shape{Empty, Face(geom.Down), Face(geom.Up), Edge(geom.North, geom.East)}
	for _, dir := range geom.Directions {
		if !CanSee(Empty, dir) {
			t.Errorf("CanSee(Empty, %v) = false, want true", dir)
		}
		for _, other := range shapes {
			if !CanMove(Empty, other, dir) {
				t.Errorf("CanMove(Empty, %08b, %v) = false, want true", other, dir)
			}
		}
	}
}

func TestVerticalSlabPairs(t *testing.T) {
	bottomSlab := Face(geom.Down)
	topSlab := Face(geom.Up)

	// Closed seam: the lower cell's slab sits in its upper half and
	// the upper cell's slab in its lower half. Neither sight nor
	// movement crosses the boundary.
	if CanMove(topSlab, bottomSlab, geom.Up) {
		t.Errorf("light moved through a closed slab seam")
	}
	if CanSee(topSlab, geom.Up) {
		t.Errorf("upper-half slab should block sight upward")
	}

	// Illumination without passage: a bottom slab looking up at
	// another bottom slab. Its own top face is open, so the neighbor
	// is lit, but the neighbor's occupied bottom face closes every
	// octant pair.
	if !CanSee(bottomSlab, geom.Up) {
		t.Errorf("bottom slab should see upward")
	}
	if CanMove(bottomSlab, bottomSlab, geom.Up) {
		t.Errorf("light moved into a cell whose facing face is fully occupied")
	}

	// Open half-cells on both sides of the boundary leave a gap.
	if !CanMove(bottomSlab, topSlab, geom.Up) {
		t.Errorf("expected a gap between a bottom slab and the top slab above it")
	}
}

func TestCanMovePartialOverlap(t *testing.T) {
	// Two quarter columns on opposite sides of the shared face leave
	// two octant pairs fully open.
	left := Edge(geom.Up, geom.East)    // upper-east edge of lower block
	right := Edge(geom.Down, geom.West) // lower-west edge of upper block

	if !CanMove(left, right, geom.Up) {
		t.Errorf("expected a diagonal gap between complementary edge columns")
	}

	// Complementary halves that tile the whole face block movement.
	if CanMove(Face(geom.Up)&Face(geom.East), Face(geom.Down)&Face(geom.West), geom.Up) {
		// east half (upper) vs west half (lower) cover the full plane
		t.Errorf("expected complementary half-faces to block movement")
	}
}

func TestCanSeePartialFace(t *testing.T) {
	// A straight north-facing bottom stair fills its bottom face and
	// its north face; sight north is blocked, sight south is not.
	stair := Face(geom.Down) | Face(geom.North)
	if CanSee(stair, geom.North) {
		t.Errorf("straight stair should block sight toward its facing")
	}
	if !CanSee(stair, geom.South) {
		t.Errorf("straight stair should see away from its facing")
	}
	if CanSee(stair, geom.Down) {
		t.Errorf("bottom-half stair should block sight downward")
	}
	if !CanSee(stair, geom.Up) {
		t.Errorf("bottom-half stair should see upward")
	}
}
