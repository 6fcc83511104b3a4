// Package shape models sub-block occupancy. A block's shape is an
// 8-bit mask over the octants of the unit cube, derived from its type
// and properties; the CanSee/CanMove predicates compare the octants
// two shapes expose on a shared face.
package shape

import "lito/internal/geom"

// Shape is an occupancy mask over the 8 octants of a block. Bit
// layout: x + 2y + 4z, where x is 0=west 1=east, y is 0=bottom 1=top
// and z is 0=north 1=south.
type Shape uint8

const (
	// Empty has no solid presence on any face; every predicate treats
	// it as fully passable.
	Empty Shape = 0
	// Solid occupies all 8 octants and blocks every face.
	Solid Shape = 0xff
)

func octantBit(x, y, z int) Shape {
	return 1 << (x + y<<1 + z<<2)
}

// faces and edges are derived from direction offsets once at package
// init; predicates consult them on every evaluation.
var (
	faces [6]Shape
	edges [6][6]Shape
)

func init() {
	for _, dir := range geom.Directions {
		faces[dir] = computeFace(dir)
	}
	for _, a := range geom.Directions {
		for _, b := range geom.Directions {
			edges[a][b] = faces[a] & faces[b]
		}
	}
}

// computeFace selects the 4 octants whose coordinate along the
// direction's axis matches the direction's sign.
func computeFace(dir geom.Direction) Shape {
	off := dir.Offset()
	var s Shape
	for z := 0; z < 2; z++ {
		for y := 0; y < 2; y++ {
			for x := 0; x < 2; x++ {
				onFace := (off.X == 1 && x == 1) || (off.X == -1 && x == 0) ||
					(off.Y == 1 && y == 1) || (off.Y == -1 && y == 0) ||
					(off.Z == 1 && z == 1) || (off.Z == -1 && z == 0)
				if onFace {
					s |= octantBit(x, y, z)
				}
			}
		}
	}
	return s
}

// Face returns the mask of the 4 octants bordering dir.
func Face(dir geom.Direction) Shape {
	return faces[dir]
}

// Edge returns the 2 octants shared by the faces of a and b. For
// perpendicular horizontal directions this is the vertical edge
// column an outer stair corner occupies.
func Edge(a, b geom.Direction) Shape {
	return edges[a][b]
}

// axisWeight is the bit distance between the two octant layers along
// the direction's axis.
func axisWeight(dir geom.Direction) uint {
	switch dir {
	case geom.East, geom.West:
		return 1
	case geom.Up, geom.Down:
		return 2
	default:
		return 4
	}
}

func axisPositive(dir geom.Direction) bool {
	off := dir.Offset()
	return off.X+off.Y+off.Z > 0
}

// faceBits projects the shape's face in dir onto a 4-bit plane mask,
// so faces of opposite directions become directly comparable.
func faceBits(s Shape, dir geom.Direction) uint8 {
	f := s & faces[dir]
	if axisPositive(dir) {
		return uint8(f >> axisWeight(dir))
	}
	return uint8(f)
}
