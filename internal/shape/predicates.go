package shape

import "lito/internal/geom"

// CanSee reports whether light can leave the from shape through its
// face in dir. Only a fully occupied face blocks sight; a partial
// shape still illuminates its neighbor.
func CanSee(from Shape, dir geom.Direction) bool {
	return faceBits(from, dir) != faceBits(Solid, dir)
}

// CanMove reports whether light can pass from one block into the
// next. The from shape's face in dir is compared octant-by-octant
// against the to shape's face in the opposite direction; movement
// needs at least one octant pair that is empty on both sides. Two
// half-slabs meeting at a seam therefore block movement even though
// neither face is fully occupied on its own.
func CanMove(from, to Shape, dir geom.Direction) bool {
	combined := faceBits(from, dir) | faceBits(to, dir.Opposite())
	return combined != faceBits(Solid, dir)
}
