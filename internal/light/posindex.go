// Package light implements the reachability engine: a breadth-first
// traversal of a region from an origin cell, using sub-block
// occupancy to decide where light can see and move, plus the output
// assembly (pruning, recoloring, leak-path marking) built on its
// results.
package light

import (
	"fmt"

	"lito/internal/geom"
	"lito/internal/schem"
)

// PositionIndex is a dense boolean set over a region's bounds
// expanded by one cell of padding on every face. The padding lets the
// traversal probe one layer outside the structure, which is how leaks
// through the outer shell are found.
type PositionIndex struct {
	min, max   geom.Position
	sx, sy, sz int
	members    []bool
	count      int
}

// NewPositionIndex creates an empty index covering region plus the
// one-cell padding layer.
func NewPositionIndex(region *schem.Region) *PositionIndex {
	min, max := region.Bounds()
	min = min.Add(geom.Position{X: -1, Y: -1, Z: -1})
	max = max.Add(geom.Position{X: 1, Y: 1, Z: 1})

	ix := &PositionIndex{
		min: min,
		max: max,
		sx:  max.X - min.X + 1,
		sy:  max.Y - min.Y + 1,
		sz:  max.Z - min.Z + 1,
	}
	ix.members = make([]bool, ix.sx*ix.sy*ix.sz)
	return ix
}

// InBounds reports whether pos lies inside the padded box.
func (ix *PositionIndex) InBounds(pos geom.Position) bool {
	return pos.X >= ix.min.X && pos.X <= ix.max.X &&
		pos.Y >= ix.min.Y && pos.Y <= ix.max.Y &&
		pos.Z >= ix.min.Z && pos.Z <= ix.max.Z
}

// Insert adds pos to the set. The padded box is derived from the
// region's own bounds and must accommodate every position the
// traversal can produce, so an out-of-box insert is a bounds bug and
// panics.
func (ix *PositionIndex) Insert(pos geom.Position) {
	if !ix.InBounds(pos) {
		panic(fmt.Sprintf("light: insert at %v outside padded box %v..%v", pos, ix.min, ix.max))
	}
	idx := ix.index(pos)
	if !ix.members[idx] {
		ix.members[idx] = true
		ix.count++
	}
}

// Contains reports membership. Positions outside the padded box are
// simply absent.
func (ix *PositionIndex) Contains(pos geom.Position) bool {
	if !ix.InBounds(pos) {
		return false
	}
	return ix.members[ix.index(pos)]
}

// Len returns the number of positions in the set.
func (ix *PositionIndex) Len() int {
	return ix.count
}

func (ix *PositionIndex) index(pos geom.Position) int {
	ax := pos.X - ix.min.X
	ay := pos.Y - ix.min.Y
	az := pos.Z - ix.min.Z
	return ax + az*ix.sx + ay*ix.sz*ix.sx
}
