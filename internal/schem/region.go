package schem

import (
	"fmt"

	"lito/internal/geom"
)

// Region is an axis-aligned bounded box of blocks, stored as a block
// palette plus one palette index per cell. Palette index 0 is always
// air, matching the litematica format.
//
// The reachability engine treats a Region as immutable; Set is only
// called on clones produced for output assembly.
type Region struct {
	Name string

	min, max geom.Position

	palette    []Block
	paletteIdx map[string]int
	cells      []int
}

// NewRegion creates an empty (all-air) region spanning min..max
// inclusive on every axis.
func NewRegion(name string, min, max geom.Position) *Region {
	if max.X < min.X || max.Y < min.Y || max.Z < min.Z {
		min, max = normalizeBounds(min, max)
	}

	r := &Region{
		Name:       name,
		min:        min,
		max:        max,
		palette:    []Block{Air()},
		paletteIdx: map[string]int{Air().Key(): 0},
	}
	r.cells = make([]int, r.volume())
	return r
}

func normalizeBounds(a, b geom.Position) (geom.Position, geom.Position) {
	min := geom.Position{X: minInt(a.X, b.X), Y: minInt(a.Y, b.Y), Z: minInt(a.Z, b.Z)}
	max := geom.Position{X: maxInt(a.X, b.X), Y: maxInt(a.Y, b.Y), Z: maxInt(a.Z, b.Z)}
	return min, max
}

// Bounds returns the inclusive min and max corners.
func (r *Region) Bounds() (min, max geom.Position) {
	return r.min, r.max
}

// Contains reports whether pos lies inside the region's bounds.
func (r *Region) Contains(pos geom.Position) bool {
	return pos.X >= r.min.X && pos.X <= r.max.X &&
		pos.Y >= r.min.Y && pos.Y <= r.max.Y &&
		pos.Z >= r.min.Z && pos.Z <= r.max.Z
}

// Get returns the block at pos. Positions outside the bounds read as
// air.
func (r *Region) Get(pos geom.Position) Block {
	if !r.Contains(pos) {
		return Air()
	}
	return r.palette[r.cells[r.index(pos)]]
}

// Set writes the block at pos, extending the palette as needed.
// Writing outside the bounds is a bounds-computation bug and panics.
func (r *Region) Set(pos geom.Position, b Block) {
	if !r.Contains(pos) {
		panic(fmt.Sprintf("schem: set at %v outside region %q bounds %v..%v", pos, r.Name, r.min, r.max))
	}
	r.cells[r.index(pos)] = r.paletteIndex(b)
}

// ForEach calls fn for every cell of the region, in x-fastest order.
func (r *Region) ForEach(fn func(pos geom.Position, b Block)) {
	for y := r.min.Y; y <= r.max.Y; y++ {
		for z := r.min.Z; z <= r.max.Z; z++ {
			for x := r.min.X; x <= r.max.X; x++ {
				pos := geom.Position{X: x, Y: y, Z: z}
				fn(pos, r.palette[r.cells[r.index(pos)]])
			}
		}
	}
}

// Clone returns an independent deep copy used for output assembly.
func (r *Region) Clone() *Region {
	out := &Region{
		Name:       r.Name,
		min:        r.min,
		max:        r.max,
		palette:    make([]Block, len(r.palette)),
		paletteIdx: make(map[string]int, len(r.paletteIdx)),
		cells:      make([]int, len(r.cells)),
	}
	for i, b := range r.palette {
		out.palette[i] = cloneBlock(b)
	}
	for k, v := range r.paletteIdx {
		out.paletteIdx[k] = v
	}
	copy(out.cells, r.cells)
	return out
}

// Palette returns the block palette. Index 0 is air. The returned
// slice is owned by the region and must not be mutated.
func (r *Region) Palette() []Block {
	return r.palette
}

// CountBlocks returns the number of non-air cells.
func (r *Region) CountBlocks() int {
	n := 0
	for _, idx := range r.cells {
		if idx != 0 {
			n++
		}
	}
	return n
}

func cloneBlock(b Block) Block {
	if b.Properties == nil {
		return b
	}
	props := make(map[string]string, len(b.Properties))
	for k, v := range b.Properties {
		props[k] = v
	}
	return Block{Name: b.Name, Properties: props}
}

func (r *Region) volume() int {
	sx := r.max.X - r.min.X + 1
	sy := r.max.Y - r.min.Y + 1
	sz := r.max.Z - r.min.Z + 1
	return sx * sy * sz
}

// index maps a position to its offset in the flat cell array, using
// the litematica ordering: x fastest, then z, then y.
func (r *Region) index(pos geom.Position) int {
	sx := r.max.X - r.min.X + 1
	sz := r.max.Z - r.min.Z + 1
	ax := pos.X - r.min.X
	ay := pos.Y - r.min.Y
	az := pos.Z - r.min.Z
	return ax + az*sx + ay*sz*sx
}

func (r *Region) paletteIndex(b Block) int {
	key := b.Key()
	if idx, ok := r.paletteIdx[key]; ok {
		return idx
	}
	r.palette = append(r.palette, cloneBlock(b))
	idx := len(r.palette) - 1
	r.paletteIdx[key] = idx
	return idx
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
