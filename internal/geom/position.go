// Package geom provides the integer grid primitives shared by the
// shape model and the reachability engine: positions and the six
// face-adjacent directions.
package geom

import "fmt"

// Position identifies one cell of the voxel grid. It is comparable
// and used as a map key by value.
type Position struct {
	X, Y, Z int
}

// Add returns the position translated by other.
func (p Position) Add(other Position) Position {
	return Position{X: p.X + other.X, Y: p.Y + other.Y, Z: p.Z + other.Z}
}

// Step returns the neighboring position one cell away in dir.
func (p Position) Step(dir Direction) Position {
	return p.Add(dir.Offset())
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d, %d)", p.X, p.Y, p.Z)
}
