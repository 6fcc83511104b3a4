package geom

import "fmt"

// Direction is one of the six face-adjacent offsets on the voxel grid.
type Direction int

const (
	Up Direction = iota
	Down
	North
	South
	East
	West
)

// Directions lists all six directions in a fixed evaluation order.
// The order affects which parent a traversal records for a position
// (first writer wins), not correctness.
var Directions = [6]Direction{Up, Down, North, South, East, West}

var directionOffsets = [6]Position{
	Up:    {X: 0, Y: 1, Z: 0},
	Down:  {X: 0, Y: -1, Z: 0},
	North: {X: 0, Y: 0, Z: -1},
	South: {X: 0, Y: 0, Z: 1},
	East:  {X: 1, Y: 0, Z: 0},
	West:  {X: -1, Y: 0, Z: 0},
}

var directionNames = [6]string{
	Up:    "up",
	Down:  "down",
	North: "north",
	South: "south",
	East:  "east",
	West:  "west",
}

// Offset returns the unit position offset for the direction.
func (d Direction) Offset() Position {
	return directionOffsets[d]
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

// String returns the lowercase block-property name of the direction.
func (d Direction) String() string {
	return directionNames[d]
}

// ParseDirection converts a block-property value (e.g. the "facing"
// property of stairs) into a Direction.
func ParseDirection(name string) (Direction, error) {
	for i, n := range directionNames {
		if n == name {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("unknown direction %q", name)
}
