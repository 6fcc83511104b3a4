package light

import (
	"lito/internal/geom"
	"lito/internal/schem"
)

// rainbowPalette cycles through 16 wool/concrete colors, indexed by
// traversal generation.
var rainbowPalette = [16]string{
	"minecraft:red_wool",
	"minecraft:red_concrete",
	"minecraft:orange_wool",
	"minecraft:orange_concrete",
	"minecraft:yellow_wool",
	"minecraft:yellow_concrete",
	"minecraft:lime_wool",
	"minecraft:lime_concrete",
	"minecraft:cyan_wool",
	"minecraft:cyan_concrete",
	"minecraft:light_blue_wool",
	"minecraft:light_blue_concrete",
	"minecraft:blue_wool",
	"minecraft:blue_concrete",
	"minecraft:purple_wool",
	"minecraft:purple_concrete",
}

// leakMarkerBlock highlights the path a leak took.
const leakMarkerBlock = "minecraft:red_wool"

func rainbowBlock(gen int) schem.Block {
	return schem.Block{Name: rainbowPalette[gen%len(rainbowPalette)]}
}

// markLeakPath walks the parent chain from the target back toward
// the origin, writing the marker block along the way, and returns the
// chain. It stops at a self-parent or a missing entry; positions in
// the padding layer are part of the chain but are never written to
// the output.
func markLeakPath(output *schem.Region, parents map[geom.Position]geom.Position, target, origin geom.Position) []geom.Position {
	path := []geom.Position{target}

	current := target
	for {
		parent, ok := parents[current]
		if !ok || parent == current {
			break
		}
		if output.Contains(current) && current != target && current != origin {
			output.Set(current, schem.Block{Name: leakMarkerBlock})
		}
		current = parent
		path = append(path, current)
	}
	return path
}

// prune replaces every in-bounds cell the light never saw with air.
// Cells that are already air are left alone, as is the origin's
// padding layer, which is not part of the real region. Returns the
// number of cells removed.
func prune(output *schem.Region, region *schem.Region, reachable *PositionIndex, keepBoundary bool) int {
	removed := 0
	region.ForEach(func(pos geom.Position, b schem.Block) {
		if b.IsAir() {
			return
		}
		if reachable.Contains(pos) {
			return
		}
		if keepBoundary && onBoundary(pos, region) {
			return
		}
		output.Set(pos, schem.Air())
		removed++
	})
	return removed
}

// onBoundary reports whether pos lies on the outermost coordinate of
// the region's bounds along any axis.
func onBoundary(pos geom.Position, region *schem.Region) bool {
	min, max := region.Bounds()
	return pos.X == min.X || pos.X == max.X ||
		pos.Y == min.Y || pos.Y == max.Y ||
		pos.Z == min.Z || pos.Z == max.Z
}
