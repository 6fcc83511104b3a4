package shape

import (
	"strings"

	"lito/internal/geom"
	"lito/internal/logging"
	"lito/internal/schem"
)

// defaultSolidBlocks lists block types treated as fully occupying
// their cell. Extend it per structure via a catalog file rather than
// editing this table.
var defaultSolidBlocks = []string{
	"minecraft:andesite",
	"minecraft:blue_concrete",
	"minecraft:bone_block",
	"minecraft:calcite",
	"minecraft:chiseled_quartz_block",
	"minecraft:cobblestone",
	"minecraft:copper_block",
	"minecraft:deepslate_bricks",
	"minecraft:deepslate_tiles",
	"minecraft:diorite",
	"minecraft:dirt",
	"minecraft:glowstone",
	"minecraft:gold_block",
	"minecraft:lapis_block",
	"minecraft:lime_wool",
	"minecraft:mushroom_stem",
	"minecraft:netherrack",
	"minecraft:oak_wood",
	"minecraft:ochre_froglight",
	"minecraft:polished_andesite",
	"minecraft:polished_diorite",
	"minecraft:quartz_block",
	"minecraft:quartz_bricks",
	"minecraft:quartz_pillar",
	"minecraft:raw_gold_block",
	"minecraft:red_nether_bricks",
	"minecraft:sea_lantern",
	"minecraft:smooth_quartz",
	"minecraft:smooth_stone",
	"minecraft:spruce_wood",
	"minecraft:stone",
	"minecraft:stone_bricks",
	"minecraft:tuff",
	"minecraft:yellow_glazed_terracotta",
}

// Catalog derives shapes from block types. Types without a catalog
// entry and outside the stair and slab families fall back to Empty,
// i.e. fully passable; partial blocks like torches, fences and
// trapdoors need an override entry to be modeled at all.
type Catalog struct {
	solid     map[string]bool
	overrides map[string]Shape
	cache     map[string]Shape
	logger    *logging.Logger
}

// NewCatalog creates a catalog seeded with the built-in solid block
// table. logger may be nil.
func NewCatalog(logger *logging.Logger) *Catalog {
	c := &Catalog{
		solid:     make(map[string]bool, len(defaultSolidBlocks)),
		overrides: map[string]Shape{},
		cache:     map[string]Shape{},
		logger:    logger,
	}
	for _, name := range defaultSolidBlocks {
		c.solid[name] = true
	}
	return c
}

// AddSolid marks a block type as fully solid.
func (c *Catalog) AddSolid(name string) {
	c.solid[name] = true
}

// AddOverride pins a block type to a fixed shape, bypassing the
// family rules.
func (c *Catalog) AddOverride(name string, s Shape) {
	c.overrides[name] = s
}

// Of returns the shape for a block. It is pure and total: every
// block maps to some shape, and distinct (type, properties) pairs are
// computed once and cached for the run.
func (c *Catalog) Of(b schem.Block) Shape {
	key := b.Key()
	if s, ok := c.cache[key]; ok {
		return s
	}
	s := c.derive(b)
	c.cache[key] = s
	return s
}

func (c *Catalog) derive(b schem.Block) Shape {
	if c.solid[b.Name] {
		return Solid
	}
	if strings.HasSuffix(b.Name, "_stairs") {
		return c.stairShape(b)
	}
	if strings.HasSuffix(b.Name, "_slab") {
		return slabShape(b.Property("type"))
	}
	if s, ok := c.overrides[b.Name]; ok {
		return s
	}
	return Empty
}

// stairShape derives occupancy from the half, shape and facing
// properties. A straight stair occupies its vertical half plus the
// full face it leans against; an outer corner only the edge column
// between its two directions; an inner corner the union of both full
// faces. The inner union over-occupies the true diagonal geometry;
// that is a deliberate approximation, erring on the side of blocking
// light.
func (c *Catalog) stairShape(b schem.Block) Shape {
	var s Shape

	switch b.Property("half") {
	case "top":
		s |= Face(geom.Up)
	case "bottom":
		s |= Face(geom.Down)
	}

	shapeProp := b.Property("shape")
	facing, err := geom.ParseDirection(b.Property("facing"))
	if err != nil {
		c.warn("stair block without a usable facing", b)
		return s
	}

	switch {
	case shapeProp == "straight":
		s |= Face(facing)
	case strings.HasPrefix(shapeProp, "outer_") || strings.HasPrefix(shapeProp, "inner_"):
		mode, rot, _ := strings.Cut(shapeProp, "_")
		second, ok := stairTurn(facing, rot)
		if !ok {
			c.warn("stair block with unexpected facing/shape pair", b)
			return s
		}
		if mode == "outer" {
			s |= Edge(facing, second)
		} else {
			s |= Face(facing) | Face(second)
		}
	}
	return s
}

// stairTurn resolves the second horizontal direction of a stair
// corner from its facing and turn side.
func stairTurn(facing geom.Direction, rot string) (geom.Direction, bool) {
	right := rot == "right"
	if !right && rot != "left" {
		return 0, false
	}
	switch facing {
	case geom.North:
		return pick(right, geom.East, geom.West), true
	case geom.East:
		return pick(right, geom.South, geom.North), true
	case geom.South:
		return pick(right, geom.West, geom.East), true
	case geom.West:
		return pick(right, geom.North, geom.South), true
	default:
		return 0, false
	}
}

func pick(right bool, onRight, onLeft geom.Direction) geom.Direction {
	if right {
		return onRight
	}
	return onLeft
}

func slabShape(slabType string) Shape {
	switch slabType {
	case "double":
		return Solid
	case "top":
		return Face(geom.Up)
	case "bottom":
		return Face(geom.Down)
	default:
		return Empty
	}
}

func (c *Catalog) warn(msg string, b schem.Block) {
	if c.logger == nil {
		return
	}
	c.logger.Warn(msg, logging.Fields{
		"block": b.Key(),
	})
}
