package shape

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"lito/internal/geom"
)

// catalogFile is the on-disk shape catalog format:
//
//	solid = ["minecraft:packed_mud"]
//
//	[[override]]
//	block = "minecraft:iron_trapdoor"
//	occupancy = "empty"
type catalogFile struct {
	Solid    []string        `toml:"solid"`
	Override []overrideEntry `toml:"override"`
}

type overrideEntry struct {
	Block     string `toml:"block"`
	Occupancy string `toml:"occupancy"`
}

// LoadFile merges a TOML catalog file into the catalog, extending the
// solid table and the override table without touching the engine.
func (c *Catalog) LoadFile(path string) error {
	var file catalogFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return fmt.Errorf("loading shape catalog %s: %w", path, err)
	}

	for _, name := range file.Solid {
		c.AddSolid(name)
	}
	for _, entry := range file.Override {
		if entry.Block == "" {
			return fmt.Errorf("shape catalog %s: override without a block name", path)
		}
		s, err := parseOccupancy(entry.Occupancy)
		if err != nil {
			return fmt.Errorf("shape catalog %s: block %q: %w", path, entry.Block, err)
		}
		c.AddOverride(entry.Block, s)
	}
	return nil
}

func parseOccupancy(occupancy string) (Shape, error) {
	switch occupancy {
	case "full":
		return Solid, nil
	case "empty":
		return Empty, nil
	case "top":
		return Face(geom.Up), nil
	case "bottom":
		return Face(geom.Down), nil
	default:
		return 0, fmt.Errorf("unknown occupancy %q (want full, empty, top or bottom)", occupancy)
	}
}
