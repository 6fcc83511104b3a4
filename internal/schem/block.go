// Package schem implements the litematica structure model: blocks,
// palette-backed regions, and gzip-compressed NBT file I/O.
package schem

import (
	"sort"
	"strings"
)

// AirName is the block id of the empty cell. Positions outside a
// region's stored bounds read as air.
const AirName = "minecraft:air"

// Block is one palette entry: a namespaced id plus optional
// shape-defining properties (facing, half, shape, type, ...).
type Block struct {
	Name       string
	Properties map[string]string
}

// Air returns the empty block.
func Air() Block {
	return Block{Name: AirName}
}

// IsAir reports whether the block is the empty cell.
func (b Block) IsAir() bool {
	return b.Name == AirName
}

// Property returns the named property, or "" when absent.
func (b Block) Property(name string) string {
	if b.Properties == nil {
		return ""
	}
	return b.Properties[name]
}

// Key returns a canonical string for the block's (name, properties)
// pair, usable as a palette or shape-cache key.
func (b Block) Key() string {
	if len(b.Properties) == 0 {
		return b.Name
	}

	names := make([]string, 0, len(b.Properties))
	for k := range b.Properties {
		names = append(names, k)
	}
	sort.Strings(names)

	var sb strings.Builder
	sb.WriteString(b.Name)
	sb.WriteByte('[')
	for i, k := range names {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(b.Properties[k])
	}
	sb.WriteByte(']')
	return sb.String()
}
