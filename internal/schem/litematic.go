package schem

import (
	"fmt"
	"math/bits"
	"sort"
	"time"

	"lito/internal/geom"
)

// Litematic container versions written by this package. Readers only
// require the fields below, so older files load as well.
const (
	litematicVersion     = 6
	minecraftDataVersion = 3700
)

// parseStructure maps a decoded litematic NBT root onto a Structure.
func parseStructure(root map[string]any) (*Structure, error) {
	s := &Structure{}

	if meta, ok := root["Metadata"].(map[string]any); ok {
		s.Name, _ = meta["Name"].(string)
		s.Description, _ = meta["Description"].(string)
		s.Author, _ = meta["Author"].(string)
	}

	regions, ok := root["Regions"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("missing Regions compound")
	}

	names := make([]string, 0, len(regions))
	for name := range regions {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		rc, ok := regions[name].(map[string]any)
		if !ok {
			return nil, fmt.Errorf("region %q is not a compound", name)
		}
		region, err := parseRegion(name, rc)
		if err != nil {
			return nil, fmt.Errorf("region %q: %w", name, err)
		}
		s.Regions = append(s.Regions, region)
	}
	return s, nil
}

func parseRegion(name string, rc map[string]any) (*Region, error) {
	pos, err := parseVec(rc["Position"])
	if err != nil {
		return nil, fmt.Errorf("Position: %w", err)
	}
	size, err := parseVec(rc["Size"])
	if err != nil {
		return nil, fmt.Errorf("Size: %w", err)
	}
	if size.X == 0 || size.Y == 0 || size.Z == 0 {
		return nil, fmt.Errorf("degenerate size %v", size)
	}

	// Litematica allows negative sizes; the region then extends from
	// pos+size+1 to pos on that axis.
	min, max := pos, pos.Add(shrinkToward(size))
	min, max = normalizeBounds(min, max)

	region := NewRegion(name, min, max)

	paletteTag, ok := rc["BlockStatePalette"].(nbtList)
	if !ok {
		return nil, fmt.Errorf("missing BlockStatePalette")
	}
	palette := make([]Block, 0, len(paletteTag.items))
	for i, item := range paletteTag.items {
		pc, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("palette entry %d is not a compound", i)
		}
		b, err := parseBlock(pc)
		if err != nil {
			return nil, fmt.Errorf("palette entry %d: %w", i, err)
		}
		palette = append(palette, b)
	}
	if len(palette) == 0 {
		return nil, fmt.Errorf("empty palette")
	}

	states, ok := rc["BlockStates"].([]int64)
	if !ok {
		return nil, fmt.Errorf("missing BlockStates")
	}

	volume := region.volume()
	indices, err := unpackStates(states, paletteBits(len(palette)), volume)
	if err != nil {
		return nil, err
	}

	// The file's palette order is not preserved; blocks round-trip
	// through Set so the region rebuilds its own palette with air at
	// index 0.
	i := 0
	var setErr error
	region.ForEach(func(p geom.Position, _ Block) {
		idx := indices[i]
		i++
		if idx >= len(palette) {
			setErr = fmt.Errorf("block state %d exceeds palette size %d", idx, len(palette))
			return
		}
		if setErr == nil && !palette[idx].IsAir() {
			region.Set(p, palette[idx])
		}
	})
	if setErr != nil {
		return nil, setErr
	}
	return region, nil
}

func parseBlock(pc map[string]any) (Block, error) {
	name, ok := pc["Name"].(string)
	if !ok || name == "" {
		return Block{}, fmt.Errorf("missing Name")
	}
	b := Block{Name: name}
	if props, ok := pc["Properties"].(map[string]any); ok && len(props) > 0 {
		b.Properties = make(map[string]string, len(props))
		for k, v := range props {
			sv, ok := v.(string)
			if !ok {
				return Block{}, fmt.Errorf("property %q is not a string", k)
			}
			b.Properties[k] = sv
		}
	}
	return b, nil
}

func parseVec(v any) (geom.Position, error) {
	c, ok := v.(map[string]any)
	if !ok {
		return geom.Position{}, fmt.Errorf("not a compound")
	}
	x, okX := c["x"].(int32)
	y, okY := c["y"].(int32)
	z, okZ := c["z"].(int32)
	if !okX || !okY || !okZ {
		return geom.Position{}, fmt.Errorf("missing x/y/z ints")
	}
	return geom.Position{X: int(x), Y: int(y), Z: int(z)}, nil
}

// shrinkToward converts a litematica size to the offset of the far
// corner relative to Position.
func shrinkToward(size geom.Position) geom.Position {
	adj := func(v int) int {
		if v < 0 {
			return v + 1
		}
		return v - 1
	}
	return geom.Position{X: adj(size.X), Y: adj(size.Y), Z: adj(size.Z)}
}

// buildRoot maps a Structure onto a litematic NBT root.
func buildRoot(s *Structure) map[string]any {
	regions := make(map[string]any, len(s.Regions))
	totalVolume := 0
	var encX, encY, encZ int
	for _, r := range s.Regions {
		regions[r.Name] = buildRegion(r)
		min, max := r.Bounds()
		totalVolume += r.volume()
		encX = maxInt(encX, max.X-min.X+1)
		encY = maxInt(encY, max.Y-min.Y+1)
		encZ = maxInt(encZ, max.Z-min.Z+1)
	}

	now := time.Now().UnixMilli()
	return map[string]any{
		"Version":              int32(litematicVersion),
		"MinecraftDataVersion": int32(minecraftDataVersion),
		"Metadata": map[string]any{
			"Name":        s.Name,
			"Description": s.Description,
			"Author":      s.Author,
			"RegionCount": int32(len(s.Regions)),
			"TotalBlocks": int32(s.TotalBlocks()),
			"TotalVolume": int32(totalVolume),
			"EnclosingSize": map[string]any{
				"x": int32(encX), "y": int32(encY), "z": int32(encZ),
			},
			"TimeCreated":  now,
			"TimeModified": now,
		},
		"Regions": regions,
	}
}

func buildRegion(r *Region) map[string]any {
	min, max := r.Bounds()

	paletteItems := make([]any, 0, len(r.palette))
	for _, b := range r.palette {
		paletteItems = append(paletteItems, buildBlock(b))
	}

	indices := make([]int, 0, r.volume())
	r.ForEach(func(pos geom.Position, _ Block) {
		indices = append(indices, r.cells[r.index(pos)])
	})

	return map[string]any{
		"Position": map[string]any{
			"x": int32(min.X), "y": int32(min.Y), "z": int32(min.Z),
		},
		"Size": map[string]any{
			"x": int32(max.X - min.X + 1),
			"y": int32(max.Y - min.Y + 1),
			"z": int32(max.Z - min.Z + 1),
		},
		"BlockStatePalette": nbtList{elem: tagCompound, items: paletteItems},
		"BlockStates":       packStates(indices, paletteBits(len(r.palette))),
	}
}

func buildBlock(b Block) map[string]any {
	out := map[string]any{"Name": b.Name}
	if len(b.Properties) > 0 {
		props := make(map[string]any, len(b.Properties))
		for k, v := range b.Properties {
			props[k] = v
		}
		out["Properties"] = props
	}
	return out
}

// paletteBits returns the per-entry bit width for a palette size,
// with the litematica minimum of 2.
func paletteBits(paletteSize int) int {
	n := bits.Len(uint(paletteSize - 1))
	if n < 2 {
		return 2
	}
	return n
}

// packStates packs palette indices into a long array. Unlike the
// post-1.16 chunk format, litematica entries span long boundaries.
func packStates(indices []int, bitWidth int) []int64 {
	totalBits := len(indices) * bitWidth
	out := make([]int64, (totalBits+63)/64)
	for i, idx := range indices {
		bitIndex := i * bitWidth
		word := bitIndex >> 6
		offset := uint(bitIndex & 63)
		out[word] |= int64(uint64(idx) << offset)
		if offset+uint(bitWidth) > 64 {
			out[word+1] |= int64(uint64(idx) >> (64 - offset))
		}
	}
	return out
}

// unpackStates reverses packStates for count entries.
func unpackStates(data []int64, bitWidth, count int) ([]int, error) {
	need := (count*bitWidth + 63) / 64
	if len(data) < need {
		return nil, fmt.Errorf("block state array too short: have %d longs, need %d", len(data), need)
	}

	mask := uint64(1)<<uint(bitWidth) - 1
	out := make([]int, count)
	for i := 0; i < count; i++ {
		bitIndex := i * bitWidth
		word := bitIndex >> 6
		offset := uint(bitIndex & 63)
		v := uint64(data[word]) >> offset
		if offset+uint(bitWidth) > 64 {
			v |= uint64(data[word+1]) << (64 - offset)
		}
		out[i] = int(v & mask)
	}
	return out, nil
}
