// Package transform applies simple block substitutions to a cloned
// structure.
package transform

import (
	"lito/internal/geom"
	"lito/internal/schem"
)

// Replace returns a copy of the structure with every cell whose type
// matches from replaced by to. The input is not modified. Properties
// are not carried over; the replacement block is written as given.
func Replace(s *schem.Structure, from string, to schem.Block) (*schem.Structure, int) {
	out := schem.NewStructure(s.Name, s.Description, s.Author)
	replaced := 0

	for _, region := range s.Regions {
		clone := region.Clone()
		region.ForEach(func(pos geom.Position, b schem.Block) {
			if b.Name == from {
				clone.Set(pos, to)
				replaced++
			}
		})
		out.Regions = append(out.Regions, clone)
	}
	return out, replaced
}
