// Package materials counts the block types used by a structure, the
// shopping list for building it in survival.
package materials

import (
	"sort"
	"strings"

	"lito/internal/geom"
	"lito/internal/schem"
)

// Entry is one line of the material report.
type Entry struct {
	Block string `json:"block"`
	Count int    `json:"count"`
}

// Report lists the blocks of a structure, most frequent first.
type Report struct {
	Entries []Entry `json:"entries"`
	Total   int     `json:"total"`
}

// Count tallies every non-air cell across all regions. Wall signs
// count as their item form, since placing a sign against a wall turns
// it into a different block.
func Count(s *schem.Structure) *Report {
	counts := map[string]int{}
	total := 0

	for _, region := range s.Regions {
		region.ForEach(func(_ geom.Position, b schem.Block) {
			if b.IsAir() {
				return
			}
			name := b.Name
			if strings.HasSuffix(name, "_wall_sign") {
				name = strings.Replace(name, "_wall_sign", "_sign", 1)
			}
			counts[name]++
			total++
		})
	}

	entries := make([]Entry, 0, len(counts))
	for name, count := range counts {
		entries = append(entries, Entry{Block: name, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Block < entries[j].Block
	})

	return &Report{Entries: entries, Total: total}
}
