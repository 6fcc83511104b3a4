package schem

// Structure is a saved building: metadata plus one or more
// independent regions.
type Structure struct {
	Name        string
	Description string
	Author      string
	Regions     []*Region
}

// NewStructure creates a structure with the given metadata and no
// regions.
func NewStructure(name, description, author string) *Structure {
	return &Structure{
		Name:        name,
		Description: description,
		Author:      author,
	}
}

// TotalBlocks returns the number of non-air cells across all regions.
func (s *Structure) TotalBlocks() int {
	n := 0
	for _, r := range s.Regions {
		n += r.CountBlocks()
	}
	return n
}
