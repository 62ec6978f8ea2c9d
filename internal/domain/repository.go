package domain

import "context"

// GroupRepository defines the interface for reading sample to group
// membership from a sample sheet.
type GroupRepository interface {
	// Groups parses the sample sheet into a GroupTable
	Groups(ctx context.Context) (*GroupTable, error)
}

// ContrastRepository defines the interface for reading group
// comparisons. Implementations validate every referenced group against
// the supplied set, which is why the groups file must be parsed first.
type ContrastRepository interface {
	// Contrasts parses the comparison file into an ordered pair list
	Contrasts(ctx context.Context, known GroupSet) ([]Contrast, error)
}
