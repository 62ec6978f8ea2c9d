package domain

// Contrast is an ordered pair of group names designating a comparison
// to perform downstream. Order matters: (A, B) and (B, A) are distinct
// comparisons.
type Contrast struct {
	Left  string
	Right string
}

// SheetConfig is the fully parsed pipeline configuration: group
// membership plus the comparisons to run between groups. Contrasts is
// nil when no contrasts file was supplied.
type SheetConfig struct {
	Groups    *GroupTable
	Contrasts []Contrast
}
