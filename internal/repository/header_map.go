package repository

import (
	"fmt"
	"strings"

	"github.com/OpenOmics/HiIP/internal/domain"
	"github.com/OpenOmics/HiIP/pkg/textutil"
)

// groupHeaderFields are the columns a groups file header must name
var groupHeaderFields = []string{"sample", "group"}

// columnIndex locates each required column in the first line of a file.
// Header cells are lowercased and quote/space trimmed before an exact
// match. When every required name is found the returned flag is true
// and the map holds each name's zero-based position.
//
// When any name is missing (or the line was not split by the expected
// delimiter, which looks the same), the file is assumed to have no
// header: a warning is emitted and each required name falls back to its
// own position in the required list, i.e. required[i] -> column i. The
// fallback covers every required name even when the file's rows turn
// out to be narrower; short rows are caught line by line during parsing.
func columnIndex(file string, header []string, required []string, sink domain.WarningSink) (map[string]int, bool) {
	cells := make([]string, len(header))
	for i, c := range header {
		cells[i] = textutil.CleanCell(strings.ToLower(c))
	}

	indices := make(map[string]int, len(required))
	found := true
	for _, name := range required {
		name = strings.ToLower(name)
		idx := -1
		for i, c := range cells {
			if c == name {
				idx = i
				break
			}
		}
		if idx < 0 {
			found = false
			break
		}
		indices[name] = idx
	}
	if found {
		return indices, true
	}

	assumed := make([]string, len(required))
	for i, name := range required {
		assumed[i] = fmt.Sprintf("%d=%s", i+1, name)
	}
	sink.Warnf("Warning: %s is missing at least one of the following column names: %s", file, strings.Join(required, ", "))
	sink.Warnf("\t  └── Making assumptions about columns in the file... %s", strings.Join(assumed, ", "))
	for i, name := range required {
		indices[strings.ToLower(name)] = i
	}
	return indices, false
}
