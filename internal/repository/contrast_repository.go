package repository

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/viant/afs"

	"github.com/OpenOmics/HiIP/internal/domain"
	"github.com/OpenOmics/HiIP/pkg/fileutil"
	"github.com/OpenOmics/HiIP/pkg/textutil"
)

// TSVContrastRepository implements the ContrastRepository interface for
// delimited comparison files (contrasts.tsv). Contrast files carry no
// header: every line is data.
type TSVContrastRepository struct {
	FileURL string
	Delim   string
	sink    domain.WarningSink
	fs      afs.Service
}

// NewTSVContrastRepository creates a new TSVContrastRepository. An
// empty delimiter defaults to tab and a nil sink discards warnings.
func NewTSVContrastRepository(fs afs.Service, fileURL string, delim string, sink domain.WarningSink) *TSVContrastRepository {
	if delim == "" {
		delim = "\t"
	}
	if sink == nil {
		sink = domain.NopSink{}
	}
	if fs == nil {
		fs = afs.New()
	}
	return &TSVContrastRepository{
		FileURL: fileURL,
		Delim:   delim,
		sink:    sink,
		fs:      fs,
	}
}

// Contrasts parses the comparison file into an ordered list of group
// pairs. The first two cells of each line name the groups to compare;
// extra cells are ignored. Duplicate pairs collapse to one entry while
// (A, B) and (B, A) stay distinct. Every referenced group must be in
// known; unknown names are collected across the whole file and reported
// together as a single ConfigError, in which case no pair list is
// returned.
func (r *TSVContrastRepository) Contrasts(ctx context.Context, known domain.GroupSet) ([]domain.Contrast, error) {
	reader := fileutil.NewDelimReader(r.fs, r.FileURL)

	var comparisons []domain.Contrast
	seen := make(map[domain.Contrast]bool)
	var undefined []string

	err := reader.EachLine(ctx, func(lineno int, line string) error {
		cells := textutil.SplitCells(line, r.Delim)
		for i, c := range cells {
			cells[i] = textutil.Clean(c)
		}
		if len(cells) < 2 {
			// Need two groups to tango. Usually means the file is not
			// actually delimited the expected way.
			r.sink.Warnf("Warning: %s is missing at least one group on line %d: %s", r.FileURL, lineno, strings.TrimSpace(line))
			r.sink.Warnf("\t  └── Skipping over line, check if line is tab separated...")
			return nil
		}
		left, right := cells[0], cells[1]
		if left == "" || right == "" {
			// skip over empty lines
			return nil
		}

		// Check the groups were defined already, avoids user errors
		// and spelling errors. Collect all of them and report at end.
		for _, g := range []string{left, right} {
			if !known.Has(g) {
				undefined = append(undefined, g)
			}
		}

		pair := domain.Contrast{Left: left, Right: right}
		if !seen[pair] {
			seen[pair] = true
			comparisons = append(comparisons, pair)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "parsing contrasts file")
	}

	if len(undefined) > 0 {
		return nil, &domain.ConfigError{
			File:   r.FileURL,
			Kind:   domain.KindUndefinedGroups,
			Detail: strings.Join(undefined, ","),
		}
	}
	return comparisons, nil
}
