package repository

import (
	"context"

	"github.com/pkg/errors"
	"github.com/viant/afs"

	"github.com/OpenOmics/HiIP/internal/domain"
	"github.com/OpenOmics/HiIP/pkg/fileutil"
	"github.com/OpenOmics/HiIP/pkg/textutil"
)

// TSVGroupRepository implements the GroupRepository interface for
// delimited sample sheets (groups.tsv / peakcall.tsv).
type TSVGroupRepository struct {
	FileURL string
	Delim   string
	sink    domain.WarningSink
	fs      afs.Service
}

// NewTSVGroupRepository creates a new TSVGroupRepository. An empty
// delimiter defaults to tab and a nil sink discards warnings.
func NewTSVGroupRepository(fs afs.Service, fileURL string, delim string, sink domain.WarningSink) *TSVGroupRepository {
	if delim == "" {
		delim = "\t"
	}
	if sink == nil {
		sink = domain.NopSink{}
	}
	if fs == nil {
		fs = afs.New()
	}
	return &TSVGroupRepository{
		FileURL: fileURL,
		Delim:   delim,
		sink:    sink,
		fs:      fs,
	}
}

// Groups parses the sample sheet into a group to samples mapping. The
// group cell of a row may list several comma or semicolon separated
// groups; the sample joins each of them. Malformed rows are reported to
// the warning sink and skipped, they never fail the parse. The only
// fatal condition is an empty file, returned as a ConfigError.
func (r *TSVGroupRepository) Groups(ctx context.Context) (*domain.GroupTable, error) {
	reader := fileutil.NewDelimReader(r.fs, r.FileURL)

	// Read just the first line to locate the sample and group columns
	first, ok, err := reader.FirstLine(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "reading groups file header")
	}
	if !ok {
		return nil, &domain.ConfigError{
			File:   r.FileURL,
			Kind:   domain.KindEmptyFile,
			Detail: "please add sample and group information to the file and try again",
		}
	}

	indices, hasHeader := columnIndex(r.FileURL, textutil.SplitCells(first, r.Delim), groupHeaderFields, r.sink)
	sIdx := indices["sample"]
	gIdx := indices["group"]
	width := sIdx + 1
	if gIdx >= width {
		width = gIdx + 1
	}

	table := domain.NewGroupTable()
	err = reader.EachLine(ctx, func(lineno int, line string) error {
		if hasHeader && lineno == 1 {
			// Skip over header and start parsing the file
			return nil
		}
		cells := textutil.SplitCells(line, r.Delim)
		if len(cells) < width {
			// Blank lines are skipped silently; anything else is a row
			// too narrow to hold both columns
			for _, c := range cells {
				if c != "" {
					r.sink.Warnf("Warning: Sample or Group column is missing for line %d: %v, skipping line...", lineno, cells)
					break
				}
			}
			return nil
		}

		sample := textutil.Clean(cells[sIdx])
		group := cells[gIdx]
		if sample == "" || group == "" {
			r.sink.Warnf("Warning: Sample or Group information is missing for line %d: %v, skipping line...", lineno, cells)
			return nil
		}

		for _, g := range textutil.SplitGroupTokens(group) {
			table.Add(g, sample)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "parsing groups file")
	}

	return table, nil
}
