package repository

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"

	"github.com/OpenOmics/HiIP/internal/domain"
)

func groupSet(names ...string) domain.GroupSet {
	set := make(domain.GroupSet, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

func TestTSVContrastRepository_Contrasts(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()
	URL := "mem://localhost/repository/case101/contrasts.tsv"
	uploadFixture(t, fs, URL, "G2\tG1\nG4\tG3\nG5\tG1\n")

	sink := &recordSink{}
	pairs, err := NewTSVContrastRepository(fs, URL, "", sink).Contrasts(ctx, groupSet("G1", "G2", "G3", "G4", "G5"))
	require.NoError(t, err)
	assert.Empty(t, sink.warnings)

	assert.Equal(t, []domain.Contrast{
		{Left: "G2", Right: "G1"},
		{Left: "G4", Right: "G3"},
		{Left: "G5", Right: "G1"},
	}, pairs)
}

func TestTSVContrastRepository_UndefinedGroups(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()
	URL := "mem://localhost/repository/case102/contrasts.tsv"
	// Valid rows before and after the bad ones must not mask the failure
	uploadFixture(t, fs, URL, "G2\tG1\nG9\tG1\nG4\tG8\nG5\tG1\n")

	pairs, err := NewTSVContrastRepository(fs, URL, "", nil).Contrasts(ctx, groupSet("G1", "G2", "G3", "G4", "G5"))
	require.Error(t, err)
	assert.Nil(t, pairs, "no partial results alongside a fatal error")

	var cfgErr *domain.ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, domain.KindUndefinedGroups, cfgErr.Kind)
	assert.Equal(t, URL, cfgErr.File)
	assert.Equal(t, "G9,G8", cfgErr.Detail, "all undefined groups reported together")
}

func TestTSVContrastRepository_DuplicatesAndOrder(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()
	URL := "mem://localhost/repository/case103/contrasts.tsv"
	uploadFixture(t, fs, URL, "G1\tG2\nG2\tG1\nG1\tG2\nG1\tG2\n")

	pairs, err := NewTSVContrastRepository(fs, URL, "", nil).Contrasts(ctx, groupSet("G1", "G2"))
	require.NoError(t, err)

	assert.Equal(t, []domain.Contrast{
		{Left: "G1", Right: "G2"},
		{Left: "G2", Right: "G1"},
	}, pairs, "identical pairs collapse, reversed pairs stay distinct")
}

func TestTSVContrastRepository_MalformedLines(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()
	URL := "mem://localhost/repository/case104/contrasts.tsv"
	uploadFixture(t, fs, URL, strings.Join([]string{
		"G1 G2",        // space separated, one cell: warn + skip
		"G1\t",         // blank right side: silent skip
		"\tG2",         // blank left side: silent skip
		`"G1"	'G2'`,    // quoted cells cleaned
		"G2\tG1\tv2",   // extra columns ignored
	}, "\n") + "\n")

	sink := &recordSink{}
	pairs, err := NewTSVContrastRepository(fs, URL, "", sink).Contrasts(ctx, groupSet("G1", "G2"))
	require.NoError(t, err)

	require.Len(t, sink.warnings, 2)
	assert.Contains(t, sink.warnings[0], URL)
	assert.Contains(t, sink.warnings[0], "line 1")
	assert.Contains(t, sink.warnings[1], "check if line is tab separated")

	assert.Equal(t, []domain.Contrast{
		{Left: "G1", Right: "G2"},
		{Left: "G2", Right: "G1"},
	}, pairs)
}

func TestTSVContrastRepository_EmptyFile(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()
	URL := "mem://localhost/repository/case105/contrasts.tsv"
	uploadFixture(t, fs, URL, "")

	// An empty contrasts file is not an error: there is simply nothing
	// to compare
	pairs, err := NewTSVContrastRepository(fs, URL, "", nil).Contrasts(ctx, groupSet("G1"))
	require.NoError(t, err)
	assert.Empty(t, pairs)
}

func TestTSVContrastRepository_TestdataFile(t *testing.T) {
	pairs, err := NewTSVContrastRepository(nil, "../../test/testdata/contrasts.tsv", "", nil).
		Contrasts(context.Background(), groupSet("GrpA", "GrpB", "GrpAB"))
	require.NoError(t, err)

	assert.Equal(t, []domain.Contrast{
		{Left: "GrpA", Right: "GrpB"},
		{Left: "GrpAB", Right: "GrpA"},
	}, pairs)
}
