package report_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/OpenOmics/HiIP/internal/domain"
	"github.com/OpenOmics/HiIP/internal/report"
)

func sampleConfig() domain.SheetConfig {
	table := domain.NewGroupTable()
	table.Add("GrpA", "Sample_A_rep1")
	table.Add("GrpA", "Sample_A_rep2")
	table.Add("GrpB", "Sample_B_rep1")
	return domain.SheetConfig{
		Groups: table,
		Contrasts: []domain.Contrast{
			{Left: "GrpA", Right: "GrpB"},
		},
	}
}

func TestJSONFormatter_Format(t *testing.T) {
	formatter := report.NewJSONFormatter(false)
	assert.Equal(t, "json", formatter.FileExtension())

	output, err := formatter.Format(sampleConfig())
	require.NoError(t, err)

	var doc struct {
		Groups     map[string][]string `json:"groups"`
		GroupOrder []string            `json:"group_order"`
		Contrasts  [][]string          `json:"contrasts"`
	}
	require.NoError(t, json.Unmarshal(output, &doc))

	assert.Equal(t, []string{"Sample_A_rep1", "Sample_A_rep2"}, doc.Groups["GrpA"])
	assert.Equal(t, []string{"GrpA", "GrpB"}, doc.GroupOrder)
	assert.Equal(t, [][]string{{"GrpA", "GrpB"}}, doc.Contrasts)
}

func TestJSONFormatter_PrettyPrint(t *testing.T) {
	compact, err := report.NewJSONFormatter(false).Format(sampleConfig())
	require.NoError(t, err)
	pretty, err := report.NewJSONFormatter(true).Format(sampleConfig())
	require.NoError(t, err)

	assert.NotContains(t, string(compact), "\n")
	assert.Contains(t, string(pretty), "\n  ")
}

func TestYAMLFormatter_Format(t *testing.T) {
	formatter := report.NewYAMLFormatter()
	assert.Equal(t, "yaml", formatter.FileExtension())

	output, err := formatter.Format(sampleConfig())
	require.NoError(t, err)

	var doc struct {
		Groups     map[string][]string `yaml:"groups"`
		GroupOrder []string            `yaml:"group_order"`
		Contrasts  [][]string          `yaml:"contrasts"`
	}
	require.NoError(t, yaml.Unmarshal(output, &doc))

	assert.Equal(t, []string{"Sample_B_rep1"}, doc.Groups["GrpB"])
	assert.Equal(t, []string{"GrpA", "GrpB"}, doc.GroupOrder)
	assert.Equal(t, [][]string{{"GrpA", "GrpB"}}, doc.Contrasts)
}

func TestFormatters_ZeroValueConfig(t *testing.T) {
	var config domain.SheetConfig

	output, err := report.NewJSONFormatter(false).Format(config)
	require.NoError(t, err)
	assert.JSONEq(t, `{"groups":{},"group_order":[]}`, string(output))

	output, err = report.NewYAMLFormatter().Format(config)
	require.NoError(t, err)
	assert.Contains(t, string(output), "groups:")
}

func TestFormatters_OmitEmptyContrasts(t *testing.T) {
	table := domain.NewGroupTable()
	table.Add("GrpA", "s1")
	config := domain.SheetConfig{Groups: table}

	output, err := report.NewJSONFormatter(false).Format(config)
	require.NoError(t, err)
	assert.NotContains(t, string(output), "contrasts")
}
