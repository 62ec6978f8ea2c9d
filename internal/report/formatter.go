package report

import (
	"encoding/json"

	"github.com/OpenOmics/HiIP/internal/domain"
)

// OutputFormatter defines the interface for rendering a parsed sheet
// configuration.
type OutputFormatter interface {
	Format(config domain.SheetConfig) ([]byte, error)
	FileExtension() string
}

// document is the serialized shape shared by all formatters. Contrasts
// keep the two-element pair layout the downstream pipeline expects.
type document struct {
	Groups     map[string][]string `json:"groups" yaml:"groups"`
	GroupOrder []string            `json:"group_order" yaml:"group_order"`
	Contrasts  [][]string          `json:"contrasts,omitempty" yaml:"contrasts,omitempty"`
}

func newDocument(config domain.SheetConfig) document {
	doc := document{
		Groups:     map[string][]string{},
		GroupOrder: []string{},
	}
	if config.Groups != nil {
		doc.Groups = config.Groups.Members()
		doc.GroupOrder = config.Groups.Names()
	}
	for _, c := range config.Contrasts {
		doc.Contrasts = append(doc.Contrasts, []string{c.Left, c.Right})
	}
	return doc
}

// JSONFormatter formats a sheet configuration as JSON
type JSONFormatter struct {
	PrettyPrint bool
}

func NewJSONFormatter(prettyPrint bool) *JSONFormatter {
	return &JSONFormatter{
		PrettyPrint: prettyPrint,
	}
}

// Format implements the OutputFormatter interface for JSON
func (f *JSONFormatter) Format(config domain.SheetConfig) ([]byte, error) {
	doc := newDocument(config)
	if f.PrettyPrint {
		return json.MarshalIndent(doc, "", "  ")
	}
	return json.Marshal(doc)
}

func (f *JSONFormatter) FileExtension() string {
	return "json"
}
