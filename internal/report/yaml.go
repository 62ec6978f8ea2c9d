package report

import (
	"gopkg.in/yaml.v3"

	"github.com/OpenOmics/HiIP/internal/domain"
)

// YAMLFormatter formats a sheet configuration as YAML
type YAMLFormatter struct{}

func NewYAMLFormatter() *YAMLFormatter {
	return &YAMLFormatter{}
}

// Format implements the OutputFormatter interface for YAML
func (f *YAMLFormatter) Format(config domain.SheetConfig) ([]byte, error) {
	return yaml.Marshal(newDocument(config))
}

func (f *YAMLFormatter) FileExtension() string {
	return "yaml"
}
