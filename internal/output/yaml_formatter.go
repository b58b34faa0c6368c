package output

import (
	"gopkg.in/yaml.v3"
)

// YAMLFormatter serializes the report as YAML, matching the batch file style.
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string { return "yaml" }

func (y YAMLFormatter) Format(report *Report) ([]byte, error) {
	return yaml.Marshal(report)
}
