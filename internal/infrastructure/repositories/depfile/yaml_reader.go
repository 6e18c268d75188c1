package depfile

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/depman/internal/domain/entities"
)

// YAMLReader decodes depfiles written in YAML, using the same keys as the JSON format.
type YAMLReader struct{}

func NewYAMLReader() *YAMLReader { return &YAMLReader{} }

func (it *YAMLReader) Name() string { return "yaml" }

func (it *YAMLReader) Extensions() []string { return []string{".yaml", ".yml"} }

func (it *YAMLReader) Read(data []byte, filename string) (*entities.Depfile, error) {
	var depfile entities.Depfile
	if err := yaml.Unmarshal(data, &depfile); err != nil {
		return nil, fmt.Errorf("failed to parse depfile %s: %w", filename, err)
	}
	return &depfile, nil
}
