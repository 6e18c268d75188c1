package depfile

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"github.com/rios0rios0/depman/internal/domain/entities"
)

// TOMLReader decodes depfiles written in TOML: a [config] table and [[dependencies]] entries.
type TOMLReader struct{}

func NewTOMLReader() *TOMLReader { return &TOMLReader{} }

func (it *TOMLReader) Name() string { return "toml" }

func (it *TOMLReader) Extensions() []string { return []string{".toml"} }

func (it *TOMLReader) Read(data []byte, filename string) (*entities.Depfile, error) {
	var depfile entities.Depfile
	if err := toml.Unmarshal(data, &depfile); err != nil {
		return nil, fmt.Errorf("failed to parse depfile %s: %w", filename, err)
	}
	return &depfile, nil
}
