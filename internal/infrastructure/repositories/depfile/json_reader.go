package depfile

import (
	"encoding/json"
	"fmt"

	"github.com/rios0rios0/depman/internal/domain/entities"
)

// JSONReader decodes the canonical depfile format.
type JSONReader struct{}

func NewJSONReader() *JSONReader { return &JSONReader{} }

func (it *JSONReader) Name() string { return "json" }

func (it *JSONReader) Extensions() []string { return []string{".json"} }

func (it *JSONReader) Read(data []byte, filename string) (*entities.Depfile, error) {
	var depfile entities.Depfile
	if err := json.Unmarshal(data, &depfile); err != nil {
		return nil, fmt.Errorf("failed to parse depfile %s: %w", filename, err)
	}
	return &depfile, nil
}
