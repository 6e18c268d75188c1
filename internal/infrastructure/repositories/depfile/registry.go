package depfile

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rios0rios0/depman/internal/domain/entities"
)

// Reader decodes one depfile format.
type Reader interface {
	// Name returns the format identifier (e.g. "json", "hcl").
	Name() string

	// Extensions returns the file extensions handled by this reader, with the leading dot.
	Extensions() []string

	// Read decodes the depfile content. The filename is only used in error messages.
	Read(data []byte, filename string) (*entities.Depfile, error)
}

// Registry manages all registered depfile readers, keyed by file extension.
type Registry struct {
	readers map[string]Reader
	order   []string
}

// NewRegistry creates an empty reader registry.
func NewRegistry() *Registry {
	return &Registry{
		readers: make(map[string]Reader),
	}
}

// Register adds a reader under each of its extensions. Registration order is the order in
// which depfiles are searched for.
func (r *Registry) Register(reader Reader) {
	for _, ext := range reader.Extensions() {
		ext = strings.ToLower(ext)
		if _, exists := r.readers[ext]; !exists {
			r.order = append(r.order, ext)
		}
		r.readers[ext] = reader
	}
}

// ForPath returns the reader handling the extension of the given path.
func (r *Registry) ForPath(path string) (Reader, error) {
	ext := strings.ToLower(filepath.Ext(path))
	reader, ok := r.readers[ext]
	if !ok {
		return nil, fmt.Errorf(
			"unsupported depfile format %q for %s (supported: %s)",
			ext, path, strings.Join(r.Extensions(), ", "),
		)
	}
	return reader, nil
}

// Extensions returns the registered extensions in registration order.
func (r *Registry) Extensions() []string {
	return append([]string(nil), r.order...)
}
