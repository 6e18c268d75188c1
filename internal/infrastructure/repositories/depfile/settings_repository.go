package depfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/depman/internal/domain/entities"
)

const (
	// DefaultName is the depfile looked up when no path is given.
	DefaultName = "depman.json"

	dotenvName = ".env"
	baseName   = "depman"
)

// SettingsRepository loads Settings from a depfile in any registered format.
type SettingsRepository struct {
	registry *Registry
}

// NewSettingsRepository creates a SettingsRepository backed by the given reader registry.
func NewSettingsRepository(registry *Registry) *SettingsRepository {
	return &SettingsRepository{registry: registry}
}

// Find returns the depfile to use in dir: depman.json when present, otherwise the first
// depman.<ext> found in reader registration order.
func (it *SettingsRepository) Find(dir string) (string, error) {
	candidates := []string{DefaultName}
	for _, ext := range it.registry.Extensions() {
		candidates = append(candidates, baseName+ext)
	}

	for _, candidate := range candidates {
		path := filepath.Join(dir, candidate)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}

	return "", fmt.Errorf("could not find a depfile in %s (looked for %s)", dir, DefaultName)
}

// Load reads, expands and validates the depfile at the given path.
func (it *SettingsRepository) Load(depfilePath string) (*entities.Settings, error) {
	reader, err := it.registry.ForPath(depfilePath)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(depfilePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("could not find depfile %s", depfilePath)
		}
		return nil, fmt.Errorf("failed to read depfile %s: %w", depfilePath, err)
	}

	depfile, err := reader.Read(data, depfilePath)
	if err != nil {
		return nil, err
	}

	dotenv, err := readDotenv(filepath.Join(filepath.Dir(depfilePath), dotenvName))
	if err != nil {
		return nil, err
	}

	logger.Debugf("Loaded %s depfile %s with %d dependencies", reader.Name(), depfilePath, len(depfile.Dependencies))
	return entities.NewSettings(depfilePath, expander{dotenv: dotenv}.expandDepfile(depfile))
}

// readDotenv parses an optional .env file without touching the process environment.
func readDotenv(path string) (map[string]string, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}

	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	logger.Debugf("Loaded %d variables from %s", len(values), path)
	return values, nil
}
