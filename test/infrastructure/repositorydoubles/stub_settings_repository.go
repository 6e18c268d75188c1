//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/depman/internal/domain/entities"
	"github.com/rios0rios0/depman/internal/domain/repositories"
)

// StubSettingsRepository implements repositories.SettingsRepository with canned settings.
type StubSettingsRepository struct {
	FoundPath string
	FindErr   error
	Settings  *entities.Settings
	LoadErr   error

	// spy: inputs received
	FindDirs    []string
	LoadedPaths []string
}

var _ repositories.SettingsRepository = (*StubSettingsRepository)(nil)

func (s *StubSettingsRepository) Find(dir string) (string, error) {
	s.FindDirs = append(s.FindDirs, dir)
	return s.FoundPath, s.FindErr
}

func (s *StubSettingsRepository) Load(depfilePath string) (*entities.Settings, error) {
	s.LoadedPaths = append(s.LoadedPaths, depfilePath)
	return s.Settings, s.LoadErr
}
