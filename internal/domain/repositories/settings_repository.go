package repositories

import (
	"github.com/rios0rios0/depman/internal/domain/entities"
)

// SettingsRepository loads the immutable run settings from a depfile.
type SettingsRepository interface {
	// Find returns the depfile to use when none was given explicitly.
	Find(dir string) (string, error)
	Load(depfilePath string) (*entities.Settings, error)
}
