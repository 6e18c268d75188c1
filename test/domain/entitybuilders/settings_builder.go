//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"path/filepath"

	"github.com/rios0rios0/depman/internal/domain/entities"
)

// SettingsBuilder creates run settings rooted in a test directory.
type SettingsBuilder struct {
	rootDir         string
	dependenciesDir string
	dependencies    []entities.Dependency
}

// NewSettingsBuilder creates a builder whose depfile lives in rootDir and whose
// dependencies directory defaults to rootDir/deps.
func NewSettingsBuilder(rootDir string) *SettingsBuilder {
	return &SettingsBuilder{
		rootDir:         rootDir,
		dependenciesDir: filepath.Join(rootDir, entities.DefaultDependenciesDirName),
	}
}

// WithDependenciesDir overrides the dependencies directory.
func (b *SettingsBuilder) WithDependenciesDir(dir string) *SettingsBuilder {
	b.dependenciesDir = dir
	return b
}

// WithDependencies appends dependencies in declaration order.
func (b *SettingsBuilder) WithDependencies(deps ...entities.Dependency) *SettingsBuilder {
	b.dependencies = append(b.dependencies, deps...)
	return b
}

// Build creates the settings.
func (b *SettingsBuilder) Build() *entities.Settings {
	return &entities.Settings{
		DepfilePath:     filepath.Join(b.rootDir, "depman.json"),
		DependenciesDir: b.dependenciesDir,
		Dependencies:    append([]entities.Dependency{}, b.dependencies...),
	}
}
