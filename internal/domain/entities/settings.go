package entities

import (
	"fmt"
	"path/filepath"
)

// DefaultDependenciesDirName is the directory, next to the depfile, used when the depfile
// does not override it.
const DefaultDependenciesDirName = "deps"

// Depfile is the decoded content of a depfile, independent of its on-disk format.
type Depfile struct {
	Config       DepfileConfig   `json:"config"       toml:"config"       yaml:"config"`
	Dependencies []RawDependency `json:"dependencies" toml:"dependencies" yaml:"dependencies"`
}

// DepfileConfig holds the optional "config" block of a depfile.
type DepfileConfig struct {
	DependenciesDir string `json:"dependencies_dir" toml:"dependencies_dir" yaml:"dependencies_dir"`
}

// Settings is the run-wide configuration. It is built once at startup and never mutated.
type Settings struct {
	DepfilePath     string
	DependenciesDir string
	Dependencies    []Dependency
}

// NewSettings validates a decoded depfile and resolves its paths against the depfile location.
func NewSettings(depfilePath string, depfile *Depfile) (*Settings, error) {
	absDepfile, err := filepath.Abs(depfilePath)
	if err != nil {
		return nil, fmt.Errorf("invalid depfile path %q: %w", depfilePath, err)
	}
	baseDir := filepath.Dir(absDepfile)

	dependenciesDir := filepath.Join(baseDir, DefaultDependenciesDirName)
	if depfile.Config.DependenciesDir != "" {
		dependenciesDir = depfile.Config.DependenciesDir
		if !filepath.IsAbs(dependenciesDir) {
			dependenciesDir = filepath.Join(baseDir, dependenciesDir)
		}
	}

	deps, err := ParseDependencies(depfile.Dependencies)
	if err != nil {
		return nil, err
	}

	return &Settings{
		DepfilePath:     absDepfile,
		DependenciesDir: filepath.Clean(dependenciesDir),
		Dependencies:    deps,
	}, nil
}

// WorkingCopyPath returns where the working copy of the given dependency lives.
func (s *Settings) WorkingCopyPath(dep Dependency) string {
	return filepath.Join(s.DependenciesDir, dep.Name)
}

// SentinelPath returns the location of the marker file of the dependencies directory.
func (s *Settings) SentinelPath() string {
	return filepath.Join(s.DependenciesDir, SentinelName)
}

// Select returns the dependencies with the given names in declaration order. An empty
// selection returns every dependency.
func (s *Settings) Select(names []string) ([]Dependency, error) {
	if len(names) == 0 {
		return s.Dependencies, nil
	}

	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		wanted[name] = true
	}

	selected := make([]Dependency, 0, len(names))
	for _, dep := range s.Dependencies {
		if wanted[dep.Name] {
			selected = append(selected, dep)
			delete(wanted, dep.Name)
		}
	}

	for _, name := range names {
		if wanted[name] {
			return nil, &ValidationError{Dependency: name, Reason: "is not declared in the depfile"}
		}
	}

	return selected, nil
}
