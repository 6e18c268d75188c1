//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/depman/internal/domain/entities"
)

// DependencyBuilder helps create test dependencies with a fluent interface.
type DependencyBuilder struct {
	*testkit.BaseBuilder
	name          string
	location      string
	version       string
	buildCommands []string
}

// NewDependencyBuilder creates a new dependency builder with sensible defaults.
func NewDependencyBuilder() *DependencyBuilder {
	return &DependencyBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		name:        "foo",
		location:    "https://example.com/foo.git",
		version:     entities.HeadVersion,
	}
}

// WithName sets the dependency name.
func (b *DependencyBuilder) WithName(name string) *DependencyBuilder {
	b.name = name
	return b
}

// WithLocation sets the fetch location.
func (b *DependencyBuilder) WithLocation(location string) *DependencyBuilder {
	b.location = location
	return b
}

// WithVersion sets the declared version.
func (b *DependencyBuilder) WithVersion(version string) *DependencyBuilder {
	b.version = version
	return b
}

// WithBuildCommands sets the build commands.
func (b *DependencyBuilder) WithBuildCommands(commands ...string) *DependencyBuilder {
	b.buildCommands = commands
	return b
}

// Build creates the dependency (satisfies testkit.Builder interface).
func (b *DependencyBuilder) Build() interface{} {
	return b.BuildDependency()
}

// BuildDependency creates the dependency with a concrete return type.
func (b *DependencyBuilder) BuildDependency() entities.Dependency {
	return entities.Dependency{
		Name:          b.name,
		Location:      b.location,
		Version:       b.version,
		BuildCommands: append([]string{}, b.buildCommands...),
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *DependencyBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.name = "foo"
	b.location = "https://example.com/foo.git"
	b.version = entities.HeadVersion
	b.buildCommands = nil
	return b
}

// Clone creates a deep copy of the DependencyBuilder.
func (b *DependencyBuilder) Clone() testkit.Builder {
	return &DependencyBuilder{
		BaseBuilder:   b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:          b.name,
		location:      b.location,
		version:       b.version,
		buildCommands: append([]string{}, b.buildCommands...),
	}
}
