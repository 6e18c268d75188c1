//go:build unit

package entities_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/depman/internal/domain/entities"
	"github.com/rios0rios0/depman/test/domain/entitybuilders"
)

func TestNewSettings(t *testing.T) {
	t.Parallel()

	t.Run("should default the dependencies directory next to the depfile", func(t *testing.T) {
		// given
		root := t.TempDir()
		depfile := &entities.Depfile{}

		// when
		settings, err := entities.NewSettings(filepath.Join(root, "depman.json"), depfile)

		// then
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, entities.DefaultDependenciesDirName), settings.DependenciesDir)
		assert.Equal(t, filepath.Join(root, "depman.json"), settings.DepfilePath)
		assert.Empty(t, settings.Dependencies)
	})

	t.Run("should resolve a relative dependencies directory against the depfile", func(t *testing.T) {
		// given
		root := t.TempDir()
		depfile := &entities.Depfile{Config: entities.DepfileConfig{DependenciesDir: "third_party/../vendor"}}

		// when
		settings, err := entities.NewSettings(filepath.Join(root, "depman.json"), depfile)

		// then
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "vendor"), settings.DependenciesDir)
	})

	t.Run("should keep an absolute dependencies directory", func(t *testing.T) {
		// given
		root := t.TempDir()
		target := filepath.Join(t.TempDir(), "shared")
		depfile := &entities.Depfile{Config: entities.DepfileConfig{DependenciesDir: target}}

		// when
		settings, err := entities.NewSettings(filepath.Join(root, "depman.json"), depfile)

		// then
		require.NoError(t, err)
		assert.Equal(t, target, settings.DependenciesDir)
	})

	t.Run("should fail on an invalid dependency", func(t *testing.T) {
		// given
		depfile := &entities.Depfile{Dependencies: []entities.RawDependency{{Name: "nowhere"}}}

		// when
		settings, err := entities.NewSettings(filepath.Join(t.TempDir(), "depman.json"), depfile)

		// then
		var vErr *entities.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Nil(t, settings)
	})
}

func TestSettingsPaths(t *testing.T) {
	t.Parallel()

	// given
	root := t.TempDir()
	dep := entitybuilders.NewDependencyBuilder().WithName("zlib").BuildDependency()
	settings := entitybuilders.NewSettingsBuilder(root).WithDependencies(dep).Build()

	// when
	workingCopy := settings.WorkingCopyPath(dep)
	sentinel := settings.SentinelPath()

	// then
	assert.Equal(t, filepath.Join(root, "deps", "zlib"), workingCopy)
	assert.Equal(t, filepath.Join(root, "deps", ".depman"), sentinel)
}

func TestSettingsSelect(t *testing.T) {
	t.Parallel()

	builder := entitybuilders.NewDependencyBuilder()
	first := builder.WithName("first").BuildDependency()
	second := builder.WithName("second").BuildDependency()
	third := builder.WithName("third").BuildDependency()

	t.Run("should return every dependency when no name is given", func(t *testing.T) {
		// given
		settings := entitybuilders.NewSettingsBuilder(t.TempDir()).WithDependencies(first, second, third).Build()

		// when
		selected, err := settings.Select(nil)

		// then
		require.NoError(t, err)
		assert.Equal(t, []entities.Dependency{first, second, third}, selected)
	})

	t.Run("should keep declaration order regardless of argument order", func(t *testing.T) {
		// given
		settings := entitybuilders.NewSettingsBuilder(t.TempDir()).WithDependencies(first, second, third).Build()

		// when
		selected, err := settings.Select([]string{"third", "first"})

		// then
		require.NoError(t, err)
		assert.Equal(t, []entities.Dependency{first, third}, selected)
	})

	t.Run("should reject a name that is not declared", func(t *testing.T) {
		// given
		settings := entitybuilders.NewSettingsBuilder(t.TempDir()).WithDependencies(first).Build()

		// when
		_, err := settings.Select([]string{"first", "ghost"})

		// then
		var vErr *entities.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "ghost", vErr.Dependency)
	})
}
