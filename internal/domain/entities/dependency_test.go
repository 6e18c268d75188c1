//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/depman/internal/domain/entities"
	"github.com/rios0rios0/depman/test/domain/entitybuilders"
)

func TestNameFromLocation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		location string
		expected string
	}{
		{name: "HTTPS with extension", location: "https://github.com/pybind/pybind11.git", expected: "pybind11"},
		{name: "HTTPS without extension", location: "https://github.com/madler/zlib", expected: "zlib"},
		{name: "trailing slash", location: "https://example.com/group/project/", expected: "project"},
		{name: "scp-like SSH", location: "git@github.com:org/repo.git", expected: "repo"},
		{name: "scp-like without user", location: "example.com:repos/tool.git", expected: "tool"},
		{name: "SSH URL", location: "ssh://git@example.com:2222/org/lib.git", expected: "lib"},
		{name: "file URL", location: "file:///srv/git/engine", expected: "engine"},
		{name: "relative path", location: "../mirrors/fmt.git", expected: "fmt"},
		{name: "absolute path", location: "/srv/git/spdlog", expected: "spdlog"},
		{name: "only the last extension is stripped", location: "https://example.com/lib.v2.git", expected: "lib.v2"},
		{name: "leading dot is kept", location: "https://example.com/.dotfiles", expected: ".dotfiles"},
		{name: "host when path is empty", location: "https://example.com", expected: "example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// when
			name := entities.NameFromLocation(tt.location)

			// then
			assert.Equal(t, tt.expected, name)
		})
	}
}

func TestParseDependency(t *testing.T) {
	t.Parallel()

	t.Run("should derive name and default version when omitted", func(t *testing.T) {
		// given
		raw := entities.RawDependency{Location: "https://github.com/pybind/pybind11.git"}

		// when
		dep, err := entities.ParseDependency(raw)

		// then
		require.NoError(t, err)
		assert.Equal(t, "pybind11", dep.Name)
		assert.Equal(t, entities.HeadVersion, dep.Version)
		assert.True(t, dep.IsHead())
		assert.False(t, dep.HasBuild())
		assert.Empty(t, dep.BuildCommands)
	})

	t.Run("should keep explicit name, version and build commands", func(t *testing.T) {
		// given
		raw := entities.RawDependency{
			Name:     "bar",
			Location: "https://example.com/bar",
			Version:  "v1.2",
			Build:    []string{"make", "make install"},
		}

		// when
		dep, err := entities.ParseDependency(raw)

		// then
		require.NoError(t, err)
		assert.Equal(t, "bar", dep.Name)
		assert.Equal(t, "v1.2", dep.Version)
		assert.Equal(t, []string{"make", "make install"}, dep.BuildCommands)
		assert.True(t, dep.HasBuild())
	})

	t.Run("should not share the build slice with the raw entry", func(t *testing.T) {
		// given
		build := []string{"make"}
		raw := entities.RawDependency{Location: "https://example.com/bar", Build: build}

		// when
		dep, err := entities.ParseDependency(raw)
		build[0] = "changed"

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"make"}, dep.BuildCommands)
	})

	t.Run("should reject a dependency without location", func(t *testing.T) {
		// given
		raw := entities.RawDependency{Name: "foo"}

		// when
		_, err := entities.ParseDependency(raw)

		// then
		var vErr *entities.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "foo", vErr.Dependency)
		assert.Contains(t, err.Error(), "has no location")
	})

	t.Run("should reject names that are not plain directory names", func(t *testing.T) {
		for _, name := range []string{".", "..", "a/b", `a\b`, entities.SentinelName} {
			// given
			raw := entities.RawDependency{Name: name, Location: "https://example.com/x"}

			// when
			_, err := entities.ParseDependency(raw)

			// then
			var vErr *entities.ValidationError
			require.ErrorAs(t, err, &vErr, "name %q", name)
		}
	})
}

func TestParseDependencies(t *testing.T) {
	t.Parallel()

	t.Run("should keep declaration order", func(t *testing.T) {
		// given
		raw := []entities.RawDependency{
			{Location: "https://example.com/zeta"},
			{Location: "https://example.com/alpha"},
			{Location: "https://example.com/mid"},
		}

		// when
		deps, err := entities.ParseDependencies(raw)

		// then
		require.NoError(t, err)
		require.Len(t, deps, 3)
		assert.Equal(t, "zeta", deps[0].Name)
		assert.Equal(t, "alpha", deps[1].Name)
		assert.Equal(t, "mid", deps[2].Name)
	})

	t.Run("should return an empty list for an empty depfile", func(t *testing.T) {
		// when
		deps, err := entities.ParseDependencies(nil)

		// then
		require.NoError(t, err)
		assert.Empty(t, deps)
	})

	t.Run("should identify an unnamed invalid entry by its position", func(t *testing.T) {
		// given
		raw := []entities.RawDependency{
			{Location: "https://example.com/ok"},
			{Version: "v1"},
		}

		// when
		_, err := entities.ParseDependencies(raw)

		// then
		var vErr *entities.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "#2", vErr.Dependency)
	})

	t.Run("should reject two dependencies resolving to the same name", func(t *testing.T) {
		// given
		raw := []entities.RawDependency{
			{Location: "https://github.com/a/json.git"},
			{Location: "https://gitlab.com/b/json"},
		}

		// when
		_, err := entities.ParseDependencies(raw)

		// then
		var vErr *entities.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "json", vErr.Dependency)
		assert.Contains(t, vErr.Reason, "#1")
	})

	t.Run("should accept colliding locations when explicit names differ", func(t *testing.T) {
		// given
		raw := []entities.RawDependency{
			{Location: "https://github.com/a/json.git"},
			{Name: "json-fork", Location: "https://gitlab.com/b/json"},
		}

		// when
		deps, err := entities.ParseDependencies(raw)

		// then
		require.NoError(t, err)
		assert.Len(t, deps, 2)
	})
}

func TestDependencyVersionKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		version  string
		expected entities.VersionKind
	}{
		{version: entities.HeadVersion, expected: entities.VersionKindDefault},
		{version: "v1.2.3", expected: entities.VersionKindTag},
		{version: "1.2", expected: entities.VersionKindTag},
		{version: "v2", expected: entities.VersionKindTag},
		{version: "main", expected: entities.VersionKindRef},
		{version: "release/2024", expected: entities.VersionKindRef},
		{version: "1a2b3c4d", expected: entities.VersionKindRef},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			t.Parallel()

			// given
			dep := entitybuilders.NewDependencyBuilder().WithVersion(tt.version).BuildDependency()

			// when
			kind := dep.VersionKind()

			// then
			assert.Equal(t, tt.expected, kind)
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("should mention the dependency when known", func(t *testing.T) {
		// given
		err := error(&entities.ValidationError{Dependency: "foo", Reason: "has no location"})

		// then
		assert.Equal(t, "dependency foo has no location", err.Error())
	})

	t.Run("should describe the depfile otherwise", func(t *testing.T) {
		// given
		err := error(&entities.ValidationError{Reason: "dependencies must be a list"})

		// then
		assert.Equal(t, "invalid depfile: dependencies must be a list", err.Error())
	})
}
