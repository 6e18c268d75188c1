//go:build unit

package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/depman/internal/domain/commands"
	"github.com/rios0rios0/depman/internal/domain/entities"
	"github.com/rios0rios0/depman/test/domain/entitybuilders"
	doubles "github.com/rios0rios0/depman/test/infrastructure/repositorydoubles"
)

func TestStatusCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should describe every working copy", func(t *testing.T) {
		// given
		matches := true
		differs := false
		builder := entitybuilders.NewDependencyBuilder()
		missing := builder.WithName("missing").BuildDependency()
		onBranch := builder.WithName("branch").BuildDependency()
		pinned := builder.WithName("pinned").WithVersion("v1.0.0").BuildDependency()
		drifted := builder.WithName("drifted").WithVersion("v2.0.0").BuildDependency()
		conflict := builder.WithName("conflict").WithVersion(entities.HeadVersion).BuildDependency()
		plain := builder.WithName("plain").BuildDependency()
		broken := builder.WithName("broken").BuildDependency()
		settings := entitybuilders.NewSettingsBuilder(t.TempDir()).
			WithDependencies(missing, onBranch, pinned, drifted, conflict, plain, broken).
			Build()
		workingCopies := &doubles.StubWorkingCopyRepository{
			Statuses: map[string]entities.WorkingCopyStatus{
				"branch": {
					State: entities.StateDirectory, IsRepository: true,
					Head: "0123456789abcdef", Branch: "main",
				},
				"pinned": {
					State: entities.StateDirectory, IsRepository: true,
					Head: "aaaaaaaabbbb", Matches: &matches,
				},
				"drifted": {
					State: entities.StateDirectory, IsRepository: true,
					Head: "ccccccccdddd", Branch: "dev", Matches: &differs,
				},
				"conflict": {State: entities.StateNotDirectory},
				"plain":    {State: entities.StateDirectory},
			},
			InspectErr: map[string]error{"broken": errors.New("corrupt index")},
		}
		var out bytes.Buffer

		// when
		statuses, err := commands.NewStatusCommand(workingCopies).Execute(context.Background(), settings, &out)

		// then
		require.NoError(t, err)
		assert.Len(t, statuses, 7)
		assert.Equal(t,
			" - missing (HEAD): missing\n"+
				" - branch (HEAD): main at 01234567\n"+
				" - pinned (v1.0.0): detached at aaaaaaaa, matches declared version\n"+
				" - drifted (v2.0.0): dev at cccccccc, differs from declared version\n"+
				" - conflict (HEAD): conflict, not a directory\n"+
				" - plain (HEAD): not a repository\n"+
				" - broken (HEAD): error: corrupt index\n",
			out.String())
		assert.Len(t, workingCopies.InspectedPaths, 7)
	})

	t.Run("should not create the dependencies directory", func(t *testing.T) {
		// given
		dep := entitybuilders.NewDependencyBuilder().BuildDependency()
		settings := entitybuilders.NewSettingsBuilder(t.TempDir()).WithDependencies(dep).Build()
		var out bytes.Buffer

		// when
		_, err := commands.NewStatusCommand(&doubles.StubWorkingCopyRepository{}).
			Execute(context.Background(), settings, &out)

		// then
		require.NoError(t, err)
		assert.NoDirExists(t, settings.DependenciesDir)
	})
}
