//go:build unit

package commands_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/depman/internal/domain/commands"
	"github.com/rios0rios0/depman/internal/domain/entities"
	"github.com/rios0rios0/depman/test/domain/entitybuilders"
)

func TestListCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should list every dependency in declaration order", func(t *testing.T) {
		// given
		builder := entitybuilders.NewDependencyBuilder()
		zlib := builder.WithName("zlib").WithLocation("https://github.com/madler/zlib").
			WithVersion("v1.3.1").WithBuildCommands("./configure", "make").BuildDependency()
		fmtlib := builder.Reset().(*entitybuilders.DependencyBuilder).
			WithName("fmt").WithLocation("https://github.com/fmtlib/fmt").BuildDependency()
		settings := entitybuilders.NewSettingsBuilder(t.TempDir()).WithDependencies(zlib, fmtlib).Build()
		var out bytes.Buffer

		// when
		err := commands.NewListCommand().Execute(context.Background(), settings, &out)

		// then
		require.NoError(t, err)
		assert.Equal(t, "Listing dependencies:\n"+
			" - zlib (v1.3.1): https://github.com/madler/zlib [tag]\n"+
			"     build: ./configure\n"+
			"     build: make\n"+
			" - fmt (HEAD): https://github.com/fmtlib/fmt [default]\n", out.String())
	})

	t.Run("should say so when nothing is declared", func(t *testing.T) {
		// given
		settings := &entities.Settings{}
		var out bytes.Buffer

		// when
		err := commands.NewListCommand().Execute(context.Background(), settings, &out)

		// then
		require.NoError(t, err)
		assert.Equal(t, "Listing dependencies:\nNo dependencies found.\n", out.String())
	})
}
