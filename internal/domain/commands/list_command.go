package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/rios0rios0/depman/internal/domain/entities"
)

//nolint:gochecknoglobals // color printers are stateless
var (
	nameColor  = color.New(color.FgCyan, color.Bold).SprintFunc()
	faintColor = color.New(color.Faint).SprintFunc()
	okColor    = color.New(color.FgGreen).SprintFunc()
	warnColor  = color.New(color.FgYellow).SprintFunc()
	errorColor = color.New(color.FgRed).SprintFunc()
)

// List is the interface for the list command.
type List interface {
	Execute(ctx context.Context, settings *entities.Settings, out io.Writer) error
}

// ListCommand prints the declared dependencies.
type ListCommand struct{}

// NewListCommand creates a new ListCommand.
func NewListCommand() *ListCommand {
	return &ListCommand{}
}

// Execute writes one line per dependency in declaration order.
func (it *ListCommand) Execute(_ context.Context, settings *entities.Settings, out io.Writer) error {
	if _, err := fmt.Fprintln(out, "Listing dependencies:"); err != nil {
		return err
	}

	if len(settings.Dependencies) == 0 {
		_, err := fmt.Fprintln(out, "No dependencies found.")
		return err
	}

	for _, dep := range settings.Dependencies {
		if _, err := fmt.Fprintf(
			out, " - %s (%s): %s %s\n",
			nameColor(dep.Name), dep.Version, dep.Location, faintColor("["+string(dep.VersionKind())+"]"),
		); err != nil {
			return err
		}
		for _, command := range dep.BuildCommands {
			if _, err := fmt.Fprintf(out, "     build: %s\n", command); err != nil {
				return err
			}
		}
	}
	return nil
}
