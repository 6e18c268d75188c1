package entities

import (
	"github.com/spf13/cobra"
)

// CommandKind enumerates every depman subcommand. Each kind has exactly one controller.
type CommandKind int

const (
	CommandInit CommandKind = iota
	CommandList
	CommandUpdate
	CommandBuild
	CommandStatus
)

// CommandKinds returns all command kinds in help order.
func CommandKinds() []CommandKind {
	return []CommandKind{CommandInit, CommandList, CommandUpdate, CommandBuild, CommandStatus}
}

func (k CommandKind) String() string {
	switch k {
	case CommandInit:
		return "init"
	case CommandList:
		return "list"
	case CommandUpdate:
		return "update"
	case CommandBuild:
		return "build"
	case CommandStatus:
		return "status"
	default:
		return "unknown"
	}
}

// ControllerBind carries the Cobra metadata of a controller.
type ControllerBind struct {
	Kind  CommandKind
	Use   string
	Short string
	Long  string
	Args  cobra.PositionalArgs
}

// Controller is a CLI entry point bound to one subcommand.
type Controller interface {
	GetBind() ControllerBind
	Execute(command *cobra.Command, arguments []string) error
}

// FlagController is implemented by controllers declaring subcommand-specific flags.
type FlagController interface {
	AddFlags(command *cobra.Command)
}
