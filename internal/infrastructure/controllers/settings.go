package controllers

import (
	"fmt"
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/depman/internal/domain/commands"
	"github.com/rios0rios0/depman/internal/domain/entities"
	"github.com/rios0rios0/depman/internal/domain/repositories"
)

const (
	flagDepfile     = "depfile"
	flagDryRun      = "dry-run"
	flagVerbose     = "verbose"
	flagMetricsFile = "metrics-file"
)

// loadSettings resolves the depfile from the --depfile flag, or auto-detects it in the
// working directory, and loads it.
func loadSettings(cmd *cobra.Command, settingsRepository repositories.SettingsRepository) (*entities.Settings, error) {
	depfilePath, _ := cmd.Flags().GetString(flagDepfile)

	if depfilePath == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve working directory: %w", err)
		}
		depfilePath, err = settingsRepository.Find(cwd)
		if err != nil {
			return nil, err
		}
	}

	logger.Debugf("Using depfile: %s", depfilePath)

	settings, err := settingsRepository.Load(depfilePath)
	if err != nil {
		return nil, err
	}
	return settings, nil
}

// phaseOptions collects the flags shared by the update and build subcommands. Positional
// arguments select dependencies by name.
func phaseOptions(cmd *cobra.Command, args []string) commands.PhaseOptions {
	dryRun, _ := cmd.Flags().GetBool(flagDryRun)
	verbose, _ := cmd.Flags().GetBool(flagVerbose)
	metricsFile, _ := cmd.Flags().GetString(flagMetricsFile)
	return commands.PhaseOptions{
		DryRun:      dryRun,
		Verbose:     verbose,
		Only:        args,
		MetricsFile: metricsFile,
	}
}

func addMetricsFlag(cmd *cobra.Command) {
	cmd.Flags().String(flagMetricsFile, "",
		"Write Prometheus metrics of this run to the given textfile")
}
