package cmd

import (
	"errors"

	"github.com/cenvtool/cenv/internal/env"
	cenverrors "github.com/cenvtool/cenv/internal/errors"
	"github.com/cenvtool/cenv/internal/paths"
	"github.com/cenvtool/cenv/internal/ui"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Migrates ~/.claude into a managed environment layout",
	Long: `Moves your existing ~/.claude directory into ~/.claude-envs/default and
replaces ~/.claude with a symlink to it. A full backup is taken first and
restored if anything goes wrong, so your configuration is never at risk.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting init command")
		spinner, cleanup := startSpinner("Initializing cenv...")
		defer cleanup()

		reg, _, err := newRegistry()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to resolve paths: %v", err)
		}
		Logger.Debugf("Environments root: %s", reg.EnvsDir())

		err = env.Initialize(reg, Logger)
		switch {
		case errors.Is(err, cenverrors.ErrAlreadyInitialized):
			spinner.FinalMSG = ui.Error.Sprint("✗") + " cenv is already initialized\n" +
				ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("cenv list") + " to see your environments"
			return nil
		case errors.Is(err, cenverrors.ErrInitInProgress):
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Another cenv init is already running\n" +
				ui.Info.Sprint("→") + " Wait for it to finish and try again"
			return nil
		case errors.Is(err, cenverrors.ErrClaudeDirIsSymlink):
			spinner.FinalMSG = ui.Error.Sprint("✗") + " " + ui.Path.Sprint(reg.ClaudeDir()) + " is already a symlink\n" +
				ui.Info.Sprint("→") + " It does not point into " + ui.Path.Sprint(reg.EnvsDir()) + ", so cenv won't touch it"
			return nil
		case err != nil:
			return Logger.ErrorfAndReturn("failed to initialize: %v", err)
		}

		Logger.Infof("Init command completed successfully")
		spinner.FinalMSG = ui.Success.Sprint("✓") + " cenv initialized\n" +
			"    created: " + ui.Path.Sprint(reg.EnvPath(paths.DefaultEnvName)) + "\n" +
			"    pointer: " + ui.Path.Sprint(reg.ClaudeDir()) + " → " + ui.Path.Sprint(reg.EnvPath(paths.DefaultEnvName)) + "\n" +
			ui.Info.Sprint("→") + " Create a new environment with " + ui.Code.Sprint("cenv create <name>")
		return nil
	},
}
