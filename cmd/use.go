package cmd

import (
	"errors"

	"github.com/cenvtool/cenv/internal/env"
	cenverrors "github.com/cenvtool/cenv/internal/errors"
	"github.com/cenvtool/cenv/internal/process"
	"github.com/cenvtool/cenv/internal/ui"
	"github.com/cenvtool/cenv/internal/validation"
	"github.com/spf13/cobra"
)

var useForce bool

func init() {
	useCmd.Flags().BoolVarP(&useForce, "force", "f", false, "switch even while Claude Code is running")
}

// resetUseCommandState resets the use command's flag state for testing.
func resetUseCommandState() {
	useForce = false
}

var useCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "Switches the active environment",
	Long: `Retargets the ~/.claude symlink at the named environment. The switch is
a single atomic rename, so Claude Code never sees a missing or half-written
configuration directory.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		Logger.Infof("Starting use command for environment: %s", name)

		if err := validation.ValidateEnvironmentName(name); err != nil {
			Logger.Errorf("invalid environment name: %v", err)
			cmd.SilenceUsage = true
			return err
		}

		spinner, cleanup := startSpinner("Switching environment...")
		defer cleanup()

		reg, _, err := newRegistry()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to resolve paths: %v", err)
		}

		switcher := env.NewSwitcher(reg, process.ClaudeChecker{Logger: Logger})
		err = switcher.Switch(name, useForce)
		switch {
		case errors.Is(err, cenverrors.ErrEnvNotFound):
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Environment " + ui.Highlight.Sprint(name) + " does not exist\n" +
				ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("cenv list") + " to see available environments"
			return nil
		case errors.Is(err, cenverrors.ErrClaudeRunning):
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Claude Code appears to be running\n" +
				ui.Info.Sprint("→") + " Exit Claude first, or run " + ui.Code.Sprint("cenv use "+name+" --force")
			return nil
		case errors.Is(err, cenverrors.ErrPointerNotSymlink):
			spinner.FinalMSG = ui.Error.Sprint("✗") + " " + ui.Path.Sprint(reg.ClaudeDir()) + " exists but is not a cenv symlink\n" +
				ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("cenv init") + " to migrate it"
			return nil
		case err != nil:
			return Logger.ErrorfAndReturn("failed to switch environment: %v", err)
		}

		Logger.Infof("Use command completed successfully for environment: %s", name)
		spinner.FinalMSG = ui.Success.Sprint("✓") + " Now using environment " + ui.Highlight.Sprint(name)
		return nil
	},
}
