package cmd

import (
	"errors"

	"github.com/cenvtool/cenv/internal/env"
	cenverrors "github.com/cenvtool/cenv/internal/errors"
	"github.com/cenvtool/cenv/internal/ui"
	"github.com/cenvtool/cenv/internal/validation"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Moves an environment to the trash",
	Long: `Deletion is reversible: the environment is renamed into the trash under a
timestamped id that 'cenv restore' accepts. Nothing is ever destroyed
outright.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		Logger.Infof("Starting delete command for environment: %s", name)

		if err := validation.ValidateEnvironmentName(name); err != nil {
			Logger.Errorf("invalid environment name: %v", err)
			cmd.SilenceUsage = true
			return err
		}

		spinner, cleanup := startSpinner("Deleting environment...")
		defer cleanup()

		reg, _, err := newRegistry()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to resolve paths: %v", err)
		}

		id, err := env.NewTrash(reg).Delete(name)
		switch {
		case errors.Is(err, cenverrors.ErrProtectedEnv):
			spinner.FinalMSG = ui.Error.Sprint("✗") + " The " + ui.Highlight.Sprint(name) + " environment is protected and cannot be deleted"
			return nil
		case errors.Is(err, cenverrors.ErrActiveEnv):
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Environment " + ui.Highlight.Sprint(name) + " is active\n" +
				ui.Info.Sprint("→") + " Switch away first with " + ui.Code.Sprint("cenv use <other>")
			return nil
		case errors.Is(err, cenverrors.ErrEnvNotFound):
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Environment " + ui.Highlight.Sprint(name) + " does not exist\n" +
				ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("cenv list") + " to see available environments"
			return nil
		case errors.Is(err, cenverrors.ErrTrashSlotExists):
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Environment " + ui.Highlight.Sprint(name) + " was already deleted this second\n" +
				ui.Info.Sprint("→") + " Wait a moment and try again"
			return nil
		case err != nil:
			return Logger.ErrorfAndReturn("failed to delete environment: %v", err)
		}

		Logger.Infof("Delete command completed successfully for environment: %s", name)
		spinner.FinalMSG = ui.Success.Sprint("✓") + " Environment " + ui.Highlight.Sprint(name) + " moved to trash\n" +
			ui.Info.Sprint("→") + " Undo with " + ui.Code.Sprint("cenv restore "+id)
		return nil
	},
}
