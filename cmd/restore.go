package cmd

import (
	"errors"

	"github.com/cenvtool/cenv/internal/env"
	cenverrors "github.com/cenvtool/cenv/internal/errors"
	"github.com/cenvtool/cenv/internal/ui"
	"github.com/spf13/cobra"
)

var restoreCmd = &cobra.Command{
	Use:   "restore <trash-id>",
	Short: "Restores a deleted environment from the trash",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		Logger.Infof("Starting restore command for trash entry: %s", id)

		spinner, cleanup := startSpinner("Restoring environment...")
		defer cleanup()

		reg, _, err := newRegistry()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to resolve paths: %v", err)
		}

		name, err := env.NewTrash(reg).Restore(id)
		switch {
		case errors.Is(err, cenverrors.ErrInvalidTrashID):
			spinner.FinalMSG = ui.Error.Sprint("✗") + " " + ui.Highlight.Sprint(id) + " is not a trash id\n" +
				ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("cenv trash") + " to see deleted environments"
			return nil
		case errors.Is(err, cenverrors.ErrTrashEntryNotFound):
			spinner.FinalMSG = ui.Error.Sprint("✗") + " No trash entry " + ui.Highlight.Sprint(id) + "\n" +
				ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("cenv trash") + " to see deleted environments"
			return nil
		case errors.Is(err, cenverrors.ErrEnvExists):
			spinner.FinalMSG = ui.Error.Sprint("✗") + " An environment with that name already exists\n" +
				ui.Info.Sprint("→") + " Delete or rename it first, then restore again"
			return nil
		case err != nil:
			return Logger.ErrorfAndReturn("failed to restore environment: %v", err)
		}

		Logger.Infof("Restore command completed successfully for environment: %s", name)
		spinner.FinalMSG = ui.Success.Sprint("✓") + " Environment " + ui.Highlight.Sprint(name) + " restored\n" +
			ui.Info.Sprint("→") + " Activate it with " + ui.Code.Sprint("cenv use "+name)
		return nil
	},
}
