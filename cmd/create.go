package cmd

import (
	"errors"

	"github.com/cenvtool/cenv/internal/env"
	cenverrors "github.com/cenvtool/cenv/internal/errors"
	"github.com/cenvtool/cenv/internal/github"
	"github.com/cenvtool/cenv/internal/ui"
	"github.com/cenvtool/cenv/internal/validation"
	"github.com/spf13/cobra"
)

var (
	createFromRepo string
	createSource   string
)

func init() {
	createCmd.Flags().StringVar(&createFromRepo, "from-repo", "", "GitHub repository URL to clone the environment from")
	createCmd.Flags().StringVar(&createSource, "from", "", "existing environment to copy (defaults to 'default')")
}

// resetCreateCommandState resets the create command's flag state for testing.
func resetCreateCommandState() {
	createFromRepo = ""
	createSource = ""
}

var createCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Creates a new environment from a local copy or a GitHub repository",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		Logger.Infof("Starting create command for environment: %s", name)

		if err := validation.ValidateEnvironmentName(name); err != nil {
			Logger.Errorf("invalid environment name: %v", err)
			cmd.SilenceUsage = true
			return err
		}
		if createFromRepo != "" && !github.IsValidGitHubURL(createFromRepo) {
			Logger.Errorf("invalid repository URL: %s", createFromRepo)
			cmd.SilenceUsage = true
			return errors.New("not a GitHub repository URL (expected https://github.com/owner/repo or git@github.com:owner/repo.git)")
		}

		spinner, cleanup := startSpinner("Creating environment...")
		defer cleanup()

		reg, config, err := newRegistry()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to resolve paths: %v", err)
		}

		err = env.Create(cmd.Context(), reg, env.CreateOptions{
			Name:       name,
			Source:     createSource,
			FromRepo:   createFromRepo,
			GitTimeout: config.GitTimeout(),
		})
		switch {
		case errors.Is(err, cenverrors.ErrNotInitialized):
			spinner.FinalMSG = ui.Error.Sprint("✗") + " cenv has not been initialized\n" +
				ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("cenv init") + " first"
			return nil
		case errors.Is(err, cenverrors.ErrEnvExists):
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Environment " + ui.Highlight.Sprint(name) + " already exists\n" +
				ui.Info.Sprint("→") + " Pick another name, or " + ui.Code.Sprint("cenv delete "+name) + " first"
			return nil
		case errors.Is(err, cenverrors.ErrEnvNotFound):
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Source environment " + ui.Highlight.Sprint(createSource) + " does not exist\n" +
				ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("cenv list") + " to see available environments"
			return nil
		case err != nil:
			return Logger.ErrorfAndReturn("failed to create environment: %v", err)
		}

		Logger.Infof("Create command completed successfully for environment: %s", name)
		spinner.FinalMSG = ui.Success.Sprint("✓") + " Environment " + ui.Highlight.Sprint(name) + " created\n" +
			ui.Info.Sprint("→") + " Activate it with " + ui.Code.Sprint("cenv use "+name)
		return nil
	},
}
