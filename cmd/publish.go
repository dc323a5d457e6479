package cmd

import (
	"errors"
	"os"

	"github.com/cenvtool/cenv/internal/env"
	"github.com/cenvtool/cenv/internal/github"
	"github.com/cenvtool/cenv/internal/portability"
	"github.com/cenvtool/cenv/internal/process"
	"github.com/cenvtool/cenv/internal/publish"
	"github.com/cenvtool/cenv/internal/ui"
	"github.com/cenvtool/cenv/internal/validation"
	"github.com/spf13/cobra"
)

var (
	publishRepo  string
	publishForce bool
)

func init() {
	publishCmd.Flags().StringVar(&publishRepo, "repo", "", "GitHub repository URL to publish to (required)")
	publishCmd.Flags().BoolVarP(&publishForce, "force", "f", false, "publish even while Claude Code is running")
	_ = publishCmd.MarkFlagRequired("repo")
}

// resetPublishCommandState resets the publish command's flag state for testing.
func resetPublishCommandState() {
	publishRepo = ""
	publishForce = false
}

var publishCmd = &cobra.Command{
	Use:   "publish <name> --repo <url>",
	Short: "Publishes an environment to a GitHub repository",
	Long: `Copies the environment into a staging area, drops files that look like
credentials, replaces machine-specific absolute paths in JSON files with
portable placeholders, and force-pushes the result as a single commit.
Another machine imports it with 'cenv create <name> --from-repo <url>'.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		Logger.Infof("Starting publish command for environment: %s", name)

		if err := validation.ValidateEnvironmentName(name); err != nil {
			Logger.Errorf("invalid environment name: %v", err)
			cmd.SilenceUsage = true
			return err
		}
		if !github.IsValidGitHubURL(publishRepo) {
			Logger.Errorf("invalid repository URL: %s", publishRepo)
			cmd.SilenceUsage = true
			return errors.New("not a GitHub repository URL (expected https://github.com/owner/repo or git@github.com:owner/repo.git)")
		}

		spinner, cleanup := startSpinner("Publishing environment...")
		defer cleanup()

		reg, config, err := newRegistry()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to resolve paths: %v", err)
		}

		if !env.Exists(reg, name) {
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Environment " + ui.Highlight.Sprint(name) + " does not exist\n" +
				ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("cenv list") + " to see available environments"
			return nil
		}

		// A running Claude may be mid-write; the staged copy could be torn.
		if !publishForce && (process.ClaudeChecker{Logger: Logger}).IsBusy() {
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Claude Code appears to be running\n" +
				ui.Info.Sprint("→") + " Exit Claude first, or run " + ui.Code.Sprint("cenv publish "+name+" --repo <url> --force")
			return nil
		}

		Logger.Debugf("Staging environment %s", name)
		staging, skipped, err := publish.Stage(reg.EnvPath(name))
		if err != nil {
			return Logger.ErrorfAndReturn("failed to stage environment: %v", err)
		}
		defer os.RemoveAll(staging)
		Logger.Debugf("Staged at %s, %d sensitive files skipped", staging, len(skipped))

		mapper := portability.NewMapperFromRegistry(reg)
		mapper.Logger = Logger
		warnings, err := mapper.PublishDir(staging)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to make paths portable: %v", err)
		}
		for _, w := range warnings {
			Logger.WarnfUser("Unmapped absolute path in %s", w.String())
		}

		Logger.Debugf("Pushing staged environment to %s", publishRepo)
		if err := github.Push(cmd.Context(), staging, publishRepo, config.GitTimeout()); err != nil {
			return Logger.ErrorfAndReturn("failed to push to repository: %v", err)
		}

		skippedMessage := ""
		for _, rel := range skipped {
			skippedMessage += "    skipped: " + ui.Warning.Sprint(rel) + " " + ui.Muted.Sprint("looks sensitive") + "\n"
		}

		Logger.Infof("Publish command completed successfully for environment: %s", name)
		spinner.FinalMSG = ui.Success.Sprint("✓") + " Environment " + ui.Highlight.Sprint(name) + " published to " + ui.Path.Sprint(publishRepo) + "\n" +
			skippedMessage +
			ui.Info.Sprint("→") + " Import it elsewhere with " + ui.Code.Sprint("cenv create "+name+" --from-repo "+publishRepo)
		return nil
	},
}
