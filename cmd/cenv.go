package cmd

import (
	"fmt"
	"os"

	"github.com/cenvtool/cenv/internal/configs"
	logger "github.com/cenvtool/cenv/internal/logging"
	"github.com/cenvtool/cenv/internal/paths"
	"github.com/cenvtool/cenv/internal/utils"
	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	RootCmd = &cobra.Command{
		Use:   "cenv",
		Short: "cenv - Manage isolated Claude Code configuration environments",
		Long: `cenv keeps multiple Claude Code configuration directories side by side
under ~/.claude-envs and switches the active one by atomically retargeting
the ~/.claude symlink.

Features:
  - Switch configurations instantly without copying files
  - Delete environments into a trash that can be restored from
  - Share environments through GitHub with machine paths made portable

Run 'cenv help <command>' for more details on a specific command.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing cenv with verbose=%t, debug=%t", verbose, debug)
			return utils.CheckPlatform()
		},
		Run: func(cmd *cobra.Command, args []string) {
			banner := figure.NewColorFigure("cenv", "alligator2", "green", true)
			banner.Print()
			fmt.Println()
			fmt.Println("Run 'cenv --help' to see available commands.")
		},
	}
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	RootCmd.AddCommand(initCmd)
	RootCmd.AddCommand(createCmd)
	RootCmd.AddCommand(useCmd)
	RootCmd.AddCommand(currentCmd)
	RootCmd.AddCommand(listCmd)
	RootCmd.AddCommand(deleteCmd)
	RootCmd.AddCommand(restoreCmd)
	RootCmd.AddCommand(trashCmd)
	RootCmd.AddCommand(publishCmd)
}

// Execute runs the root command.
func Execute() error {
	return RootCmd.Execute()
}

// homeOverride redirects the registry to a different home directory.
// Only set by tests.
var homeOverride string

// newRegistry builds the path registry for the current user, applying
// names from the loaded configuration.
func newRegistry() (*paths.Registry, *configs.Config, error) {
	config := configs.LoadConfig()

	homeDir := homeOverride
	if homeDir == "" {
		var err error
		homeDir, err = os.UserHomeDir()
		if err != nil {
			return nil, nil, fmt.Errorf("resolving home directory: %w", err)
		}
	}

	return paths.NewWithNames(homeDir, config.TrashDirName, config.LockFileName), config, nil
}
