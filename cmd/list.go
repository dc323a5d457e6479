package cmd

import (
	"fmt"

	"github.com/cenvtool/cenv/internal/env"
	"github.com/cenvtool/cenv/internal/ui"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists all environments, marking the active one",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, _, err := newRegistry()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to resolve paths: %v", err)
		}

		names, err := env.List(reg)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to list environments: %v", err)
		}
		if len(names) == 0 {
			fmt.Println(ui.Warning.Sprint("No environments found") + " " + ui.Muted.Sprint("run `cenv init` to get started"))
			return nil
		}

		active, err := env.Current(reg)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read active environment: %v", err)
		}

		for _, name := range names {
			if name == active {
				fmt.Println(ui.Success.Sprint("* " + name))
			} else {
				fmt.Println("  " + name)
			}
		}
		return nil
	},
}
