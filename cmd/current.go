package cmd

import (
	"fmt"

	"github.com/cenvtool/cenv/internal/env"
	"github.com/cenvtool/cenv/internal/ui"
	"github.com/spf13/cobra"
)

var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "Prints the active environment",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, _, err := newRegistry()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to resolve paths: %v", err)
		}

		name, err := env.Current(reg)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read active environment: %v", err)
		}

		if name == "" {
			fmt.Println(ui.Warning.Sprint("No active environment") + " " + ui.Muted.Sprint("run `cenv init` to get started"))
			return nil
		}

		fmt.Println(name)
		return nil
	},
}
