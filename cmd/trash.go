package cmd

import (
	"fmt"

	"github.com/cenvtool/cenv/internal/env"
	"github.com/cenvtool/cenv/internal/ui"
	"github.com/spf13/cobra"
)

var trashCmd = &cobra.Command{
	Use:   "trash",
	Short: "Lists deleted environments, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, _, err := newRegistry()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to resolve paths: %v", err)
		}

		entries, err := env.NewTrash(reg).List()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to list trash: %v", err)
		}
		if len(entries) == 0 {
			fmt.Println(ui.Muted.Sprint("Trash is empty"))
			return nil
		}

		for _, entry := range entries {
			fmt.Printf("%s  %s\n", entry.ID, ui.Muted.Sprint("deleted "+entry.DeletedAt.Format("2006-01-02 15:04:05")))
		}
		fmt.Println(ui.Info.Sprint("→") + " Recover an entry with " + ui.Code.Sprint("cenv restore <trash-id>"))
		return nil
	},
}
