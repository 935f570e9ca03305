package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mateconpizza/pinb/internal/handler"
)

func init() {
	Root.AddCommand(removeCmd)
}

// removeCmd removes bookmarks from the account and the cache.
var removeCmd = &cobra.Command{
	Use:     "rm <id|url|query>",
	Aliases: []string{"remove", "del"},
	Short:   "Remove bookmarks",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, sy, bs, err := accountRecords(cmd, args)
		if err != nil {
			return err
		}
		defer r.Close()

		return handler.Remove(newConsole(r), sy, bs)
	},
}
