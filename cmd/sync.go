package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mateconpizza/pinb/internal/config"
	"github.com/mateconpizza/pinb/internal/handler"
)

func init() {
	Root.AddCommand(syncCmd)
}

// syncCmd refreshes the local cache from the account.
var syncCmd = &cobra.Command{
	Use:     "sync",
	Aliases: []string{"s"},
	Short:   "Sync the local cache with the account",
	RunE: func(cmd *cobra.Command, _ []string) error {
		r, err := openCache()
		if err != nil {
			return err
		}
		defer r.Close()

		sy, _, err := newSyncer(r)
		if err != nil {
			return err
		}

		return handler.Sync(newConsole(r), r, sy, config.App.Flags.Force)
	},
}
