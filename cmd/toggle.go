package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mateconpizza/pinb/internal/handler"
)

func init() {
	Root.AddCommand(readCmd, shareCmd)
}

// readCmd toggles the read later flag on the account.
var readCmd = &cobra.Command{
	Use:   "read <id|url|query>",
	Short: "Toggle the read later flag",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, sy, bs, err := accountRecords(cmd, args)
		if err != nil {
			return err
		}
		defer r.Close()

		return handler.ToggleRead(newConsole(r), sy, bs)
	},
}

// shareCmd toggles bookmarks between public and private.
var shareCmd = &cobra.Command{
	Use:   "share <id|url|query>",
	Short: "Toggle between public and private",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, sy, bs, err := accountRecords(cmd, args)
		if err != nil {
			return err
		}
		defer r.Close()

		return handler.ToggleShared(newConsole(r), sy, bs)
	},
}
