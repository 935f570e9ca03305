package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mateconpizza/pinb/internal/config"
	"github.com/mateconpizza/pinb/internal/handler"
	"github.com/mateconpizza/pinb/internal/sys/files"
)

func init() {
	Root.AddCommand(editCmd)
}

// editCmd edits bookmarks with the preferred text editor.
var editCmd = &cobra.Command{
	Use:     "edit <id|url|query>",
	Aliases: []string{"e"},
	Short:   "Edit bookmarks with the text editor",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, sy, bs, err := accountRecords(cmd, args)
		if err != nil {
			return err
		}
		defer r.Close()

		te, err := files.NewEditor(config.App.Env.Editor)
		if err != nil {
			return fmt.Errorf("%w", err)
		}

		return handler.Edit(newConsole(r), sy, te, bs)
	},
}
