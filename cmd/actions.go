package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mateconpizza/pinb/internal/handler"
)

func init() {
	Root.AddCommand(openCmd, copyCmd)
}

// openCmd opens bookmarks in the default browser.
var openCmd = &cobra.Command{
	Use:     "open <id|url|query>",
	Aliases: []string{"o"},
	Short:   "Open bookmarks in the default browser",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, bs, err := cachedRecords(cmd, args)
		if err != nil {
			return err
		}
		defer r.Close()

		return handler.Open(newConsole(r), bs)
	},
}

// copyCmd copies bookmark URLs to the system clipboard.
var copyCmd = &cobra.Command{
	Use:     "copy <id|url|query>",
	Aliases: []string{"cp", "yank", "y"},
	Short:   "Copy bookmark URLs to the clipboard",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, bs, err := cachedRecords(cmd, args)
		if err != nil {
			return err
		}
		defer r.Close()

		return handler.Copy(newConsole(r), bs)
	},
}
