package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mateconpizza/pinb/internal/config"
	"github.com/mateconpizza/pinb/internal/handler"
)

func init() {
	importCmd.AddCommand(importNetscapeCmd, importBrowserCmd)
	Root.AddCommand(importCmd)
}

// importCmd brings bookmarks from other sources into the account.
var importCmd = &cobra.Command{
	Use:     "import",
	Aliases: []string{"imp"},
	Short:   "Import bookmarks",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Usage()
	},
}

// importNetscapeCmd imports from a Netscape bookmark file.
var importNetscapeCmd = &cobra.Command{
	Use:     "netscape <file>",
	Aliases: []string{"html"},
	Short:   "Import bookmarks from a Netscape HTML file",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := openCache()
		if err != nil {
			return err
		}
		defer r.Close()

		sy, _, err := newSyncer(r)
		if err != nil {
			return err
		}

		if err := sy.EnsureFresh(cmd.Context()); err != nil {
			return err
		}

		return handler.ImportNetscape(newConsole(r), r, sy, args[0], config.App.Flags.Force)
	},
}

// importBrowserCmd imports from an installed web browser.
var importBrowserCmd = &cobra.Command{
	Use:   "browser",
	Short: "Import bookmarks from an installed browser",
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

		if err := sy.EnsureFresh(cmd.Context()); err != nil {
			return err
		}

		return handler.ImportBrowser(newConsole(r), r, sy, config.App.Flags.Force)
	},
}
