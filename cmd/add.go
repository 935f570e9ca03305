package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mateconpizza/pinb/internal/handler"
	"github.com/mateconpizza/pinb/internal/ui/color"
)

func init() {
	f := addCmd.Flags()
	f.Bool("toread", false, "mark as read later")
	f.Bool("private", false, "keep the bookmark private")
	f.BoolP("edit", "e", false, "open the editor before saving")
	Root.AddCommand(addCmd)
}

// addCmd adds a new bookmark to the account.
var addCmd = &cobra.Command{
	Use:     "add [url] [tags...]",
	Aliases: []string{"new", "a"},
	Short:   "Add a new bookmark",
	Example: `  pinb add
  pinb add https://go.dev golang docs
  pinb add https://go.dev --toread --private`,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := openCache()
		if err != nil {
			return err
		}
		defer r.Close()

		sy, api, err := newSyncer(r)
		if err != nil {
			return err
		}

		if err := sy.EnsureFresh(cmd.Context()); err != nil {
			return err
		}

		c := newConsole(r)

		cy := color.BrightYellow("Add Bookmark").String()
		cgi := color.BrightGray(" (ctrl+c to exit)").Italic().String()
		c.F.Headerln(cy + cgi).Rowln().Flush()

		return handler.New(cmd, c, r, sy, api, args)
	},
}
