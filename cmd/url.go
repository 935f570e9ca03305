package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mateconpizza/pinb/internal/handler"
)

func init() {
	urlCheckCmd.Flags().Bool("all", false, "check every bookmark")
	urlCmd.AddCommand(urlCheckCmd, urlSnapshotCmd)
	Root.AddCommand(urlCmd)
}

// urlCmd URL status utilities.
var urlCmd = &cobra.Command{
	Use:   "url",
	Short: "URL status utilities",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Usage()
	},
}

// urlCheckCmd checks the HTTP status of bookmarks.
var urlCheckCmd = &cobra.Command{
	Use:     "check <id...|query>",
	Aliases: []string{"c", "status"},
	Short:   "Check the HTTP status of bookmarks",
	RunE: func(cmd *cobra.Command, args []string) error {
		all, err := cmd.Flags().GetBool("all")
		if err != nil {
			return fmt.Errorf("%w", err)
		}

		if !all && len(args) == 0 {
			return cmd.Usage()
		}

		if all {
			args = nil
		}

		r, bs, err := cachedRecords(cmd, args)
		if err != nil {
			return err
		}
		defer r.Close()

		return handler.CheckStatus(newConsole(r), bs)
	},
}

// urlSnapshotCmd asks the wayback machine for an archived copy.
var urlSnapshotCmd = &cobra.Command{
	Use:     "snapshot <id|url|query>",
	Aliases: []string{"s", "wayback"},
	Short:   "Open the latest wayback machine snapshot",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, bs, err := cachedRecords(cmd, args)
		if err != nil {
			return err
		}
		defer r.Close()

		return handler.Snapshot(newConsole(r), bs)
	},
}
