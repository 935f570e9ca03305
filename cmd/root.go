package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mateconpizza/pinb/internal/config"
	"github.com/mateconpizza/pinb/internal/sys"
	"github.com/mateconpizza/pinb/internal/ui/printer"
)

// Root is the main command and entrypoint.
var Root = &cobra.Command{
	Use:           config.App.Cmd,
	Short:         config.App.Info.Title,
	Long:          config.App.Info.Desc,
	Version:       config.App.Version,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// any stray argument is a query for the list command
		if len(args) > 0 {
			return recordsCmd.RunE(recordsCmd, args)
		}

		r, err := openCache()
		if err != nil {
			return err
		}
		defer r.Close()

		ctx := cmd.Context()
		if err := refreshCache(ctx, r); err != nil {
			return err
		}

		return printer.Overview(ctx, newConsole(r), r)
	},
}

func Execute() {
	if err := Root.Execute(); err != nil {
		sys.ErrAndExit(err)
	}
}
