package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mateconpizza/pinb/internal/config"
)

func initRootFlags(cmd *cobra.Command) {
	cfg := config.App
	pf := cmd.PersistentFlags()

	pf.StringVar(&cfg.Flags.ColorStr, "color", "always", "print with pretty colors [always|never]")
	pf.CountVarP(&cfg.Flags.Verbose, "verbose", "v", "increase output verbosity")
	pf.BoolVar(&cfg.Flags.Force, "force", false, "force action, skip confirmations")
	pf.BoolVarP(&cfg.Flags.JSON, "json", "j", false, "output in JSON format")

	cmd.CompletionOptions.HiddenDefaultCmd = true
}
