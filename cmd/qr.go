package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mateconpizza/pinb/internal/handler"
)

var qrOpenFlag bool

func init() {
	qrCmd.Flags().BoolVarP(&qrOpenFlag, "open", "o", false, "open the QR code image in the default viewer")
	Root.AddCommand(qrCmd)
}

// qrCmd renders bookmark QR codes.
var qrCmd = &cobra.Command{
	Use:   "qr <id|url|query>",
	Short: "Show the bookmark QR code",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, bs, err := cachedRecords(cmd, args)
		if err != nil {
			return err
		}
		defer r.Close()

		return handler.QR(newConsole(r), bs, qrOpenFlag)
	},
}
