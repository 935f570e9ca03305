package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mateconpizza/pinb/internal/handler"
)

var exportOutFlag string

func init() {
	exportCmd.PersistentFlags().StringVarP(&exportOutFlag, "output", "o", "", "write to file instead of stdout")
	exportCmd.AddCommand(exportNetscapeCmd, exportJSONCmd)
	Root.AddCommand(exportCmd)
}

// exportCmd dumps the cache in interchange formats.
var exportCmd = &cobra.Command{
	Use:     "export",
	Aliases: []string{"exp"},
	Short:   "Export bookmarks",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Usage()
	},
}

// exportNetscapeCmd writes the cache as a Netscape bookmark file.
var exportNetscapeCmd = &cobra.Command{
	Use:     "netscape",
	Aliases: []string{"html"},
	Short:   "Export bookmarks as a Netscape HTML file",
	RunE: func(cmd *cobra.Command, _ []string) error {
		r, err := openCache()
		if err != nil {
			return err
		}
		defer r.Close()

		if err := refreshCache(cmd.Context(), r); err != nil {
			return err
		}

		return handler.ExportNetscape(newConsole(r), r, exportOutFlag)
	},
}

// exportJSONCmd writes the cache as JSON.
var exportJSONCmd = &cobra.Command{
	Use:   "json",
	Short: "Export bookmarks as JSON",
	RunE: func(cmd *cobra.Command, _ []string) error {
		r, err := openCache()
		if err != nil {
			return err
		}
		defer r.Close()

		if err := refreshCache(cmd.Context(), r); err != nil {
			return err
		}

		return handler.ExportJSON(newConsole(r), r, exportOutFlag)
	},
}
