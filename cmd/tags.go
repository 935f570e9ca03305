package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mateconpizza/pinb/internal/config"
	"github.com/mateconpizza/pinb/internal/ui/printer"
)

func init() {
	Root.AddCommand(tagsCmd)
}

// tagsCmd prints every tag with its bookmark count.
var tagsCmd = &cobra.Command{
	Use:     "tags",
	Aliases: []string{"t"},
	Short:   "List tags with their bookmark count",
	RunE: func(cmd *cobra.Command, _ []string) error {
		r, err := openCache()
		if err != nil {
			return err
		}
		defer r.Close()

		ctx := cmd.Context()
		if err := refreshCache(ctx, r); err != nil {
			return err
		}

		counts, err := r.TagCounts(ctx)
		if err != nil {
			return fmt.Errorf("%w", err)
		}

		if config.App.Flags.JSON {
			return printer.TagsJSON(counts)
		}

		return printer.TagsTable(counts)
	},
}
