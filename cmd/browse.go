package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mateconpizza/pinb/internal/bookmark"
	"github.com/mateconpizza/pinb/internal/config"
	"github.com/mateconpizza/pinb/internal/handler"
	"github.com/mateconpizza/pinb/internal/ui/menu"
	"github.com/mateconpizza/pinb/internal/ui/printer"
)

func init() {
	initRecordFlags(browseCmd)
	Root.AddCommand(browseCmd)
}

// browseCmd drops into the fzf picker with every action keybind enabled.
var browseCmd = &cobra.Command{
	Use:     "browse [query]",
	Aliases: []string{"b"},
	Short:   "Browse bookmarks with the fzf picker",
	RunE:    browseCmdFunc,
}

func browseCmdFunc(cmd *cobra.Command, args []string) error {
	r, err := openCache()
	if err != nil {
		return err
	}
	defer r.Close()

	ctx := cmd.Context()
	if err := refreshCache(ctx, r); err != nil {
		return err
	}

	if err := cmd.Flags().Set("menu", "true"); err != nil {
		return fmt.Errorf("%w", err)
	}

	bs, err := handler.Data(cmd, menuForBrowse[bookmark.Bookmark](cmd), r, args)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return printer.Records(bs)
}

// menuForBrowse returns the picker with the full set of keybinds.
func menuForBrowse[T comparable](cmd *cobra.Command) *menu.Menu[T] {
	mo := []menu.OptFn{
		menu.WithUseDefaults(),
		menu.WithSettings(config.Fzf.Settings),
		menu.WithMultiSelection(),
		menu.WithPreview(config.App.Cmd + " ls {1}"),
		menu.WithKeybinds(
			config.FzfKeybindEdit(),
			config.FzfKeybindOpen(),
			config.FzfKeybindQR(),
			config.FzfKeybindOpenQR(),
			config.FzfKeybindYank(),
			config.FzfKeybindToggleRead(),
			config.FzfKeybindDelete(),
		),
	}

	if multi, _ := cmd.Flags().GetBool("multiline"); multi {
		mo = append(mo, menu.WithMultilineView())
	}

	return menu.New[T](mo...)
}
