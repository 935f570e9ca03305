package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mateconpizza/pinb/internal/bookmark"
	"github.com/mateconpizza/pinb/internal/config"
	"github.com/mateconpizza/pinb/internal/db"
	"github.com/mateconpizza/pinb/internal/handler"
	"github.com/mateconpizza/pinb/internal/sys/terminal"
	"github.com/mateconpizza/pinb/internal/ui/menu"
	"github.com/mateconpizza/pinb/internal/ui/printer"
)

func init() {
	initRecordFlags(recordsCmd)
	Root.AddCommand(recordsCmd)
}

// recordsCmd lists, filters and searches the cached bookmarks.
var recordsCmd = &cobra.Command{
	Use:     "ls [query|id|url]",
	Aliases: []string{"list", "l"},
	Short:   "List and filter bookmarks",
	Example: `  pinb ls golang
  pinb ls -t devops -t linux --unread
  pinb ls --menu
  pinb ls 12 --field url`,
	RunE: recordsCmdFunc,
}

func recordsCmdFunc(cmd *cobra.Command, args []string) error {
	r, err := openCache()
	if err != nil {
		return err
	}
	defer r.Close()

	ctx := cmd.Context()
	if err := refreshCache(ctx, r); err != nil {
		return err
	}

	terminal.ReadPipedInput(&args)

	bs, err := handler.Data(cmd, menuForRecords[bookmark.Bookmark](cmd), r, args)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if len(bs) == 0 {
		return db.ErrRecordNotFound
	}

	cfg := config.App

	switch {
	case cfg.Flags.Field != "":
		return printer.ByField(bs, cfg.Flags.Field)
	case cfg.Flags.JSON:
		return printer.JSON(bs)
	case cfg.Flags.Oneline:
		return printer.Oneline(bs)
	default:
		return printer.Records(bs)
	}
}

func initRecordFlags(cmd *cobra.Command) {
	cfg := config.App
	f := cmd.Flags()

	// Prints
	f.BoolVarP(&cfg.Flags.Multiline, "multiline", "M", false, "output in formatted multiline (fzf)")
	f.BoolVarP(&cfg.Flags.Oneline, "oneline", "O", false, "output in formatted oneline")
	f.StringVarP(&cfg.Flags.Field, "field", "f", "", "output by field [id|url|title|tags|desc]")

	// Filters
	f.StringSliceVarP(&cfg.Flags.Tags, "tag", "t", nil, "list by tag")
	f.Bool("unread", false, "bookmarks to read later")
	f.Bool("read", false, "bookmarks already read")
	f.Bool("public", false, "shared bookmarks")
	f.Bool("private", false, "private bookmarks")
	f.Bool("tagged", false, "bookmarks with tags")
	f.Bool("untagged", false, "bookmarks without tags")

	// Menu mode
	f.BoolVarP(&cfg.Flags.Menu, "menu", "m", false, "menu mode (fzf)")

	// Modifiers
	f.IntVarP(&cfg.Flags.Head, "head", "H", 0, "the <int> first part of bookmarks")
	f.IntVarP(&cfg.Flags.Tail, "tail", "T", 0, "the <int> last part of bookmarks")

	cmd.MarkFlagsMutuallyExclusive("unread", "read")
	cmd.MarkFlagsMutuallyExclusive("public", "private")
	cmd.MarkFlagsMutuallyExclusive("tagged", "untagged")
}

// menuForRecords returns a FZF menu for showing records.
func menuForRecords[T comparable](cmd *cobra.Command) *menu.Menu[T] {
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
		),
	}

	if multi, _ := cmd.Flags().GetBool("multiline"); multi {
		mo = append(mo, menu.WithMultilineView())
	}

	return menu.New[T](mo...)
}
