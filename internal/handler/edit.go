package handler

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mateconpizza/pinb/internal/bookmark"
	"github.com/mateconpizza/pinb/internal/parser"
	"github.com/mateconpizza/pinb/internal/service"
	"github.com/mateconpizza/pinb/internal/sys/files"
	"github.com/mateconpizza/pinb/internal/sys/terminal"
	"github.com/mateconpizza/pinb/internal/ui"
	"github.com/mateconpizza/pinb/internal/ui/txt"
)

// Edit walks the bookmarks through the text editor, one at a time.
func Edit(c *ui.Console, sy *service.Syncer, te *files.TextEditor, bs []*bookmark.Bookmark) error {
	n := len(bs)
	if n == 0 {
		return bookmark.ErrNotFound
	}

	for i := range bs {
		if err := editSingle(c, sy, te, bs[i], i, n); err != nil {
			return err
		}
	}

	return nil
}

// editSingle edits one bookmark with confirmation and retry.
func editSingle(
	c *ui.Console,
	sy *service.Syncer,
	te *files.TextEditor,
	b *bookmark.Bookmark,
	idx, total int,
) error {
	current := *b

	for {
		edited, err := parser.Edit(te, &current, idx, total)
		if err != nil {
			if errors.Is(err, parser.ErrBufferUnchanged) {
				fmt.Print(c.InfoMesg("no changes detected\n"))
				return nil
			}

			return fmt.Errorf("edit: %w", err)
		}

		c.F.Reset().Header(cy("Edit Bookmark:\n\n")).Flush()

		diff := txt.Diff(current.Buffer(), edited.Buffer())
		fmt.Println(txt.DiffColor(diff))

		opt, err := c.Choose("save changes?", []string{"yes", "no", "edit"}, "y")
		if err != nil {
			return fmt.Errorf("choose: %w", err)
		}

		switch strings.ToLower(opt) {
		case "n", "no":
			return terminal.ErrActionAborted
		case "e", "edit":
			current = *edited
		default:
			return saveEdited(c, sy, edited, b)
		}
	}
}

// saveEdited pushes the edited bookmark to the account.
//
// The server keys posts by URL, a changed URL means deleting the old post
// first.
func saveEdited(c *ui.Console, sy *service.Syncer, newB, oldB *bookmark.Bookmark) error {
	ctx := context.Background()

	if newB.URL != oldB.URL && oldB.URL != "" {
		if err := sy.Delete(ctx, oldB.URL); err != nil {
			return fmt.Errorf("replacing %q: %w", oldB.URL, err)
		}
	}

	if err := sy.Add(ctx, newB); err != nil {
		return fmt.Errorf("%w", err)
	}

	*oldB = *newB

	if newB.ID == 0 {
		fmt.Print(c.SuccessMesg("bookmark added\n"))
		return nil
	}

	fmt.Print(c.SuccessMesg(fmt.Sprintf("bookmark [%d] updated\n", newB.ID)))

	return nil
}
