package handler

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/mateconpizza/pinb/internal/bookmark"
	"github.com/mateconpizza/pinb/internal/config"
	"github.com/mateconpizza/pinb/internal/db"
	"github.com/mateconpizza/pinb/internal/sys/terminal"
	"github.com/mateconpizza/pinb/internal/ui"
	"github.com/mateconpizza/pinb/internal/ui/color"
	"github.com/mateconpizza/pinb/internal/ui/menu"
	"github.com/mateconpizza/pinb/internal/ui/txt"
)

// Confirmation prints the records framed and asks before acting on them.
//
// The select option narrows the records with the fzf menu and asks again.
func Confirmation(
	c *ui.Console,
	m *menu.Menu[bookmark.Bookmark],
	bs *[]*bookmark.Bookmark,
	prompt string,
	colors color.ColorFn,
) error {
	for !config.App.Flags.Force {
		n := len(*bs)
		if n == 0 {
			return db.ErrRecordNotFound
		}

		for _, b := range *bs {
			fmt.Println(txt.FrameFormatted(b, colors))
		}

		q := fmt.Sprintf("%s %d bookmark/s?", prompt, n)

		opt, err := c.Choose(q, []string{"yes", "no", "select"}, "n")
		if err != nil {
			return fmt.Errorf("%w", err)
		}

		switch strings.ToLower(opt) {
		case "n", "no":
			return terminal.ErrActionAborted
		case "y", "yes":
			return nil
		case "s", "select":
			selected, err := selectionWithMenu(m, *bs, fzfFormatter(false))
			if err != nil {
				if errors.Is(err, terminal.ErrActionAborted) {
					continue
				}

				return err
			}

			*bs = selected

			fmt.Println()
		}
	}

	if len(*bs) == 0 {
		return db.ErrRecordNotFound
	}

	return nil
}

// confirmUserLimit asks before working through an unusually large batch.
func confirmUserLimit(c *ui.Console, count, maxItems int, q string) error {
	if config.App.Flags.Force || count < maxItems {
		return nil
	}

	defer c.ClearLine(1)

	if !c.Confirm(q, "n") {
		return terminal.ErrActionAborted
	}

	return nil
}

// extractIDsFrom extracts record IDs from an argument slice.
func extractIDsFrom(args []string) ([]int, error) {
	ids := make([]int, 0)
	if len(args) == 0 {
		return ids, nil
	}

	for _, arg := range strings.Fields(strings.Join(args, " ")) {
		id, err := strconv.Atoi(arg)
		if err != nil {
			if errors.Is(err, strconv.ErrSyntax) {
				continue
			}

			return nil, fmt.Errorf("%w", err)
		}

		ids = append(ids, id)
	}

	return ids, nil
}

// validateRemove checks that the removal can proceed.
func validateRemove(c *ui.Console, bs []*bookmark.Bookmark) error {
	if len(bs) == 0 {
		return db.ErrRecordNotFound
	}

	if c.T.IsPiped() && !config.App.Flags.Force {
		return fmt.Errorf("%w: input from pipe is not supported, use --force", terminal.ErrActionAborted)
	}

	return nil
}

// URLValid reports whether s parses as an absolute URL.
func URLValid(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}

	return u.Scheme != "" && u.Host != ""
}
