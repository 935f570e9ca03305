package handler

import (
	"errors"
	"fmt"

	"github.com/mateconpizza/pinb/internal/bookmark"
	"github.com/mateconpizza/pinb/internal/sys/terminal"
	"github.com/mateconpizza/pinb/internal/ui/menu"
	"github.com/mateconpizza/pinb/internal/ui/txt"
)

// selection lets the user pick items from a list with the fzf menu.
func selection[T comparable](items []T, fmtFn func(*T) string, opts ...menu.OptFn) ([]T, error) {
	m := menu.New[T](opts...)
	return pick(m, items, fmtFn)
}

// pick runs the menu over items, mapping the fzf abort to the terminal
// one.
func pick[T comparable](m *menu.Menu[T], items []T, fmtFn func(*T) string) ([]T, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	if err := terminal.ValidDimensions(); err != nil {
		return nil, err
	}

	m.SetItems(items)
	m.SetPreprocessor(fmtFn)

	selected, err := m.Select()
	if err != nil {
		if errors.Is(err, menu.ErrFzfActionAborted) {
			return nil, terminal.ErrActionAborted
		}

		return nil, fmt.Errorf("%w", err)
	}

	return selected, nil
}

// selectionWithMenu narrows bs to the records picked in the menu.
func selectionWithMenu(
	m *menu.Menu[bookmark.Bookmark],
	bs []*bookmark.Bookmark,
	fmtFn func(*bookmark.Bookmark) string,
) ([]*bookmark.Bookmark, error) {
	items := make([]bookmark.Bookmark, 0, len(bs))
	for _, b := range bs {
		items = append(items, *b)
	}

	selected, err := pick(m, items, fmtFn)
	if err != nil {
		return nil, err
	}

	out := make([]*bookmark.Bookmark, 0, len(selected))
	for i := range selected {
		out = append(out, &selected[i])
	}

	return out, nil
}

// fzfFormatter returns the line renderer for the menu.
func fzfFormatter(multiline bool) func(*bookmark.Bookmark) string {
	if multiline {
		return txt.Multiline
	}

	return txt.Oneline
}
