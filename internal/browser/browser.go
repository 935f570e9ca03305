// Package browser imports bookmarks from locally installed web browsers.
package browser

import (
	"errors"

	"github.com/mateconpizza/pinb/internal/bookmark"
	"github.com/mateconpizza/pinb/internal/browser/blink"
	"github.com/mateconpizza/pinb/internal/browser/gecko"
	"github.com/mateconpizza/pinb/internal/ui"
	"github.com/mateconpizza/pinb/internal/ui/color"
	"github.com/mateconpizza/pinb/internal/ui/txt"
)

var ErrBrowserUnsupported = errors.New("browser unsupported")

// Browser is implemented by each browser family bookmarks can be read from.
type Browser interface {
	Name() string
	Short() string
	LoadPaths() error
	Color(string) string
	Import(c *ui.Console, force bool) ([]*bookmark.Bookmark, error)
}

// supported pairs a selection key with its browser.
type supported struct {
	key     string
	browser Browser
}

var registered = []supported{
	{"f", gecko.New("Firefox", color.BrightOrange)},
	{"z", gecko.New("Zen", color.BrightBlack)},
	{"w", gecko.New("Waterfox", color.BrightBlue)},
	{"c", blink.New("Chromium", color.BrightBlue)},
	{"g", blink.New("Google Chrome", color.BrightYellow)},
	{"b", blink.New("Brave", color.BrightOrange)},
	{"v", blink.New("Vivaldi", color.BrightRed)},
	{"e", blink.New("Edge", color.BrightCyan)},
}

// Get returns a browser by its short key, the first letter of its name.
//
//   - Firefox -> f
//   - Chromium -> c
//   - ...
func Get(key string) (Browser, bool) {
	if key == "" {
		return nil, false
	}

	for _, s := range registered {
		if s.key == key {
			return s.browser, true
		}
	}

	return nil, false
}

// Select lists the supported browsers and prompts for one.
func Select(c *ui.Console) (Browser, error) {
	c.F.Reset().Header("Supported Browsers\n").Rowln()

	for _, s := range registered {
		b := s.browser
		c.F.Midln(b.Color(b.Short()) + " " + b.Name())
	}

	c.F.Rowln().Footer("which browser do you use?")

	defer c.ClearLine(txt.CountLines(c.F.String()))
	c.F.Flush()

	b, ok := Get(c.Prompt(" "))
	if !ok {
		return nil, ErrBrowserUnsupported
	}

	return b, nil
}
