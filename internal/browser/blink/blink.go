// Package blink imports bookmarks from Blink based browsers, Chromium and its
// derivatives, reading the profile list from "Local State" and each profile's
// bookmarks file.
package blink

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mateconpizza/rotato"

	"github.com/mateconpizza/pinb/internal/bookmark"
	browserpath "github.com/mateconpizza/pinb/internal/browser/paths"
	"github.com/mateconpizza/pinb/internal/sys/files"
	"github.com/mateconpizza/pinb/internal/ui"
	"github.com/mateconpizza/pinb/internal/ui/color"
)

var (
	ErrBrowserConfigPathNotSet = errors.New("browser config path not set")
	ErrBrowserUnsupported      = errors.New("browser is unsupported")
)

var blinkBrowserPaths = map[string]Paths{
	"Chromium": {
		profiles:  browserpath.BlinkProfilePath("chromium"),
		bookmarks: browserpath.BlinkBookmarksPath("chromium"),
	},
	"Google Chrome": {
		profiles:  browserpath.BlinkProfilePath("google-chrome"),
		bookmarks: browserpath.BlinkBookmarksPath("google-chrome"),
	},
	"Edge": {
		profiles:  browserpath.BlinkProfilePath("microsoft-edge"),
		bookmarks: browserpath.BlinkBookmarksPath("microsoft-edge"),
	},
	"Brave": {
		profiles:  browserpath.BlinkProfilePath("BraveSoftware/Brave-Browser"),
		bookmarks: browserpath.BlinkBookmarksPath("BraveSoftware/Brave-Browser"),
	},
	"Vivaldi": {
		profiles:  browserpath.BlinkProfilePath("vivaldi"),
		bookmarks: browserpath.BlinkBookmarksPath("vivaldi"),
	},
}

// Paths holds the locations of the profile index and the per profile
// bookmarks file pattern.
type Paths struct {
	profiles  string
	bookmarks string
}

type BlinkBrowser struct {
	name  string
	short string
	color color.ColorFn
	paths Paths
}

func New(name string, c color.ColorFn) *BlinkBrowser {
	return &BlinkBrowser{
		name:  name,
		short: strings.ToLower(string(name[0])),
		color: c,
	}
}

func (b *BlinkBrowser) Name() string {
	return b.name
}

func (b *BlinkBrowser) Short() string {
	return b.short
}

func (b *BlinkBrowser) Color(s string) string {
	return b.color(s).Bold().String()
}

func (b *BlinkBrowser) LoadPaths() error {
	p, ok := blinkBrowserPaths[b.name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrBrowserUnsupported, b.name)
	}

	b.paths = p

	return nil
}

// Import collects bookmarks from every profile listed in "Local State",
// asking for confirmation per profile unless force is set.
func (b *BlinkBrowser) Import(c *ui.Console, force bool) ([]*bookmark.Bookmark, error) {
	p := b.paths
	if p.profiles == "" || p.bookmarks == "" {
		return nil, ErrBrowserConfigPathNotSet
	}

	if !files.Exists(p.profiles) {
		return nil, fmt.Errorf("%w: %q", files.ErrFileNotFound, p.profiles)
	}

	raw, err := os.ReadFile(p.profiles)
	if err != nil {
		return nil, fmt.Errorf("reading local state: %w", err)
	}

	profiles, err := parseProfiles(raw)
	if err != nil {
		return nil, err
	}

	c.F.Reset().Headerln(fmt.Sprintf("Starting %s import...", b.Color(b.Name()))).
		Midln(fmt.Sprintf("Found %d profiles", len(profiles))).Flush()

	var bs []*bookmark.Bookmark
	for dir, name := range profiles {
		b.processProfile(c, &bs, name, fmt.Sprintf(p.bookmarks, dir), force)
	}

	return bs, nil
}

// localState is the subset of the "Local State" file listing profiles.
//
//	"profile": {
//	    "info_cache": {
//	        "Default":   {"name": "..."},
//	        "Profile 1": {"name": "..."},
//	    }
//	}
type localState struct {
	Profile struct {
		InfoCache map[string]struct {
			Name string `json:"name"`
		} `json:"info_cache"`
	} `json:"profile"`
}

// parseProfiles maps profile directory names to their display names.
func parseProfiles(raw []byte) (map[string]string, error) {
	var state localState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("parsing local state: %w", err)
	}

	profiles := make(map[string]string, len(state.Profile.InfoCache))
	for dir, info := range state.Profile.InfoCache {
		name := info.Name
		if name == "" {
			name = dir
		}

		profiles[dir] = name
	}

	return profiles, nil
}

// bookmarkNode is a node of the bookmarks file tree, either a folder with
// children or a leaf with a url.
type bookmarkNode struct {
	Children []bookmarkNode `json:"children"`
	Name     string         `json:"name"`
	Type     string         `json:"type"`
	URL      string         `json:"url"`
}

// bookmarksFile is the top level of a profile's bookmarks file. Roots keeps
// raw messages because some of its entries are plain strings, not folders.
type bookmarksFile struct {
	Roots map[string]json.RawMessage `json:"roots"`
}

type blinkBookmark struct {
	title  string
	url    string
	folder string
}

func (b *BlinkBrowser) processProfile(
	c *ui.Console,
	bs *[]*bookmark.Bookmark,
	profile, path string,
	force bool,
) {
	skip := color.BrightYellow("skipping").String()
	if !files.Exists(path) {
		c.F.Rowln().Headerln(skip + " profile '" + profile + "', bookmarks file not found").Flush()
		return
	}

	c.F.Rowln().Flush()

	if !force {
		if err := c.ConfirmErr(fmt.Sprintf("import bookmarks from %q profile?", profile), "y"); err != nil {
			c.ReplaceLine(c.F.Row(skip + " profile '" + profile + "'").StringReset())
			return
		}
	} else {
		c.Warning("force import bookmarks from '" + profile + "' profile\n").Flush()
	}

	marks, err := loadBookmarks(path)
	if err != nil {
		c.Error("loading bookmarks file: " + err.Error() + "\n").Flush()
		return
	}

	ogSize := len(*bs)

	for _, m := range marks {
		if containsURL(*bs, m.url) {
			continue
		}

		nb := bookmark.New()
		nb.Title = m.title
		nb.URL = m.url
		nb.Tags = bookmark.ParseTags(m.folder + " " + importTag())
		*bs = append(*bs, nb)
	}

	found := color.BrightBlue("found").String()
	c.Info(fmt.Sprintf("%s %d bookmarks\n", found, len(*bs)-ogSize)).Flush()
}

func loadBookmarks(path string) ([]*blinkBookmark, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading bookmarks file: %w", err)
	}

	sp := rotato.New(
		rotato.WithMesg("parsing bookmarks file..."),
		rotato.WithMesgColor(rotato.ColorBrightBlue),
		rotato.WithSpinnerColor(rotato.ColorGray),
	)
	sp.Start()
	defer sp.Done()

	return parseBookmarks(raw)
}

// parseBookmarks flattens the folder tree of a bookmarks file, recording each
// bookmark's parent folder.
func parseBookmarks(raw []byte) ([]*blinkBookmark, error) {
	var data bookmarksFile
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parsing bookmarks file: %w", err)
	}

	var marks []*blinkBookmark

	for _, rawRoot := range data.Roots {
		var root bookmarkNode
		if err := json.Unmarshal(rawRoot, &root); err != nil {
			continue
		}

		traverseFolder(&root, root.Name, &marks)
	}

	return marks, nil
}

// traverseFolder walks a folder's children depth first.
func traverseFolder(node *bookmarkNode, folder string, marks *[]*blinkBookmark) {
	for i := range node.Children {
		child := &node.Children[i]
		if child.Type == "folder" {
			traverseFolder(child, child.Name, marks)
			continue
		}

		if child.URL == "" {
			continue
		}

		*marks = append(*marks, &blinkBookmark{
			title:  child.Name,
			url:    child.URL,
			folder: folder,
		})
	}
}

func containsURL(bs []*bookmark.Bookmark, u string) bool {
	for _, b := range bs {
		if b.URL == u {
			return true
		}
	}

	return false
}

// importTag tags every bookmark of an import batch with the current date.
func importTag() string {
	return time.Now().Format("2006Jan02")
}
