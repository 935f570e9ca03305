// Package gecko imports bookmarks from Gecko based browsers, Firefox and its
// derivatives, reading profiles.ini and each profile's places database.
package gecko

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	ini "gopkg.in/ini.v1"

	"github.com/mateconpizza/pinb/internal/bookmark"
	browserpath "github.com/mateconpizza/pinb/internal/browser/paths"
	"github.com/mateconpizza/pinb/internal/sys/files"
	"github.com/mateconpizza/pinb/internal/ui"
	"github.com/mateconpizza/pinb/internal/ui/color"
)

var (
	ErrBrowserIsOpen           = errors.New("browser is open")
	ErrBrowserConfigPathNotSet = errors.New("browser config path not set")
	ErrBrowserUnsupported      = errors.New("browser is unsupported")
)

var geckoBrowserPaths = map[string]Paths{
	"Firefox": {
		profiles:  browserpath.GeckoProfilePath(".mozilla/firefox"),
		bookmarks: browserpath.GeckoBookmarkPath(".mozilla/firefox"),
	},
	"Zen": {
		profiles:  browserpath.GeckoProfilePath(".zen"),
		bookmarks: browserpath.GeckoBookmarkPath(".zen"),
	},
	"Waterfox": {
		profiles:  browserpath.GeckoProfilePath(".waterfox"),
		bookmarks: browserpath.GeckoBookmarkPath(".waterfox"),
	},
}

// Paths holds the locations of the profile index and the per profile places
// database pattern.
type Paths struct {
	profiles  string
	bookmarks string
}

type GeckoBrowser struct {
	name  string
	short string
	color color.ColorFn
	paths Paths
}

func New(name string, c color.ColorFn) *GeckoBrowser {
	return &GeckoBrowser{
		name:  name,
		short: strings.ToLower(string(name[0])),
		color: c,
	}
}

func (b *GeckoBrowser) Name() string {
	return b.name
}

func (b *GeckoBrowser) Short() string {
	return b.short
}

func (b *GeckoBrowser) Color(s string) string {
	return b.color(s).Bold().String()
}

func (b *GeckoBrowser) LoadPaths() error {
	p, ok := geckoBrowserPaths[b.name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrBrowserUnsupported, b.name)
	}

	b.paths = p

	return nil
}

// Import collects bookmarks from every profile listed in profiles.ini, asking
// for confirmation per profile unless force is set.
func (b *GeckoBrowser) Import(c *ui.Console, force bool) ([]*bookmark.Bookmark, error) {
	p := b.paths
	if p.profiles == "" || p.bookmarks == "" {
		return nil, ErrBrowserConfigPathNotSet
	}

	if !files.Exists(p.profiles) {
		return nil, fmt.Errorf("%w: %q", files.ErrFileNotFound, p.profiles)
	}

	profiles, err := allProfiles(p.profiles)
	if err != nil {
		return nil, err
	}

	c.F.Reset().Headerln(fmt.Sprintf("Starting %s import...", b.Color(b.Name()))).
		Midln(fmt.Sprintf("Found %d profiles", len(profiles))).Flush()

	var bs []*bookmark.Bookmark
	for name, dir := range profiles {
		b.processProfile(c, &bs, name, fmt.Sprintf(p.bookmarks, dir), force)
	}

	return bs, nil
}

// allProfiles maps profile names to their directories from profiles.ini.
func allProfiles(path string) (map[string]string, error) {
	data, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading profiles file: %w", err)
	}

	profiles := make(map[string]string)

	for _, sec := range data.Sections() {
		if !strings.HasPrefix(sec.Name(), "Profile") {
			continue
		}

		name := sec.Key("Name").String()
		dir := sec.Key("Path").String()

		if name == "" || dir == "" {
			continue
		}

		profiles[name] = dir
	}

	return profiles, nil
}

func (b *GeckoBrowser) processProfile(
	c *ui.Console,
	bs *[]*bookmark.Bookmark,
	profile, dbPath string,
	force bool,
) {
	skip := color.BrightYellow("skipping").String()
	if !files.Exists(dbPath) {
		c.F.Rowln().Headerln(skip + " profile '" + profile + "', places database not found").Flush()
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

	db, err := openPlaces(dbPath)
	if err != nil {
		if errors.Is(err, ErrBrowserIsOpen) {
			locked := color.BrightRed("locked").String()
			c.Error("places database is " + locked + ", maybe " + b.name + " is running?\n").Flush()

			return
		}

		slog.Error("opening places database", "profile", profile, "error", err)

		return
	}

	defer func() {
		if err := db.Close(); err != nil {
			slog.Warn("closing places database", "error", err)
		}
	}()

	gmarks, err := queryBookmarks(db)
	if err != nil {
		slog.Error("reading places database", "profile", profile, "error", err)
		c.Error("reading places database: " + err.Error() + "\n").Flush()

		return
	}

	ogSize := len(*bs)

	for _, gb := range gmarks {
		if containsURL(*bs, gb.url) {
			continue
		}

		nb := bookmark.New()
		nb.Title = gb.Title
		nb.URL = gb.url
		nb.Tags = gb.tags
		*bs = append(*bs, nb)
	}

	found := color.BrightBlue("found").String()
	c.Info(fmt.Sprintf("%s %d bookmarks\n", found, len(*bs)-ogSize)).Flush()
}

type geckoBookmark struct {
	FK     int    `db:"fk"`
	Parent int    `db:"parent"`
	Title  string `db:"title"`
	url    string
	tags   string
}

// openPlaces opens the places database in read-only mode.
func openPlaces(dbPath string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite3", "file:"+dbPath+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("opening places database: %w", err)
	}

	if err := db.Ping(); err != nil {
		if strings.Contains(err.Error(), "database is locked") {
			return nil, ErrBrowserIsOpen
		}

		return nil, fmt.Errorf("ping places database: %w", err)
	}

	return db, nil
}

func queryBookmarks(db *sqlx.DB) ([]*geckoBookmark, error) {
	var gmarks []*geckoBookmark

	q := "SELECT DISTINCT fk, parent, title FROM moz_bookmarks WHERE type=1 AND title IS NOT NULL"
	if err := db.Select(&gmarks, q); err != nil {
		return nil, fmt.Errorf("querying bookmarks: %w", err)
	}

	keep := gmarks[:0]

	for _, gb := range gmarks {
		u, err := queryURL(db, gb.FK)
		if err != nil {
			return nil, err
		}

		if u == "" {
			continue
		}

		t, err := queryTags(db, gb.FK)
		if err != nil {
			return nil, err
		}

		gb.url = u
		gb.tags = bookmark.ParseTags(t + " " + importTag())
		keep = append(keep, gb)
	}

	return keep, nil
}

func queryURL(db *sqlx.DB, fk int) (string, error) {
	var u string
	if err := db.Get(&u, "SELECT url FROM moz_places WHERE id=?", fk); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}

		return "", fmt.Errorf("querying url: %w", err)
	}

	if isNonGenericURL(u) {
		return "", nil
	}

	return u, nil
}

// queryTags resolves the tag folders attached to a bookmark. Tag assignments
// are title-less rows in moz_bookmarks whose parent is the tag folder.
func queryTags(db *sqlx.DB, fk int) (string, error) {
	var parents []int
	if err := db.Select(&parents, "SELECT parent FROM moz_bookmarks WHERE fk=? AND title IS NULL", fk); err != nil {
		return "", fmt.Errorf("querying tags: %w", err)
	}

	tags := make([]string, 0, len(parents))

	for _, id := range parents {
		var tag sql.NullString
		if err := db.Get(&tag, "SELECT title FROM moz_bookmarks WHERE id=?", id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				continue
			}

			return "", fmt.Errorf("querying tag title: %w", err)
		}

		if tag.Valid && tag.String != "" {
			tags = append(tags, tag.String)
		}
	}

	return strings.Join(tags, " "), nil
}

var ignoredPrefixes = []string{
	"about:",
	"apt:",
	"chrome://",
	"file://",
	"place:",
	"vivaldi://",
	"moz-extension://",
}

// isNonGenericURL reports whether the URL is browser internal.
func isNonGenericURL(url string) bool {
	for _, prefix := range ignoredPrefixes {
		if strings.HasPrefix(url, prefix) {
			return true
		}
	}

	return false
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
