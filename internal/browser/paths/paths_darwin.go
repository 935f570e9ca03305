package browserpath

import (
	"os"
	"path/filepath"
)

func genGeckoProfilePath(p string) string {
	h, _ := os.UserHomeDir()
	return filepath.Join(h, "Library", "Application Support", p, "profiles.ini")
}

func genGeckoBookmarksPath(p string) string {
	h, _ := os.UserHomeDir()
	return filepath.Join(h, "Library", "Application Support", p, "%s", "places.sqlite")
}

func genBlinkProfilePath(p string) string {
	h, _ := os.UserHomeDir()
	return filepath.Join(h, "Library", "Application Support", p, "Local State")
}

func genBlinkBookmarksPath(p string) string {
	h, _ := os.UserHomeDir()
	return filepath.Join(h, "Library", "Application Support", p, "%s", "Bookmarks")
}
