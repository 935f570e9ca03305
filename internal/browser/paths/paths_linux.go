package browserpath

import (
	"os"
	"path/filepath"
)

func genGeckoProfilePath(p string) string {
	h, _ := os.UserHomeDir()
	return filepath.Join(h, p, "profiles.ini")
}

func genGeckoBookmarksPath(p string) string {
	h, _ := os.UserHomeDir()
	return filepath.Join(h, p, "%s", "places.sqlite")
}

func genBlinkProfilePath(p string) string {
	h, _ := os.UserHomeDir()
	return filepath.Join(h, ".config", p, "Local State")
}

func genBlinkBookmarksPath(p string) string {
	h, _ := os.UserHomeDir()
	return filepath.Join(h, ".config", p, "%s", "Bookmarks")
}
