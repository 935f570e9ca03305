package browserpath

import (
	"os"
	"path/filepath"
)

func genGeckoProfilePath(p string) string {
	return filepath.Join(os.Getenv("APPDATA"), p, "profiles.ini")
}

func genGeckoBookmarksPath(p string) string {
	return filepath.Join(os.Getenv("APPDATA"), p, "%s", "places.sqlite")
}

func genBlinkProfilePath(p string) string {
	return filepath.Join(os.Getenv("LOCALAPPDATA"), p, "Local State")
}

func genBlinkBookmarksPath(p string) string {
	return filepath.Join(os.Getenv("LOCALAPPDATA"), p, "%s", "Bookmarks")
}
