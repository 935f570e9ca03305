// Package browserpath builds the platform specific locations of browser
// profile and bookmark files.
package browserpath

// GeckoProfilePath returns the path to the Gecko-based browser's profiles.ini.
func GeckoProfilePath(p string) string {
	return genGeckoProfilePath(p)
}

// GeckoBookmarkPath returns the path pattern to the Gecko-based browser's
// places database, with a placeholder for the profile directory.
func GeckoBookmarkPath(p string) string {
	return genGeckoBookmarksPath(p)
}

// BlinkProfilePath returns the path to the Blink-based browser's "Local State"
// file.
func BlinkProfilePath(p string) string {
	return genBlinkProfilePath(p)
}

// BlinkBookmarksPath returns the path pattern to the Blink-based browser's
// bookmarks file, with a placeholder for the profile directory.
func BlinkBookmarksPath(p string) string {
	return genBlinkBookmarksPath(p)
}
