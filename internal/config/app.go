package config

import "path/filepath"

type Flags struct {
	Tags      []string // Tags list to filter bookmarks
	Head      int      // Head limit
	Tail      int      // Tail limit
	Field     string   // Field to print
	JSON      bool     // JSON output
	Oneline   bool     // Oneline output
	Multiline bool     // Multiline output
	ColorStr  string   // WithColor enable color output
	Color     bool     // Application color enable
	Force     bool     // Force action
	Menu      bool     // Menu mode
	Verbose   int      // Verbose flag
}

type (
	AppConfig struct {
		Name    string      `json:"name"`    // Name of the application
		Cmd     string      `json:"cmd"`     // Name of the executable
		Version string      `json:"version"` // Version of the application
		Info    information `json:"data"`    // Application information
		Env     environment `json:"env"`     // Application environment variables
		Path    path        `json:"path"`    // Application path
		Flags   *Flags      `json:"-"`       // Command line flags
	}

	path struct {
		Data       string `json:"data"`   // Path to store the cache and token
		ConfigFile string `json:"config"` // Path to config file
		CacheFile  string `json:"cache"`  // Path to the bookmarks cache
		TokenFile  string `json:"-"`      // Path to the API token file
	}

	information struct {
		URL   string `json:"url"`   // URL of the application
		Title string `json:"title"` // Title of the application
		Tags  string `json:"tags"`  // Tags of the application
		Desc  string `json:"desc"`  // Description of the application
	}

	environment struct {
		Home   string `json:"home"`   // Environment variable for the home directory
		Token  string `json:"token"`  // Environment variable for the API token
		Editor string `json:"editor"` // Environment variable for the preferred editor
	}
)

// App is the default application configuration.
var App = &AppConfig{
	Name:    appName,
	Cmd:     command,
	Version: version,
	Flags:   &Flags{},
	Info: information{
		URL:   "https://github.com/mateconpizza/pinb#readme",
		Title: "Pinb: a Pinboard client for your terminal",
		Tags:  "golang,pinboard,bookmarks,cli",
		Desc:  "Browse, search and edit your Pinboard bookmarks without leaving the terminal",
	},
	Env: environment{
		Home:   "PINB_HOME",
		Token:  "PINB_API_TOKEN",
		Editor: "PINB_EDITOR",
	},
}

// SetAppPaths sets the data and config locations. The cache and the token
// live under the data dir, the config file under the config dir.
func SetAppPaths(data, config string) {
	App.Path.Data = data
	App.Path.ConfigFile = filepath.Join(config, configFilename)
	App.Path.CacheFile = filepath.Join(data, cacheFilename)
	App.Path.TokenFile = filepath.Join(data, tokenFilename)
}
