package menu

import (
	"errors"
	"fmt"
)

const (
	defaultPrompt    = "▸ "  // ▸
	defaultHeaderSep = " · " // ·
)

var ErrInvalidConfigKeymap = errors.New("invalid config keymap")

// menuConfig holds the active menu configuration.
var menuConfig = DefaultConfig()

// colorEnabled toggles ANSI color processing in fzf.
var colorEnabled bool

// SetConfig replaces the active menu configuration.
func SetConfig(cfg *Config) {
	if cfg == nil {
		return
	}

	menuConfig = cfg
}

// ColorEnable turns color output in fzf on or off.
func ColorEnable(b bool) {
	colorEnabled = b
}

// FzfSettings holds the command line arguments passed to fzf.
type FzfSettings []string

// Keymap holds a single keybind with its description.
//
// Action carries the fzf action string and is always built at runtime.
type Keymap struct {
	Bind    string `yaml:"bind"`
	Desc    string `yaml:"desc"`
	Action  string `yaml:"-"`
	Enabled bool   `yaml:"enabled"`
	Hidden  bool   `yaml:"hidden"`
}

// Keymaps holds the keybinds available in the picker.
type Keymaps struct {
	Edit       Keymap `yaml:"edit"`
	Open       Keymap `yaml:"open"`
	QR         Keymap `yaml:"qr"`
	OpenQR     Keymap `yaml:"open_qr"`
	Yank       Keymap `yaml:"yank"`
	ToggleRead Keymap `yaml:"toggle_read"`
	Delete     Keymap `yaml:"delete"`
	Preview    Keymap `yaml:"preview"`
	ToggleAll  Keymap `yaml:"toggle_all"`
}

// FzfHeader holds the header configuration for fzf.
type FzfHeader struct {
	Enabled bool   `yaml:"enabled"`
	Sep     string `yaml:"separator"`
}

// Config holds the menu configuration.
type Config struct {
	Prompt   string      `yaml:"prompt"`
	Preview  bool        `yaml:"preview"`
	Header   FzfHeader   `yaml:"header"`
	Keymaps  Keymaps     `yaml:"keymaps"`
	Settings FzfSettings `yaml:"settings"`
}

// Validate fills in missing defaults and checks that every enabled keymap
// has a bind.
func (c *Config) Validate() error {
	if c.Prompt == "" {
		c.Prompt = defaultPrompt
	}

	if c.Header.Sep == "" {
		c.Header.Sep = defaultHeaderSep
	}

	keymaps := map[string]Keymap{
		"edit":        c.Keymaps.Edit,
		"open":        c.Keymaps.Open,
		"qr":          c.Keymaps.QR,
		"open_qr":     c.Keymaps.OpenQR,
		"yank":        c.Keymaps.Yank,
		"toggle_read": c.Keymaps.ToggleRead,
		"delete":      c.Keymaps.Delete,
		"preview":     c.Keymaps.Preview,
		"toggle_all":  c.Keymaps.ToggleAll,
	}

	for name, k := range keymaps {
		if k.Enabled && k.Bind == "" {
			return fmt.Errorf("%w: %q has no bind", ErrInvalidConfigKeymap, name)
		}
	}

	return nil
}

// DefaultConfig returns the default menu configuration.
func DefaultConfig() *Config {
	return &Config{
		Prompt:  defaultPrompt,
		Preview: true,
		Header: FzfHeader{
			Enabled: true,
			Sep:     defaultHeaderSep,
		},
		Keymaps: Keymaps{
			Edit:       Keymap{Bind: "ctrl-e", Desc: "edit", Enabled: true, Hidden: false},
			Open:       Keymap{Bind: "ctrl-o", Desc: "open", Enabled: true, Hidden: false},
			QR:         Keymap{Bind: "ctrl-k", Desc: "QRcode", Enabled: true, Hidden: false},
			OpenQR:     Keymap{Bind: "ctrl-l", Desc: "openQR", Enabled: true, Hidden: true},
			Yank:       Keymap{Bind: "ctrl-y", Desc: "yank", Enabled: true, Hidden: false},
			ToggleRead: Keymap{Bind: "ctrl-r", Desc: "toggle-read", Enabled: true, Hidden: false},
			Delete:     Keymap{Bind: "ctrl-d", Desc: "delete", Enabled: true, Hidden: true},
			Preview:    Keymap{Bind: "ctrl-/", Desc: "toggle-preview", Enabled: true, Hidden: false},
			ToggleAll:  Keymap{Bind: "ctrl-a", Desc: "toggle-all", Enabled: true, Hidden: false},
		},
		Settings: defaultSettings(),
	}
}

// defaultSettings returns the default fzf arguments.
func defaultSettings() FzfSettings {
	return FzfSettings{
		"--ansi",                            // Enable processing of ANSI color codes
		"--reverse",                         // A synonym for --layout=reverse
		"--sync",                            // Synchronous search for multi-staged filtering
		"--info=inline-right",               // Determines the display style of the finder info.
		"--tac",                             // Reverse the order of the input
		"--layout=default",                  // Choose the layout (default: default)
		"--color=prompt:bold",               // Prompt style
		"--color=header:italic:bright-blue", // Header style
		"--height=100%",                     // Set the height of the menu
		"--marker=·",                        // Multi-selection marker
		"--no-scrollbar",                    // Remove scrollbar
		"--border-label= Pinb ",             // Label to print on the horizontal border line
		"--border",                          // Border around the window
	}
}
