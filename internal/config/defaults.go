package config

import (
	"fmt"
	"log/slog"

	"github.com/mateconpizza/pinb/internal/ui/menu"
)

// ConfigFile represents the configuration file.
type ConfigFile struct {
	Colorscheme string       `yaml:"colorscheme"` // App colorscheme
	Menu        *menu.Config `yaml:"menu"`        // Menu configuration
}

// Fzf holds the menu configuration in use.
var Fzf = menu.DefaultConfig()

// Colorscheme is the colorscheme in use.
var Colorscheme = "default"

// Defaults holds the default configuration file.
var Defaults = &ConfigFile{
	Colorscheme: "default",
	Menu:        Fzf,
}

func Validate(cfg *ConfigFile) error {
	if cfg.Colorscheme == "" {
		slog.Warn("empty colorscheme, loading default colorscheme")
		cfg.Colorscheme = "default"
	}

	if cfg.Menu == nil {
		cfg.Menu = menu.DefaultConfig()
	}

	if err := cfg.Menu.Validate(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// fmtKeybindCmd builds the fzf execute action for a subcommand, with the
// record ID as the first token of the selected line.
func fmtKeybindCmd(s string) string {
	return fmt.Sprintf("execute(%s %s)", App.Cmd, s)
}

// fzfKeybind copies a configured keymap and attaches an action to it.
func fzfKeybind(k menu.Keymap, action string) menu.Keymap {
	return menu.Keymap{
		Bind:    k.Bind,
		Desc:    k.Desc,
		Action:  fmtKeybindCmd(action),
		Enabled: k.Enabled,
		Hidden:  k.Hidden,
	}
}

// FzfKeybindEdit keybind to edit the selected record.
func FzfKeybindEdit() menu.Keymap {
	return fzfKeybind(Fzf.Keymaps.Edit, "edit {1}")
}

// FzfKeybindOpen keybind to open the selected record in the default browser.
func FzfKeybindOpen() menu.Keymap {
	return fzfKeybind(Fzf.Keymaps.Open, "open {1}")
}

// FzfKeybindQR keybind to show the QR code of the selected record.
func FzfKeybindQR() menu.Keymap {
	return fzfKeybind(Fzf.Keymaps.QR, "qr {1}")
}

// FzfKeybindOpenQR keybind to open the QR code of the selected record in the
// default image viewer.
func FzfKeybindOpenQR() menu.Keymap {
	return fzfKeybind(Fzf.Keymaps.OpenQR, "qr --open {1}")
}

// FzfKeybindYank keybind to copy the selected record to the system clipboard.
func FzfKeybindYank() menu.Keymap {
	return fzfKeybind(Fzf.Keymaps.Yank, "copy {1}")
}

// FzfKeybindToggleRead keybind to toggle the read status of the selected
// record.
func FzfKeybindToggleRead() menu.Keymap {
	return fzfKeybind(Fzf.Keymaps.ToggleRead, "read {1}")
}

// FzfKeybindDelete keybind to remove the selected record, with confirmation.
func FzfKeybindDelete() menu.Keymap {
	return fzfKeybind(Fzf.Keymaps.Delete, "rm {1}")
}
