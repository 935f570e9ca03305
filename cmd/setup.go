package cmd

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/mateconpizza/pinb/internal/config"
	"github.com/mateconpizza/pinb/internal/sys"
	"github.com/mateconpizza/pinb/internal/sys/terminal"
	"github.com/mateconpizza/pinb/internal/ui/color"
	"github.com/mateconpizza/pinb/internal/ui/menu"
)

func initConfig() {
	cfg := config.App
	cfg.Flags.Color = cfg.Flags.ColorStr == "always" && !terminal.IsPiped() && !terminal.NoColorEnv()

	config.SetVerbosity(cfg.Flags.Verbose)

	// load data and config home paths for the app.
	dataHomePath, configHomePath, err := loadAppPaths()
	if err != nil {
		sys.ErrAndExit(err)
	}

	config.SetAppPaths(dataHomePath, configHomePath)

	// load config from YAML
	if err := loadConfig(cfg.Path.ConfigFile); err != nil {
		slog.Error("loading config", "err", err)
	}

	if err := color.SetScheme(config.Colorscheme); err != nil {
		slog.Warn("loading colorscheme", "err", err)
	}

	menu.SetConfig(config.Fzf)

	// enable global color
	menu.ColorEnable(cfg.Flags.Color)
	color.Enable(cfg.Flags.Color)

	// terminal interactive mode
	terminal.NonInteractiveMode(cfg.Flags.Force)
	terminal.LoadMaxWidth()
}

// init sets the config for the root command.
func init() {
	initRootFlags(Root)
	cobra.OnInitialize(initConfig)
}

// loadAppPaths loads the data and config directories for the app.
//
// If environment variable PINB_HOME is set it overrides both, otherwise
// the user data and config directories apply.
func loadAppPaths() (data, conf string, err error) {
	e := config.App.Env.Home

	envDataHome := sys.Env(e, "")
	if envDataHome != "" {
		slog.Debug("reading home env", e, envDataHome)

		p := config.PathJoin(envDataHome)

		return p, p, nil
	}

	data, err = config.DataPath()
	if err != nil {
		return "", "", fmt.Errorf("loading paths: %w", err)
	}

	conf, err = config.ConfigPath()
	if err != nil {
		return "", "", fmt.Errorf("loading paths: %w", err)
	}

	slog.Debug("home app", "data", data, "config", conf)

	return data, conf, nil
}

// PrettyVersion formats version in a pretty way.
func PrettyVersion() string {
	name := color.BrightBlue(config.App.Name).Bold().String()
	return fmt.Sprintf("%s v%s %s/%s", name, config.App.Version, runtime.GOOS, runtime.GOARCH)
}
