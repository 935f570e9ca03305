package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mateconpizza/pinb/internal/config"
	"github.com/mateconpizza/pinb/internal/sys/files"
	"github.com/mateconpizza/pinb/internal/ui/color"
)

var ErrConfigFileNotFound = errors.New("config file not found")

func init() {
	configCmd.AddCommand(configInitCmd, configShowCmd, configEditCmd)
	Root.AddCommand(configCmd)
}

// configCmd configuration management.
var configCmd = &cobra.Command{
	Use:     "config",
	Aliases: []string{"conf"},
	Short:   "Configuration management",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Usage()
	},
}

// configInitCmd dumps the default configuration to a YAML file.
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the config file with defaults",
	RunE: func(_ *cobra.Command, _ []string) error {
		return createConfig(config.App.Path.ConfigFile)
	},
}

// configShowCmd prints the active configuration.
var configShowCmd = &cobra.Command{
	Use:     "show",
	Aliases: []string{"cat"},
	Short:   "Print the active configuration",
	RunE: func(_ *cobra.Command, _ []string) error {
		return showConfig(config.App.Path.ConfigFile)
	},
}

// configEditCmd opens the config file with the preferred editor.
var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit the config file",
	RunE: func(_ *cobra.Command, _ []string) error {
		return editConfig(config.App.Path.ConfigFile)
	},
}

// createConfig dumps the app configuration to a YAML file.
func createConfig(p string) error {
	if files.Exists(p) && !config.App.Flags.Force {
		f := color.BrightYellow("--force").Italic().String()
		return fmt.Errorf("%w, use %s to overwrite", files.ErrFileExists, f)
	}

	if err := files.MkdirAll(filepath.Dir(p)); err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := files.YamlWrite(p, config.Defaults, config.App.Flags.Force); err != nil {
		return fmt.Errorf("%w", err)
	}

	fmt.Printf("%s: file saved %q\n", config.App.Name, p)

	return nil
}

// editConfig opens the config file with the preferred editor.
func editConfig(p string) error {
	if !files.Exists(p) {
		return fmt.Errorf("%w, run '%s config init' first", ErrConfigFileNotFound, config.App.Cmd)
	}

	te, err := files.NewEditor(config.App.Env.Editor)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := te.EditFile(p); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// showConfig prints the loaded configuration as YAML, falling back to the
// defaults when no file exists.
func showConfig(p string) error {
	cfg, err := getConfig(p)
	if err != nil {
		if !errors.Is(err, ErrConfigFileNotFound) {
			return err
		}

		cfg = config.Defaults
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	fmt.Print(string(data))

	return nil
}

// getConfig loads and validates the config file.
func getConfig(p string) (*config.ConfigFile, error) {
	if !files.Exists(p) {
		return nil, fmt.Errorf("%w: %q", ErrConfigFileNotFound, p)
	}

	var cfg *config.ConfigFile
	if err := files.YamlRead(p, &cfg); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if cfg == nil {
		return nil, fmt.Errorf("%w: %q", ErrConfigFileNotFound, p)
	}

	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return cfg, nil
}

// loadConfig loads the configuration file, a missing file keeps the
// defaults.
func loadConfig(p string) error {
	cfg, err := getConfig(p)
	if err != nil {
		if errors.Is(err, ErrConfigFileNotFound) {
			slog.Debug("config file not found, using defaults")
			return nil
		}

		return err
	}

	config.Fzf = cfg.Menu
	config.Colorscheme = cfg.Colorscheme

	return nil
}
