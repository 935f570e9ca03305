package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mateconpizza/pinb/internal/config"
	"github.com/mateconpizza/pinb/internal/pinboard"
	"github.com/mateconpizza/pinb/internal/sys"
	"github.com/mateconpizza/pinb/internal/sys/files"
	"github.com/mateconpizza/pinb/internal/sys/terminal"
	"github.com/mateconpizza/pinb/internal/ui"
	"github.com/mateconpizza/pinb/internal/ui/color"
	"github.com/mateconpizza/pinb/internal/ui/frame"
)

func init() {
	loginCmd.Flags().String("token", "", "API token (user:hexstring)")
	Root.AddCommand(loginCmd, logoutCmd)
}

// loginCmd validates the API token against the server and stores it.
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Save the API token",
	RunE: func(cmd *cobra.Command, _ []string) error {
		token, err := cmd.Flags().GetString("token")
		if err != nil {
			return fmt.Errorf("%w", err)
		}

		c := authConsole()

		if token == "" {
			token, err = c.InputPassword("API token: ")
			if err != nil {
				return fmt.Errorf("%w", err)
			}

			fmt.Println()
		}

		token = strings.TrimSpace(token)
		if token == "" {
			return config.ErrTokenEmpty
		}

		// check the token against the server before keeping it
		api := pinboard.New(token)
		if _, err := api.LastUpdate(cmd.Context()); err != nil {
			return fmt.Errorf("verifying token: %w", err)
		}

		if err := files.MkdirAll(config.App.Path.Data); err != nil {
			return fmt.Errorf("%w", err)
		}

		if err := config.SaveToken(token); err != nil {
			return fmt.Errorf("%w", err)
		}

		user, _, _ := strings.Cut(token, ":")
		fmt.Print(c.SuccessMesg(fmt.Sprintf("logged in as %s\n", user)))

		return nil
	},
}

// logoutCmd removes the stored token and the cached bookmarks.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the API token and the cache",
	RunE: func(_ *cobra.Command, _ []string) error {
		c := authConsole()

		if !config.App.Flags.Force {
			if err := c.ConfirmErr("remove the saved token and the local cache?", "n"); err != nil {
				return err
			}
		}

		if err := config.RemoveToken(); err != nil {
			return err
		}

		if err := os.Remove(config.App.Path.CacheFile); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("removing cache: %w", err)
		}

		fmt.Print(c.SuccessMesg("logged out\n"))

		return nil
	},
}

func authConsole() *ui.Console {
	return ui.NewConsole(
		ui.WithFrame(frame.New(frame.WithColorBorder(color.Gray))),
		ui.WithTerminal(terminal.New(terminal.WithInterruptFn(sys.ErrAndExit))),
	)
}
