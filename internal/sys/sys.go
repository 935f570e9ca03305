// Package sys provides small wrappers around the operating system.
package sys

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/pkg/browser"
)

var ErrCopyToClipboard = errors.New("copy to clipboard")

// Env retrieves an environment variable.
//
// If the environment variable is not set, returns the default value.
func Env(s, def string) string {
	if v, ok := os.LookupEnv(s); ok {
		return v
	}

	return def
}

// BinPath returns the path of the binary.
func BinPath(s string) string {
	p, err := exec.LookPath(s)
	if err != nil {
		return ""
	}
	slog.Debug("binary lookup", "name", s, "path", p)

	return p
}

// BinExists checks if the binary exists in $PATH.
func BinExists(s string) bool {
	return BinPath(s) != ""
}

// RunCmd runs a command with the given arguments attached to the current
// terminal.
func RunCmd(s string, arg ...string) error {
	cmd := exec.CommandContext(context.Background(), s, arg...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err != nil {
		return fmt.Errorf("running command: %w", err)
	}

	return nil
}

// OpenInBrowser opens a URL in the default browser.
func OpenInBrowser(s string) error {
	if err := browser.OpenURL(s); err != nil {
		return fmt.Errorf("%w: opening in browser", err)
	}

	return nil
}

// OpenFile opens a file with the default system application.
func OpenFile(path string) error {
	if err := browser.OpenFile(path); err != nil {
		return fmt.Errorf("%w: opening file", err)
	}

	return nil
}

// CopyClipboard copies a string to the clipboard.
func CopyClipboard(s string) error {
	err := clipboard.WriteAll(s)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCopyToClipboard, err)
	}

	slog.Debug("text copied to clipboard", "text", s)

	return nil
}

// ReadClipboard reads the contents of the clipboard.
func ReadClipboard() string {
	s, err := clipboard.ReadAll()
	if err != nil {
		slog.Warn("reading clipboard", "error", err)
		return ""
	}

	return strings.TrimSpace(s)
}

// ErrAndExit prints the error to stderr and exits.
func ErrAndExit(err error) {
	if err == nil {
		os.Exit(0)
	}

	fmt.Fprintf(os.Stderr, "%s: %s\n", filepath.Base(os.Args[0]), err)
	os.Exit(1)
}
