// Package terminal provides an interactive terminal session with prompts,
// confirmations and basic screen control.
package terminal

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/mateconpizza/pinb/internal/sys"
)

var termState *term.State

// https://no-color.org
const noColorEnvVar string = "NO_COLOR"

// Default terminal settings.
var (
	MaxWidth  int = 120
	MinHeight int = 15
	MinWidth  int = 80
)

// nonInteractive skips confirmations, assuming the default answer.
var nonInteractive bool

var (
	ErrActionAborted      = errors.New("action aborted")
	ErrIncorrectAttempts  = errors.New("too many incorrect attempts")
	ErrNotTTY             = errors.New("not a terminal")
	ErrNotInteractive     = errors.New("terminal is not interactive")
	ErrGetTermSize        = errors.New("getting terminal size")
	ErrNoStateToRestore   = errors.New("no term state to restore")
	ErrTermWidthTooSmall  = errors.New("terminal width too small")
	ErrTermHeightTooSmall = errors.New("terminal height too small")
)

// NoColorEnv returns true if the NO_COLOR environment variable is set.
func NoColorEnv() bool {
	if c := sys.Env(noColorEnvVar, ""); c != "" {
		slog.Debug("NO_COLOR environment variable found")
		return true
	}

	return false
}

// NonInteractiveMode makes confirmations assume their default answer.
func NonInteractiveMode(b bool) {
	nonInteractive = b
}

// Save the current terminal state.
func saveState() error {
	oldState, err := term.GetState(int(os.Stdin.Fd()))
	if err != nil {
		return fmt.Errorf("saving state: %w", err)
	}
	termState = oldState

	return nil
}

// Restore the previously saved terminal state.
func restoreState() error {
	if termState == nil {
		return ErrNoStateToRestore
	}

	err := term.Restore(int(os.Stdin.Fd()), termState)
	if err != nil {
		return fmt.Errorf("restoring state: %w", err)
	}

	return nil
}

// LoadMaxWidth updates `MaxWidth` to the current width if it is smaller than
// the existing `MaxWidth`.
func LoadMaxWidth() {
	w, _ := getWidth()
	if w == 0 {
		return
	}

	if w < MaxWidth {
		MaxWidth = w
	}
}

// ValidDimensions errors when the terminal is too small for interactive
// views. Redirected output passes the check.
func ValidDimensions() error {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return nil
	}

	w, h, err := term.GetSize(fd)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrGetTermSize, err)
	}

	if w < MinWidth {
		return fmt.Errorf("%w: %d. Min: %d", ErrTermWidthTooSmall, w, MinWidth)
	}

	if h < MinHeight {
		return fmt.Errorf("%w: %d. Min: %d", ErrTermHeightTooSmall, h, MinHeight)
	}

	return nil
}

// clearTerminal clears the terminal.
func clearTerminal() {
	fmt.Print("\033[H\033[2J")
}

// ClearChars deletes n characters in the console.
func ClearChars(n int) {
	if n <= 0 || !term.IsTerminal(int(os.Stdin.Fd())) {
		return
	}
	for i := 0; i < n; i++ {
		fmt.Print("\b \b")
	}
}

// ClearLine deletes n lines in the console.
func ClearLine(n int) {
	if n <= 0 || !term.IsTerminal(int(os.Stdin.Fd())) {
		return
	}
	for i := 0; i < n; i++ {
		fmt.Print("\033[F\033[K")
	}
}

// ReplaceLine deletes n lines in the console and prints the given string.
func ReplaceLine(n int, s string) {
	if n <= 0 || !term.IsTerminal(int(os.Stdin.Fd())) {
		return
	}

	ClearLine(n)
	fmt.Println(s)
}

// IsPiped returns true if the input is piped.
func IsPiped() bool {
	fileInfo, _ := os.Stdin.Stat()
	return (fileInfo.Mode() & os.ModeCharDevice) == 0
}

// getWidth returns the terminal's width.
func getWidth() (int, error) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0, ErrNotTTY
	}
	w, _, err := term.GetSize(fd)
	if err != nil {
		return 0, fmt.Errorf("getting console width: %w", err)
	}

	return w, nil
}
