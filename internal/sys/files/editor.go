package files

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/mateconpizza/pinb/internal/sys"
)

var (
	ErrCommandNotFound    = errors.New("command not found")
	ErrTextEditorNotFound = errors.New("text editor not found")
)

// Fallback text editors if $EDITOR or the app editor var is not set.
var textEditors = []string{"vim", "nvim", "nano", "emacs"}

type TextEditor struct {
	name string
	cmd  string
	args []string
}

func (te *TextEditor) String() string {
	return te.name
}

// EditBytes edits a byte slice with a text editor.
func (te *TextEditor) EditBytes(content []byte, ext string) ([]byte, error) {
	if te.cmd == "" {
		return nil, ErrCommandNotFound
	}

	f, err := CreateTempFileWithData(content, ext)
	if err != nil {
		return nil, err
	}
	defer CloseAndClean(f)

	slog.Debug("editing file", "name", f.Name(), "editor", te.name)

	if err := sys.RunCmd(te.cmd, append(te.args, f.Name())...); err != nil {
		return nil, fmt.Errorf("running editor: %w", err)
	}

	data, err := os.ReadFile(f.Name())
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	return data, nil
}

// EditFile edits a file with a text editor.
func (te *TextEditor) EditFile(p string) error {
	if te.cmd == "" {
		return ErrCommandNotFound
	}

	if !Exists(p) {
		return fmt.Errorf("%w: %q", ErrFileNotFound, p)
	}

	if err := sys.RunCmd(te.cmd, append(te.args, p)...); err != nil {
		return fmt.Errorf("running editor: %w", err)
	}

	return nil
}

// NewEditor retrieves the preferred editor to use for editing.
//
// Checks the given env var first, then `EDITOR` and `VISUAL`, then falls
// back to the first available editor from `vim, nvim, nano, emacs`.
func NewEditor(s string) (*TextEditor, error) {
	envs := []string{s, "EDITOR", "VISUAL"}
	for _, e := range envs {
		if editor, found := getEditorFromEnv(e); found {
			if editor.cmd == "" {
				return nil, fmt.Errorf("%w: %q", ErrTextEditorNotFound, editor.name)
			}

			return editor, nil
		}
	}

	slog.Debug("no editor env var set, checking fallback text editor", "editors", textEditors)

	if editor, found := getFallbackEditor(textEditors); found {
		return editor, nil
	}

	return nil, ErrTextEditorNotFound
}

// getEditorFromEnv finds an editor in the environment.
func getEditorFromEnv(e string) (*TextEditor, bool) {
	s := strings.Fields(sys.Env(e, ""))
	if len(s) != 0 {
		editor := newTextEditor(sys.BinPath(s[0]), s[0], s[1:])
		slog.Debug("editor set from env", "var", e, "editor", editor.name)

		return editor, true
	}

	return nil, false
}

// getFallbackEditor finds a fallback editor.
func getFallbackEditor(editors []string) (*TextEditor, bool) {
	for _, e := range editors {
		if sys.BinExists(e) {
			editor := newTextEditor(sys.BinPath(e), e, []string{})
			slog.Debug("found fallback text editor", "editor", editor.name)

			return editor, true
		}
	}

	return nil, false
}

func newTextEditor(c, n string, arg []string) *TextEditor {
	return &TextEditor{
		cmd:  c,
		name: n,
		args: arg,
	}
}
