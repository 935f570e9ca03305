// Package files provides utilities for working with files/directories.
package files

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	ErrFileNotFound = errors.New("file not found")
	ErrPathEmpty    = errors.New("path is empty")
	ErrFileExists   = errors.New("file already exists")
)

// File permissions for files and directories created by the app.
const (
	filePerm = 0o644
	dirPerm  = 0o755
)

// Exists checks if a file exists.
func Exists(s string) bool {
	_, err := os.Stat(s)
	return !os.IsNotExist(err)
}

// ExistsErr checks if a file exists, returning an error if it does not.
func ExistsErr(s string) error {
	if !Exists(s) {
		return fmt.Errorf("%w: %q", ErrFileNotFound, s)
	}

	return nil
}

// size returns the size of a file.
func size(s string) int64 {
	fi, err := os.Stat(s)
	if err != nil {
		return 0
	}

	return fi.Size()
}

// mkdir creates a new directory at the specified path.
func mkdir(s string) error {
	if Exists(s) {
		return nil
	}

	slog.Debug("creating path", "path", s)

	if err := os.MkdirAll(s, dirPerm); err != nil {
		return fmt.Errorf("creating %s: %w", s, err)
	}

	return nil
}

// MkdirAll creates all the given paths.
func MkdirAll(s ...string) error {
	for _, path := range s {
		if err := mkdir(path); err != nil {
			return err
		}
	}

	return nil
}

// Remove removes the specified file if it exists.
func Remove(s string) error {
	if !Exists(s) {
		return fmt.Errorf("%w: %q", ErrFileNotFound, s)
	}

	slog.Debug("removing file", "path", s)

	if err := os.Remove(s); err != nil {
		return fmt.Errorf("removing file: %w", err)
	}

	return nil
}

// Copy copies the contents of a source file to a destination file.
func Copy(from, to string) error {
	srcFile, err := os.Open(from)
	if err != nil {
		return fmt.Errorf("opening source file: %w", err)
	}

	defer func() {
		if err := srcFile.Close(); err != nil {
			slog.Error("closing source file", "error", err)
		}
	}()

	dstFile, err := Touch(to, false)
	if err != nil {
		return fmt.Errorf("creating destination file: %w", err)
	}

	slog.Debug("copying file", "from", filepath.Base(from), "to", filepath.Base(to))

	defer func() {
		if err := dstFile.Close(); err != nil {
			slog.Error("closing destination file", "error", err)
		}
	}()

	_, err = io.Copy(dstFile, srcFile)
	if err != nil {
		return fmt.Errorf("copying file: %w", err)
	}

	return nil
}

// Touch creates a file at this given path.
// If the file already exists, the function succeeds when existOK is true.
func Touch(s string, existOK bool) (*os.File, error) {
	if Exists(s) && !existOK {
		return nil, fmt.Errorf("%w: %q", ErrFileExists, s)
	}

	f, err := os.Create(s)
	if err != nil {
		return nil, fmt.Errorf("creating file: %w", err)
	}

	return f, nil
}

// Empty returns true if the file at path s has zero size.
func Empty(s string) bool {
	return size(s) == 0
}

// EnsureSuffix appends the specified suffix to the filename.
func EnsureSuffix(s, suffix string) string {
	e := filepath.Ext(s)
	if e == suffix || e != "" {
		return s
	}

	return fmt.Sprintf("%s%s", s, suffix)
}

// ExpandHomeDir expands a leading "~/" to the user's home directory.
func ExpandHomeDir(s string) string {
	if strings.HasPrefix(s, "~/") {
		dirname, _ := os.UserHomeDir()
		s = filepath.Join(dirname, s[2:])
	}

	return s
}

// CollapseHomeDir replaces the home directory prefix with "~".
func CollapseHomeDir(s string) string {
	h, err := os.UserHomeDir()
	if err != nil {
		return s
	}

	return strings.Replace(s, h, "~", 1)
}

// YamlWrite writes the given value to a YAML file.
func YamlWrite(p string, v any, force bool) error {
	if Exists(p) && !force {
		return fmt.Errorf("%w: %q", ErrFileExists, p)
	}

	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshaling yaml: %w", err)
	}

	if err := os.WriteFile(p, data, filePerm); err != nil {
		return fmt.Errorf("writing yaml file: %w", err)
	}

	return nil
}

// YamlRead reads a YAML file into the given value.
func YamlRead(p string, v any) error {
	if !Exists(p) {
		return fmt.Errorf("%w: %q", ErrFileNotFound, p)
	}

	data, err := os.ReadFile(p)
	if err != nil {
		return fmt.Errorf("reading yaml file: %w", err)
	}

	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("unmarshaling yaml: %w", err)
	}

	return nil
}
