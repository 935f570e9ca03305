package files

import (
	"fmt"
	"log/slog"
	"os"
)

// CreateTemp creates a temporary file with the provided prefix.
func CreateTemp(prefix, ext string) (*os.File, error) {
	fileName := fmt.Sprintf("%s-*.%s", prefix, ext)
	slog.Debug("creating temp file", "name", fileName)

	tempFile, err := os.CreateTemp("", fileName)
	if err != nil {
		return nil, fmt.Errorf("creating temp file: %w", err)
	}

	return tempFile, nil
}

// CreateTempFileWithData creates a temporary file and writes the provided
// data to it.
func CreateTempFileWithData(d []byte, ext string) (*os.File, error) {
	tf, err := CreateTemp("edit", ext)
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(tf.Name(), d, filePerm); err != nil {
		return nil, fmt.Errorf("writing to temp file: %w", err)
	}

	return tf, nil
}

// CloseAndClean closes the provided file and deletes it.
func CloseAndClean(f *os.File) {
	if err := f.Close(); err != nil {
		slog.Error("closing temp file", "error", err)
	}

	slog.Debug("removing temp file", "name", f.Name())

	if err := os.Remove(f.Name()); err != nil {
		slog.Error("removing temp file", "error", err)
	}
}
