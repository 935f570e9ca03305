package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

var (
	ErrTokenMissing = errors.New("no API token found")
	ErrTokenEmpty   = errors.New("API token is empty")
)

// Token returns the API token, from the environment first, then from the
// token file.
func Token() (string, error) {
	if t := strings.TrimSpace(os.Getenv(App.Env.Token)); t != "" {
		return t, nil
	}

	content, err := os.ReadFile(App.Path.TokenFile)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: set %s or run '%s login'", ErrTokenMissing, App.Env.Token, App.Cmd)
		}

		return "", fmt.Errorf("reading token file: %w", err)
	}

	t := strings.TrimSpace(string(content))
	if t == "" {
		return "", fmt.Errorf("%w: %q", ErrTokenEmpty, App.Path.TokenFile)
	}

	return t, nil
}

// SaveToken writes the token file, readable by the owner only.
func SaveToken(t string) error {
	t = strings.TrimSpace(t)
	if t == "" {
		return ErrTokenEmpty
	}

	if err := os.WriteFile(App.Path.TokenFile, []byte(t+"\n"), 0o600); err != nil {
		return fmt.Errorf("writing token file: %w", err)
	}

	return nil
}

// RemoveToken deletes the token file, tolerating its absence.
func RemoveToken() error {
	if err := os.Remove(App.Path.TokenFile); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing token file: %w", err)
	}

	return nil
}
