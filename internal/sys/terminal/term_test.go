package terminal

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTermPrompt(t *testing.T) {
	t.Parallel()
	question := "Enter your favorite language: "
	input := "golang\n"
	mockInput := strings.NewReader(input)
	term := New(WithReader(mockInput), WithWriter(io.Discard))
	result := term.Prompt(question)
	assert.Equal(t, "golang", result, "expected user input to be 'golang'")
}

func TestTermChoose(t *testing.T) {
	t.Parallel()

	t.Run("choose by full word", func(t *testing.T) {
		t.Parallel()
		term := New(WithReader(strings.NewReader("golang\n")), WithWriter(io.Discard))
		result, err := term.Choose("favorite language?", []string{"golang", "python", "lua"}, "python")
		assert.NoError(t, err)
		assert.Equal(t, "golang", result)
	})

	t.Run("choose by first letter", func(t *testing.T) {
		t.Parallel()
		term := New(WithReader(strings.NewReader("l\n")), WithWriter(io.Discard))
		result, err := term.Choose("favorite language?", []string{"golang", "python", "lua"}, "python")
		assert.NoError(t, err)
		assert.Equal(t, "l", result)
	})

	t.Run("choose default with ENTER", func(t *testing.T) {
		t.Parallel()
		term := New(WithReader(strings.NewReader("\n")), WithWriter(io.Discard))
		result, err := term.Choose("favorite language?", []string{"golang", "python", "lua"}, "python")
		assert.NoError(t, err)
		assert.Equal(t, "python", result)
	})
}

func TestTermConfirm(t *testing.T) {
	t.Run("confirm valid", func(t *testing.T) {
		t.Parallel()
		question := "Are you sure? "
		term := New(WithReader(strings.NewReader("y\n")), WithWriter(io.Discard))
		assert.True(t, term.Confirm(question, "y"), "user confirms true")
		assert.False(t, term.Confirm(question, "n"), "user cancel")
	})
	t.Run("confirm with ENTER (default)", func(t *testing.T) {
		t.Parallel()
		question := "Continue? "
		term := New(WithReader(strings.NewReader("\n")), WithWriter(io.Discard))
		assert.True(t, term.Confirm(question, "y"), "user confirms true (default)")
		assert.False(t, term.Confirm(question, "n"), "user confirms false (default)")
	})
	t.Run("confirm with invalid input", func(t *testing.T) {
		t.Parallel()
		term := New(WithReader(strings.NewReader("invalid\n")), WithWriter(io.Discard))
		question := "Continue? "
		assert.False(t, term.Confirm(question, "y"), "user cancel")
	})
}

func TestTermConfirmErr(t *testing.T) {
	t.Run("user cancels", func(t *testing.T) {
		t.Parallel()
		term := New(WithReader(strings.NewReader("n\n")), WithWriter(io.Discard))
		err := term.ConfirmErr("continue?", "y")
		assert.Error(t, err, "user cancel")
		assert.ErrorIs(t, err, ErrActionAborted)
	})
	t.Run("exceed attempts", func(t *testing.T) {
		t.Parallel()
		input := "bad\nalso\nwrong\n"
		term := New(WithReader(strings.NewReader(input)), WithWriter(io.Discard))
		err := term.ConfirmErr("continue?", "y")
		assert.Error(t, err, "exceed attempts")
		assert.ErrorIs(t, err, ErrIncorrectAttempts)
	})
	t.Run("valid input", func(t *testing.T) {
		t.Parallel()
		input := "y\n"
		term := New(WithReader(strings.NewReader(input)), WithWriter(io.Discard))
		err := term.ConfirmErr("continue?", "y")
		assert.NoError(t, err)
	})
}

func TestTermIsPiped(t *testing.T) {
	t.Parallel()
	r, _, _ := os.Pipe()
	tests := []struct {
		name   string
		reader io.Reader
		want   bool
	}{
		{
			name:   "piped input",
			reader: bytes.NewBufferString("some input"),
			want:   true,
		},
		{
			name:   "non-piped input",
			reader: os.Stdin,
			want:   false,
		},
		{
			name:   "piped input using os.Pipe()",
			reader: r,
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			term := New(WithReader(tt.reader))
			assert.Equal(t, tt.want, term.IsPiped(), tt.name)
		})
	}
}

//nolint:paralleltest //modifies package state
func TestNonInteractiveMode(t *testing.T) {
	NonInteractiveMode(true)
	defer NonInteractiveMode(false)

	// no reader input available, answers resolve to the default
	term := New(WithReader(strings.NewReader("")), WithWriter(io.Discard))
	assert.True(t, term.Confirm("continue?", "y"))
	assert.False(t, term.Confirm("continue?", "n"))
	assert.NoError(t, term.ConfirmErr("continue?", "y"))
	assert.ErrorIs(t, term.ConfirmErr("continue?", "n"), ErrActionAborted)
}
