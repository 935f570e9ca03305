package handler

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mateconpizza/pinb/internal/bookmark"
	"github.com/mateconpizza/pinb/internal/config"
	"github.com/mateconpizza/pinb/internal/db"
	"github.com/mateconpizza/pinb/internal/sys/terminal"
	"github.com/mateconpizza/pinb/internal/ui"
)

func testConsole() *ui.Console {
	return ui.NewConsole(ui.WithTerminal(terminal.New(
		terminal.WithReader(strings.NewReader("")),
		terminal.WithWriter(io.Discard),
	)))
}

func TestExtractIDsFrom(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want []int
	}{
		{"empty", []string{}, []int{}},
		{"single", []string{"1"}, []int{1}},
		{"multiple", []string{"1", "2", "3"}, []int{1, 2, 3}},
		{"space separated", []string{"1 2 3"}, []int{1, 2, 3}},
		{"mixed with words", []string{"10", "golang"}, []int{10}},
		{"words only", []string{"golang", "sqlite"}, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ids, err := extractIDsFrom(tt.args)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestURLValid(t *testing.T) {
	t.Parallel()

	assert.True(t, URLValid("https://github.com/junegunn/fzf"))
	assert.True(t, URLValid("http://example.com"))
	assert.True(t, URLValid("ftp://example.com/pub"))
	assert.False(t, URLValid("example.com"))
	assert.False(t, URLValid("https://"))
	assert.False(t, URLValid("some search words"))
}

func TestValidateRemove(t *testing.T) {
	c := testConsole()

	err := validateRemove(c, []*bookmark.Bookmark{})
	require.ErrorIs(t, err, db.ErrRecordNotFound)

	b := bookmark.New()
	b.URL = "https://example.com"

	// a non-tty reader counts as piped input
	err = validateRemove(c, []*bookmark.Bookmark{b})
	require.ErrorIs(t, err, terminal.ErrActionAborted)

	config.App.Flags.Force = true
	t.Cleanup(func() { config.App.Flags.Force = false })

	assert.NoError(t, validateRemove(c, []*bookmark.Bookmark{b}))
}
