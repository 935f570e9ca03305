package menu

import (
	"errors"
	"fmt"
	"strings"

	shellwords "github.com/junegunn/go-shellwords"

	"github.com/mateconpizza/pinb/internal/ui/color"
)

// appendKeytoHeader appends a key:desc string to the header slice.
func appendKeytoHeader(opts []string, key, desc string) []string {
	if !menuConfig.Header.Enabled {
		return opts
	}

	return append(opts, fmt.Sprintf("%s:%s", key, desc))
}

// defaultPreprocessor renders an item with the fmt package.
func defaultPreprocessor[T comparable](t *T) string {
	return fmt.Sprint(*t)
}

// loadHeader appends a formatted header string to the settings.
func loadHeader(header []string, settings *FzfSettings) {
	if len(header) == 0 {
		return
	}

	h := strings.Join(header, menuConfig.Header.Sep)
	*settings = append(*settings, "--header="+h)
}

// loadKeybind appends a comma-separated keybind string to the settings.
func loadKeybind(keybind []string, settings *FzfSettings) error {
	if len(keybind) == 0 {
		return nil
	}

	keys := strings.Join(keybind, ",")

	args, err := shellwords.Parse(fmt.Sprintf("%s='%s'", "--bind", keys))
	if err != nil {
		return fmt.Errorf("parsing keybinds args: %w", err)
	}

	*settings = append(*settings, args...)

	return nil
}

// buildPreviewOpts adds a preview window and a keybind to toggle it.
func buildPreviewOpts(cmd string) OptFn {
	opts := []string{
		"--preview-window=~4,+{2}+4/3,<80(up)",
		"--preview=" + cmd,
	}

	return func(o *Options) {
		if !menuConfig.Preview {
			return
		}

		o.settings = append(o.settings, opts...)

		k := menuConfig.Keymaps.Preview
		if !k.Enabled {
			return
		}

		if !k.Hidden {
			o.header = appendKeytoHeader(o.header, k.Bind, k.Desc)
		}

		o.keybind = append(o.keybind, k.Bind+":toggle-preview")
	}
}

// selectFromItems feeds the menu items to fzf and maps the selected lines
// back to the original items.
func selectFromItems[T comparable](m *Menu[T]) ([]T, error) {
	if len(m.items) == 0 {
		return nil, ErrFzfNoItems
	}

	if m.preprocessor == nil {
		m.preprocessor = defaultPreprocessor[T]
	}

	inputChan := make(chan string)
	go func() {
		for i := range m.items {
			inputChan <- m.preprocessor(&m.items[i])
		}
		close(inputChan)
	}()

	outputChan := make(chan string)
	resultChan := make(chan []T)

	go processOutput(m.items, m.preprocessor, outputChan, resultChan)

	options, err := m.runner.Parse(m.defaults, m.settings)
	if err != nil {
		return nil, fmt.Errorf("fzf: %w", err)
	}

	options.Input = inputChan
	options.Output = outputChan

	retcode, err := m.runner.Run(options)
	close(outputChan)
	result := <-resultChan

	if retcode != 0 {
		ferr := handleFzfErr(retcode)
		if errors.Is(ferr, ErrFzfActionAborted) {
			m.callInterruptFn(ferr)
		}

		return nil, ferr
	}

	if err != nil {
		return nil, fmt.Errorf("fzf: %w", err)
	}

	return result, nil
}

// processOutput maps the selected lines back to their original items and
// sends the result to resultChan.
func processOutput[T comparable](
	items []T,
	preprocessor func(*T) string,
	outputChan <-chan string,
	resultChan chan<- []T,
) {
	var result []T

	ogItem := make(map[string]T, len(items))
	for i := range items {
		formatted := color.ANSICodeRemover(preprocessor(&items[i]))
		ogItem[formatted] = items[i]
	}

	for s := range outputChan {
		if item, exists := ogItem[s]; exists {
			result = append(result, item)
		}
	}

	resultChan <- result
}

// handleFzfErr returns an error based on the exit code of fzf.
func handleFzfErr(retcode int) error {
	/*
	 * 0      Normal exit
	 * 1      No match
	 * 2      Error
	 * 126    Permission denied error from become action
	 * 127    Invalid shell command for become action
	 * 130    Interrupted with CTRL-C or ESC
	 */
	switch retcode {
	case 1:
		return ErrFzfNoMatching
	case 2:
		return ErrFzf
	case 126:
		return ErrFzfInvalidShellCommand
	case 127:
		return ErrFzfPermissionDenied
	case 130:
		return ErrFzfActionAborted
	}

	return nil
}
