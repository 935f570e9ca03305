package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"

	prompt "github.com/c-bata/go-prompt"
	"golang.org/x/term"
)

const termPromptPrefix = "> "

// defaultInterruptFn is the default interrupt function for the terminal.
func defaultInterruptFn(err error) {}

// TermOptFn is an option function for the terminal.
type TermOptFn func(*Options)

// Options represents the options for the terminal.
type Options struct {
	reader      io.Reader
	writer      io.Writer
	PromptStr   string
	InterruptFn func(error)
}

// Term is a struct that represents a terminal.
type Term struct {
	Options
	cancelFn context.CancelFunc
}

// defaultOpts returns the default terminal options.
func defaultOpts() Options {
	return Options{
		reader:    os.Stdin,
		writer:    os.Stdout,
		PromptStr: termPromptPrefix,
	}
}

// WithReader sets the reader for the terminal.
func WithReader(r io.Reader) TermOptFn {
	return func(o *Options) {
		o.reader = r
	}
}

// WithWriter sets the writer for the terminal.
func WithWriter(w io.Writer) TermOptFn {
	return func(o *Options) {
		o.writer = w
	}
}

// WithInterruptFn sets the interrupt function for the terminal.
func WithInterruptFn(fn func(error)) TermOptFn {
	return func(o *Options) {
		o.InterruptFn = fn
	}
}

// SetReader sets the reader for the terminal.
func (t *Term) SetReader(r io.Reader) {
	t.reader = r
}

// SetWriter sets the writer for the terminal.
func (t *Term) SetWriter(w io.Writer) {
	t.writer = w
}

// SetInterruptFn sets the interrupt function for the terminal.
func (t *Term) SetInterruptFn(fn func(error)) {
	slog.Debug("setting interrupt function")

	if t.InterruptFn != nil {
		t.CancelInterruptHandler()
	}
	t.InterruptFn = fn

	ctx, cancel := context.WithCancel(context.Background())
	t.cancelFn = cancel
	setupInterruptHandler(ctx, t.InterruptFn)
}

// Input get the Input data from the user and return it.
func (t *Term) Input(p string) string {
	o, restore := prepareInputState(t.InterruptFn)
	defer restore()

	return prompt.Input(p, completerDummy(), o...)
}

// InputPassword reads a password from the terminal without echo.
func (t *Term) InputPassword() (string, error) {
	pass, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(t.writer)

	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}

	return strings.TrimSpace(string(pass)), nil
}

// Prompt get the input data from the user and return it.
func (t *Term) Prompt(p string) string {
	r := bufio.NewReader(t.reader)
	fmt.Fprint(t.writer, p)
	s, _ := r.ReadString('\n')

	return strings.TrimSpace(s)
}

// PromptWithSuggestions prompts the user for input with suggestions based on
// the provided items.
func (t *Term) PromptWithSuggestions(p string, items []string) string {
	return inputWithSuggestions(p, items, t.InterruptFn)
}

// PromptWithFuzzySuggestions prompts the user for input with fuzzy
// suggestions.
func (t *Term) PromptWithFuzzySuggestions(p string, items []string) string {
	return inputWithFuzzySuggestions(p, items, t.InterruptFn)
}

// ChooseTags prompts the user for input with suggestions based on
// the provided tags.
func (t *Term) ChooseTags(p string, items map[string]int) string {
	return inputWithTags(p, items, t.InterruptFn)
}

// Confirm prompts the user with a question and yes/no options.
func (t *Term) Confirm(q, def string) bool {
	if len(def) > 1 {
		def = def[:1]
	}

	opts := []string{"y", "n"}
	if !slices.Contains(opts, def) {
		def = "n"
	}

	if nonInteractive {
		return def == "y"
	}

	choices := fmtChoicesWithDefault(opts, def)

	chosen, err := t.promptWithChoices(q, choices, def)
	if err != nil {
		return false
	}

	return strings.EqualFold(chosen, "y")
}

// ConfirmErr prompts the user with a question, returning ErrActionAborted
// when the answer is no.
func (t *Term) ConfirmErr(q, def string) error {
	if len(def) > 1 {
		def = def[:1]
	}

	opts := []string{"y", "n"}
	if !slices.Contains(opts, def) {
		def = "n"
	}

	if nonInteractive {
		if def == "y" {
			return nil
		}

		return ErrActionAborted
	}

	choices := fmtChoicesWithDefault(opts, def)

	chosen, err := t.promptWithChoices(q, choices, def)
	if err != nil {
		return err
	}

	if strings.EqualFold(chosen, "y") {
		return nil
	}

	return ErrActionAborted
}

// Choose prompts the user to enter one of the given options.
func (t *Term) Choose(q string, opts []string, def string) (string, error) {
	if nonInteractive {
		return def, nil
	}

	for i := 0; i < len(opts); i++ {
		opts[i] = strings.ToLower(opts[i])
	}
	opts = fmtChoicesWithDefault(opts, def)

	return t.promptWithChoices(q, opts, def)
}

// maxConfirmAttempts bounds the retries on invalid input.
const maxConfirmAttempts = 3

// promptWithChoices prompts the user to enter one of the given options.
func (t *Term) promptWithChoices(q string, opts []string, def string) (string, error) {
	p := buildPrompt(q, fmt.Sprintf("[%s]:", strings.Join(opts, "/")))
	r := bufio.NewReader(t.reader)

	for attempts := 0; attempts < maxConfirmAttempts; attempts++ {
		fmt.Fprint(t.writer, p)

		s, err := r.ReadString('\n')
		if err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}

		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" && def != "" {
			return def, nil
		}

		for _, opt := range opts {
			if strings.EqualFold(s, opt) || strings.EqualFold(s, opt[:1]) {
				return s, nil
			}
		}

		fmt.Fprintf(t.writer, "invalid response. use: %s\n", formatOpts(opts))
	}

	return "", ErrIncorrectAttempts
}

// ClearLine deletes n lines in the console.
func (t *Term) ClearLine(n int) {
	if !t.isInteractiveTerminal(n) {
		slog.Debug("clearing line", "error", ErrNotInteractive)
		return
	}
	ClearLine(n)
}

// ReplaceLine deletes n lines in the console and prints the given string.
func (t *Term) ReplaceLine(n int, s string) {
	if !t.isInteractiveTerminal(n) {
		fmt.Fprintln(t.writer, s)
		return
	}

	ReplaceLine(n, s)
}

// ClearChars deletes n characters in the console.
func (t *Term) ClearChars(n int) {
	if !t.isInteractiveTerminal(n) {
		slog.Debug("clearing chars", "error", ErrNotInteractive)
		return
	}
	ClearChars(n)
}

// Clear clears the terminal.
func (t *Term) Clear() {
	if !t.isInteractiveTerminal(1) {
		slog.Debug("clearing the term", "error", ErrNotInteractive)
		return
	}
	clearTerminal()
}

// CancelInterruptHandler cancels the interrupt handler.
func (t *Term) CancelInterruptHandler() {
	if t.cancelFn != nil {
		slog.Debug("cancelling interrupt handler")
		t.cancelFn()
	}
}

// IsPiped returns true if the terminal input is piped.
func (t *Term) IsPiped() bool {
	if file, ok := t.reader.(*os.File); ok {
		fileInfo, _ := file.Stat()
		return (fileInfo.Mode() & os.ModeCharDevice) == 0
	}

	// reader is not an *os.File, assume piped (bytes.Buffer, strings.Reader)
	return true
}

// isInteractiveTerminal checks if the input is valid and the terminal is
// interactive.
func (t *Term) isInteractiveTerminal(n int) bool {
	if n <= 0 {
		return false
	}

	file, ok := t.reader.(*os.File)

	return ok && term.IsTerminal(int(file.Fd()))
}

// PipedInput appends the piped input to the given slice.
func (t *Term) PipedInput(input *[]string) {
	if !t.IsPiped() {
		return
	}

	s := getQueryFromPipe(os.Stdin)
	if s == "" {
		return
	}

	split := strings.Split(s, " ")
	*input = append(*input, split...)
}

// New returns a new terminal.
func New(opts ...TermOptFn) *Term {
	t := &Term{
		Options: defaultOpts(),
	}

	for _, opt := range opts {
		opt(&t.Options)
	}

	// set up the interrupt handler
	if t.InterruptFn == nil {
		t.InterruptFn = defaultInterruptFn
	}
	ctx, cancel := context.WithCancel(context.Background())
	t.cancelFn = cancel
	setupInterruptHandler(ctx, t.InterruptFn)

	return t
}

// setupInterruptHandler handles interruptions.
func setupInterruptHandler(ctx context.Context, onInterrupt func(error)) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan,
		os.Interrupt,    // Ctrl+C (SIGINT)
		syscall.SIGTERM, // Process termination
		syscall.SIGHUP,  // Terminal closed
	)

	go func() {
		select {
		case sig := <-sigChan:
			fmt.Println()
			slog.Debug("received signal, cleaning up", "signal", sig)
			onInterrupt(ErrActionAborted)
			os.Exit(1)
		case <-ctx.Done():
			slog.Debug("interrupt handler cancelled")
			return
		}
	}()
}
