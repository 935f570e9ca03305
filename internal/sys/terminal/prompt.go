package terminal

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	prompt "github.com/c-bata/go-prompt"

	"github.com/mateconpizza/pinb/internal/ui/color"
)

type PromptSuggester = func(in prompt.Document) []prompt.Suggest

type FilterFunc = func(completions []prompt.Suggest, sub string, ignoreCase bool) []prompt.Suggest

const promptPrefix = ">>> "

// ReadPipedInput reads the input from a pipe.
func ReadPipedInput(args *[]string) {
	if !IsPiped() {
		return
	}

	s := getQueryFromPipe(os.Stdin)
	if s == "" {
		return
	}

	split := strings.Split(s, " ")
	*args = append(*args, split...)
}

// WaitForEnter displays a prompt and waits for the user to press ENTER.
func WaitForEnter() {
	fmt.Print("Press ENTER to continue...")

	var input string
	_, _ = fmt.Scanln(&input)
}

// inputWithTags prompts the user for input with tag suggestions, showing the
// count of each tag as its description.
func inputWithTags(p string, items map[string]int, exitFn func(error)) string {
	o, restore := prepareInputState(exitFn)
	defer restore()

	return prompt.Input(p, completerTagsWithCount(items, prompt.FilterHasPrefix), o...)
}

// inputWithSuggestions prompts the user for input with suggestions based on
// the provided items.
func inputWithSuggestions(p string, items []string, exitFn func(error)) string {
	o, restore := prepareInputState(exitFn)
	defer restore()

	return prompt.Input(p, completerPrefix(items), o...)
}

// inputWithFuzzySuggestions prompts the user for input with fuzzy suggestions
// based on the provided items.
func inputWithFuzzySuggestions(p string, items []string, exitFn func(error)) string {
	o, restore := prepareInputState(exitFn)
	defer restore()

	return prompt.Input(p, completerFuzzy(items), o...)
}

// prepareInputState prepares the input state and options, handling errors
// with exitFn.
func prepareInputState(exitFn func(error)) (o []prompt.Option, restore func()) {
	// BUG: https://github.com/c-bata/go-prompt/issues/233#issuecomment-1076162632
	if err := saveState(); err != nil {
		exitFn(err)
	}

	o = promptOptions()
	o = append(o, prompt.OptionAddKeyBind(quitKeybind(exitFn)))

	restore = func() {
		if err := restoreState(); err != nil {
			exitFn(err)
		}
	}

	return o, restore
}

// promptOptions generates default options for prompt.
func promptOptions() (o []prompt.Option) {
	o = append(o,
		prompt.OptionPrefixTextColor(prompt.White),
		prompt.OptionInputTextColor(prompt.DefaultColor),
		prompt.OptionSuggestionBGColor(prompt.Black),
		prompt.OptionDescriptionBGColor(prompt.Black),
		prompt.OptionSuggestionTextColor(prompt.White),
		prompt.OptionDescriptionTextColor(prompt.White),
		prompt.OptionSelectedSuggestionTextColor(prompt.Color(prompt.DisplayBold)),
		prompt.OptionSelectedDescriptionTextColor(prompt.Color(prompt.DisplayBold)),
		prompt.OptionSelectedSuggestionBGColor(prompt.White),
		prompt.OptionSelectedDescriptionBGColor(prompt.White),
		prompt.OptionScrollbarBGColor(prompt.DefaultColor),
		prompt.OptionScrollbarThumbColor(prompt.LightGray),
	)

	return
}

// completerCreate creates a PromptSuggester that filters suggestions based on
// the provided terms and filter function.
func completerCreate(terms []string, filter FilterFunc) PromptSuggester {
	sg := make([]prompt.Suggest, 0, len(terms))
	for _, t := range terms {
		sg = append(sg, prompt.Suggest{Text: t})
	}

	return func(in prompt.Document) []prompt.Suggest {
		return filter(sg, in.GetWordBeforeCursor(), true)
	}
}

// completerPrefix generates a list of suggestions from a given array of terms
// using prefix matching.
func completerPrefix(terms []string) PromptSuggester {
	return completerCreate(terms, prompt.FilterHasPrefix)
}

// completerFuzzy generates a list of suggestions from a given array of terms
// using fuzzy matching.
func completerFuzzy(terms []string) PromptSuggester {
	return completerCreate(terms, prompt.FilterFuzzy)
}

// completerDummy generates an empty list of suggestions.
func completerDummy() PromptSuggester {
	return completerCreate([]string{}, prompt.FilterHasPrefix)
}

// completerTagsWithCount creates a prompt suggester with the tag count as a
// description.
func completerTagsWithCount(m map[string]int, filter FilterFunc) PromptSuggester {
	sg := make([]prompt.Suggest, 0, len(m))
	for t, v := range m {
		sg = append(sg, prompt.Suggest{
			Text:        t,
			Description: fmt.Sprintf("(%d)", v),
		})
	}

	return func(in prompt.Document) []prompt.Suggest {
		return filter(sg, in.GetWordBeforeCursor(), true)
	}
}

// fmtChoicesWithDefault capitalizes the default option and appends it to the
// end of the slice.
func fmtChoicesWithDefault(opts []string, def string) []string {
	if def == "" {
		return opts
	}

	for i := 0; i < len(opts); i++ {
		if strings.HasPrefix(opts[i], def) {
			w := opts[i]

			// move to the end of the slice
			opts[i] = opts[len(opts)-1]
			opts = opts[:len(opts)-1]
			opts = append(opts, strings.ToUpper(w[:1])+w[1:])
		}
	}

	return opts
}

// buildPrompt returns a formatted string with a question and options.
func buildPrompt(q, opts string) string {
	if opts == "" {
		return q + " "
	}

	return fmt.Sprintf("%s %s ", q, color.Gray(opts))
}

// getQueryFromPipe reads the input from the pipe.
func getQueryFromPipe(r io.Reader) string {
	var result strings.Builder
	scanner := bufio.NewScanner(bufio.NewReader(r))

	for scanner.Scan() {
		line := scanner.Text()
		result.WriteString(line)
		result.WriteString("\n")
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, "error reading from pipe:", err)

		return ""
	}

	return result.String()
}

// formatOpts formats each option in the slice as "[x]option" where x is the
// first letter of the option.
func formatOpts(opts []string) string {
	n := len(opts)
	if n == 0 {
		return ""
	}

	var s string
	for _, option := range opts {
		s += fmt.Sprintf("[%s]%s ", strings.ToLower(option[:1]), option[1:])
	}

	return s
}

// quitKeybind returns the quitKeybind for the completer.
func quitKeybind(f func(err error)) prompt.KeyBind {
	return prompt.KeyBind{
		Key: prompt.ControlC,
		Fn: func(*prompt.Buffer) {
			if termState != nil {
				if err := restoreState(); err != nil {
					f(err)
				}
			}

			f(ErrActionAborted)
		},
	}
}
