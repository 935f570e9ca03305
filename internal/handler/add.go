package handler

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mateconpizza/pinb/internal/bookmark"
	"github.com/mateconpizza/pinb/internal/config"
	"github.com/mateconpizza/pinb/internal/db"
	"github.com/mateconpizza/pinb/internal/pinboard"
	"github.com/mateconpizza/pinb/internal/scraper"
	"github.com/mateconpizza/pinb/internal/service"
	"github.com/mateconpizza/pinb/internal/sys"
	"github.com/mateconpizza/pinb/internal/sys/files"
	"github.com/mateconpizza/pinb/internal/sys/terminal"
	"github.com/mateconpizza/pinb/internal/ui"
	"github.com/mateconpizza/pinb/internal/ui/color"
	"github.com/mateconpizza/pinb/internal/ui/txt"
)

// New builds a bookmark from the arguments, the clipboard or the prompts,
// and saves it to the account.
func New(
	cmd *cobra.Command,
	c *ui.Console,
	r *db.SQLite,
	sy *service.Syncer,
	api *pinboard.Client,
	args []string,
) error {
	b := bookmark.New()

	bURL, err := urlFromArgs(c, args)
	if err != nil {
		return err
	}

	bURL = strings.TrimRight(bURL, "/")
	if dup, err := r.ByURL(cmd.Context(), bURL); err == nil {
		fmt.Print(txt.Frame(dup))
		return fmt.Errorf("%w with id: %d", bookmark.ErrDuplicate, dup.ID)
	}

	b.URL = bURL

	sc := scraper.New(bURL, scraper.WithSpinner("scraping webpage..."))
	fetchTitleAndDesc(c, sc, b)

	var tags []string
	if len(args) > 1 {
		tags = args[1:]
	}
	tagsFromPrompt(c, r, api, b, tags)

	if b.ToRead, err = cmd.Flags().GetBool("toread"); err != nil {
		return fmt.Errorf("%w", err)
	}

	private, err := cmd.Flags().GetBool("private")
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if private {
		b.Shared = false
	}

	edit, err := cmd.Flags().GetBool("edit")
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if edit {
		te, err := files.NewEditor(config.App.Env.Editor)
		if err != nil {
			return fmt.Errorf("%w", err)
		}

		return Edit(c, sy, te, []*bookmark.Bookmark{b})
	}

	return save(c, sy, b)
}

// save asks for confirmation and pushes the new bookmark.
func save(c *ui.Console, sy *service.Syncer, b *bookmark.Bookmark) error {
	ctx := context.Background()

	if config.App.Flags.Force {
		return pushNew(ctx, c, sy, b)
	}

	opt, err := c.Choose("save bookmark?", []string{"yes", "no", "edit"}, "y")
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	switch strings.ToLower(opt) {
	case "n", "no":
		return terminal.ErrActionAborted
	case "e", "edit":
		te, err := files.NewEditor(config.App.Env.Editor)
		if err != nil {
			return fmt.Errorf("%w", err)
		}

		return Edit(c, sy, te, []*bookmark.Bookmark{b})
	default:
		return pushNew(ctx, c, sy, b)
	}
}

// pushNew saves the bookmark on the server, then in the cache.
func pushNew(ctx context.Context, c *ui.Console, sy *service.Syncer, b *bookmark.Bookmark) error {
	if err := sy.Add(ctx, b); err != nil {
		return fmt.Errorf("%w", err)
	}

	fmt.Print(c.SuccessMesg("bookmark added\n"))

	return nil
}

// urlFromArgs takes the URL from the arguments, the clipboard or the
// prompt, in that order.
func urlFromArgs(c *ui.Console, args []string) (string, error) {
	cm := func(s string) string { return color.BrightMagenta(s).String() }

	if len(args) > 0 {
		bURL := strings.TrimRight(args[0], "\n")
		c.F.Header(cm("URL\t:")).Text(" " + color.Gray(bURL).String()).Ln().Flush()

		return bURL, nil
	}

	if cb := urlFromClipboard(c); cb != "" {
		return cb, nil
	}

	c.F.Header(cm("URL\t:")).Flush()

	bURL := c.T.Input(" ")
	if bURL == "" {
		return "", bookmark.ErrURLEmpty
	}

	return bURL, nil
}

// urlFromClipboard offers a valid URL found on the clipboard.
func urlFromClipboard(c *ui.Console) string {
	cb := sys.ReadClipboard()
	if !URLValid(cb) {
		return ""
	}

	c.F.Mid(color.BrightMagenta("URL\t:").String()).Textln(" " + color.Gray(cb).String())

	lines := txt.CountLines(c.F.String())
	c.F.Flush()

	if err := c.ConfirmErr("found valid URL in clipboard, use it?", "y"); err != nil {
		c.ClearLine(lines)
		return ""
	}

	c.ClearLine(1)

	return cb
}

// fetchTitleAndDesc scrapes the title and description, showing them framed.
//
// The description is stored as the page delivers it, wrapping happens only
// on display.
func fetchTitleAndDesc(c *ui.Console, sc *scraper.Scraper, b *bookmark.Bookmark) {
	const indentation = 10

	width := terminal.MinWidth - len(c.F.Border.Row)

	cc := func(s string) string { return color.BrightCyan(s).String() }
	cg := func(s string) string { return color.BrightGray(s).String() }
	co := func(s string) string { return color.BrightOrange(s).String() }

	_ = sc.Start()
	b.Title, _ = sc.Title()
	b.Desc, _ = sc.Desc()

	t := cg(txt.SplitAndAlign(b.Title, width, indentation))
	c.F.Mid(cc("Title\t: ")).Textln(t)

	if b.Desc != "" {
		d := cg(txt.SplitAndAlign(b.Desc, width, indentation))
		c.F.Mid(co("Desc\t: ")).Textln(d)
	}

	c.F.Flush()
}

// tagsFromPrompt takes tags from the arguments or asks for them, offering
// the cached tags plus the server suggestions for completion.
func tagsFromPrompt(c *ui.Console, r *db.SQLite, api *pinboard.Client, b *bookmark.Bookmark, args []string) {
	cb := func(s string) string { return color.BrightBlue(s).String() }
	cgi := func(s string) string { return color.BrightGray(s).Italic().String() }

	c.F.Header(cb("Tags\t:"))

	if len(args) > 0 {
		b.Tags = bookmark.ParseTags(strings.Join(args, " "))
		c.F.Textln(" " + cgi(b.Tags)).Flush()

		return
	}

	if config.App.Flags.Force {
		c.F.Ln().Flush()
		return
	}

	c.F.Text(color.Gray(" (spaces|comma separated)").Italic().String()).Ln().Flush()

	counts := tagSuggestions(r, api, b.URL)
	b.Tags = bookmark.ParseTags(c.ChooseTags(c.F.Border.Mid, counts))

	c.F.Reset().Mid(cb("Tags\t:")).Textln(" " + cgi(b.Tags))
	c.ClearLine(txt.CountLines(c.F.String()))
	c.F.Flush()
}

// tagSuggestions merges the cached tag counts with the server suggestions
// for the URL.
func tagSuggestions(r *db.SQLite, api *pinboard.Client, bURL string) map[string]int {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	counts, err := r.TagCounts(ctx)
	if err != nil {
		slog.Warn("loading tag counts", "error", err)
		counts = map[string]int{}
	}

	if api == nil {
		return counts
	}

	sug, err := api.Suggest(ctx, bURL)
	if err != nil {
		slog.Warn("fetching tag suggestions", "error", err)
		return counts
	}

	for _, t := range append(sug.Popular, sug.Recommended...) {
		if _, ok := counts[t]; !ok {
			counts[t] = 0
		}
	}

	return counts
}
