package txt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mateconpizza/pinb/internal/bookmark"
	"github.com/mateconpizza/pinb/internal/sys/terminal"
	"github.com/mateconpizza/pinb/internal/ui/color"
	"github.com/mateconpizza/pinb/internal/ui/frame"
)

// Oneline formats a bookmark in a single line with the current colorscheme.
func Oneline(b *bookmark.Bookmark) string {
	w := terminal.MaxWidth

	const (
		idPadding      = 3
		idWithColor    = 4 // visible width for IDS up to 9999
		defaultTagsLen = 24
		minTagsLen     = 34
	)

	idLen := idPadding
	tagsLen := minTagsLen

	cs := color.CurrentScheme()
	if cs.Enabled {
		idLen = idWithColor
		tagsLen = defaultTagsLen
	}

	// ID padding with color without breaking the layout
	idStr := strconv.Itoa(b.ID)
	paddedID := fmt.Sprintf("%*s", idLen, idStr)
	coloredID := strings.Replace(paddedID, idStr, cs.BrightYellow(idStr).Bold().String(), 1)

	// Calculate length available for URL
	const urlPadding = 3 // 3 = ' ' + '·' + ' '.
	urlLen := w - idLen - urlPadding - tagsLen
	shortURL := Shorten(b.URL, urlLen)
	colorURL := cs.BrightWhite(shortURL).String()
	urlLen += len(colorURL) - len(shortURL)

	// tags
	tagsColor := cs.Blue(TagsWithUnicode(b.Tags)).Italic().String()

	// unread bookmarks get a bullet marker
	sep := " " + UnicodeMiddleDot + " "
	if b.ToRead {
		sep = cs.BrightMagenta(" " + UnicodeBulletPoint + " ").Bold().String()
	}

	var sb strings.Builder
	sb.Grow(w + 20)
	sb.WriteString(coloredID)
	sb.WriteString(sep)
	sb.WriteString(fmt.Sprintf("%-*s %-*s\n", urlLen, colorURL, tagsLen, tagsColor))

	return sb.String()
}

// Multiline formats a bookmark for fzf with max width.
func Multiline(b *bookmark.Bookmark) string {
	w := terminal.MaxWidth

	var sb strings.Builder

	cs := color.CurrentScheme()
	sb.WriteString(cs.BrightYellow(b.ID).Bold().String())
	sb.WriteString(NBSP)
	sb.WriteString(Shorten(URLBreadCrumbsColor(b.URL, cs.BrightMagenta), w) + "\n")

	if b.Title != "" {
		sb.WriteString(cs.Cyan(Shorten(b.Title, w)).String() + "\n")
	}

	sb.WriteString(cs.BrightWhite(TagsWithUnicode(b.Tags)).Italic().String())

	return sb.String()
}

// FrameFormatted formats a bookmark in a frame with the given border color.
func FrameFormatted(b *bookmark.Bookmark, c color.ColorFn) string {
	f := frame.New(frame.WithColorBorder(c))
	w := terminal.MaxWidth - len(f.Border.Row)
	// id + url
	id := color.BrightYellow(b.ID).Bold().String()
	urlColor := Shorten(URLBreadCrumbsColor(b.URL, color.BrightMagenta), w)
	f.Header(fmt.Sprintf("%s %s", id, urlColor)).Ln()
	// title
	if b.Title != "" {
		titleSplit := SplitIntoChunks(b.Title, w)
		title := color.ApplyMany(titleSplit, color.Cyan)
		f.Mid(title...).Ln()
	}
	// description
	if b.Desc != "" {
		descSplit := SplitIntoChunks(b.Desc, w)
		desc := color.ApplyMany(descSplit, color.Gray)
		f.Mid(desc...).Ln()
	}
	// tags
	tags := color.Gray(TagsWithPound(b.Tags)).Italic().String()
	f.Footer(tags).Ln()

	return f.String()
}

// Frame formats a bookmark in a frame with min width.
func Frame(b *bookmark.Bookmark) string {
	w := terminal.MinWidth
	cs := color.CurrentScheme()
	f := frame.New(frame.WithColorBorder(cs.BrightBlack))

	// indentation
	w -= len(f.Border.Row)

	// id + url
	id := cs.BrightYellow(b.ID).Bold()
	urlColor := Shorten(URLBreadCrumbsColor(b.URL, cs.BrightMagenta), w) + color.Reset()
	f.Header(fmt.Sprintf("%s %s", id, urlColor)).Ln()

	// title
	if b.Title != "" {
		titleSplit := SplitIntoChunks(b.Title, w)
		title := color.ApplyMany(titleSplit, cs.BrightCyan)
		f.Midln(title...)
	}

	// description
	if b.Desc != "" {
		descSplit := SplitIntoChunks(b.Desc, w)
		desc := color.ApplyMany(descSplit, cs.White)
		f.Mid(desc...).Ln()
	}

	// tags
	tags := cs.BrightWhite(TagsWithPound(b.Tags)).Italic().String()
	f.Mid(tags).Ln()

	// date + status markers
	f.Footerln(bookmarkStatus(b, cs))

	return f.String()
}

// bookmarkStatus renders the creation date plus the unread and private
// markers.
func bookmarkStatus(b *bookmark.Bookmark, cs *color.Scheme) string {
	s := cs.White(RelativeISOTime(b.CreatedAt)).Dim().String()

	if b.ToRead {
		s += " " + cs.BrightMagenta("unread").Bold().String()
	}

	if !b.Shared {
		s += " " + cs.Yellow("private").String()
	}

	return s
}
