package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/mattn/go-runewidth"

	"github.com/blackwell-systems/readingctl/internal/model"
)

// RecordItem wraps a library record for the browser list.
type RecordItem struct {
	Record model.BookRecord
}

// FilterValue feeds the list's fuzzy filter.
func (r RecordItem) FilterValue() string {
	return fmt.Sprintf("%s %s %s", r.Record.Title, r.Record.Author, r.Record.Genre)
}

// Column width constraints
const (
	minTitleWidth    = 12
	maxTitleWidth    = 42
	minAuthorWidth   = 8
	maxAuthorWidth   = 24
	minGenreWidth    = 6
	maxGenreWidth    = 16
	statusWidth      = 11 // longest status label
	progressBarWidth = 14
	columnGap        = 1
)

// computeColumnWidths distributes available width across the
// title/author/genre columns; status and progress are fixed.
func computeColumnWidths(totalWidth int) (titleW, authorW, genreW int) {
	prefix := 2
	gaps := columnGap * 4
	usable := totalWidth - prefix - gaps - statusWidth - progressBarWidth
	if usable < minTitleWidth+minAuthorWidth+minGenreWidth {
		return minTitleWidth, minAuthorWidth, minGenreWidth
	}
	titleW = usable * 50 / 100
	if titleW > maxTitleWidth {
		titleW = maxTitleWidth
	}
	remaining := usable - titleW
	authorW = remaining * 60 / 100
	if authorW > maxAuthorWidth {
		authorW = maxAuthorWidth
	}
	genreW = remaining - authorW
	if genreW > maxGenreWidth {
		genreW = maxGenreWidth
	}
	if authorW < minAuthorWidth {
		authorW = minAuthorWidth
	}
	if genreW < minGenreWidth {
		genreW = minGenreWidth
	}
	return
}

// padOrTruncate pads s to exactly width display cells, truncating with
// "…" if necessary. Widths are terminal cells, not runes, so CJK
// titles align correctly.
func padOrTruncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	w := runewidth.StringWidth(s)
	if w > width {
		// Truncate can land one cell short when it splits before a
		// double-width rune, so pad back up to the column width.
		s = runewidth.Truncate(s, width, "…")
		w = runewidth.StringWidth(s)
	}
	if w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// progressBar renders a fixed-width bar like [████░░░░] 42%.
func progressBar(r model.BookRecord) string {
	const cells = 8
	frac := r.ProgressFraction()
	filled := int(frac * cells)
	if filled > cells {
		filled = cells
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", cells-filled)
	return fmt.Sprintf("[%s] %3.0f%%", bar, frac*100)
}

// renderRecordItem renders one record row with fixed-width columns.
func renderRecordItem(w io.Writer, m list.Model, index int, item list.Item, st Styles) {
	ri, ok := item.(RecordItem)
	if !ok {
		return
	}

	listWidth := m.Width()
	if listWidth <= 0 {
		listWidth = 80
	}
	titleW, authorW, genreW := computeColumnWidths(listWidth)
	gap := strings.Repeat(" ", columnGap)

	isCursor := index == m.Index()
	prefix := "  "
	if isCursor {
		prefix = st.Highlight.Render("›") + " "
	}

	titleCol := padOrTruncate(ri.Record.Title, titleW)
	authorCol := padOrTruncate(ri.Record.Author, authorW)
	genreCol := padOrTruncate(ri.Record.Genre, genreW)
	statusCol := padOrTruncate(string(ri.Record.Status), statusWidth)
	barCol := progressBar(ri.Record)

	var line string
	if isCursor {
		line = prefix +
			st.Highlight.Render(titleCol) + gap +
			st.Subtle.Render(authorCol) + gap +
			st.Subtle.Render(genreCol) + gap +
			st.StatusStyle(ri.Record.Status).Render(statusCol) + gap +
			st.Highlight.Render(barCol)
	} else {
		line = prefix +
			st.Normal.Render(titleCol) + gap +
			st.Subtle.Render(authorCol) + gap +
			st.Subtle.Render(genreCol) + gap +
			st.StatusStyle(ri.Record.Status).Render(statusCol) + gap +
			st.Normal.Render(barCol)
	}
	_, _ = fmt.Fprint(w, line)
}
