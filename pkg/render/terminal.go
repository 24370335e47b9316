package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/sgaunet/pr-report/pkg/report"
)

const (
	// maxCellWidth caps the display width of a preview cell.
	maxCellWidth = 48
	columnGap    = "  "
	ellipsis     = "..."
)

var readinessColors = map[report.Readiness]*color.Color{
	report.Yes:     color.New(color.FgGreen, color.Bold),
	report.No:      color.New(color.FgRed),
	report.Blocked: color.New(color.FgYellow),
	report.Unknown: color.New(color.Faint),
}

// Terminal writes an aligned preview of set to w. The URL column is omitted,
// long cells are truncated by display width and the readiness column is
// colorized when color output is enabled.
func Terminal(w io.Writer, set report.RowSet) error {
	urlIdx := set.ColumnIndex(report.ColumnURL)
	readyIdx := set.ColumnIndex(report.ColumnReadyToMerge)

	var cols []int
	for i := range set.Header {
		if i != urlIdx {
			cols = append(cols, i)
		}
	}

	cell := func(rec []string, i int) string {
		if i >= len(rec) {
			return ""
		}
		return runewidth.Truncate(rec[i], maxCellWidth, ellipsis)
	}

	widths := make(map[int]int, len(cols))
	for _, i := range cols {
		widths[i] = runewidth.StringWidth(cell(set.Header, i))
		for _, rec := range set.Records {
			widths[i] = max(widths[i], runewidth.StringWidth(cell(rec, i)))
		}
	}

	writeLine := func(rec []string, header bool) error {
		parts := make([]string, 0, len(cols))
		for _, i := range cols {
			text := cell(rec, i)
			padded := text + strings.Repeat(" ", widths[i]-runewidth.StringWidth(text))
			switch {
			case header:
				padded = color.New(color.Bold).Sprint(padded)
			case i == readyIdx:
				if c, ok := readinessColors[report.Readiness(text)]; ok {
					padded = c.Sprint(padded)
				}
			}
			parts = append(parts, padded)
		}
		_, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, columnGap), " "))
		return err
	}

	if err := writeLine(set.Header, true); err != nil {
		return fmt.Errorf("failed to write preview: %w", err)
	}
	for _, rec := range set.Records {
		if err := writeLine(rec, false); err != nil {
			return fmt.Errorf("failed to write preview: %w", err)
		}
	}
	_, err := fmt.Fprintf(w, "\n%d open pull request(s)\n", set.Len())
	return err
}
