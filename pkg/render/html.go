// Package render turns an aggregated report into output formats: the HTML
// table published to the wiki and an aligned terminal preview.
package render

import (
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/sgaunet/pr-report/pkg/report"
)

// LinkHeader labels the column that replaces the title and URL columns.
const LinkHeader = "Pull Request"

var (
	// ErrMissingColumn is returned when the title or URL column cannot be found.
	ErrMissingColumn = errors.New("missing column")
	// ErrRaggedRecord is returned when a record does not match the header width.
	ErrRaggedRecord = errors.New("record length does not match header")
)

// HTMLTable renders set as a single storage-format table.
//
// The title and URL columns are located by name and collapsed into one
// trailing link cell: the anchor text is the HTML-escaped title and the target
// is the URL as stored. Every other cell is emitted verbatim, without
// escaping. Column and row order follow the input exactly.
func HTMLTable(set report.RowSet) (string, error) {
	titleIdx := set.ColumnIndex(report.ColumnTitle)
	if titleIdx < 0 {
		return "", fmt.Errorf("%w: %q", ErrMissingColumn, report.ColumnTitle)
	}
	urlIdx := set.ColumnIndex(report.ColumnURL)
	if urlIdx < 0 {
		return "", fmt.Errorf("%w: %q", ErrMissingColumn, report.ColumnURL)
	}

	skip := func(i int) bool { return i == titleIdx || i == urlIdx }

	var b strings.Builder
	b.WriteString("<table><tr>")
	for i, h := range set.Header {
		if skip(i) {
			continue
		}
		b.WriteString("<th>" + h + "</th>")
	}
	b.WriteString("<th>" + LinkHeader + "</th></tr>")

	for n, rec := range set.Records {
		if len(rec) != len(set.Header) {
			return "", fmt.Errorf("%w: record %d has %d fields, header has %d",
				ErrRaggedRecord, n, len(rec), len(set.Header))
		}

		b.WriteString("<tr>")
		for i, cell := range rec {
			if skip(i) {
				continue
			}
			b.WriteString("<td>" + cell + "</td>")
		}
		b.WriteString(`<td><a href="` + rec[urlIdx] + `">` + html.EscapeString(rec[titleIdx]) + "</a></td></tr>")
	}
	b.WriteString("</table>")

	return b.String(), nil
}
