// Package report defines the normalized pull request row schema shared by every
// platform, and the operations on sets of rows: aggregation and flat file storage.
package report

// Readiness is the ternary (plus unknown) merge readiness label of a pull request.
type Readiness string

// Readiness labels.
const (
	Yes     Readiness = "Yes"
	No      Readiness = "No"
	Blocked Readiness = "Blocked"
	Unknown Readiness = "Unknown"
)

// Sentinels used when a platform does not provide a value.
const (
	UnknownAuthor = "Unknown Author"
	UnknownDate   = "Unknown Date"
)

// Canonical column names.
const (
	ColumnProject      = "Project"
	ColumnRepository   = "Repository"
	ColumnTitle        = "Pull Request Title"
	ColumnAuthor       = "Author"
	ColumnCreatedAt    = "Created Time"
	ColumnURL          = "Pull Request URL"
	ColumnReadyToMerge = "Ready to Merge"
)

// Header returns the canonical ordered header. A fresh slice is returned on
// every call.
func Header() []string {
	return []string{
		ColumnProject,
		ColumnRepository,
		ColumnTitle,
		ColumnAuthor,
		ColumnCreatedAt,
		ColumnURL,
		ColumnReadyToMerge,
	}
}

// Row is one open pull request in the normalized schema.
type Row struct {
	Project      string
	Repository   string
	Title        string
	Author       string
	CreatedAt    string
	URL          string
	ReadyToMerge Readiness
}

// Record returns the row's values in canonical header order.
func (r Row) Record() []string {
	return []string{
		r.Project,
		r.Repository,
		r.Title,
		r.Author,
		r.CreatedAt,
		r.URL,
		string(r.ReadyToMerge),
	}
}

// RowSet is an ordered sequence of records sharing one header.
type RowSet struct {
	Header  []string
	Records [][]string
}

// NewRowSet builds a RowSet with the canonical header from rows, preserving order.
func NewRowSet(rows []Row) RowSet {
	records := make([][]string, len(rows))
	for i, r := range rows {
		records[i] = r.Record()
	}
	return RowSet{Header: Header(), Records: records}
}

// Len returns the number of records.
func (s RowSet) Len() int {
	return len(s.Records)
}

// ColumnIndex returns the position of the named column, or -1.
func (s RowSet) ColumnIndex(name string) int {
	for i, h := range s.Header {
		if h == name {
			return i
		}
	}
	return -1
}
