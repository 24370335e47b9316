package fixtures

import "github.com/sgaunet/pr-report/pkg/confluence"

// ExistingPage returns a page found by lookup at the given version.
func ExistingPage(version int) *confluence.Page {
	return &confluence.Page{
		ID:      "42",
		Type:    "page",
		Title:   "Open Pull Requests",
		Version: &confluence.Version{Number: version},
	}
}

// UnversionedPage returns a page whose lookup response carried no version.
func UnversionedPage() *confluence.Page {
	return &confluence.Page{ID: "42", Type: "page", Title: "Open Pull Requests"}
}

// WriteResult returns a raw write response.
func WriteResult(status int, body string) *confluence.Result {
	return &confluence.Result{StatusCode: status, Body: body}
}
