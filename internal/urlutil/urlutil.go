// Package urlutil builds links to pull requests from a platform base URL.
//
// Links are always composed from configuration plus identifiers returned by
// the platform API; they are never taken from user-supplied text such as a
// pull request title.
//
//	Join("https://bitbucket.example.com/", "projects", "KEY", "repos", "my repo")
//	// → "https://bitbucket.example.com/projects/KEY/repos/my%20repo"
package urlutil

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var (
	// ErrInvalidBaseURL is returned when a base URL is not absolute http(s).
	ErrInvalidBaseURL = errors.New("base URL must be an absolute http(s) URL")
)

// Join appends escaped path segments to base. Each segment is escaped on its
// own, so a segment containing "/" stays a single path element. Segments that
// already carry several elements (GitLab namespaces) should be split by the
// caller, see [SplitPath].
func Join(base string, segments ...string) string {
	var b strings.Builder
	b.WriteString(strings.TrimRight(base, "/"))
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}

// SplitPath splits a slash separated path ("group/sub/project") into its
// non-empty elements.
func SplitPath(p string) []string {
	parts := strings.Split(p, "/")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// ValidateBaseURL checks that raw is an absolute http or https URL and returns
// it without a trailing slash.
func ValidateBaseURL(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidBaseURL, raw)
	}
	return strings.TrimRight(u.String(), "/"), nil
}
