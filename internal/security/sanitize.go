package security

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
)

var (
	// Token regex patterns compiled once using sync.Once.
	gitlabTokenRegex    *regexp.Regexp
	githubTokenRegex    *regexp.Regexp
	bitbucketTokenRegex *regexp.Regexp
	authHeaderRegex     *regexp.Regexp
	urlUserinfoRegex    *regexp.Regexp
	regexOnce           sync.Once

	// errSanitized is the error type for sanitized errors.
	errSanitized = errors.New("sanitized error")
)

func compileRegexPatterns() {
	regexOnce.Do(func() {
		// GitLab personal access tokens: glpat-[6+ chars]
		gitlabTokenRegex = regexp.MustCompile(`glpat-[a-zA-Z0-9_-]{6,}`)

		// GitHub tokens: classic ghp_/gho_/ghs_/ghu_ and fine-grained github_pat_
		githubTokenRegex = regexp.MustCompile(`(?:gh[opsu]_[a-zA-Z0-9]{20,}|github_pat_[a-zA-Z0-9_]{20,})`)

		// Bitbucket Data Center HTTP access tokens
		bitbucketTokenRegex = regexp.MustCompile(`BBDC-[a-zA-Z0-9+/=_-]{20,}`)

		// Authorization headers with Basic or Bearer credentials
		authHeaderRegex = regexp.MustCompile(`(?i)authorization:\s*(?:bearer|basic)\s+[a-zA-Z0-9+/=_.-]{6,}`)

		// user:password@ embedded in URLs
		urlUserinfoRegex = regexp.MustCompile(`(https?://)[^/\s:@]+:[^/\s@]+@`)
	})
}

// SanitizeString removes sensitive tokens from a string. It redacts GitLab,
// GitHub and Bitbucket tokens, authorization headers and URL credentials.
// Response bodies from remote services pass through it before being logged.
//
// Safe for concurrent use.
func SanitizeString(s string) string {
	compileRegexPatterns()

	s = gitlabTokenRegex.ReplaceAllString(s, "[gitlab-token-redacted]")
	s = githubTokenRegex.ReplaceAllString(s, "[github-token-redacted]")
	s = bitbucketTokenRegex.ReplaceAllString(s, "[bitbucket-token-redacted]")
	s = authHeaderRegex.ReplaceAllString(s, "Authorization: [redacted]")
	s = urlUserinfoRegex.ReplaceAllString(s, "${1}[redacted]@")

	return s
}

// SanitizeError wraps an error with [SanitizeString] applied to its message.
// Returns nil if err is nil. The original error chain is not preserved.
func SanitizeError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s", errSanitized, SanitizeString(err.Error()))
}

// SanitizeMap redacts values whose keys match common sensitive names
// (token, password, secret, api_key, auth, credential, authorization).
// Non-sensitive string values are passed through [SanitizeString].
// Returns nil if m is nil.
func SanitizeMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}

	sensitiveKeys := []string{
		"token", "password", "secret", "api_key", "apikey",
		"auth", "credential", "authorization",
	}

	result := make(map[string]any, len(m))
	for k, v := range m {
		lowerKey := strings.ToLower(k)
		isSensitive := false
		for _, sensitiveKey := range sensitiveKeys {
			if strings.Contains(lowerKey, sensitiveKey) {
				isSensitive = true
				break
			}
		}

		switch {
		case isSensitive:
			result[k] = maskRedacted
		case isString(v):
			result[k] = SanitizeString(v.(string))
		default:
			result[k] = v
		}
	}

	return result
}

func isString(v any) bool {
	_, ok := v.(string)
	return ok
}
