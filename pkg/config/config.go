// Package config handles loading and validation of user configuration.
//
// The file lives at ~/.config/pr-report/config.yml and holds everything except
// secrets: tokens and passwords are never read from or written to it.
//
//	github:
//	  user: octocat
//	bitbucket:
//	  url: https://bitbucket.example.com
//	  projects: [KEY, OPS]
//	confluence:
//	  url: https://wiki.example.com
//	  space: ENG
//	  title: Open Pull Requests
//	  parent_id: "123456"
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sgaunet/pr-report/internal/retry"
	"github.com/sgaunet/pr-report/internal/security"
	"github.com/sgaunet/pr-report/internal/urlutil"
	"gopkg.in/yaml.v3"
)

// Defaults applied by [Default] and by [Load] for fields the file leaves empty.
const (
	DefaultGitHubWebURL      = "https://github.com"
	DefaultGitLabURL         = "https://gitlab.com"
	DefaultGitHubOutput      = "gh-pr.csv"
	DefaultBitbucketOutput   = "bb-pr.csv"
	DefaultGitLabOutput      = "gl-pr.csv"
	DefaultMergeabilityDelay = "2s"
)

var (
	errConfigNotFound = errors.New("config file not found")

	// ErrConfigNotFound is returned when an explicitly requested file is missing.
	ErrConfigNotFound = errConfigNotFound
	// ErrGitHubUserEmpty is returned when no GitHub user is configured.
	ErrGitHubUserEmpty = errors.New("github user is required")
	// ErrBitbucketURLEmpty is returned when no Bitbucket server is configured.
	ErrBitbucketURLEmpty = errors.New("bitbucket url is required")
	// ErrBitbucketProjectsEmpty is returned when no Bitbucket project is configured.
	ErrBitbucketProjectsEmpty = errors.New("at least one bitbucket project is required")
	// ErrGitLabGroupsEmpty is returned when no GitLab group is configured.
	ErrGitLabGroupsEmpty = errors.New("at least one gitlab group is required")
	// ErrConfluenceURLEmpty is returned when no Confluence server is configured.
	ErrConfluenceURLEmpty = errors.New("confluence url is required")
	// ErrConfluenceSpaceEmpty is returned when no space key is configured.
	ErrConfluenceSpaceEmpty = errors.New("confluence space is required")
	// ErrConfluenceTitleEmpty is returned when no page title is configured.
	ErrConfluenceTitleEmpty = errors.New("confluence page title is required")
	// ErrInvalidURL is returned when a configured URL is not absolute http(s).
	ErrInvalidURL = errors.New("invalid url")
	// ErrInvalidMergeability is returned for a negative attempt count or a bad delay.
	ErrInvalidMergeability = errors.New("invalid mergeability settings")
)

// Config represents the complete configuration for pr-report.
type Config struct {
	GitHub       GitHubConfig       `yaml:"github"`
	Bitbucket    BitbucketConfig    `yaml:"bitbucket"`
	GitLab       GitLabConfig       `yaml:"gitlab"`
	Confluence   ConfluenceConfig   `yaml:"confluence"`
	Mergeability MergeabilityConfig `yaml:"mergeability"`
}

// GitHubConfig contains GitHub-specific configuration.
type GitHubConfig struct {
	User   string `yaml:"user"`
	APIURL string `yaml:"api_url"`
	WebURL string `yaml:"web_url"`
	Output string `yaml:"output"`

	Token security.SecureToken `yaml:"-"`
}

// BitbucketConfig contains Bitbucket Server configuration.
type BitbucketConfig struct {
	URL      string   `yaml:"url"`
	Projects []string `yaml:"projects"`
	Username string   `yaml:"username"`
	Output   string   `yaml:"output"`

	Token security.SecureToken `yaml:"-"`
}

// GitLabConfig contains GitLab-specific configuration.
type GitLabConfig struct {
	URL    string   `yaml:"url"`
	Groups []string `yaml:"groups"`
	Output string   `yaml:"output"`

	Token security.SecureToken `yaml:"-"`
}

// ConfluenceConfig contains the target page of the publish command.
type ConfluenceConfig struct {
	URL      string `yaml:"url"`
	Space    string `yaml:"space"`
	Title    string `yaml:"title"`
	ParentID string `yaml:"parent_id"`
	Username string `yaml:"username"`

	Password security.SecureToken `yaml:"-"`
}

// MergeabilityConfig bounds the polling of pull request detail.
type MergeabilityConfig struct {
	Attempts int    `yaml:"attempts"`
	Delay    string `yaml:"delay"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// DefaultPath returns ~/.config/pr-report/config.yml.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "pr-report", "config.yml"), nil
}

// Load reads and parses the configuration file at path. An empty path means
// [DefaultPath], whose absence yields [Default]. A missing explicit path is an
// error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	// #nosec G304 - Reading a user supplied config path is intentional
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return Default(), nil
		}
		return nil, fmt.Errorf("%w: %s", errConfigNotFound, path)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	config.normalize()
	config.applyDefaults()

	if _, err := config.Mergeability.delay(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if config.Mergeability.Attempts < 0 {
		return nil, fmt.Errorf("invalid configuration: %w: attempts %d", ErrInvalidMergeability, config.Mergeability.Attempts)
	}

	return &config, nil
}

// Policy returns the retry policy described by the mergeability section.
func (c *Config) Policy() retry.Policy {
	p := retry.DefaultPolicy()
	if c.Mergeability.Attempts > 0 {
		p.Attempts = c.Mergeability.Attempts
	}
	if d, err := c.Mergeability.delay(); err == nil {
		p.Delay = d
	}
	return p
}

// ValidateGitHub checks the settings of the github command.
func (c *Config) ValidateGitHub() error {
	if c.GitHub.User == "" {
		return ErrGitHubUserEmpty
	}
	if c.GitHub.APIURL != "" {
		if err := validateURL("github api_url", c.GitHub.APIURL); err != nil {
			return err
		}
	}
	return validateURL("github web_url", c.GitHub.WebURL)
}

// ValidateBitbucket checks the settings of the bitbucket command.
func (c *Config) ValidateBitbucket() error {
	if c.Bitbucket.URL == "" {
		return ErrBitbucketURLEmpty
	}
	if err := validateURL("bitbucket url", c.Bitbucket.URL); err != nil {
		return err
	}
	if len(c.Bitbucket.Projects) == 0 {
		return ErrBitbucketProjectsEmpty
	}
	return nil
}

// ValidateGitLab checks the settings of the gitlab command.
func (c *Config) ValidateGitLab() error {
	if err := validateURL("gitlab url", c.GitLab.URL); err != nil {
		return err
	}
	if len(c.GitLab.Groups) == 0 {
		return ErrGitLabGroupsEmpty
	}
	return nil
}

// ValidateConfluence checks the settings of the publish command.
func (c *Config) ValidateConfluence() error {
	if c.Confluence.URL == "" {
		return ErrConfluenceURLEmpty
	}
	if err := validateURL("confluence url", c.Confluence.URL); err != nil {
		return err
	}
	if c.Confluence.Space == "" {
		return ErrConfluenceSpaceEmpty
	}
	if c.Confluence.Title == "" {
		return ErrConfluenceTitleEmpty
	}
	return nil
}

func validateURL(field, raw string) error {
	if _, err := urlutil.ValidateBaseURL(raw); err != nil {
		return fmt.Errorf("%w: %s %q", ErrInvalidURL, field, raw)
	}
	return nil
}

func (m MergeabilityConfig) delay() (time.Duration, error) {
	if m.Delay == "" {
		return retry.DefaultDelay, nil
	}
	d, err := time.ParseDuration(m.Delay)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("%w: delay %q", ErrInvalidMergeability, m.Delay)
	}
	return d, nil
}

// normalize trims whitespace from every string and drops empty list entries.
func (c *Config) normalize() {
	for _, s := range []*string{
		&c.GitHub.User, &c.GitHub.APIURL, &c.GitHub.WebURL, &c.GitHub.Output,
		&c.Bitbucket.URL, &c.Bitbucket.Username, &c.Bitbucket.Output,
		&c.GitLab.URL, &c.GitLab.Output,
		&c.Confluence.URL, &c.Confluence.Space, &c.Confluence.Title,
		&c.Confluence.ParentID, &c.Confluence.Username,
		&c.Mergeability.Delay,
	} {
		*s = strings.TrimSpace(*s)
	}
	c.Bitbucket.Projects = compact(c.Bitbucket.Projects)
	c.GitLab.Groups = compact(c.GitLab.Groups)
}

func (c *Config) applyDefaults() {
	setDefault(&c.GitHub.WebURL, DefaultGitHubWebURL)
	setDefault(&c.GitHub.Output, DefaultGitHubOutput)
	setDefault(&c.Bitbucket.Output, DefaultBitbucketOutput)
	setDefault(&c.GitLab.URL, DefaultGitLabURL)
	setDefault(&c.GitLab.Output, DefaultGitLabOutput)
	setDefault(&c.Mergeability.Delay, DefaultMergeabilityDelay)
	if c.Mergeability.Attempts == 0 {
		c.Mergeability.Attempts = retry.DefaultAttempts
	}
}

func setDefault(s *string, v string) {
	if *s == "" {
		*s = v
	}
}

func compact(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
