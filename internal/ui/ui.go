// Package ui provides the interactive prompts of pr-report.
package ui

import (
	"errors"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"golang.org/x/term"
)

// ErrNotInteractive is returned when a prompt is requested without a terminal on stdin.
var ErrNotInteractive = errors.New("stdin is not a terminal")

// SurveyPrompter asks for values with survey.
type SurveyPrompter struct {
	opts []survey.AskOpt
}

// NewPrompter creates a prompter. opts are passed to every survey.AskOne call.
func NewPrompter(opts ...survey.AskOpt) *SurveyPrompter {
	return &SurveyPrompter{opts: opts}
}

// Password asks for a secret without echoing it. An empty answer is rejected.
func (p *SurveyPrompter) Password(message string) (string, error) {
	if !IsInteractive() {
		return "", ErrNotInteractive
	}

	var answer string
	prompt := &survey.Password{Message: message}
	opts := append([]survey.AskOpt{survey.WithValidator(survey.Required)}, p.opts...)
	if err := survey.AskOne(prompt, &answer, opts...); err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return answer, nil
}

// IsInteractive reports whether stdin is attached to a terminal.
func IsInteractive() bool {
	return IsTerminal(os.Stdin)
}

// IsTerminal reports whether f is a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // file descriptors fit in int
}
