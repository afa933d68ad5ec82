// Package prompt provides the interactive line input used by the rule
// console.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"
)

// ErrCancelled is returned when the user aborts input.
var ErrCancelled = errors.New("cancelled by user")

// Prompter interface wraps basic prompting functionality for testability.
type Prompter interface {
	Prompt(string) (string, error)
	Close() error
}

// LinerPrompter wraps liner.State to implement Prompter.
type LinerPrompter struct {
	*liner.State
}

// NewLinerPrompter creates a new liner-based prompter.
func NewLinerPrompter() Prompter {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	return &LinerPrompter{State: line}
}

// TextInput reads one line using the given prompter, with a colored prompt.
func TextInput(prompter Prompter, prompt string) (string, error) {
	result, err := prompter.Prompt(color.CyanString(prompt + " "))
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return "", ErrCancelled
		}
		return "", fmt.Errorf("text input failed: %w", err)
	}
	return result, nil
}

// MultiLineInput accepts multi-line text, ending on an empty line.
func MultiLineInput(prompter Prompter, prompt string) (string, error) {
	color.Cyan("%s (empty line to finish)\n", prompt)

	var lines []string
	for {
		input, err := prompter.Prompt(color.YellowString("  "))
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				return "", ErrCancelled
			}
			return "", fmt.Errorf("multi-line input failed: %w", err)
		}
		if input == "" {
			break
		}
		lines = append(lines, input)
	}

	return strings.Join(lines, "\n"), nil
}
