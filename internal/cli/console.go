package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/lexiconlabs/tiebreak/internal/prompt"
)

// Console runs the interactive rule-testing loop: read a candidate set,
// read a snippet, print the resolution, repeat. Exits on "exit", "quit",
// or cancelled input. Output goes to out so tests can capture it.
func (a *App) Console(ctx context.Context, prompter prompt.Prompter, out io.Writer) error {
	defer func() { _ = prompter.Close() }()

	_, _ = fmt.Fprintln(out, "tiebreak console - enter a candidate set and a snippet, empty line ends the snippet")

	for {
		spec, err := prompt.TextInput(prompter, "candidates (comma-separated, or exit):")
		if err != nil {
			if errors.Is(err, prompt.ErrCancelled) {
				return nil
			}
			return err
		}
		switch strings.TrimSpace(spec) {
		case "exit", "quit":
			return nil
		case "":
			continue
		}

		candidates, err := a.Candidates(spec)
		if err != nil {
			_, _ = fmt.Fprintln(out, color.RedString("%v", err))
			continue
		}

		snippet, err := prompt.MultiLineInput(prompter, "snippet:")
		if err != nil {
			if errors.Is(err, prompt.ErrCancelled) {
				return nil
			}
			return err
		}

		if name := a.ResolveContent(ctx, []byte(snippet), candidates); name != "" {
			_, _ = fmt.Fprintln(out, color.GreenString("-> %s", name))
		} else {
			_, _ = fmt.Fprintln(out, color.YellowString("-> ambiguous"))
		}
	}
}
