package main

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lexiconlabs/tiebreak/internal/prompt"
)

// createRulesCommand creates the rule inspection command with subcommands.
func createRulesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Inspect the registered rule bank",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := appFromCommand(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			rules := app.Rules()
			indexWidth := len(fmt.Sprintf("%d", len(rules)))
			indent := strings.Repeat(" ", indexWidth+3)

			for i, rule := range rules {
				_, _ = fmt.Fprintf(out, "[%0*d] %s\n", indexWidth, i+1, strings.Join(rule.Languages(), ", "))
				for _, clause := range rule.Clauses() {
					_, _ = fmt.Fprintf(out, "%s%s\n", indent, clause)
				}
			}
			return nil
		},
	}

	cmd.AddCommand(
		createRulesTestCommand(),
		createRulesConsoleCommand(),
	)

	return cmd
}

// createRulesTestCommand creates the one-off pattern testing subcommand.
func createRulesTestCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "test PATTERN CONTENT",
		Short: "Test whether a pattern matches content",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("requires pattern and content arguments")
			}

			matched, err := regexp.MatchString(args[0], args[1])
			if err != nil {
				return fmt.Errorf("invalid pattern: %w", err)
			}

			if matched {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "[✓] Pattern matches!")
			} else {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "[✗] Pattern does not match")
			}
			return nil
		},
	}
}

// createRulesConsoleCommand creates the interactive rule-testing console.
func createRulesConsoleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "console",
		Short: "Interactively test candidate sets against snippets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := appFromCommand(cmd)
			if err != nil {
				return err
			}

			return app.Console(cmd.Context(), prompt.NewLinerPrompter(), cmd.OutOrStdout())
		},
	}
}
