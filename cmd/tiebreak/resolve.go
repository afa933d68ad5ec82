package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// createResolveCommand creates the resolve command, the primary entry
// point: disambiguate one file among a candidate set.
func createResolveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve FILE",
		Short: "Disambiguate a file among candidate languages",
		Long: "Run the content-heuristic rule bank against FILE and print the language " +
			"it resolves to, or \"ambiguous\" when no rule is conclusive. An ambiguous " +
			"result is a normal outcome, not a failure.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			candidateSpec, err := cmd.Flags().GetString("candidates")
			if err != nil {
				return fmt.Errorf("failed to get candidates flag: %w", err)
			}
			quiet, err := cmd.Flags().GetBool("quiet")
			if err != nil {
				return fmt.Errorf("failed to get quiet flag: %w", err)
			}

			app, err := appFromCommand(cmd)
			if err != nil {
				return err
			}

			name, err := app.ResolveFile(cmd.Context(), args[0], candidateSpec)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case quiet:
				if name != "" {
					_, _ = fmt.Fprintln(out, name)
				}
			case name != "":
				_, _ = fmt.Fprintln(out, color.GreenString(name))
			default:
				_, _ = fmt.Fprintln(out, color.YellowString("ambiguous"))
			}
			return nil
		},
	}

	cmd.Flags().StringP("candidates", "c", "", "Comma-separated candidate language names")
	_ = cmd.MarkFlagRequired("candidates")
	cmd.Flags().BoolP("quiet", "q", false, "Print only the resolved name, nothing on ambiguity")

	return cmd
}
