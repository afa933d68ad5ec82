package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// createValidateCommand creates the validate command.
func createValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the rule file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := appFromCommand(cmd)
			if err != nil {
				return fmt.Errorf("validation error: %w", err)
			}

			result, err := app.ValidateConfig()
			if err != nil {
				return fmt.Errorf("validation error: %w", err)
			}

			_, _ = fmt.Fprint(cmd.OutOrStdout(), result)
			return nil
		},
	}
}
