package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// createLanguagesCommand lists every language the app can resolve to.
func createLanguagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List known languages",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := appFromCommand(cmd)
			if err != nil {
				return err
			}

			for _, name := range app.Languages() {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
