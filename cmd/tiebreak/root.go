package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/lexiconlabs/tiebreak/internal/cli"
	"github.com/lexiconlabs/tiebreak/internal/logging"
)

// createRootCommand creates the main root command that shows help by
// default.
func createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "tiebreak",
		Short:             "Content-heuristic language disambiguator",
		PersistentPreRunE: initLogging,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringP("rules", "r", "tiebreak.yml", "Path to extra rule file")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (trace, debug, info, warn, error)")

	rootCmd.AddCommand(
		createResolveCommand(),
		createLanguagesCommand(),
		createRulesCommand(),
		createValidateCommand(),
		createScanCommand(),
		createReportCommand(),
	)

	return rootCmd
}

// initLogging attaches the file logger to the command context before any
// subcommand runs.
func initLogging(cmd *cobra.Command, _ []string) error {
	levelName, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return fmt.Errorf("failed to get log-level flag: %w", err)
	}
	level, err := zerolog.ParseLevel(levelName)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", levelName, err)
	}

	ctx, err := logging.New(cmd.Context(), afero.NewOsFs(), logging.Config{Level: level})
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	cmd.SetContext(ctx)
	return nil
}

// appFromCommand extracts the rule file path and assembles the app.
func appFromCommand(cmd *cobra.Command) (*cli.App, error) {
	rulesPath, err := cmd.Flags().GetString("rules")
	if err != nil {
		return nil, fmt.Errorf("failed to get rules flag: %w", err)
	}
	app, err := cli.NewApp(afero.NewOsFs(), rulesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to build app: %w", err)
	}
	return app, nil
}
