package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/lexiconlabs/tiebreak/internal/report"
	"github.com/lexiconlabs/tiebreak/internal/storage"
)

// createScanCommand batch-resolves a directory tree and records the
// outcomes in the report database.
func createScanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan DIR",
		Short: "Batch-resolve files under a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			candidateSpec, err := cmd.Flags().GetString("candidates")
			if err != nil {
				return fmt.Errorf("failed to get candidates flag: %w", err)
			}
			glob, err := cmd.Flags().GetString("glob")
			if err != nil {
				return fmt.Errorf("failed to get glob flag: %w", err)
			}

			app, err := appFromCommand(cmd)
			if err != nil {
				return err
			}

			store, err := openReportStore(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			summary, err := app.Scan(cmd.Context(), store, args[0], glob, candidateSpec)
			if err != nil {
				return err
			}

			printSummary(cmd, summary)
			return nil
		},
	}

	cmd.Flags().StringP("candidates", "c", "", "Comma-separated candidate language names")
	_ = cmd.MarkFlagRequired("candidates")
	cmd.Flags().StringP("glob", "g", "*", "Base-name glob selecting files to scan")
	cmd.Flags().String("db", "", "Report database path (defaults to the XDG data dir)")

	return cmd
}

func openReportStore(cmd *cobra.Command) (*report.Store, error) {
	dbPath, err := cmd.Flags().GetString("db")
	if err != nil {
		return nil, fmt.Errorf("failed to get db flag: %w", err)
	}
	if dbPath == "" {
		dbPath, err = storage.New(afero.NewOsFs()).ReportPath()
		if err != nil {
			return nil, err
		}
	}

	store, err := report.Open(cmd.Context(), dbPath)
	if err != nil {
		return nil, err
	}
	return store, nil
}
