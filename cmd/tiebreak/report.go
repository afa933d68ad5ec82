package main

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/lexiconlabs/tiebreak/internal/report"
)

// createReportCommand summarizes the most recent scan.
func createReportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Summarize the most recent scan",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openReportStore(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			summary, err := store.LatestSummary(cmd.Context())
			if errors.Is(err, report.ErrNoScans) {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No scans recorded yet")
				return nil
			}
			if err != nil {
				return err
			}

			printSummary(cmd, summary)
			return nil
		},
	}

	cmd.Flags().String("db", "", "Report database path (defaults to the XDG data dir)")

	return cmd
}

func printSummary(cmd *cobra.Command, summary *report.Summary) {
	out := cmd.OutOrStdout()

	_, _ = fmt.Fprintf(out, "Scan %d of %s (candidates: %s)\n",
		summary.ScanID, summary.Root, strings.Join(summary.Candidates, ", "))
	_, _ = fmt.Fprintf(out, "%d files scanned\n", summary.Total)

	names := make([]string, 0, len(summary.PerLanguage))
	for name := range summary.PerLanguage {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		_, _ = fmt.Fprintf(out, "  %s %d\n", color.GreenString("%-24s", name), summary.PerLanguage[name])
	}
	if summary.Unresolved > 0 {
		_, _ = fmt.Fprintf(out, "  %s %d\n", color.YellowString("%-24s", "(ambiguous)"), summary.Unresolved)
	}
}
