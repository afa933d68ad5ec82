package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/lexiconlabs/tiebreak/internal/logging"
	"github.com/lexiconlabs/tiebreak/internal/report"
)

// Scan batch-resolves every file under root whose base name matches glob
// and records the outcomes in store. Unreadable files are logged and
// skipped; an unresolvable file is a recorded outcome, not an error.
func (a *App) Scan(ctx context.Context, store *report.Store, root, glob, candidateSpec string) (*report.Summary, error) {
	candidates, err := a.Candidates(candidateSpec)
	if err != nil {
		return nil, err
	}
	if _, err := filepath.Match(glob, "probe"); err != nil {
		return nil, fmt.Errorf("invalid glob %q: %w", glob, err)
	}

	names := make([]string, 0, len(candidates))
	for _, c := range candidates {
		names = append(names, c.Name)
	}
	scanID, err := store.BeginScan(ctx, root, names)
	if err != nil {
		return nil, err
	}

	walkErr := afero.Walk(a.fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			logging.Get(ctx).Warn().Str("path", path).Err(err).Msg("skipping unreadable entry")
			return nil
		}
		if info.IsDir() {
			return nil
		}
		if ok, _ := filepath.Match(glob, filepath.Base(path)); !ok {
			return nil
		}

		content, err := afero.ReadFile(a.fs, path)
		if err != nil {
			logging.Get(ctx).Warn().Str("path", path).Err(err).Msg("skipping unreadable file")
			return nil
		}

		name := a.ResolveContent(ctx, content, candidates)
		return store.RecordResult(ctx, scanID, path, name)
	})
	if walkErr != nil {
		return nil, fmt.Errorf("scan failed: %w", walkErr)
	}

	return store.LatestSummary(ctx)
}
