// Package storage provides XDG-compliant storage path management for
// tiebreak.
package storage

import (
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/afero"
)

const (
	// AppName is the application name used for XDG directory paths.
	AppName = "tiebreak"

	logFilename    = "tiebreak.log"
	reportFilename = "scans.db"
)

// Manager handles storage operations with filesystem abstraction.
type Manager struct {
	fs afero.Fs
}

// New creates a storage manager over the given filesystem.
func New(fs afero.Fs) *Manager {
	return &Manager{fs: fs}
}

// DataDir returns the XDG data directory for tiebreak, creating it if
// necessary.
func (m *Manager) DataDir() (string, error) {
	dataDir := filepath.Join(xdg.DataHome, AppName)
	if err := m.fs.MkdirAll(dataDir, 0o750); err != nil {
		return "", fmt.Errorf("failed to create data directory %s: %w", dataDir, err)
	}
	return dataDir, nil
}

// LogPath returns the full path to the tiebreak log file.
func (m *Manager) LogPath() (string, error) {
	dataDir, err := m.DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, logFilename), nil
}

// ReportPath returns the full path to the scan report database.
func (m *Manager) ReportPath() (string, error) {
	dataDir, err := m.DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, reportFilename), nil
}
