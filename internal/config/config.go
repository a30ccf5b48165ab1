// Package config handles rcmate path and settings configuration.
package config

import (
	"os"
	"path/filepath"
)

// Paths holds common paths used by rcmate.
type Paths struct {
	Home      string
	Settings  string
	Logs      string
	DaemonLog string
	EngineLog string
}

// GetPaths returns the paths for the current user.
func GetPaths() (*Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	rcmateHome := filepath.Join(home, ".rcmate")
	logsDir := filepath.Join(rcmateHome, "logs")
	return &Paths{
		Home:      rcmateHome,
		Settings:  filepath.Join(rcmateHome, "settings.yaml"),
		Logs:      logsDir,
		DaemonLog: filepath.Join(logsDir, "rcmate.log"),
		EngineLog: filepath.Join(logsDir, "rclone.log"),
	}, nil
}

// EnsureDirectories creates the required directories if they don't exist.
func (p *Paths) EnsureDirectories() error {
	dirs := []string{p.Home, p.Logs}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}
