// Package rclone drives a locally installed rclone binary: it resolves and
// probes the executable and supervises its remote-control daemon.
package rclone

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// executableName returns the platform-specific rclone executable filename.
func executableName(goos string) string {
	if goos == "windows" {
		return "rclone.exe"
	}
	return "rclone"
}

// resolveBinary turns an optional explicit path into the executable to spawn.
// With no explicit path it returns the bare platform name and leaves lookup
// to the OS search path at spawn time. An explicit path must exist; a
// directory has the executable name appended, a file is returned unchanged.
func resolveBinary(explicit, goos string) (string, error) {
	if explicit == "" {
		return executableName(goos), nil
	}

	info, err := os.Stat(explicit)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrPathNotFound, explicit)
		}
		return "", fmt.Errorf("stat rclone binary: %w", err)
	}

	if info.IsDir() {
		return filepath.Join(explicit, executableName(goos)), nil
	}
	return explicit, nil
}

// Binary resolves the rclone executable this driver will spawn.
func (d *Driver) Binary() (string, error) {
	return resolveBinary(d.cfg.BinaryPath, runtime.GOOS)
}
