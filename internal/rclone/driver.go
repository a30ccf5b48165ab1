package rclone

import (
	"os"
	"os/exec"
)

// DriverConfig selects which rclone executable and config file the driver
// uses. Both fields are optional; empty values fall back to the platform
// default binary name and to rclone's own default config file location.
// The config is immutable once a Driver is constructed.
type DriverConfig struct {
	// BinaryPath is an explicit path to the rclone executable or to a
	// directory containing it. Empty means "rclone" on the search path.
	BinaryPath string

	// ConfigFile overrides the rclone config file. Empty means ask the
	// binary for its default.
	ConfigFile string
}

// Driver runs one-shot probes against the rclone binary and launches its
// remote-control daemon. Version and config file probes block on a
// short-lived subprocess call; daemon launch is non-blocking.
type Driver struct {
	cfg DriverConfig

	// Test hooks (default to real implementations).
	runProbe   func(bin string, args ...string) ([]byte, error)
	newCommand func(bin string, args ...string) *exec.Cmd
}

// NewDriver creates a driver for the given config.
func NewDriver(cfg DriverConfig) *Driver {
	return &Driver{
		cfg: cfg,
		runProbe: func(bin string, args ...string) ([]byte, error) {
			cmd := exec.Command(bin, args...)
			// A broken or encrypted user config must not fail
			// one-shot probes.
			cmd.Env = append(os.Environ(), "RCLONE_CONFIG="+os.DevNull)
			return cmd.CombinedOutput()
		},
		newCommand: exec.Command,
	}
}

// Config returns the driver's immutable configuration.
func (d *Driver) Config() DriverConfig {
	return d.cfg
}
