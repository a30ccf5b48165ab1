package rclone

import (
	"fmt"
	"strings"
)

// ConfigFilePath returns the rclone config file the daemon will use. An
// explicit override from the driver config is returned verbatim without
// spawning anything. Otherwise `rclone config file` is run synchronously;
// its second output line is the default path.
func (d *Driver) ConfigFilePath() (string, error) {
	if d.cfg.ConfigFile != "" {
		return d.cfg.ConfigFile, nil
	}

	bin, err := d.Binary()
	if err != nil {
		return "", err
	}

	out, err := d.runProbe(bin, "config", "file")
	if err != nil {
		return "", &ProbeError{Op: ProbeOpConfigFile, Err: err}
	}

	// Output looks like:
	//   Configuration file is stored at:
	//   /home/user/.config/rclone/rclone.conf
	lines := strings.Split(string(out), "\n")
	if len(lines) < 2 {
		return "", &ProbeError{Op: ProbeOpConfigFile, Err: ErrConfigFileDetection}
	}
	path := strings.TrimSpace(lines[1])
	if path == "" {
		return "", &ProbeError{
			Op:  ProbeOpConfigFile,
			Err: fmt.Errorf("%w: unexpected output %q", ErrConfigFileDetection, string(out)),
		}
	}
	return path, nil
}
