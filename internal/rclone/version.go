package rclone

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// Version runs `rclone version` and returns the canonical semantic version
// without the leading "v", e.g. "1.60.0". This is a blocking, one-shot
// subprocess call.
func (d *Driver) Version() (string, error) {
	bin, err := d.Binary()
	if err != nil {
		return "", err
	}

	out, err := d.runProbe(bin, "version")
	if err != nil {
		return "", &ProbeError{Op: ProbeOpVersion, Err: err}
	}

	// First line looks like "rclone v1.60.0"; the version is the last
	// whitespace-separated token.
	line, _, _ := strings.Cut(string(out), "\n")
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", &ProbeError{Op: ProbeOpVersion, Err: ErrVersionDetection}
	}

	token := ensureVPrefix(fields[len(fields)-1])
	if !semver.IsValid(token) {
		return "", &ProbeError{
			Op:  ProbeOpVersion,
			Err: fmt.Errorf("%w: unexpected output %q", ErrVersionDetection, line),
		}
	}
	return strings.TrimPrefix(token, "v"), nil
}

// VersionAtLeast re-probes the installed version and reports whether it is
// greater than or equal to min under semver ordering. min may be given with
// or without a leading "v".
func (d *Driver) VersionAtLeast(min string) (bool, error) {
	current, err := d.Version()
	if err != nil {
		return false, err
	}
	return semver.Compare(ensureVPrefix(current), ensureVPrefix(min)) >= 0, nil
}

// ensureVPrefix ensures the version string has a 'v' prefix for semver.
func ensureVPrefix(version string) string {
	if strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}
